// internal/ui/player_level_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-till-dawn/internal/config"
)

// PlayerLevelIndicator отображает уровень и опыт игрока полосой во всю
// ширину экрана.
type PlayerLevelIndicator struct {
	X, Y, Width float32
}

const (
	xpBarHeight = 12
	borderWidth = 1
)

var borderColor = color.White

// NewPlayerLevelIndicator создает новый индикатор уровня.
func NewPlayerLevelIndicator(x, y, width float32) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y, Width: width}
}

func xpRatio(currentXP, xpToNext int) float64 {
	if xpToNext <= 0 {
		return 0
	}
	return min(1, max(0, float64(currentXP)/float64(xpToNext)))
}

// Draw отрисовывает индикатор.
func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, level, currentXP, xpToNext int) {
	vector.StrokeRect(screen, i.X, i.Y, i.Width, xpBarHeight, borderWidth, borderColor, true)

	fillWidth := float32(float64(i.Width-borderWidth*2) * xpRatio(currentXP, xpToNext))
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, xpBarHeight-borderWidth*2, config.XPBarColor, true)
	}

	label := fmt.Sprintf("LV %d", level)
	text.Draw(screen, label, basicfont.Face7x13, int(i.X), int(i.Y+xpBarHeight+config.HUDLineHeight-4), config.TextLightColor)
}
