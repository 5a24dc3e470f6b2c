// internal/ui/ammo_indicator.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-till-dawn/internal/config"
	"go-till-dawn/pkg/render"
)

const (
	ammoWidth  = 4
	ammoHeight = 12
)

// AmmoIndicator рисует патроны в магазине, а во время перезарядки
// полосу прогресса.
type AmmoIndicator struct {
	X, Y float32
}

func NewAmmoIndicator(x, y float32) *AmmoIndicator {
	return &AmmoIndicator{X: x, Y: y}
}

func (i *AmmoIndicator) Draw(screen *ebiten.Image, ammo, magazine int, reloading bool, progress float64, infinite bool) {
	if infinite {
		text.Draw(screen, "INF", basicfont.Face7x13, int(i.X), int(i.Y+ammoHeight), config.AmmoColor)
		return
	}
	if reloading {
		w := float32(magazine) * (ammoWidth + config.AmmoIndicatorGap)
		vector.StrokeRect(screen, i.X, i.Y, w, ammoHeight, borderWidth, borderColor, true)
		vector.DrawFilledRect(screen, i.X, i.Y, w*float32(progress), ammoHeight, config.AmmoColor, true)
		return
	}
	empty := render.DarkenColor(config.AmmoColor)
	for j := 0; j < magazine; j++ {
		x := i.X + float32(j)*(ammoWidth+config.AmmoIndicatorGap)
		if j < ammo {
			vector.DrawFilledRect(screen, x, i.Y, ammoWidth, ammoHeight, config.AmmoColor, true)
		} else {
			vector.DrawFilledRect(screen, x, i.Y, ammoWidth, ammoHeight, empty, true)
		}
	}
}
