// internal/ui/timer_indicator.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-till-dawn/internal/config"
)

// TimerIndicator shows the remaining match time at the top center.
type TimerIndicator struct {
	CenterX, Y int
}

func NewTimerIndicator(centerX, y int) *TimerIndicator {
	return &TimerIndicator{CenterX: centerX, Y: y}
}

// FormatClock renders seconds as mm:ss, rounding up so the display reaches
// 00:00 only when time is really out.
func FormatClock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	if float64(total) < seconds {
		total++
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func (i *TimerIndicator) Draw(screen *ebiten.Image, remaining float64) {
	label := FormatClock(remaining)
	w := text.BoundString(basicfont.Face7x13, label).Dx()
	text.Draw(screen, label, basicfont.Face7x13, i.CenterX-w/2, i.Y, config.TextLightColor)
}
