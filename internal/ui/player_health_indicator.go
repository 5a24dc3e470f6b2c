// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-till-dawn/internal/config"
)

const (
	HealthCols          = 5
	HealthCircleRadius  = 8.0
	HealthCircleSpacing = 4.0
)

// PlayerHealthIndicator отображает здоровье игрока.
type PlayerHealthIndicator struct {
	X, Y float32
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// heartColor красит полные ячейки красным, пустые тёмным.
func heartColor(j, health int) color.Color {
	if j < health {
		return config.HealthColor
	}
	return config.HealthEmptyColor
}

// Draw рисует индикатор здоровья игрока в виде ряда кружков.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)
	for j := 0; j < maxHealth; j++ {
		row := j / HealthCols
		col := j % HealthCols
		cx := i.X + float32(col)*step + HealthCircleRadius
		cy := i.Y + float32(row)*step + HealthCircleRadius

		vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, heartColor(j, health), true)
		// Рисуем белую обводку
		vector.StrokeCircle(screen, cx, cy, HealthCircleRadius, 1, color.White, true)
	}

	label := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	cols := min(maxHealth, HealthCols)
	text.Draw(screen, label, basicfont.Face7x13, int(i.X+float32(cols)*step+6), int(i.Y+HealthCircleRadius+5), config.TextLightColor)
}

// GetHeight возвращает общую высоту индикатора.
func (i *PlayerHealthIndicator) GetHeight(maxHealth int) float32 {
	rows := (maxHealth + HealthCols - 1) / HealthCols
	return float32(rows) * (HealthCircleRadius*2 + HealthCircleSpacing)
}
