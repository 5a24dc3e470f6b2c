// internal/ui/hud.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-till-dawn/internal/config"
)

// HUDState содержит всё, что HUD показывает за один кадр.
type HUDState struct {
	Health, MaxHealth int
	Level             int
	CurrentXP         int
	XPToNext          int
	Remaining         float64
	Ammo, Magazine    int
	Reloading         bool
	ReloadProgress    float64
	InfiniteAmmo      bool
}

// HUD собирает индикаторы вместе.
type HUD struct {
	level  *PlayerLevelIndicator
	health *PlayerHealthIndicator
	timer  *TimerIndicator
	ammo   *AmmoIndicator
}

func NewHUD() *HUD {
	m := float32(config.HUDMargin)
	level := NewPlayerLevelIndicator(m, m/2, config.ScreenWidth-2*m)
	healthY := m/2 + xpBarHeight + config.HUDLineHeight + 8
	health := NewPlayerHealthIndicator(m, healthY)
	return &HUD{
		level:  level,
		health: health,
		timer:  NewTimerIndicator(config.ScreenWidth/2, config.TimerIndicatorY+config.HUDMargin),
		ammo:   NewAmmoIndicator(m, healthY+health.GetHeight(2*HealthCols)+config.AmmoIndicatorGap),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, s HUDState) {
	h.level.Draw(screen, s.Level, s.CurrentXP, s.XPToNext)
	h.health.Draw(screen, s.Health, s.MaxHealth)
	h.timer.Draw(screen, s.Remaining)
	h.ammo.Draw(screen, s.Ammo, s.Magazine, s.Reloading, s.ReloadProgress, s.InfiniteAmmo)
}
