// internal/system/movement.go
package system

import (
	"go-till-dawn/internal/config"
	"go-till-dawn/internal/entity"
	"go-till-dawn/pkg/geom"
	"go-till-dawn/pkg/utils"
)

// SpeedSource supplies the current speed multiplier (abilities).
type SpeedSource interface {
	SpeedMultiplier() float64
}

// MovementSystem moves the player from input and keeps them inside the map.
type MovementSystem struct {
	bounds geom.Rect
	speed  SpeedSource
}

func NewMovementSystem(bounds geom.Rect, speed SpeedSource) *MovementSystem {
	return &MovementSystem{bounds: bounds, speed: speed}
}

// Update moves p along dir at hero speed. dir need not be normalized; a zero
// vector leaves the player in place.
func (s *MovementSystem) Update(dt float64, p *entity.Player, dir geom.Vec2) {
	if p == nil {
		return
	}
	dir = dir.Normalize()
	if dir.X < 0 {
		p.FlipX = true
	} else if dir.X > 0 {
		p.FlipX = false
	}

	speed := p.Hero.Speed
	if s.speed != nil {
		speed *= s.speed.SpeedMultiplier()
	}
	next := p.Position().Add(dir.Scale(speed * dt * config.FrameRateScale))

	half := p.Bounds().W / 2
	next.X = utils.Clamp(next.X, s.bounds.X+half, s.bounds.MaxX()-half)
	next.Y = utils.Clamp(next.Y, s.bounds.Y+half, s.bounds.MaxY()-half)
	p.SetPosition(next)
}
