// internal/entity/bullet.go
package entity

import (
	"go-till-dawn/internal/config"
	"go-till-dawn/pkg/geom"
)

// Bullet описывает снаряд игрока, летящий по прямой до попадания или пока не
// улетит слишком далеко от игрока.
type Bullet struct {
	ID               ID
	Position         geom.Vec2
	PreviousPosition geom.Vec2
	Direction        geom.Vec2 // единичный вектор
	Speed            float64
	Damage           int
	Radius           float64
	active           bool
}

func NewBullet(id ID, pos, dir geom.Vec2, speed float64, damage int, radius float64) *Bullet {
	return &Bullet{
		ID:               id,
		Position:         pos,
		PreviousPosition: pos,
		Direction:        dir.Normalize(),
		Speed:            speed,
		Damage:           damage,
		Radius:           radius,
		active:           true,
	}
}

func (b *Bullet) Update(dt float64) {
	if !b.active {
		return
	}
	b.PreviousPosition = b.Position
	b.Position = b.Position.Add(b.Direction.Scale(b.Speed * dt * config.FrameRateScale))
}

func (b *Bullet) IsActive() bool { return b.active }

func (b *Bullet) Deactivate() { b.active = false }

func (b *Bullet) Bounds() geom.Rect {
	return geom.RectAround(b.Position, b.Radius*2, b.Radius*2)
}
