// internal/entity/barrier.go
package entity

import (
	"go-till-dawn/internal/config"
	"go-till-dawn/internal/interfaces"
	"go-till-dawn/pkg/geom"
)

// ElectricBarrier is a rectangle centered on the arena that shrinks toward
// MinSize. Standing outside it hurts.
type ElectricBarrier struct {
	center        geom.Vec2
	outerWidth    float64
	outerHeight   float64
	currentWidth  float64
	currentHeight float64
	tuning        config.BarrierTuning
	shrinking     bool
	active        bool
	disposed      bool
}

func NewElectricBarrier(bounds geom.Rect, t config.BarrierTuning) *ElectricBarrier {
	return &ElectricBarrier{
		center:        bounds.Center(),
		outerWidth:    bounds.W,
		outerHeight:   bounds.H,
		currentWidth:  bounds.W,
		currentHeight: bounds.H,
		tuning:        t,
		shrinking:     true,
		active:        true,
	}
}

// Update shrinks both axes at ShrinkSpeed*2 per second until MinSize.
func (b *ElectricBarrier) Update(dt float64) {
	if !b.active || !b.shrinking {
		return
	}
	step := b.tuning.ShrinkSpeed * 2 * dt
	b.currentWidth = shrink(b.currentWidth, step, b.tuning.MinSize)
	b.currentHeight = shrink(b.currentHeight, step, b.tuning.MinSize)
	if b.currentWidth <= b.tuning.MinSize && b.currentHeight <= b.tuning.MinSize {
		b.shrinking = false
	}
}

// shrink never grows a side that already starts below the floor.
func shrink(size, step, floor float64) float64 {
	if size <= floor {
		return size
	}
	return max(floor, size-step)
}

func (b *ElectricBarrier) Rect() geom.Rect {
	return geom.RectAround(b.center, b.currentWidth, b.currentHeight)
}

func (b *ElectricBarrier) Size() (w, h float64) { return b.currentWidth, b.currentHeight }

func (b *ElectricBarrier) OuterSize() (w, h float64) { return b.outerWidth, b.outerHeight }

func (b *ElectricBarrier) IsActive() bool { return b.active }

func (b *ElectricBarrier) IsShrinking() bool { return b.shrinking }

func (b *ElectricBarrier) IsDisposed() bool { return b.disposed }

// IsOutside reports whether p lies outside the barrier. Edges count as inside.
func (b *ElectricBarrier) IsOutside(p geom.Vec2) bool {
	return !b.Rect().Contains(p)
}

// HitPlayer deals one point of damage to a vulnerable player standing
// outside and grants the hit invincibility window.
func (b *ElectricBarrier) HitPlayer(player interfaces.Player) bool {
	if !b.active || player == nil || player.IsInvincible() {
		return false
	}
	if !b.IsOutside(player.Position()) {
		return false
	}
	player.SetHealth(player.Health() - 1)
	player.SetInvincible(b.tuning.HitInvincibility)
	return true
}

// Edges returns the four strips drawn around the current rectangle: top,
// bottom, left, right.
func (b *ElectricBarrier) Edges() [4]geom.Rect {
	r := b.Rect()
	t := b.tuning.Thickness
	return [4]geom.Rect{
		{X: r.X - t, Y: r.Y - t, W: r.W + 2*t, H: t},
		{X: r.X - t, Y: r.MaxY(), W: r.W + 2*t, H: t},
		{X: r.X - t, Y: r.Y, W: t, H: r.H},
		{X: r.MaxX(), Y: r.Y, W: t, H: r.H},
	}
}

func (b *ElectricBarrier) Deactivate() {
	b.active = false
	b.shrinking = false
}

func (b *ElectricBarrier) Dispose() {
	b.Deactivate()
	b.disposed = true
}
