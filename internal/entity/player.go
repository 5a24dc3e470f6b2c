// internal/entity/player.go
package entity

import (
	"go-till-dawn/internal/component"
	"go-till-dawn/internal/config"
	"go-till-dawn/internal/defs"
	"go-till-dawn/internal/event"
	"go-till-dawn/pkg/geom"
)

// Player is the hero controlled by the user. It satisfies interfaces.Player.
type Player struct {
	Hero     defs.HeroDefinition
	Progress component.PlayerProgress
	FlipX    bool

	position        geom.Vec2
	size            float64
	health          int
	maxHealth       int
	invincibleTimer float64
	pendingLevelUps int
	xpBase          int
	events          *event.Dispatcher
}

func NewPlayer(hero defs.HeroDefinition, spawn geom.Vec2, t config.PlayerTuning, events *event.Dispatcher) *Player {
	return &Player{
		Hero: hero,
		Progress: component.PlayerProgress{
			Level:         1,
			XPToNextLevel: component.XPForLevel(t.XPBase, 1),
		},
		position:  spawn,
		size:      t.Size,
		health:    hero.MaxHealth,
		maxHealth: hero.MaxHealth,
		xpBase:    t.XPBase,
		events:    events,
	}
}

func (p *Player) Position() geom.Vec2 { return p.position }

func (p *Player) SetPosition(pos geom.Vec2) { p.position = pos }

func (p *Player) Bounds() geom.Rect {
	return geom.RectAround(p.position, p.size, p.size)
}

func (p *Player) Health() int { return p.health }

// SetHealth clamps hp to [0, MaxHealth].
func (p *Player) SetHealth(hp int) {
	p.health = max(0, min(hp, p.maxHealth))
}

func (p *Player) MaxHealth() int { return p.maxHealth }

// SetMaxHealth also heals by the amount the maximum grew.
func (p *Player) SetMaxHealth(n int) {
	if n < 1 {
		n = 1
	}
	if grow := n - p.maxHealth; grow > 0 {
		p.health += grow
	}
	p.maxHealth = n
	p.SetHealth(p.health)
}

func (p *Player) IsDead() bool { return p.health <= 0 }

func (p *Player) IsInvincible() bool { return p.invincibleTimer > 0 }

func (p *Player) InvincibleTimer() float64 { return p.invincibleTimer }

// SetInvincible extends the invincibility window, never shortens it.
func (p *Player) SetInvincible(duration float64) {
	p.invincibleTimer = max(p.invincibleTimer, duration)
}

func (p *Player) Update(dt float64) {
	if p.invincibleTimer > 0 {
		p.invincibleTimer = max(0, p.invincibleTimer-dt)
	}
}

// AddXP adds experience and performs every level-up it pays for.
func (p *Player) AddXP(amount int) {
	if amount <= 0 {
		return
	}
	p.Progress.CurrentXP += amount
	for p.Progress.CurrentXP >= p.Progress.XPToNextLevel {
		p.Progress.CurrentXP -= p.Progress.XPToNextLevel
		p.levelUp()
	}
}

// GrantLevel skips straight to the next level, keeping current XP.
func (p *Player) GrantLevel() {
	p.levelUp()
	if p.Progress.CurrentXP >= p.Progress.XPToNextLevel {
		p.Progress.CurrentXP = p.Progress.XPToNextLevel - 1
	}
}

func (p *Player) levelUp() {
	p.Progress.Level++
	p.Progress.XPToNextLevel = component.XPForLevel(p.xpBase, p.Progress.Level)
	p.pendingLevelUps++
	p.events.Emit(event.PlayerLevelUp, p.Progress.Level)
}

func (p *Player) PendingLevelUps() int { return p.pendingLevelUps }

// ConsumeLevelUp takes one queued level-up, false when none is waiting.
func (p *Player) ConsumeLevelUp() bool {
	if p.pendingLevelUps == 0 {
		return false
	}
	p.pendingLevelUps--
	return true
}
