// internal/interfaces/game_context.go
package interfaces

import "go-till-dawn/pkg/geom"

// Player is the combat core's view of the player character. Enemies read the
// position every frame; hazards and drops mutate health, invincibility and XP.
type Player interface {
	Position() geom.Vec2
	Bounds() geom.Rect
	Health() int
	SetHealth(hp int)
	MaxHealth() int
	IsInvincible() bool
	SetInvincible(duration float64)
	AddXP(amount int)
}
