// internal/system/collision.go
package system

import (
	"go-till-dawn/internal/entity"
	"go-till-dawn/internal/event"
	"go-till-dawn/pkg/geom"
)

// BulletSource exposes the live projectiles to the enemy controller.
type BulletSource interface {
	LiveBullets() []*entity.Bullet
}

// FirstHit returns the first active enemy, in roster order, whose center is
// strictly closer than radius to pos.
func FirstHit(pos geom.Vec2, enemies []*entity.Enemy, radius float64) *entity.Enemy {
	for _, e := range enemies {
		if !e.IsActive() {
			continue
		}
		if geom.Distance(pos, e.Position) < radius {
			return e
		}
	}
	return nil
}

// collideBullets lets every bullet hit at most one enemy.
func (c *EnemyController) collideBullets() {
	if c.bullets == nil {
		return
	}
	radius := c.tuning.Combat.BulletHitRadius
	for _, b := range c.bullets.LiveBullets() {
		if !b.IsActive() {
			continue
		}
		target := FirstHit(b.Position, c.enemies, radius)
		if target == nil {
			continue
		}
		b.Deactivate()
		if target.Hit(b.Damage) {
			c.onKill(target)
		}
	}
}

func (c *EnemyController) onKill(e *entity.Enemy) {
	c.kills++
	c.env.Events.Emit(event.EnemyKilled, e)
	if e.Boss != nil {
		if c.clock != nil {
			c.logger.Info("boss defeated", "id", e.ID, "elapsed", c.clock.Elapsed())
		} else {
			c.logger.Info("boss defeated", "id", e.ID)
		}
		c.env.Events.Emit(event.BossDefeated, e)
	}
}

// collectDrops hands dead enemies' drops to the player on overlap.
func (c *EnemyController) collectDrops() {
	if c.player == nil {
		return
	}
	for _, e := range c.enemies {
		if e.IsActive() || !e.DropActive() {
			continue
		}
		kind := e.Drop.Type
		if e.CollectDrop(c.player) {
			c.env.Events.Emit(event.DropCollected, kind)
		}
	}
}
