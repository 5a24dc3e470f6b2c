// internal/system/render.go
package system

import (
	"math"

	"go-till-dawn/internal/assets"
	"go-till-dawn/internal/config"
	"go-till-dawn/internal/entity"
	"go-till-dawn/internal/interfaces"
	"go-till-dawn/pkg/geom"
)

const invincibleAlpha = 0.5

// RenderSystem draws the ground, enemies, the player and bullets.
type RenderSystem struct {
	assets assets.Provider
	world  geom.Rect
}

func NewRenderSystem(provider assets.Provider, world geom.Rect) *RenderSystem {
	return &RenderSystem{assets: provider, world: world}
}

func (s *RenderSystem) texture(key string) assets.Texture {
	if s.assets == nil {
		return nil
	}
	return s.assets.Texture(key)
}

// Draw renders one frame. Any of player, enemies and bullets may be nil.
func (s *RenderSystem) Draw(batch interfaces.Batch, dt float64, player *entity.Player, enemies *EnemyController, bullets BulletSource) {
	if batch == nil {
		return
	}
	batch.FillRect(s.world, config.GroundGridColor, 1)

	if enemies != nil {
		enemies.Render(batch, dt)
	}

	if player != nil {
		alpha := 1.0
		if player.IsInvincible() {
			alpha = invincibleAlpha
		}
		batch.Draw(s.texture(player.Hero.Texture), player.Bounds(), interfaces.DrawOptions{
			Alpha: alpha,
			FlipX: player.FlipX,
		})
	}

	if bullets != nil {
		tex := s.texture("bullet")
		for _, b := range bullets.LiveBullets() {
			if !b.IsActive() {
				continue
			}
			batch.Draw(tex, b.Bounds(), interfaces.DrawOptions{
				Alpha:    1,
				Rotation: b.Direction.Angle() * 180 / math.Pi,
			})
		}
	}
}
