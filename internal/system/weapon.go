// internal/system/weapon.go
package system

import (
	"log/slog"
	"math"
	"slices"

	"go-till-dawn/internal/config"
	"go-till-dawn/internal/defs"
	"go-till-dawn/internal/entity"
	"go-till-dawn/pkg/geom"
)

// WeaponModifiers are the ability bonuses that affect the weapon.
type WeaponModifiers interface {
	DamageMultiplier() float64
	ExtraProjectiles() int
	ExtraMagazine() int
}

// WeaponController fires, reloads and moves the player's bullets.
type WeaponController struct {
	def       defs.WeaponDefinition
	tuning    config.CombatTuning
	ids       *entity.IDGenerator
	modifiers WeaponModifiers
	logger    *slog.Logger

	bullets      []*entity.Bullet
	ammo         int
	reloading    bool
	reloadTimer  float64
	cooldown     float64
	infiniteAmmo bool
}

func NewWeaponController(def defs.WeaponDefinition, tuning config.CombatTuning, ids *entity.IDGenerator, modifiers WeaponModifiers, logger *slog.Logger) *WeaponController {
	if ids == nil {
		ids = entity.NewIDGenerator()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &WeaponController{
		def:       def,
		tuning:    tuning,
		ids:       ids,
		modifiers: modifiers,
		logger:    logger,
		ammo:      def.Magazine,
	}
}

func (w *WeaponController) Definition() defs.WeaponDefinition { return w.def }

// LiveBullets returns the bullets still in flight.
func (w *WeaponController) LiveBullets() []*entity.Bullet { return w.bullets }

func (w *WeaponController) Ammo() int { return w.ammo }

// Magazine is the current capacity including ability bonuses.
func (w *WeaponController) Magazine() int {
	if w.modifiers == nil {
		return w.def.Magazine
	}
	return w.def.Magazine + w.modifiers.ExtraMagazine()
}

func (w *WeaponController) IsReloading() bool { return w.reloading }

// ReloadProgress returns 0..1 while reloading, 1 otherwise.
func (w *WeaponController) ReloadProgress() float64 {
	if !w.reloading || w.def.ReloadTime <= 0 {
		return 1
	}
	return 1 - w.reloadTimer/w.def.ReloadTime
}

func (w *WeaponController) InfiniteAmmo() bool { return w.infiniteAmmo }

func (w *WeaponController) SetInfiniteAmmo(on bool) { w.infiniteAmmo = on }

// Fire shoots from origin along aim and returns the number of bullets
// spawned. Nothing is fired while reloading, on cooldown or when empty.
func (w *WeaponController) Fire(origin, aim geom.Vec2) int {
	if w.reloading || w.cooldown > 0 {
		return 0
	}
	if aim.Len() == 0 {
		return 0
	}
	if w.ammo <= 0 && !w.infiniteAmmo {
		if w.tuning.AutoReload {
			w.Reload()
		}
		return 0
	}

	count := w.def.Projectiles
	mult := 1.0
	if w.modifiers != nil {
		count += w.modifiers.ExtraProjectiles()
		mult = w.modifiers.DamageMultiplier()
	}
	count = max(1, count)
	damage := int(math.Round(float64(w.def.Damage) * mult))

	base := aim.Normalize()
	for i := 0; i < count; i++ {
		dir := base
		if count > 1 {
			dir = base.Rotate(-w.def.Spread/2 + w.def.Spread*float64(i)/float64(count-1))
		}
		w.bullets = append(w.bullets, entity.NewBullet(
			w.ids.Next(), origin, dir,
			w.tuning.BulletSpeed, damage, w.tuning.BulletRadius,
		))
	}

	w.cooldown = w.def.FireCooldown
	if !w.infiniteAmmo {
		w.ammo--
		if w.ammo <= 0 && w.tuning.AutoReload {
			w.Reload()
		}
	}
	return count
}

// Reload starts a reload unless one is running or the magazine is full.
func (w *WeaponController) Reload() bool {
	if w.reloading || w.ammo >= w.Magazine() {
		return false
	}
	w.reloading = true
	w.reloadTimer = w.def.ReloadTime
	return true
}

// Update ticks timers, moves bullets and culls the dead or far away ones.
func (w *WeaponController) Update(dt float64, playerPos geom.Vec2) {
	if w.cooldown > 0 {
		w.cooldown = max(0, w.cooldown-dt)
	}
	if w.reloading {
		w.reloadTimer -= dt
		if w.reloadTimer <= 0 {
			w.reloading = false
			w.reloadTimer = 0
			w.ammo = w.Magazine()
		}
	}

	for _, b := range w.bullets {
		b.Update(dt)
	}
	maxTravel := w.tuning.BulletMaxTravel
	w.bullets = slices.DeleteFunc(w.bullets, func(b *entity.Bullet) bool {
		return !b.IsActive() || geom.Distance(b.Position, playerPos) > maxTravel
	})
}

// Clear drops every bullet in flight.
func (w *WeaponController) Clear() {
	w.bullets = nil
}
