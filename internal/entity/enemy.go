// internal/entity/enemy.go
package entity

import (
	"go-till-dawn/internal/assets"
	"go-till-dawn/internal/component"
	"go-till-dawn/internal/config"
	"go-till-dawn/internal/defs"
	"go-till-dawn/internal/interfaces"
	"go-till-dawn/internal/utils"
	"go-till-dawn/pkg/geom"
)

// Enemy is a single hostile entity. Boss behavior is attached through the
// Boss payload, selected by the definition's Kind.
type Enemy struct {
	ID       ID
	Def      defs.EnemyDefinition
	Position geom.Vec2 // sprite center
	FlipX    bool
	Drop     component.Drop
	Flash    component.DamageFlash
	Boss     *ElderBoss

	health         int
	active         bool
	hasDroppedItem bool
	age            float64
	direction      geom.Vec2
	texture        assets.Texture
	dropTexture    assets.Texture
	env            *EnemyEnv
}

// NewEnemy creates an active enemy of the given type centered on pos.
func NewEnemy(id ID, def defs.EnemyDefinition, pos geom.Vec2, env *EnemyEnv) *Enemy {
	e := &Enemy{
		ID:       id,
		Def:      def,
		Position: pos,
		health:   def.Health,
		active:   true,
		env:      env,
	}
	e.texture = env.texture(def.Texture)
	if def.IsBoss() {
		e.Boss = newElderBoss(e, env)
	}
	return e
}

func (e *Enemy) Type() defs.EnemyType { return e.Def.ID }

func (e *Enemy) Health() int { return e.health }

func (e *Enemy) IsActive() bool { return e.active }

func (e *Enemy) HasDroppedItem() bool { return e.hasDroppedItem }

func (e *Enemy) DropActive() bool { return e.Drop.Active }

func (e *Enemy) Age() float64 { return e.age }

func (e *Enemy) Direction() geom.Vec2 { return e.direction }

func (e *Enemy) Texture() assets.Texture { return e.texture }

func (e *Enemy) DropTexture() assets.Texture { return e.dropTexture }

// Bounds returns the sprite rectangle in world space.
func (e *Enemy) Bounds() geom.Rect {
	return geom.RectAround(e.Position, e.Def.Width, e.Def.Height)
}

// DropBounds returns the pickup rectangle of the drop.
func (e *Enemy) DropBounds() geom.Rect {
	size := e.env.Drop.Size
	return geom.RectAround(e.Drop.Position, size, size)
}

// Update advances the enemy by dt seconds. A nil player skips movement.
// Dead enemies only animate their drop.
func (e *Enemy) Update(dt float64, player interfaces.Player) {
	if e.active {
		e.age += dt
		e.Flash.Tick(dt)
		switch {
		case e.Boss != nil:
			e.Boss.update(dt, player)
		case e.Def.Movable && player != nil:
			e.moveToward(player.Position(), e.Def.Speed, dt)
		}
		return
	}
	if e.Drop.Active {
		e.age += dt
		e.Drop.Alpha = utils.Pulse(e.age, e.env.Drop.PulseRate, 0.2, 1.0)
		e.Drop.Rotation += e.env.Drop.RotationSpeed * dt
	}
}

func (e *Enemy) moveToward(target geom.Vec2, speed, dt float64) {
	dir := target.Sub(e.Position).Normalize()
	e.direction = dir
	e.Position = e.Position.Add(dir.Scale(speed * dt * config.FrameRateScale))
	if dir.X < 0 {
		e.FlipX = true
	} else if dir.X > 0 {
		e.FlipX = false
	}
}

// Hit applies damage and reports the kill. It returns true exactly once, on
// the frame health first drops to zero or below; later hits are ignored.
func (e *Enemy) Hit(damage int) bool {
	if !e.active {
		return false
	}
	if damage < 0 {
		damage = 0
	}
	e.health -= damage
	e.Flash.Start()
	if e.health > 0 {
		return false
	}
	e.active = false
	e.DropItem()
	if e.Boss != nil {
		e.Boss.onDeath()
	}
	return true
}

// DropItem rolls the drop once per enemy.
func (e *Enemy) DropItem() {
	if e.hasDroppedItem {
		return
	}
	e.hasDroppedItem = true

	rule := e.env.Drops.RuleFor(e.Def.ID)
	if e.env.Rand == nil || e.env.Rand.Float64() >= rule.Chance {
		return
	}
	e.Drop = component.Drop{
		Type:     rule.Type,
		Position: e.Position,
		Active:   true,
		Alpha:    1,
	}
	e.dropTexture = e.env.texture(rule.Type.Texture())
}

// CollectDrop applies the drop to the player when their bounds overlap.
func (e *Enemy) CollectDrop(player interfaces.Player) bool {
	if !e.Drop.Active || player == nil {
		return false
	}
	if !e.DropBounds().Overlaps(player.Bounds()) {
		return false
	}
	switch e.Drop.Type {
	case defs.DropHealth:
		hp := min(player.Health()+e.env.Drop.HealthAmount, player.MaxHealth())
		player.SetHealth(hp)
	case defs.DropExperience:
		player.AddXP(e.env.Drop.ExperienceAmount)
	}
	e.Drop.Active = false
	return true
}

// Dispose releases texture handles and boss resources.
func (e *Enemy) Dispose() {
	e.texture = nil
	e.dropTexture = nil
	e.Drop.Active = false
	if e.Boss != nil {
		e.Boss.dispose()
	}
}
