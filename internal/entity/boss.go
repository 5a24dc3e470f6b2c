// internal/entity/boss.go
package entity

import (
	"go-till-dawn/internal/assets"
	"go-till-dawn/internal/component"
	"go-till-dawn/internal/config"
	"go-till-dawn/internal/event"
	"go-till-dawn/internal/interfaces"
	"go-till-dawn/pkg/geom"
)

const bossFrameDuration = 0.1

var bossStates = []component.BossState{
	component.BossWalking,
	component.BossCharging,
	component.BossAttacking,
}

// ElderBoss extends an Enemy with a dash cycle WALKING → CHARGING →
// ATTACKING and an electric barrier around the arena.
type ElderBoss struct {
	owner  *Enemy
	tuning config.BossTuning
	env    *EnemyEnv

	State         component.BossState
	stateTimer    float64
	dashTimer     float64
	dashDirection geom.Vec2
	dashStart     geom.Vec2
	Barrier       *ElectricBarrier
	animations    map[component.BossState]*assets.Animation
	disposed      bool
}

func newElderBoss(owner *Enemy, env *EnemyEnv) *ElderBoss {
	b := &ElderBoss{
		owner:      owner,
		tuning:     env.Boss,
		env:        env,
		State:      component.BossWalking,
		Barrier:    NewElectricBarrier(env.World, env.Barrier),
		animations: make(map[component.BossState]*assets.Animation, len(bossStates)),
	}
	if env.Assets == nil {
		return b
	}
	for _, s := range bossStates {
		key := owner.Def.Texture + "_" + s.AnimationKey()
		anim, err := env.Assets.Animation(key, bossFrameDuration)
		if err != nil {
			env.logger().Warn("boss animation unavailable", "key", key, "error", err)
			continue
		}
		b.animations[s] = anim
	}
	return b
}

func (b *ElderBoss) StateTimer() float64 { return b.stateTimer }

func (b *ElderBoss) DashTimer() float64 { return b.dashTimer }

func (b *ElderBoss) DashDirection() geom.Vec2 { return b.dashDirection }

// Animation returns the animation of the current state, nil when missing or
// retired.
func (b *ElderBoss) Animation() *assets.Animation {
	if b.disposed {
		return nil
	}
	return b.animations[b.State]
}

func (b *ElderBoss) update(dt float64, player interfaces.Player) {
	b.Barrier.Update(dt)
	if player != nil && b.Barrier.HitPlayer(player) {
		b.env.Events.Emit(event.PlayerDamaged, player.Health())
	}

	e := b.owner
	switch b.State {
	case component.BossWalking:
		b.dashTimer += dt
		if player != nil {
			e.moveToward(player.Position(), e.Def.Speed*b.tuning.WalkSpeedFactor, dt)
		}
		if b.dashTimer >= b.tuning.DashCooldown {
			if player != nil {
				b.dashDirection = player.Position().Sub(e.Position).Normalize()
			}
			b.enter(component.BossCharging)
		}
	case component.BossCharging:
		b.stateTimer += dt
		if b.stateTimer >= b.tuning.ChargeDuration {
			b.dashStart = e.Position
			b.enter(component.BossAttacking)
		}
	case component.BossAttacking:
		b.stateTimer += dt
		progress := min(1, b.stateTimer/b.tuning.AttackDuration)
		e.Position = b.dashStart.Add(b.dashDirection.Scale(b.tuning.DashDistance * progress))
		if b.stateTimer >= b.tuning.AttackDuration {
			b.dashTimer = 0
			b.enter(component.BossWalking)
		}
	}
}

func (b *ElderBoss) enter(s component.BossState) {
	b.State = s
	b.stateTimer = 0
}

func (b *ElderBoss) onDeath() {
	b.Barrier.Deactivate()
	b.dispose()
}

func (b *ElderBoss) dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	b.Barrier.Dispose()
	for _, anim := range b.animations {
		anim.Dispose()
	}
}
