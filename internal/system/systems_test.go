package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-till-dawn/internal/component"
	"go-till-dawn/internal/config"
	"go-till-dawn/internal/defs"
	"go-till-dawn/internal/entity"
	"go-till-dawn/internal/event"
	"go-till-dawn/internal/utils"
	"go-till-dawn/pkg/geom"
)

func newPlayer(t *testing.T, d *event.Dispatcher) *entity.Player {
	t.Helper()
	hero, err := defs.Hero(defs.HeroShana)
	require.NoError(t, err)
	return entity.NewPlayer(hero, geom.V(50, 50), config.DefaultTuning().Player, d)
}

func TestAbilityOffer(t *testing.T) {
	s := NewAbilitySystem(utils.NewPRNGService(3), nil)
	offer := s.Offer(3)
	require.Len(t, offer, 3)
	seen := map[defs.AbilityID]bool{}
	for _, a := range offer {
		assert.False(t, seen[a.ID])
		seen[a.ID] = true
	}
	assert.Len(t, s.Offer(10), len(defs.Abilities()))
}

func TestTimedAbilityExpires(t *testing.T) {
	s := NewAbilitySystem(utils.NewPRNGService(1), nil)
	require.NoError(t, s.Apply(defs.AbilityDamager))
	require.NoError(t, s.Apply(defs.AbilitySpeedy))
	assert.Equal(t, defs.DamagerMultiplier, s.DamageMultiplier())
	assert.Equal(t, defs.SpeedyMultiplier, s.SpeedMultiplier())
	assert.Len(t, s.Active(), 2)

	s.Update(9.9)
	assert.Equal(t, defs.DamagerMultiplier, s.DamageMultiplier())
	s.Update(0.2)
	assert.Equal(t, 1.0, s.DamageMultiplier())
	assert.Equal(t, 1.0, s.SpeedMultiplier())
	assert.Empty(t, s.Active())
}

func TestPermanentAbilitiesStack(t *testing.T) {
	p := newPlayer(t, nil)
	s := NewAbilitySystem(utils.NewPRNGService(1), p)

	require.NoError(t, s.Apply(defs.AbilityProcrease))
	require.NoError(t, s.Apply(defs.AbilityProcrease))
	require.NoError(t, s.Apply(defs.AbilityAmocrease))
	require.NoError(t, s.Apply(defs.AbilityVitality))

	assert.Equal(t, 2, s.ExtraProjectiles())
	assert.Equal(t, 5, s.ExtraMagazine())
	assert.Equal(t, 5, p.MaxHealth())
	assert.Equal(t, 2, s.State(defs.AbilityProcrease).Stacks)

	s.Update(100)
	assert.Equal(t, 2, s.ExtraProjectiles())
	assert.Error(t, s.Apply("TELEPORT"))
}

func TestMatchWonAtDuration(t *testing.T) {
	d := event.NewDispatcher()
	ended := collect(d, event.MatchEnded)
	m := NewMatchSystem(10, d)
	p := newPlayer(t, d)

	m.Update(5, p)
	assert.Equal(t, component.MatchRunning, m.Phase())
	m.Update(6, p)
	assert.Equal(t, component.MatchWon, m.Phase())
	assert.Equal(t, 10.0, m.Elapsed())
	assert.Zero(t, m.Remaining())

	m.Update(1, p)
	assert.Equal(t, []any{component.MatchWon}, *ended)
}

func TestMatchLostOnDeath(t *testing.T) {
	d := event.NewDispatcher()
	m := NewMatchSystem(10, d)
	p := newPlayer(t, d)
	p.SetHealth(0)

	m.Update(1, p)
	assert.Equal(t, component.MatchLost, m.Phase())
	assert.True(t, m.IsOver())
}

func TestMatchSkip(t *testing.T) {
	m := NewMatchSystem(120, nil)
	m.Skip(60)
	assert.Equal(t, 60.0, m.Elapsed())
	m.Skip(600)
	assert.Equal(t, 120.0, m.Elapsed())
	m.Update(0, nil)
	assert.Equal(t, component.MatchWon, m.Phase())
}

func TestMovementClampsToMap(t *testing.T) {
	p := newPlayer(t, nil)
	s := NewMovementSystem(geom.Rect{W: 100, H: 100}, nil)

	s.Update(1, p, geom.V(1, 0))
	assert.Equal(t, geom.V(76, 50), p.Position())
	assert.False(t, p.FlipX)

	s.Update(1.0/60, p, geom.V(-3, 0))
	assert.InDelta(t, 72, p.Position().X, 1e-9)
	assert.True(t, p.FlipX)

	s.Update(1, p, geom.V(0, 0))
	assert.InDelta(t, 72, p.Position().X, 1e-9)
}

func TestMovementUsesSpeedMultiplier(t *testing.T) {
	p := newPlayer(t, nil)
	abilities := NewAbilitySystem(utils.NewPRNGService(1), p)
	require.NoError(t, abilities.Apply(defs.AbilitySpeedy))
	s := NewMovementSystem(geom.Rect{W: 1000, H: 1000}, abilities)

	s.Update(1.0/60, p, geom.V(0, 1))
	assert.InDelta(t, 58, p.Position().Y, 1e-9)
}

func TestPlayerSystemTallies(t *testing.T) {
	d := event.NewDispatcher()
	s := NewPlayerSystem(d)
	f := newFixture(t, fixedClock{duration: 1200}, nil)
	bat, err := f.ctrl.Spawn(defs.EnemyEyebat)
	require.NoError(t, err)

	d.Emit(event.EnemyKilled, bat)
	d.Emit(event.DropCollected, defs.DropExperience)
	d.Emit(event.BossDefeated, nil)
	d.Emit(event.PlayerLevelUp, 2)

	assert.Equal(t, 1, s.Kills())
	assert.Equal(t, 1, s.KillsOf(defs.EnemyEyebat))
	assert.Equal(t, 1, s.Collected(defs.DropExperience))
	assert.Equal(t, 1, s.LevelUps())
	assert.True(t, s.BossDefeated())
}

func TestRenderSystemDrawsWorld(t *testing.T) {
	f := newFixture(t, fixedClock{duration: 1200}, nil)
	_, err := f.ctrl.Spawn(defs.EnemyEyebat)
	require.NoError(t, err)
	w := weapon(t, defs.WeaponRevolver, nil)
	w.Fire(f.player.Position(), geom.V(1, 0))

	r := NewRenderSystem(nullAssets{}, geom.Rect{W: 3000, H: 3000})
	batch := &recordingBatch{}
	r.Draw(batch, 0.016, f.player, f.ctrl, w)

	assert.Len(t, batch.fills, 1, "ground")
	assert.Len(t, batch.draws, 3, "enemy, player, bullet")
	assert.Equal(t, f.player.Bounds(), batch.draws[1].dst)
}
