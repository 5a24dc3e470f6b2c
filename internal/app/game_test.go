package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-till-dawn/internal/config"
	"go-till-dawn/internal/defs"
	"go-till-dawn/internal/observability"
	"go-till-dawn/internal/system"
	"go-till-dawn/pkg/geom"
)

type memoryRecorder struct {
	saved []MatchSummary
	err   error
}

func (r *memoryRecorder) SaveMatch(_ context.Context, s MatchSummary) error {
	r.saved = append(r.saved, s)
	return r.err
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newGame(t *testing.T, rec Recorder, mutate func(*config.Tuning)) *Game {
	t.Helper()
	tuning := config.DefaultTuning()
	tuning.World.TreeCount = 0
	if mutate != nil {
		mutate(&tuning)
	}
	lib, err := defs.NewLibrary(defs.DefaultEnemies())
	require.NoError(t, err)
	g, err := NewGame(Options{
		Tuning:   tuning,
		Enemies:  lib,
		Hero:     defs.HeroShana,
		Weapon:   defs.WeaponRevolver,
		Seed:     1,
		Recorder: rec,
		Logger:   observability.Discard(),
		Now:      func() time.Time { return fixedNow },
	})
	require.NoError(t, err)
	return g
}

func TestNewGameRejectsUnknownSpawn(t *testing.T) {
	lib, err := defs.NewLibrary(defs.DefaultEnemies())
	require.NoError(t, err)
	_, err = NewGame(Options{
		Tuning:     config.DefaultTuning(),
		Enemies:    lib,
		SpawnTable: []defs.SpawnEntry{{Enemy: "ghost", Weight: 1}},
		Hero:       defs.HeroShana,
		Weapon:     defs.WeaponRevolver,
		Logger:     observability.Discard(),
	})

	var unknown *system.UnknownEnemyError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, defs.EnemyType("ghost"), unknown.Type)
}

func TestScore(t *testing.T) {
	assert.Equal(t, 0, Score(0, 0.9))
	assert.Equal(t, 125, Score(12, 5.7))
}

func TestNewGameRejectsUnknownHero(t *testing.T) {
	lib, err := defs.NewLibrary(defs.DefaultEnemies())
	require.NoError(t, err)
	_, err = NewGame(Options{Tuning: config.DefaultTuning(), Enemies: lib, Hero: "NOBODY", Weapon: defs.WeaponSMG})
	assert.Error(t, err)

	_, err = NewGame(Options{Tuning: config.DefaultTuning(), Hero: defs.HeroShana, Weapon: defs.WeaponSMG})
	assert.Error(t, err)
}

func TestMatchWonIsRecordedOnce(t *testing.T) {
	rec := &memoryRecorder{}
	g := newGame(t, rec, func(tu *config.Tuning) {
		tu.Match.DurationSeconds = 10
		tu.Match.BossSpawnFraction = 1
	})

	for i := 0; i < 12; i++ {
		g.Update(1, Input{})
	}
	require.Len(t, rec.saved, 1)
	s := rec.saved[0]
	assert.True(t, s.Won)
	assert.Equal(t, 10, s.SurvivedSeconds)
	assert.Equal(t, Score(s.Kills, 10), s.Score)
	assert.Equal(t, defs.HeroShana, s.Hero)
	assert.Equal(t, defs.WeaponRevolver, s.Weapon)
	assert.Equal(t, fixedNow, s.EndedAt)
	assert.Equal(t, s, g.Summary(), "summary frozen after the end")
}

func TestMatchLostIsRecorded(t *testing.T) {
	rec := &memoryRecorder{err: errors.New("disk full")}
	g := newGame(t, rec, nil)

	g.Update(0.5, Input{})
	g.Player.SetHealth(0)
	g.Update(0.5, Input{})
	g.Update(0.5, Input{})

	require.Len(t, rec.saved, 1, "save failure is logged, not retried")
	assert.False(t, rec.saved[0].Won)
	assert.Equal(t, 1.0, g.Match.Elapsed())
}

func TestFireInput(t *testing.T) {
	g := newGame(t, nil, nil)
	pos := g.Player.Position()
	g.Update(0.016, Input{Fire: true, Aim: pos.Add(geom.V(100, 0))})

	require.Len(t, g.Weapon.LiveBullets(), 1)
	assert.Greater(t, g.Weapon.LiveBullets()[0].Position.X, pos.X)
	assert.Equal(t, 5, g.Weapon.Ammo())
}

func TestMoveInput(t *testing.T) {
	g := newGame(t, nil, nil)
	start := g.Player.Position()
	g.Update(1.0/60, Input{Move: geom.V(0, -1)})
	assert.InDelta(t, start.Y-4, g.Player.Position().Y, 1e-9)
}

func TestCameraTrailsPlayer(t *testing.T) {
	g := newGame(t, nil, nil)
	start := g.Player.Position()
	require.Equal(t, start, g.Camera())

	g.Update(1.0/60, Input{Move: geom.V(0, -1)})
	cam := g.Camera()
	assert.Less(t, cam.Y, start.Y)
	assert.Greater(t, cam.Y, g.Player.Position().Y, "camera lags behind")
	assert.Equal(t, start.X, cam.X)

	for i := 0; i < 120; i++ {
		g.Update(1.0/60, Input{})
	}
	assert.InDelta(t, g.Player.Position().Y, g.Camera().Y, 1e-3)

	// a long frame never carries the camera past the player
	g.Player.SetPosition(start)
	g.Update(10, Input{})
	assert.InDelta(t, start.X, g.Camera().X, 1e-9)
	assert.InDelta(t, start.Y, g.Camera().Y, 1e-9)
}

func TestCheats(t *testing.T) {
	g := newGame(t, nil, nil)

	g.Cheats.SkipMinute()
	assert.Equal(t, 60.0, g.Match.Elapsed())

	assert.True(t, g.Cheats.SpawnBoss())
	assert.False(t, g.Cheats.SpawnBoss())
	assert.NotNil(t, g.Enemies.Boss())

	g.Player.SetHealth(1)
	g.Cheats.Heal()
	assert.Equal(t, g.Player.MaxHealth(), g.Player.Health())

	assert.True(t, g.Cheats.ToggleInfiniteAmmo())
	assert.True(t, g.Weapon.InfiniteAmmo())
	assert.False(t, g.Cheats.ToggleInfiniteAmmo())
}

func TestLevelUpChoice(t *testing.T) {
	g := newGame(t, nil, nil)
	assert.Nil(t, g.OfferAbilities(3))
	assert.Error(t, g.ChooseAbility(defs.AbilityVitality))

	g.Cheats.GrantLevel()
	assert.Equal(t, 2, g.Player.Progress.Level)
	offer := g.OfferAbilities(3)
	assert.Len(t, offer, 3)

	before := g.Player.MaxHealth()
	require.NoError(t, g.ChooseAbility(defs.AbilityVitality))
	assert.Equal(t, before+1, g.Player.MaxHealth())
	assert.Zero(t, g.Player.PendingLevelUps())
}

func TestCloseClearsEntities(t *testing.T) {
	g := newGame(t, nil, nil)
	g.Cheats.SpawnBoss()
	g.Update(0.016, Input{Fire: true, Aim: geom.V(0, 0)})
	g.Close()
	assert.Empty(t, g.Enemies.Enemies())
	assert.Empty(t, g.Weapon.LiveBullets())
}
