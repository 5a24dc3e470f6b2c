package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-till-dawn/internal/config"
	"go-till-dawn/internal/defs"
	"go-till-dawn/internal/entity"
	"go-till-dawn/internal/event"
	"go-till-dawn/internal/utils"
	"go-till-dawn/pkg/geom"
)

func TestSpawnRate(t *testing.T) {
	s := config.DefaultTuning().Spawn
	assert.InDelta(t, 3.0, SpawnRate(0, s), 1e-9)
	assert.InDelta(t, 2.0, SpawnRate(5*60, s), 1e-9)
	assert.InDelta(t, 0.5, SpawnRate(12.5*60, s), 1e-9)
	assert.InDelta(t, 0.5, SpawnRate(20*60, s), 1e-9)
	assert.InDelta(t, 1.0, SpawnRate(600, s), 1e-9)
	assert.InDelta(t, 0.5, SpawnRate(1800, s), 1e-9)

	prev := SpawnRate(0, s)
	for sec := 1.0; sec <= 1800; sec++ {
		rate := SpawnRate(sec, s)
		require.LessOrEqual(t, rate, prev, "rate grew at %vs", sec)
		require.GreaterOrEqual(t, rate, s.Minimum)
		prev = rate
	}
}

func TestPlaceTreesRespectsExclusion(t *testing.T) {
	rng := utils.NewPRNGService(42)
	spawn := geom.V(1500, 1500)
	trees := PlaceTrees(rng, TreePlacement{
		Bounds:      geom.Rect{W: 3000, H: 3000},
		Spawn:       spawn,
		Count:       40,
		Exclusion:   300,
		MaxAttempts: 64,
	}, nil)

	require.Len(t, trees, 40)
	for _, p := range trees {
		assert.GreaterOrEqual(t, geom.Distance(p, spawn), 300.0)
		assert.True(t, geom.Rect{W: 3000, H: 3000}.Contains(p))
	}
}

func TestPlaceTreesTerminatesOnTinyMap(t *testing.T) {
	rng := utils.NewPRNGService(7)
	trees := PlaceTrees(rng, TreePlacement{
		Bounds:      geom.Rect{W: 100, H: 100},
		Spawn:       geom.V(10, 20),
		Count:       5,
		Exclusion:   300,
		MaxAttempts: 8,
	}, nil)

	require.Len(t, trees, 5)
	for _, p := range trees {
		assert.Equal(t, geom.V(100, 100), p)
	}
}

func TestFirstHitRadius(t *testing.T) {
	f := newFixture(t, fixedClock{duration: 1200}, nil)
	e, err := f.ctrl.Spawn(defs.EnemyTree)
	require.NoError(t, err)

	assert.Same(t, e, FirstHit(e.Position.Add(geom.V(29.9, 0)), f.ctrl.Enemies(), 30))
	assert.Nil(t, FirstHit(e.Position.Add(geom.V(30.1, 0)), f.ctrl.Enemies(), 30))
	assert.Nil(t, FirstHit(e.Position.Add(geom.V(30, 0)), f.ctrl.Enemies(), 30))
}

func TestControllerPlacesTreesOnce(t *testing.T) {
	f := newFixture(t, fixedClock{duration: 1200}, func(tu *config.Tuning) {
		tu.World.TreeCount = 10
	})
	f.ctrl.Update(0.016)
	assert.True(t, f.ctrl.TreesPlaced())
	assert.Len(t, f.ctrl.Enemies(), 10)

	f.ctrl.Update(0.016)
	assert.Len(t, f.ctrl.Enemies(), 10)
}

func TestControllerSkipsWithoutPlayer(t *testing.T) {
	f := newFixture(t, fixedClock{duration: 1200}, func(tu *config.Tuning) {
		tu.World.TreeCount = 10
	})
	f.ctrl.SetPlayer(nil)
	f.ctrl.Update(5)
	assert.False(t, f.ctrl.TreesPlaced())
	assert.Empty(t, f.ctrl.Enemies())
	assert.Zero(t, f.ctrl.SpawnTimer())
}

func TestControllerSpawnsOnTimer(t *testing.T) {
	f := newFixture(t, fixedClock{duration: 1200}, nil)

	f.ctrl.Update(1)
	f.ctrl.Update(1)
	assert.Empty(t, f.ctrl.Enemies())

	f.ctrl.Update(1)
	require.Len(t, f.ctrl.Enemies(), 1)
	assert.Equal(t, defs.EnemyTentacle, f.ctrl.Enemies()[0].Type())
	assert.Zero(t, f.ctrl.SpawnTimer())
}

func TestControllerSpawnsBossOnce(t *testing.T) {
	f := newFixture(t, fixedClock{elapsed: 600, duration: 1200}, nil)

	f.ctrl.Update(0.016)
	boss := f.ctrl.Boss()
	require.NotNil(t, boss)
	assert.True(t, boss.Def.IsBoss())
	assert.True(t, f.ctrl.BossSpawned())

	f.ctrl.Update(0.016)
	bosses := 0
	for _, e := range f.ctrl.Enemies() {
		if e.Boss != nil {
			bosses++
		}
	}
	assert.Equal(t, 1, bosses)
	assert.Nil(t, f.ctrl.SpawnBoss())
}

func TestBulletKillsAndDropIsCollected(t *testing.T) {
	f := newFixture(t, fixedClock{duration: 1200}, nil)
	killed := collect(f.events, event.EnemyKilled)
	dropped := collect(f.events, event.DropCollected)

	tree, err := f.ctrl.Spawn(defs.EnemyTree)
	require.NoError(t, err)

	bullet := entity.NewBullet(1, tree.Position.Add(geom.V(29.9, 0)), geom.V(0, 1), 0, 1000, 6)
	f.ctrl.SetBulletSource(bulletList{bullet})
	f.ctrl.Update(0.016)

	assert.False(t, bullet.IsActive())
	assert.False(t, tree.IsActive())
	assert.Equal(t, 1, f.ctrl.Kills())
	require.Len(t, *killed, 1)
	assert.Same(t, tree, (*killed)[0])
	assert.True(t, tree.DropActive())
	require.Len(t, f.ctrl.Enemies(), 1, "dead enemy kept while its drop is up")

	f.player.SetPosition(tree.Position)
	f.ctrl.Update(0.016)
	assert.Equal(t, []any{defs.DropHealth}, *dropped)
	assert.False(t, tree.DropActive())

	f.ctrl.Update(0.016)
	assert.Empty(t, f.ctrl.Enemies())
}

func TestBulletMissAndFirstMatch(t *testing.T) {
	f := newFixture(t, fixedClock{duration: 1200}, nil)
	first, err := f.ctrl.Spawn(defs.EnemyTree)
	require.NoError(t, err)
	second, err := f.ctrl.Spawn(defs.EnemyTree)
	require.NoError(t, err)
	require.Equal(t, first.Position, second.Position)

	miss := entity.NewBullet(1, first.Position.Add(geom.V(30.1, 0)), geom.V(0, 1), 0, 10, 6)
	hit := entity.NewBullet(2, first.Position, geom.V(0, 1), 0, 10, 6)
	f.ctrl.SetBulletSource(bulletList{miss, hit})
	f.ctrl.Update(0.016)

	assert.True(t, miss.IsActive())
	assert.False(t, hit.IsActive())
	assert.Equal(t, 990, first.Health())
	assert.Equal(t, 1000, second.Health())
}

func TestBossKillEmitsBossDefeated(t *testing.T) {
	f := newFixture(t, fixedClock{duration: 1200}, nil)
	defeated := collect(f.events, event.BossDefeated)
	boss := f.ctrl.SpawnBoss()
	require.NotNil(t, boss)

	f.ctrl.SetBulletSource(bulletList{entity.NewBullet(1, boss.Position, geom.V(1, 0), 0, 10_000, 6)})
	f.ctrl.Update(0)

	assert.Len(t, *defeated, 1)
	assert.Nil(t, f.ctrl.Boss())
	assert.False(t, boss.Boss.Barrier.IsActive())
}

func TestBossKillWithoutClock(t *testing.T) {
	f := newFixture(t, nil, nil)
	defeated := collect(f.events, event.BossDefeated)
	boss := f.ctrl.SpawnBoss()
	require.NotNil(t, boss)

	f.ctrl.SetBulletSource(bulletList{entity.NewBullet(1, boss.Position, geom.V(1, 0), 0, 10_000, 6)})
	assert.NotPanics(t, func() { f.ctrl.Update(0) })

	assert.Len(t, *defeated, 1)
	assert.Equal(t, 1, f.ctrl.Kills())
	assert.Nil(t, f.ctrl.Boss())
}

func TestRenderAdvancesClockOncePerType(t *testing.T) {
	f := newFixture(t, fixedClock{duration: 1200}, nil)
	for i := 0; i < 2; i++ {
		_, err := f.ctrl.Spawn(defs.EnemyTree)
		require.NoError(t, err)
	}
	_, err := f.ctrl.Spawn(defs.EnemyEyebat)
	require.NoError(t, err)
	f.ctrl.SpawnBoss()

	batch := &recordingBatch{}
	f.ctrl.Render(batch, 0.5)

	assert.InDelta(t, 0.5, f.ctrl.ClockFor(defs.EnemyTree), 1e-9)
	assert.InDelta(t, 0.5, f.ctrl.ClockFor(defs.EnemyEyebat), 1e-9)
	assert.Len(t, batch.draws, 4)
	assert.Len(t, batch.fills, 4, "barrier strips")
}

func TestRenderDrawsDropForDeadEnemy(t *testing.T) {
	f := newFixture(t, fixedClock{duration: 1200}, nil)
	bat, err := f.ctrl.Spawn(defs.EnemyEyebat)
	require.NoError(t, err)
	require.True(t, bat.Hit(1000))

	batch := &recordingBatch{}
	f.ctrl.Render(batch, 0.016)
	require.Len(t, batch.draws, 1)
	assert.Equal(t, bat.DropBounds(), batch.draws[0].dst)
}

func TestSpawnUnknownType(t *testing.T) {
	f := newFixture(t, fixedClock{duration: 1200}, nil)
	_, err := f.ctrl.Spawn("GHOST")
	var unknown *UnknownEnemyError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, defs.EnemyType("GHOST"), unknown.Type)
}

func TestClearDisposesRoster(t *testing.T) {
	f := newFixture(t, fixedClock{duration: 1200}, nil)
	e, err := f.ctrl.Spawn(defs.EnemyEyebat)
	require.NoError(t, err)
	f.ctrl.Clear()
	assert.Empty(t, f.ctrl.Enemies())
	assert.Nil(t, e.Texture())
}
