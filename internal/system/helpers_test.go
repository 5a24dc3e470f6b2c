package system

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"go-till-dawn/internal/assets"
	"go-till-dawn/internal/config"
	"go-till-dawn/internal/defs"
	"go-till-dawn/internal/entity"
	"go-till-dawn/internal/event"
	"go-till-dawn/internal/interfaces"
	"go-till-dawn/internal/observability"
	"go-till-dawn/pkg/geom"
)

// lowRand always picks the low end: Range returns lo, weighted picks the
// first entry, Float64 returns value.
type lowRand struct{ value float64 }

func (r lowRand) Float64() float64             { return r.value }
func (r lowRand) Range(lo, hi float64) float64 { return lo }
func (r lowRand) ChooseWeighted([]int) int     { return 0 }
func (r lowRand) Perm(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

type fixedClock struct{ elapsed, duration float64 }

func (c fixedClock) Elapsed() float64  { return c.elapsed }
func (c fixedClock) Duration() float64 { return c.duration }

type bulletList []*entity.Bullet

func (b bulletList) LiveBullets() []*entity.Bullet { return b }

type tex struct{}

func (tex) Bounds() image.Rectangle { return image.Rect(0, 0, 32, 32) }

type nullAssets struct{}

func (nullAssets) Texture(string) assets.Texture { return tex{} }
func (nullAssets) Animation(string, float64) (*assets.Animation, error) {
	return nil, assets.ErrNotFound
}

type drawCall struct {
	dst  geom.Rect
	opts interfaces.DrawOptions
}

type recordingBatch struct {
	draws []drawCall
	fills []geom.Rect
}

func (b *recordingBatch) Draw(_ assets.Texture, dst geom.Rect, opts interfaces.DrawOptions) {
	b.draws = append(b.draws, drawCall{dst: dst, opts: opts})
}

func (b *recordingBatch) FillRect(dst geom.Rect, _ color.Color, _ float64) {
	b.fills = append(b.fills, dst)
}

type fixture struct {
	ctrl   *EnemyController
	player *entity.Player
	events *event.Dispatcher
	tuning config.Tuning
}

func newFixture(t *testing.T, clock MatchClock, mutate func(*config.Tuning)) *fixture {
	t.Helper()
	tuning := config.DefaultTuning()
	tuning.World.TreeCount = 0
	if mutate != nil {
		mutate(&tuning)
	}
	lib, err := defs.NewLibrary(defs.DefaultEnemies())
	require.NoError(t, err)

	events := event.NewDispatcher()
	world := geom.Rect{W: tuning.World.Width, H: tuning.World.Height}
	rng := lowRand{}
	env := &entity.EnemyEnv{
		World:   world,
		Drops:   defs.DefaultDropTable(),
		Drop:    tuning.Drops,
		Boss:    tuning.Boss,
		Barrier: tuning.Barrier,
		Assets:  nullAssets{},
		Rand:    rng,
		Events:  events,
		Logger:  observability.Discard(),
	}
	ctrl := NewEnemyController(EnemyControllerConfig{
		Env:        env,
		Library:    lib,
		SpawnTable: defs.DefaultSpawnTable(),
		Tuning:     tuning,
		Rand:       rng,
		Clock:      clock,
		Logger:     observability.Discard(),
	})
	hero, err := defs.Hero(defs.HeroShana)
	require.NoError(t, err)
	player := entity.NewPlayer(hero, world.Center(), tuning.Player, events)
	ctrl.SetPlayer(player)
	return &fixture{ctrl: ctrl, player: player, events: events, tuning: tuning}
}

func collect(d *event.Dispatcher, t event.EventType) *[]any {
	var got []any
	d.Subscribe(t, event.ListenerFunc(func(e event.Event) { got = append(got, e.Data) }))
	return &got
}
