// internal/app/game.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"go-till-dawn/internal/assets"
	"go-till-dawn/internal/config"
	"go-till-dawn/internal/defs"
	"go-till-dawn/internal/entity"
	"go-till-dawn/internal/event"
	"go-till-dawn/internal/interfaces"
	"go-till-dawn/internal/system"
	"go-till-dawn/internal/utils"
	"go-till-dawn/pkg/geom"
)

const saveTimeout = 2 * time.Second

// Input is one frame of player input. Aim is in world coordinates.
type Input struct {
	Move   geom.Vec2
	Aim    geom.Vec2
	Fire   bool
	Reload bool
}

// Options configure a new match.
type Options struct {
	Tuning     config.Tuning
	Enemies    *defs.Library
	SpawnTable []defs.SpawnEntry
	DropTable  *defs.DropTable
	Hero       defs.HeroID
	Weapon     defs.WeaponID
	Seed       int64
	Assets     assets.Provider
	Recorder   Recorder
	Logger     *slog.Logger
	Now        func() time.Time
}

// Game holds one match: the player, every system and the services they
// share. It is driven by Update once per frame.
type Game struct {
	Player       *entity.Player
	Match        *system.MatchSystem
	Enemies      *system.EnemyController
	Weapon       *system.WeaponController
	Abilities    *system.AbilitySystem
	PlayerSystem *system.PlayerSystem
	Movement     *system.MovementSystem
	Render       *system.RenderSystem
	Cheats       *CheatService

	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	tuning   config.Tuning
	world    geom.Rect
	camera   geom.Vec2
	hero     defs.HeroDefinition
	weapon   defs.WeaponDefinition
	recorder Recorder
	logger   *slog.Logger
	now      func() time.Time
	summary  *MatchSummary
}

// NewGame wires a match together. It fails on an unknown hero or weapon,
// a missing enemy library or a spawn table naming an unknown enemy.
func NewGame(opts Options) (*Game, error) {
	if opts.Enemies == nil {
		return nil, fmt.Errorf("enemy library is required")
	}
	hero, err := defs.Hero(opts.Hero)
	if err != nil {
		return nil, fmt.Errorf("failed to pick hero: %w", err)
	}
	weapon, err := defs.Weapon(opts.Weapon)
	if err != nil {
		return nil, fmt.Errorf("failed to pick weapon: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	spawnTable := opts.SpawnTable
	if spawnTable == nil {
		spawnTable = defs.DefaultSpawnTable()
	}
	if err := checkSpawnTable(opts.Enemies, spawnTable); err != nil {
		return nil, fmt.Errorf("invalid spawn table: %w", err)
	}
	drops := defs.DefaultDropTable()
	if opts.DropTable != nil {
		drops = *opts.DropTable
	}

	t := opts.Tuning
	world := geom.Rect{W: t.World.Width, H: t.World.Height}
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(opts.Seed)
	ids := entity.NewIDGenerator()

	g := &Game{
		EventDispatcher: dispatcher,
		Rng:             rng,
		tuning:          t,
		world:           world,
		hero:            hero,
		weapon:          weapon,
		recorder:        opts.Recorder,
		logger:          logger,
		now:             now,
	}

	g.Player = entity.NewPlayer(hero, world.Center(), t.Player, dispatcher)
	g.camera = g.Player.Position()
	g.Match = system.NewMatchSystem(t.Match.DurationSeconds, dispatcher)
	g.Abilities = system.NewAbilitySystem(rng, g.Player)
	g.Weapon = system.NewWeaponController(weapon, t.Combat, ids, g.Abilities, logger.With("system", "weapon"))
	g.Movement = system.NewMovementSystem(world, g.Abilities)
	g.PlayerSystem = system.NewPlayerSystem(dispatcher)
	g.Render = system.NewRenderSystem(opts.Assets, world)

	env := &entity.EnemyEnv{
		World:   world,
		Drops:   drops,
		Drop:    t.Drops,
		Boss:    t.Boss,
		Barrier: t.Barrier,
		Assets:  opts.Assets,
		Rand:    rng,
		Events:  dispatcher,
		Logger:  logger.With("system", "enemies"),
	}
	g.Enemies = system.NewEnemyController(system.EnemyControllerConfig{
		Env:        env,
		Library:    opts.Enemies,
		SpawnTable: spawnTable,
		Tuning:     t,
		Rand:       rng,
		IDs:        ids,
		Clock:      g.Match,
		Logger:     env.Logger,
	})
	g.Enemies.SetPlayer(g.Player)
	g.Enemies.SetBulletSource(g.Weapon)
	g.Cheats = NewCheatService(g, logger.With("system", "cheats"))

	dispatcher.Subscribe(event.MatchEnded, g)

	logger.Info("match created",
		"hero", hero.ID, "weapon", weapon.ID, "seed", rng.Seed(),
		"duration", t.Match.DurationSeconds)
	return g, nil
}

func checkSpawnTable(lib *defs.Library, table []defs.SpawnEntry) error {
	known := lib.Types()
	for _, e := range table {
		if !slices.Contains(known, e.Enemy) {
			return &system.UnknownEnemyError{Type: e.Enemy}
		}
	}
	return nil
}

// Update runs one simulation tick.
func (g *Game) Update(dt float64, in Input) {
	if g.Match.IsOver() {
		return
	}
	g.Movement.Update(dt, g.Player, in.Move)
	g.Player.Update(dt)
	g.Abilities.Update(dt)

	origin := g.Player.Position()
	if in.Reload {
		g.Weapon.Reload()
	}
	if in.Fire {
		g.Weapon.Fire(origin, in.Aim.Sub(origin))
	}
	g.Weapon.Update(dt, origin)
	g.Enemies.Update(dt)
	g.Match.Update(dt, g.Player)
	g.followCamera(dt)
}

// followCamera pulls the camera toward the player, never past it.
func (g *Game) followCamera(dt float64) {
	k := min(1, config.CameraLerp*dt)
	p := g.Player.Position()
	g.camera = geom.V(utils.Lerp(g.camera.X, p.X, k), utils.Lerp(g.camera.Y, p.Y, k))
}

// Draw renders the world through batch.
func (g *Game) Draw(batch interfaces.Batch, dt float64) {
	g.Render.Draw(batch, dt, g.Player, g.Enemies, g.Weapon)
}

// Camera returns the world point the view is centered on. It trails the
// player smoothly.
func (g *Game) Camera() geom.Vec2 { return g.camera }

func (g *Game) World() geom.Rect { return g.world }

func (g *Game) Tuning() config.Tuning { return g.tuning }

// OfferAbilities draws the choices for the next pending level-up, nil when
// none is waiting.
func (g *Game) OfferAbilities(n int) []defs.Ability {
	if g.Player.PendingLevelUps() == 0 {
		return nil
	}
	return g.Abilities.Offer(n)
}

// ChooseAbility consumes one pending level-up and applies the ability.
func (g *Game) ChooseAbility(id defs.AbilityID) error {
	if g.Player.PendingLevelUps() == 0 {
		return fmt.Errorf("no level-up pending")
	}
	if err := g.Abilities.Apply(id); err != nil {
		return err
	}
	g.Player.ConsumeLevelUp()
	return nil
}

// OnEvent reacts to the end of the match.
func (g *Game) OnEvent(e event.Event) {
	if e.Type == event.MatchEnded {
		g.finish()
	}
}

func (g *Game) finish() {
	if g.summary != nil {
		return
	}
	s := g.Summary()
	g.summary = &s
	g.logger.Info("match ended",
		"id", s.ID, "won", s.Won, "kills", s.Kills, "survived", s.SurvivedSeconds, "score", s.Score)

	if g.recorder == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := g.recorder.SaveMatch(ctx, s); err != nil {
		g.logger.Error("failed to save match", "id", s.ID, "error", err)
	}
}

// Summary returns the match result. Once the match has ended the same
// summary, with the same ID, is returned every time.
func (g *Game) Summary() MatchSummary {
	if g.summary != nil {
		return *g.summary
	}
	return newSummary(g)
}

// Close releases every entity of the match.
func (g *Game) Close() {
	g.Enemies.Clear()
	g.Weapon.Clear()
}
