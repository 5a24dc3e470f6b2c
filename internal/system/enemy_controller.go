// internal/system/enemy_controller.go
package system

import (
	"log/slog"
	"slices"

	"go-till-dawn/internal/assets"
	"go-till-dawn/internal/config"
	"go-till-dawn/internal/defs"
	"go-till-dawn/internal/entity"
	"go-till-dawn/internal/interfaces"
	"go-till-dawn/pkg/geom"
)

const enemyFrameDuration = 0.12

// MatchClock is the time source for the spawn curve and the boss trigger.
type MatchClock interface {
	Elapsed() float64
	Duration() float64
}

// EnemyControllerConfig lists the controller's collaborators.
type EnemyControllerConfig struct {
	Env        *entity.EnemyEnv
	Library    *defs.Library
	SpawnTable []defs.SpawnEntry
	Tuning     config.Tuning
	Rand       Random
	IDs        *entity.IDGenerator
	Clock      MatchClock
	Logger     *slog.Logger
}

// EnemyController owns the enemy roster: it spawns, updates, reaps, resolves
// bullet hits and drop pickups, and draws enemies.
type EnemyController struct {
	env        *entity.EnemyEnv
	library    *defs.Library
	spawnTable []defs.SpawnEntry
	tuning     config.Tuning
	rng        Random
	ids        *entity.IDGenerator
	clock      MatchClock
	logger     *slog.Logger

	player  interfaces.Player
	bullets BulletSource

	enemies     []*entity.Enemy
	treesPlaced bool
	bossSpawned bool
	spawnTimer  float64
	kills       int

	// shared animation clock per enemy type
	clocks     map[defs.EnemyType]float64
	animations map[defs.EnemyType]*assets.Animation
}

func NewEnemyController(cfg EnemyControllerConfig) *EnemyController {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	ids := cfg.IDs
	if ids == nil {
		ids = entity.NewIDGenerator()
	}
	return &EnemyController{
		env:        cfg.Env,
		library:    cfg.Library,
		spawnTable: cfg.SpawnTable,
		tuning:     cfg.Tuning,
		rng:        cfg.Rand,
		ids:        ids,
		clock:      cfg.Clock,
		logger:     logger,
		clocks:     make(map[defs.EnemyType]float64),
		animations: make(map[defs.EnemyType]*assets.Animation),
	}
}

func (c *EnemyController) SetPlayer(p interfaces.Player) { c.player = p }

func (c *EnemyController) SetBulletSource(b BulletSource) { c.bullets = b }

// Enemies returns the live roster in spawn order. Callers must not keep it
// across frames.
func (c *EnemyController) Enemies() []*entity.Enemy { return c.enemies }

func (c *EnemyController) Kills() int { return c.kills }

func (c *EnemyController) TreesPlaced() bool { return c.treesPlaced }

func (c *EnemyController) BossSpawned() bool { return c.bossSpawned }

func (c *EnemyController) SpawnTimer() float64 { return c.spawnTimer }

// Boss returns the living boss, or nil.
func (c *EnemyController) Boss() *entity.Enemy {
	for _, e := range c.enemies {
		if e.Boss != nil && e.IsActive() {
			return e
		}
	}
	return nil
}

// Update runs one frame of the enemy simulation.
func (c *EnemyController) Update(dt float64) {
	if !c.treesPlaced {
		c.placeTrees()
	}
	c.updateSpawning(dt)

	for _, e := range c.enemies {
		e.Update(dt, c.player)
	}
	c.reap()
	c.collideBullets()
	c.collectDrops()
}

func (c *EnemyController) placeTrees() {
	if c.player == nil {
		return
	}
	def, ok := c.library.Enemy(defs.EnemyTree)
	c.treesPlaced = true
	if !ok {
		c.logger.Warn("no tree definition, skipping tree placement")
		return
	}
	w := c.tuning.World
	positions := PlaceTrees(c.rng, TreePlacement{
		Bounds:      c.env.World,
		Spawn:       c.player.Position(),
		Count:       w.TreeCount,
		Exclusion:   w.TreeExclusionRadius,
		MaxAttempts: w.TreeMaxAttempts,
	}, c.logger)
	for _, pos := range positions {
		c.add(def, pos)
	}
	c.logger.Debug("trees placed", "count", len(positions))
}

func (c *EnemyController) updateSpawning(dt float64) {
	if c.player == nil || c.clock == nil {
		return
	}
	elapsed := c.clock.Elapsed()
	if !c.bossSpawned && elapsed >= c.tuning.Match.BossSpawnFraction*c.clock.Duration() {
		c.SpawnBoss()
	}

	c.spawnTimer += dt
	if c.spawnTimer < SpawnRate(elapsed, c.tuning.Spawn) {
		return
	}
	c.spawnTimer = 0

	progress := 0.0
	if d := c.clock.Duration(); d > 0 {
		progress = elapsed / d
	}
	kind, ok := pickSpawnType(c.rng, c.spawnTable, progress)
	if !ok {
		return
	}
	if _, err := c.Spawn(kind); err != nil {
		c.logger.Warn("spawn failed", "type", kind, "error", err)
	}
}

// Spawn adds one enemy of the given type on the ring around the player.
func (c *EnemyController) Spawn(kind defs.EnemyType) (*entity.Enemy, error) {
	def, ok := c.library.Enemy(kind)
	if !ok {
		return nil, &UnknownEnemyError{Type: kind}
	}
	center := c.env.World.Center()
	if c.player != nil {
		center = c.player.Position()
	}
	pos := ringPosition(c.rng, center, c.tuning.World.SpawnRingRadius, c.env.World)
	return c.add(def, pos), nil
}

// SpawnBoss brings in the Elder once per match. Later calls return nil.
func (c *EnemyController) SpawnBoss() *entity.Enemy {
	if c.bossSpawned {
		return nil
	}
	c.bossSpawned = true
	e, err := c.Spawn(defs.EnemyElder)
	if err != nil {
		c.logger.Warn("boss spawn failed", "error", err)
		return nil
	}
	c.logger.Info("boss spawned", "id", e.ID, "x", e.Position.X, "y", e.Position.Y)
	return e
}

func (c *EnemyController) add(def defs.EnemyDefinition, pos geom.Vec2) *entity.Enemy {
	e := entity.NewEnemy(c.ids.Next(), def, pos, c.env)
	c.enemies = append(c.enemies, e)
	return e
}

// reap disposes and removes enemies that are dead and carry no drop.
func (c *EnemyController) reap() {
	c.enemies = slices.DeleteFunc(c.enemies, func(e *entity.Enemy) bool {
		if e.IsActive() || e.DropActive() {
			return false
		}
		e.Dispose()
		return true
	})
}

// Render draws every enemy, drop and the boss barrier. The per-type
// animation clock advances once per frame for each type present.
func (c *EnemyController) Render(batch interfaces.Batch, dt float64) {
	if batch == nil {
		return
	}
	advanced := make(map[defs.EnemyType]bool)
	for _, e := range c.enemies {
		if t := e.Type(); !advanced[t] {
			c.clocks[t] += dt
			advanced[t] = true
		}
	}

	for _, e := range c.enemies {
		switch {
		case e.IsActive():
			batch.Draw(c.frameFor(e), e.Bounds(), interfaces.DrawOptions{
				Alpha: 1,
				FlipX: e.FlipX,
				Flash: e.Flash.Active(),
			})
			if e.Boss != nil && e.Boss.Barrier.IsActive() {
				for _, strip := range e.Boss.Barrier.Edges() {
					batch.FillRect(strip, config.BarrierColor, config.BarrierStripAlpha)
				}
			}
		case e.DropActive():
			batch.Draw(e.DropTexture(), e.DropBounds(), interfaces.DrawOptions{
				Alpha:    e.Drop.Alpha,
				Rotation: e.Drop.Rotation,
			})
		}
	}
}

// ClockFor returns the animation clock of an enemy type.
func (c *EnemyController) ClockFor(t defs.EnemyType) float64 { return c.clocks[t] }

func (c *EnemyController) frameFor(e *entity.Enemy) assets.Texture {
	if e.Boss != nil {
		if anim := e.Boss.Animation(); anim != nil {
			if f := anim.KeyFrame(e.Boss.StateTimer()); f != nil {
				return f
			}
		}
		return e.Texture()
	}
	anim, seen := c.animations[e.Type()]
	if !seen {
		anim = c.loadAnimation(e.Def)
		c.animations[e.Type()] = anim
	}
	if f := anim.KeyFrame(c.clocks[e.Type()]); f != nil {
		return f
	}
	return e.Texture()
}

func (c *EnemyController) loadAnimation(def defs.EnemyDefinition) *assets.Animation {
	if c.env.Assets == nil {
		return nil
	}
	anim, err := c.env.Assets.Animation(def.Texture+"_walk", enemyFrameDuration)
	if err != nil {
		c.logger.Debug("enemy animation unavailable, using static texture", "type", def.ID, "error", err)
		return nil
	}
	return anim
}

// Clear disposes every enemy and retires cached animations.
func (c *EnemyController) Clear() {
	for _, e := range c.enemies {
		e.Dispose()
	}
	c.enemies = nil
	for t, anim := range c.animations {
		anim.Dispose()
		delete(c.animations, t)
	}
}
