// internal/config/tuning.go
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is returned by Validate for out-of-range values.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds every gameplay number that designers are expected to tweak.
type Tuning struct {
	Match   MatchTuning   `yaml:"match"`
	World   WorldTuning   `yaml:"world"`
	Spawn   SpawnTuning   `yaml:"spawn"`
	Combat  CombatTuning  `yaml:"combat"`
	Boss    BossTuning    `yaml:"boss"`
	Barrier BarrierTuning `yaml:"barrier"`
	Drops   DropTuning    `yaml:"drops"`
	Player  PlayerTuning  `yaml:"player"`
	Log     LogTuning     `yaml:"log"`
}

type MatchTuning struct {
	DurationSeconds   float64 `yaml:"duration_seconds"`
	BossSpawnFraction float64 `yaml:"boss_spawn_fraction"`
}

type WorldTuning struct {
	Width               float64 `yaml:"width"`
	Height              float64 `yaml:"height"`
	TreeCount           int     `yaml:"tree_count"`
	TreeExclusionRadius float64 `yaml:"tree_exclusion_radius"`
	TreeMaxAttempts     int     `yaml:"tree_max_attempts"`
	SpawnRingRadius     float64 `yaml:"spawn_ring_radius"`
}

// SpawnTuning describes the spawn-rate curve, all values in seconds.
type SpawnTuning struct {
	Initial           float64 `yaml:"initial"`
	Minimum           float64 `yaml:"minimum"`
	DecreasePerMinute float64 `yaml:"decrease_per_minute"`
}

type CombatTuning struct {
	BulletHitRadius float64 `yaml:"bullet_hit_radius"`
	BulletSpeed     float64 `yaml:"bullet_speed"`
	BulletRadius    float64 `yaml:"bullet_radius"`
	BulletMaxTravel float64 `yaml:"bullet_max_travel"`
	AutoReload      bool    `yaml:"auto_reload"`
}

type BossTuning struct {
	WalkSpeedFactor float64 `yaml:"walk_speed_factor"`
	DashCooldown    float64 `yaml:"dash_cooldown"`
	ChargeDuration  float64 `yaml:"charge_duration"`
	AttackDuration  float64 `yaml:"attack_duration"`
	DashDistance    float64 `yaml:"dash_distance"`
}

type BarrierTuning struct {
	// ShrinkSpeed is doubled when applied, per axis.
	ShrinkSpeed      float64 `yaml:"shrink_speed"`
	MinSize          float64 `yaml:"min_size"`
	Thickness        float64 `yaml:"thickness"`
	HitInvincibility float64 `yaml:"hit_invincibility"`
}

type DropTuning struct {
	HealthAmount     int     `yaml:"health_amount"`
	ExperienceAmount int     `yaml:"experience_amount"`
	Size             float64 `yaml:"size"`
	PulseRate        float64 `yaml:"pulse_rate"`
	RotationSpeed    float64 `yaml:"rotation_speed"`
}

type PlayerTuning struct {
	Size   float64 `yaml:"size"`
	XPBase int     `yaml:"xp_base"`
}

type LogTuning struct {
	Level string `yaml:"level"`
}

// DefaultTuning returns the values the game ships with.
func DefaultTuning() Tuning {
	return Tuning{
		Match: MatchTuning{
			DurationSeconds:   20 * 60,
			BossSpawnFraction: 0.5,
		},
		World: WorldTuning{
			Width:               3000,
			Height:              3000,
			TreeCount:           40,
			TreeExclusionRadius: 300,
			TreeMaxAttempts:     64,
			SpawnRingRadius:     750,
		},
		Spawn: SpawnTuning{
			Initial:           3.0,
			Minimum:           0.5,
			DecreasePerMinute: 0.2,
		},
		Combat: CombatTuning{
			BulletHitRadius: 30,
			BulletSpeed:     10,
			BulletRadius:    6,
			BulletMaxTravel: 1200,
			AutoReload:      true,
		},
		Boss: BossTuning{
			WalkSpeedFactor: 0.6,
			DashCooldown:    5,
			ChargeDuration:  1.5,
			AttackDuration:  0.8,
			DashDistance:    400,
		},
		Barrier: BarrierTuning{
			ShrinkSpeed:      6,
			MinSize:          200,
			Thickness:        20,
			HitInvincibility: 1,
		},
		Drops: DropTuning{
			HealthAmount:     1,
			ExperienceAmount: 3,
			Size:             24,
			PulseRate:        4,
			RotationSpeed:    90,
		},
		Player: PlayerTuning{
			Size:   48,
			XPBase: 20,
		},
		Log: LogTuning{Level: "info"},
	}
}

// LoadTuning reads a YAML file over the defaults, so a file only needs the
// keys it overrides.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("failed to unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// Validate rejects values that would stall or break the simulation.
func (t Tuning) Validate() error {
	switch {
	case t.Match.DurationSeconds <= 0:
		return fmt.Errorf("%w: match.duration_seconds must be positive", ErrInvalidTuning)
	case t.Match.BossSpawnFraction < 0 || t.Match.BossSpawnFraction > 1:
		return fmt.Errorf("%w: match.boss_spawn_fraction must be within [0,1]", ErrInvalidTuning)
	case t.World.Width <= 0 || t.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive", ErrInvalidTuning)
	case t.World.TreeCount < 0:
		return fmt.Errorf("%w: world.tree_count must not be negative", ErrInvalidTuning)
	case t.World.TreeMaxAttempts < 1:
		return fmt.Errorf("%w: world.tree_max_attempts must be at least 1", ErrInvalidTuning)
	case t.Spawn.Minimum <= 0:
		return fmt.Errorf("%w: spawn.minimum must be positive", ErrInvalidTuning)
	case t.Spawn.Initial < t.Spawn.Minimum:
		return fmt.Errorf("%w: spawn.initial must not be below spawn.minimum", ErrInvalidTuning)
	case t.Spawn.DecreasePerMinute < 0:
		return fmt.Errorf("%w: spawn.decrease_per_minute must not be negative", ErrInvalidTuning)
	case t.Combat.BulletHitRadius <= 0:
		return fmt.Errorf("%w: combat.bullet_hit_radius must be positive", ErrInvalidTuning)
	case t.Boss.AttackDuration <= 0 || t.Boss.ChargeDuration < 0 || t.Boss.DashCooldown < 0:
		return fmt.Errorf("%w: boss timings out of range", ErrInvalidTuning)
	case t.Barrier.MinSize <= 0 || t.Barrier.ShrinkSpeed < 0:
		return fmt.Errorf("%w: barrier sizes out of range", ErrInvalidTuning)
	case t.Player.XPBase <= 0:
		return fmt.Errorf("%w: player.xp_base must be positive", ErrInvalidTuning)
	}
	return nil
}
