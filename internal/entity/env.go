// internal/entity/env.go
package entity

import (
	"log/slog"

	"go-till-dawn/internal/assets"
	"go-till-dawn/internal/config"
	"go-till-dawn/internal/defs"
	"go-till-dawn/internal/event"
	"go-till-dawn/pkg/geom"
)

// Rand is the slice of the PRNG service the entities need.
type Rand interface {
	Float64() float64
}

// EnemyEnv bundles the services shared by every enemy of one controller.
// It is built once and passed by pointer, nothing here is global.
type EnemyEnv struct {
	World   geom.Rect
	Drops   defs.DropTable
	Drop    config.DropTuning
	Boss    config.BossTuning
	Barrier config.BarrierTuning
	Assets  assets.Provider
	Rand    Rand
	Events  *event.Dispatcher
	Logger  *slog.Logger
}

func (env *EnemyEnv) texture(key string) assets.Texture {
	if env.Assets == nil || key == "" {
		return nil
	}
	return env.Assets.Texture(key)
}

func (env *EnemyEnv) logger() *slog.Logger {
	if env.Logger == nil {
		return slog.Default()
	}
	return env.Logger
}
