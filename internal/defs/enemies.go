// internal/defs/enemies.go
package defs

import (
	"fmt"
	"slices"
)

// EnemyType identifies an enemy definition.
type EnemyType string

const (
	EnemyTree     EnemyType = "TREE"
	EnemyTentacle EnemyType = "TENTACLE_MONSTER"
	EnemyEyebat   EnemyType = "EYEBAT"
	EnemyElder    EnemyType = "ELDER"
)

// EnemyKind selects the behavior attached to an enemy record.
type EnemyKind string

const (
	KindRegular EnemyKind = "REGULAR"
	KindBoss    EnemyKind = "BOSS"
)

// EnemyDefinition holds all the static data for a specific type of enemy.
// Speed is expressed in world units per frame at 60 FPS.
type EnemyDefinition struct {
	ID      EnemyType `yaml:"id"`
	Name    string    `yaml:"name"`
	Kind    EnemyKind `yaml:"kind"`
	Health  int       `yaml:"health"`
	Speed   float64   `yaml:"speed"`
	Damage  int       `yaml:"damage"`
	Movable bool      `yaml:"movable"`
	Texture string    `yaml:"texture"`
	Width   float64   `yaml:"width"`
	Height  float64   `yaml:"height"`
}

// IsBoss reports whether the definition carries boss behavior.
func (d EnemyDefinition) IsBoss() bool { return d.Kind == KindBoss }

// DefaultEnemies returns the built-in enemy roster.
func DefaultEnemies() []EnemyDefinition {
	return []EnemyDefinition{
		{ID: EnemyTree, Name: "Tree", Kind: KindRegular, Health: 1000, Speed: 0, Damage: 0, Movable: false, Texture: "tree", Width: 64, Height: 96},
		{ID: EnemyTentacle, Name: "Tentacle Monster", Kind: KindRegular, Health: 25, Speed: 1.0, Damage: 1, Movable: true, Texture: "tentacle", Width: 48, Height: 48},
		{ID: EnemyEyebat, Name: "Eyebat", Kind: KindRegular, Health: 50, Speed: 1.5, Damage: 1, Movable: true, Texture: "eyebat", Width: 48, Height: 40},
		{ID: EnemyElder, Name: "Elder", Kind: KindBoss, Health: 400, Speed: 2.0, Damage: 2, Movable: true, Texture: "elder", Width: 128, Height: 128},
	}
}

// Library is the lookup of enemy definitions used by one game session.
type Library struct {
	enemies map[EnemyType]EnemyDefinition
	order   []EnemyType
}

// NewLibrary validates defs and indexes them by ID.
func NewLibrary(defs []EnemyDefinition) (*Library, error) {
	l := &Library{enemies: make(map[EnemyType]EnemyDefinition, len(defs))}
	if err := l.Merge(defs); err != nil {
		return nil, err
	}
	return l, nil
}

// Merge adds defs, replacing existing entries with the same ID.
func (l *Library) Merge(defs []EnemyDefinition) error {
	for _, def := range defs {
		if def.ID == "" {
			return fmt.Errorf("enemy definition %q has no id", def.Name)
		}
		if def.Health <= 0 {
			return fmt.Errorf("enemy definition %s: health must be positive", def.ID)
		}
		if def.Kind == "" {
			def.Kind = KindRegular
		}
		if _, exists := l.enemies[def.ID]; !exists {
			l.order = append(l.order, def.ID)
		}
		l.enemies[def.ID] = def
	}
	return nil
}

// Enemy returns the definition for id.
func (l *Library) Enemy(id EnemyType) (EnemyDefinition, bool) {
	def, ok := l.enemies[id]
	return def, ok
}

// Types returns all known enemy IDs in registration order.
func (l *Library) Types() []EnemyType {
	return slices.Clone(l.order)
}
