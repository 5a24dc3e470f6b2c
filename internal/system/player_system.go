// internal/system/player_system.go
package system

import (
	"go-till-dawn/internal/defs"
	"go-till-dawn/internal/entity"
	"go-till-dawn/internal/event"
)

// PlayerSystem отвечает за статистику игрока: убийства, подобранные
// предметы, повышения уровня.
type PlayerSystem struct {
	kills        int
	kinds        map[defs.EnemyType]int
	drops        map[defs.DropType]int
	levelUps     int
	bossDefeated bool
}

func NewPlayerSystem(d *event.Dispatcher) *PlayerSystem {
	s := &PlayerSystem{
		kinds: make(map[defs.EnemyType]int),
		drops: make(map[defs.DropType]int),
	}
	d.Subscribe(event.EnemyKilled, s)
	d.Subscribe(event.BossDefeated, s)
	d.Subscribe(event.DropCollected, s)
	d.Subscribe(event.PlayerLevelUp, s)
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		s.kills++
		if enemy, ok := e.Data.(*entity.Enemy); ok {
			s.kinds[enemy.Type()]++
		}
	case event.BossDefeated:
		s.bossDefeated = true
	case event.DropCollected:
		if kind, ok := e.Data.(defs.DropType); ok {
			s.drops[kind]++
		}
	case event.PlayerLevelUp:
		s.levelUps++
	}
}

func (s *PlayerSystem) Kills() int { return s.kills }

func (s *PlayerSystem) KillsOf(t defs.EnemyType) int { return s.kinds[t] }

func (s *PlayerSystem) Collected(t defs.DropType) int { return s.drops[t] }

func (s *PlayerSystem) LevelUps() int { return s.levelUps }

func (s *PlayerSystem) BossDefeated() bool { return s.bossDefeated }
