// internal/app/summary.go
package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"go-till-dawn/internal/component"
	"go-till-dawn/internal/defs"
)

// Recorder stores finished matches.
type Recorder interface {
	SaveMatch(ctx context.Context, s MatchSummary) error
}

// MatchSummary is what survives a match.
type MatchSummary struct {
	ID              uuid.UUID
	Hero            defs.HeroID
	Weapon          defs.WeaponID
	Kills           int
	SurvivedSeconds int
	Level           int
	Score           int
	Won             bool
	EndedAt         time.Time
}

// Score: 10 points per kill plus one per whole second survived.
func Score(kills int, survived float64) int {
	return kills*10 + int(survived)
}

func newSummary(g *Game) MatchSummary {
	kills := g.Enemies.Kills()
	survived := g.Match.Elapsed()
	return MatchSummary{
		ID:              uuid.New(),
		Hero:            g.hero.ID,
		Weapon:          g.weapon.ID,
		Kills:           kills,
		SurvivedSeconds: int(survived),
		Level:           g.Player.Progress.Level,
		Score:           Score(kills, survived),
		Won:             g.Match.Phase() == component.MatchWon,
		EndedAt:         g.now().UTC(),
	}
}
