// internal/state/game_over_state.go
package state

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-till-dawn/internal/app"
	"go-till-dawn/internal/config"
)

const topScoresShown = 5

// ScoreBoard reads the best finished matches.
type ScoreBoard interface {
	TopScores(ctx context.Context, limit int) ([]app.MatchSummary, error)
	Count(ctx context.Context) (int, error)
}

func (s *Session) logger() *slog.Logger {
	if s == nil || s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

// GameOverState shows the match result and the score table. R starts a new match.
type GameOverState struct {
	sm      *StateMachine
	session *Session
	game    *app.Game
	summary app.MatchSummary
	top     []app.MatchSummary
	played  int
}

var _ State = (*GameOverState)(nil)

func NewGameOverState(sm *StateMachine, session *Session, g *app.Game) *GameOverState {
	return &GameOverState{sm: sm, session: session, game: g}
}

func (s *GameOverState) Enter() {
	s.summary = s.game.Summary()
	s.game.Close()
	if s.session == nil || s.session.Scores == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	top, err := s.session.Scores.TopScores(ctx, topScoresShown)
	if err != nil {
		s.session.logger().Error("failed to read scores", "error", err)
		return
	}
	s.top = top
	played, err := s.session.Scores.Count(ctx)
	if err != nil {
		s.session.logger().Error("failed to count matches", "error", err)
		return
	}
	s.played = played
}

func (s *GameOverState) Update(deltaTime float64) {
	if !inpututil.IsKeyJustPressed(ebiten.KeyR) || s.session == nil || s.session.NewMatch == nil {
		return
	}
	g, err := s.session.NewMatch()
	if err != nil {
		s.session.logger().Error("failed to start a new match", "error", err)
		return
	}
	s.sm.SetState(NewGameState(s.sm, s.session, g))
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	title := "YOU DIED"
	if s.summary.Won {
		title = "DAWN HAS COME"
	}
	drawOverlay(screen, title)

	face := basicfont.Face7x13
	x := config.ScreenWidth / 3
	y := config.ScreenHeight/3 + 2*config.HUDLineHeight
	lines := []string{
		fmt.Sprintf("Kills: %d", s.summary.Kills),
		fmt.Sprintf("Survived: %ds", s.summary.SurvivedSeconds),
		fmt.Sprintf("Level: %d", s.summary.Level),
		fmt.Sprintf("Score: %d", s.summary.Score),
		"",
	}
	if len(s.top) > 0 {
		lines = append(lines, "Best runs:")
		for i, m := range s.top {
			lines = append(lines, fmt.Sprintf("%d. %5d  %s / %s", i+1, m.Score, m.Hero, m.Weapon))
		}
		lines = append(lines, "")
	}
	if s.played > 0 {
		lines = append(lines, fmt.Sprintf("Matches played: %d", s.played), "")
	}
	lines = append(lines, "Press R to play again")
	for _, l := range lines {
		text.Draw(screen, l, face, x, y, config.TextLightColor)
		y += config.HUDLineHeight
	}
}

func (s *GameOverState) Exit() {}
