// internal/state/game_state.go
package state

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-till-dawn/internal/app"
	"go-till-dawn/internal/config"
	"go-till-dawn/internal/ui"
	"go-till-dawn/pkg/geom"
	"go-till-dawn/pkg/render"
)

// MatchFactory создаёт новый матч, нужен для рестарта.
type MatchFactory func() (*app.Game, error)

// Session хранит общие для всех состояний зависимости.
type Session struct {
	NewMatch MatchFactory
	Scores   ScoreBoard
	Logger   *slog.Logger
}

// GameState — состояние игры
type GameState struct {
	sm        *StateMachine
	session   *Session
	game      *app.Game
	batch     *render.SpriteBatch
	hud       *ui.HUD
	lastDelta float64
}

var _ State = (*GameState)(nil)

func NewGameState(sm *StateMachine, session *Session, g *app.Game) *GameState {
	return &GameState{
		sm:      sm,
		session: session,
		game:    g,
		batch:   render.NewSpriteBatch(),
		hud:     ui.NewHUD(),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	g.lastDelta = deltaTime

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	g.handleCheats()

	g.game.Update(deltaTime, g.readInput())

	if g.game.Match.IsOver() {
		g.sm.SetState(NewGameOverState(g.sm, g.session, g.game))
		return
	}
	if g.game.Player.PendingLevelUps() > 0 {
		g.sm.SetState(NewLevelUpState(g.sm, g))
	}
}

func (g *GameState) readInput() app.Input {
	var move geom.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		move.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		move.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		move.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		move.X++
	}
	g.batch.Begin(nil, g.game.Camera())
	x, y := ebiten.CursorPosition()
	return app.Input{
		Move:   move,
		Aim:    g.batch.ToWorld(float64(x), float64(y)),
		Fire:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Reload: inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}

// handleCheats: F1..F5, только для отладки.
func (g *GameState) handleCheats() {
	c := g.game.Cheats
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		c.SkipMinute()
	case inpututil.IsKeyJustPressed(ebiten.KeyF2):
		c.SpawnBoss()
	case inpututil.IsKeyJustPressed(ebiten.KeyF3):
		c.GrantLevel()
	case inpututil.IsKeyJustPressed(ebiten.KeyF4):
		c.Heal()
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		c.ToggleInfiniteAmmo()
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.batch.Begin(screen, g.game.Camera())
	g.game.Draw(g.batch, g.lastDelta)
	g.batch.End()
	g.hud.Draw(screen, g.hudState())
}

func (g *GameState) hudState() ui.HUDState {
	p := g.game.Player
	w := g.game.Weapon
	return ui.HUDState{
		Health:         p.Health(),
		MaxHealth:      p.MaxHealth(),
		Level:          p.Progress.Level,
		CurrentXP:      p.Progress.CurrentXP,
		XPToNext:       p.Progress.XPToNextLevel,
		Remaining:      g.game.Match.Remaining(),
		Ammo:           w.Ammo(),
		Magazine:       w.Magazine(),
		Reloading:      w.IsReloading(),
		ReloadProgress: w.ReloadProgress(),
		InfiniteAmmo:   w.InfiniteAmmo(),
	}
}

func (g *GameState) Exit() {
	// после паузы и выбора способности сюда возвращаются, поэтому ресурсы
	// матча освобождает только GameOverState
	g.lastDelta = 0
}

// Game возвращает текущий матч.
func (g *GameState) Game() *app.Game { return g.game }
