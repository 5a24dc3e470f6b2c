// internal/state/level_up_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-till-dawn/internal/config"
	"go-till-dawn/internal/defs"
)

const abilityChoices = 3

var choiceKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

// LevelUpState предлагает выбрать способность при повышении уровня. Игра стоит.
type LevelUpState struct {
	sm      *StateMachine
	game    *GameState
	choices []defs.Ability
}

var _ State = (*LevelUpState)(nil)

func NewLevelUpState(sm *StateMachine, g *GameState) *LevelUpState {
	return &LevelUpState{sm: sm, game: g}
}

func (s *LevelUpState) Enter() {
	s.choices = s.game.Game().OfferAbilities(abilityChoices)
	if len(s.choices) == 0 {
		s.sm.SetState(s.game)
	}
}

func (s *LevelUpState) Update(deltaTime float64) {
	for i, key := range choiceKeys {
		if i >= len(s.choices) || !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if err := s.game.Game().ChooseAbility(s.choices[i].ID); err != nil {
			s.game.session.logger().Warn("ability choice rejected", "ability", s.choices[i].ID, "error", err)
		}
		s.sm.SetState(s.game)
		return
	}
}

func (s *LevelUpState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	drawOverlay(screen, "LEVEL UP")
	y := config.ScreenHeight/3 + 2*config.HUDLineHeight
	for i, a := range s.choices {
		line := fmt.Sprintf("[%d] %s: %s", i+1, a.Name, a.Description)
		text.Draw(screen, line, basicfont.Face7x13, config.ScreenWidth/3, y, config.TextLightColor)
		y += config.HUDLineHeight
	}
}

func (s *LevelUpState) Exit() {}
