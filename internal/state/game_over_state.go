// internal/state/game_over_state.go
package state

import (
	"fmt"
	"image/color"

	"coffee-defense/internal/config"
	"coffee-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var dimColor = color.RGBA{0, 0, 0, 160}

// GameOverState shows the final score over the frozen field. The session
// underneath is terminal; only restart or menu exits remain.
type GameOverState struct {
	sm   *StateMachine
	prev *GameState
	face font.Face
}

func NewGameOverState(sm *StateMachine, prev *GameState) *GameOverState {
	return &GameOverState{
		sm:   sm,
		prev: prev,
		face: ui.MustFontFace(32),
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.sm.SetState(NewGameState(s.sm, s.prev.Game().Difficulty().Name))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		s.sm.SetState(NewMenuState(s.sm))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.prev.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, dimColor, false)
	text.Draw(screen, "GAME OVER", s.face, config.ScreenWidth/2-90, config.ScreenHeight/2-30, config.GameOverColor)
	text.Draw(screen, fmt.Sprintf("Final score: %d", s.prev.Game().Score), s.face, config.ScreenWidth/2-110, config.ScreenHeight/2+20, config.TextLightColor)
	text.Draw(screen, "R - restart, Q - menu", s.face, config.ScreenWidth/2-160, config.ScreenHeight/2+70, config.TextLightColor)
}

func (s *GameOverState) Exit() {}
