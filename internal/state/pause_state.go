// internal/state/pause_state.go
package state

import (
	"coffee-defense/internal/config"
	"coffee-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// PauseState freezes the session underneath it. Simulation time does not
// advance until the player resumes.
type PauseState struct {
	sm   *StateMachine
	prev *GameState
	face font.Face
}

func NewPauseState(sm *StateMachine, prev *GameState) *PauseState {
	return &PauseState{
		sm:   sm,
		prev: prev,
		face: ui.MustFontFace(32),
	}
}

func (p *PauseState) Enter() {}

func (p *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		p.prev.Game().Resume()
		p.prev.pauseButton.SetPaused(false)
		p.sm.SetState(p.prev)
	}
}

func (p *PauseState) Draw(screen *ebiten.Image) {
	p.prev.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, dimColor, false)
	text.Draw(screen, "PAUSED", p.face, config.ScreenWidth/2-60, config.ScreenHeight/2, config.TextLightColor)
	text.Draw(screen, "F9 or Space to resume", p.face, config.ScreenWidth/2-170, config.ScreenHeight/2+50, config.TextLightColor)
}

func (p *PauseState) Exit() {}
