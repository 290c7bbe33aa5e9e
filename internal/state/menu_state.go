// internal/state/menu_state.go
package state

import (
	"fmt"

	"coffee-defense/internal/config"
	"coffee-defense/internal/defs"
	"coffee-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// MenuState lets the player pick a difficulty before the session starts.
type MenuState struct {
	sm        *StateMachine
	face      font.Face
	smallFace font.Face
	selected  int
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{
		sm:        sm,
		face:      ui.MustFontFace(28),
		smallFace: ui.MustFontFace(18),
		selected:  1, // Medium, matching the original's slider default
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) && m.selected > 0 {
		m.selected--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && m.selected < len(defs.DifficultyOrder)-1 {
		m.selected++
	}
	for i := range defs.DifficultyOrder {
		if inpututil.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(i)) {
			m.selected = i
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm, defs.DifficultyOrder[m.selected]))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	text.Draw(screen, "Coffee Defense", m.face, config.ScreenWidth/2-110, 150, config.TextLightColor)
	text.Draw(screen, "Select difficulty (arrows or 1-5), Space to start", m.smallFace, config.ScreenWidth/2-200, 200, config.TextLightColor)

	y := 260
	for i, name := range defs.DifficultyOrder {
		label := name
		profile := defs.DifficultyLibrary[name]
		label = fmt.Sprintf("%s  (spawn every %.1fs)", label, profile.SpawnInterval)
		clr := config.TextLightColor
		if i == m.selected {
			label = "> " + label
			clr = config.BaseColor
		}
		text.Draw(screen, label, m.smallFace, config.ScreenWidth/2-150, y, clr)
		y += 34
	}
}

func (m *MenuState) Exit() {}
