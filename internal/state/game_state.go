// internal/state/game_state.go
package state

import (
	game "coffee-defense/internal/app"
	"coffee-defense/internal/component"
	"coffee-defense/internal/config"
	"coffee-defense/internal/defs"
	"coffee-defense/internal/ui"

	log "github.com/sirupsen/logrus"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState runs a session: forwards input to the game core, steps the
// simulation and draws the field plus the ribbon.
type GameState struct {
	sm          *StateMachine
	game        *game.Game
	ribbon      *ui.Ribbon
	pauseButton *ui.PauseButton
}

func NewGameState(sm *StateMachine, difficulty string) *GameState {
	gameLogic := game.NewGame(0)
	if err := gameLogic.SelectDifficulty(difficulty); err != nil {
		log.WithError(err).Warn("falling back to default difficulty")
	}
	gameLogic.Start()

	return &GameState{
		sm:          sm,
		game:        gameLogic,
		ribbon:      ui.NewRibbon(ui.MustFontFace(24), ui.MustFontFace(16)),
		pauseButton: ui.NewPauseButton(config.PauseButtonX, config.PauseButtonY, config.PauseButtonSize),
	}
}

// Game exposes the core for the pause and game-over states.
func (g *GameState) Game() *game.Game {
	return g.game
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.pause()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		g.game.SelectTowerType(defs.TowerLight)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		g.game.SelectTowerType(defs.TowerHeavy)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.pauseButton.IsClicked(x, y) {
			g.pause()
			return
		}
		if x >= config.PlayableAreaStartX {
			if _, err := g.game.PlaceTower(float64(x), float64(y)); err != nil {
				log.WithError(err).Debug("tower placement rejected")
			}
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		g.game.ToggleTowerSelection(float64(x), float64(y))
	}

	g.game.Step(deltaTime)
	g.ribbon.Update(deltaTime, g.game.BaseHealth)

	if g.game.Phase() == component.PhaseGameOver {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

func (g *GameState) pause() {
	g.game.Pause()
	g.pauseButton.SetPaused(true)
	g.sm.SetState(NewPauseState(g.sm, g))
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.game.RenderSystem.Draw(screen)
	g.ribbon.Draw(screen, ui.RibbonInfo{
		Score:         g.game.Score,
		BaseHealth:    g.game.BaseHealth,
		Difficulty:    g.game.Difficulty().Name,
		SelectedTower: g.game.SelectedTowerType(),
		EnemyCount:    g.game.EnemyCount(),
		Paused:        g.game.Phase() == component.PhasePaused,
	})
	g.pauseButton.Draw(screen)
}

func (g *GameState) Exit() {}
