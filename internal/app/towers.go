// internal/app/towers.go
package app

import (
	"fmt"

	"coffee-defense/internal/component"
	"coffee-defense/internal/config"
	"coffee-defense/internal/defs"
	"coffee-defense/internal/event"
	"coffee-defense/internal/types"
)

// SelectTowerType sets the type used for the next placement.
func (g *Game) SelectTowerType(defID string) error {
	if _, ok := defs.TowerLibrary[defID]; !ok {
		return fmt.Errorf("unknown tower type %q", defID)
	}
	g.selectedTowerType = defID
	return nil
}

// SelectedTowerType returns the type used for the next placement.
func (g *Game) SelectedTowerType() string {
	return g.selectedTowerType
}

// PlaceTower places a tower of the currently selected type.
func (g *Game) PlaceTower(x, y float64) (types.EntityID, error) {
	return g.PlaceTowerOfType(x, y, g.selectedTowerType)
}

// PlaceTowerOfType validates position, type and cost, then creates the
// tower entity. On any failure the game state is untouched.
func (g *Game) PlaceTowerOfType(x, y float64, defID string) (types.EntityID, error) {
	if g.phase == component.PhaseGameOver {
		return 0, ErrGameOver
	}
	if !inPlayableArea(x, y) {
		return 0, fmt.Errorf("position (%.0f, %.0f) is outside the playable area", x, y)
	}
	def, ok := defs.TowerLibrary[defID]
	if !ok {
		return 0, fmt.Errorf("unknown tower type %q", defID)
	}
	if g.Score < def.Cost {
		return 0, fmt.Errorf("placing %s costs %d points, have %d", def.Name, def.Cost, g.Score)
	}
	g.Score -= def.Cost

	id := g.createTowerEntity(x, y, def)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.TowerPayload{ID: id, DefID: def.ID, X: x, Y: y},
	})
	return id, nil
}

func (g *Game) createTowerEntity(x, y float64, def defs.TowerDefinition) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Towers[id] = &component.Tower{DefID: def.ID}
	g.ECS.Combats[id] = &component.Combat{
		Damage:   def.Combat.Damage,
		FireRate: def.Combat.FireRate,
		Range:    def.Combat.Range,
		// Zero cooldown: a fresh tower may fire on its first update.
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    float32(config.TowerRadius * def.Visuals.RadiusFactor),
		HasStroke: def.Visuals.StrokeWidth > 0,
	}
	return id
}

// ToggleTowerSelection flips the range display of the tower nearest to the
// click, if the click landed on one.
func (g *Game) ToggleTowerSelection(x, y float64) bool {
	for id, tower := range g.ECS.Towers {
		pos, ok := g.ECS.Positions[id]
		if !ok {
			continue
		}
		dx := pos.X - x
		dy := pos.Y - y
		if dx*dx+dy*dy <= config.TowerRadius*config.TowerRadius*4 {
			tower.IsSelected = !tower.IsSelected
			return true
		}
	}
	return false
}

func inPlayableArea(x, y float64) bool {
	return x >= config.PlayableAreaStartX &&
		x <= config.PlayableAreaStartX+config.PlayableAreaWidth &&
		y >= 0 && y <= config.ScreenHeight
}
