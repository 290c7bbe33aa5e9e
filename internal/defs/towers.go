// internal/defs/towers.go
package defs

import "image/color"

// CombatStats contains parameters related to a tower's combat abilities.
type CombatStats struct {
	Damage   int     `json:"damage"`
	FireRate float64 `json:"fire_rate"` // shots per second
	Range    float64 `json:"range"`     // pixels
}

// TowerDefinition holds all the static data for a specific type of tower.
// Light and Heavy are two rows of this table, not two types.
type TowerDefinition struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Cost    int         `json:"cost"` // score points, 0 for free towers
	Combat  CombatStats `json:"combat"`
	Visuals Visuals     `json:"visuals"`
}

const (
	TowerLight = "TOWER_LIGHT"
	TowerHeavy = "TOWER_HEAVY"
)

// TowerLibrary maps tower IDs to their definitions. The built-in table can
// be replaced wholesale by LoadTowerDefinitions.
var TowerLibrary = map[string]TowerDefinition{
	TowerLight: {
		ID:   TowerLight,
		Name: "Light",
		Cost: 0,
		Combat: CombatStats{
			Damage:   25,
			FireRate: 1.0,
			Range:    150,
		},
		Visuals: Visuals{
			Color:        color.RGBA{50, 100, 255, 255},
			RadiusFactor: 1.0,
			StrokeWidth:  2.0,
		},
	},
	TowerHeavy: {
		ID:   TowerHeavy,
		Name: "Heavy",
		Cost: 10,
		Combat: CombatStats{
			Damage:   30,
			FireRate: 1.0 / 1.5,
			Range:    200,
		},
		Visuals: Visuals{
			Color:        color.RGBA{180, 50, 230, 255},
			RadiusFactor: 1.2,
			StrokeWidth:  2.0,
		},
	},
}
