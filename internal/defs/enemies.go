// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Health  int     `json:"health"`
	Speed   float64 `json:"speed"` // pixels per second before difficulty scaling
	Weight  int     `json:"weight"` // spawn weight for the visual variant roll
	Visuals Visuals `json:"visuals"`
}

const (
	EnemyRedTop    = "ENEMY_RED_TOP"
	EnemySoulSista = "ENEMY_SOUL_SISTA"
)

// EnemyLibrary maps enemy IDs to their definitions. Two variants with the
// same stats, matching the two character sprites of the original game.
var EnemyLibrary = map[string]EnemyDefinition{
	EnemyRedTop: {
		ID:     EnemyRedTop,
		Name:   "Red Top",
		Health: 100,
		Speed:  40,
		Weight: 1,
		Visuals: Visuals{
			Color:        color.RGBA{220, 60, 60, 255},
			RadiusFactor: 1.0,
		},
	},
	EnemySoulSista: {
		ID:     EnemySoulSista,
		Name:   "Soul Sista",
		Health: 100,
		Speed:  40,
		Weight: 1,
		Visuals: Visuals{
			Color:        color.RGBA{240, 180, 60, 255},
			RadiusFactor: 1.0,
		},
	},
}

// SpawnTable lists the enemy variants eligible for spawning, with weights.
func SpawnTable() []SpawnEntry {
	entries := make([]SpawnEntry, 0, len(EnemyLibrary))
	for _, id := range []string{EnemyRedTop, EnemySoulSista} {
		if def, ok := EnemyLibrary[id]; ok {
			entries = append(entries, SpawnEntry{EnemyID: id, Weight: def.Weight})
		}
	}
	return entries
}

// SpawnEntry is one weighted row of the spawn table.
type SpawnEntry struct {
	EnemyID string
	Weight  int
}
