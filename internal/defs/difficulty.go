// internal/defs/difficulty.go
package defs

import "fmt"

// DifficultyProfile bundles the spawn and speed parameters of one level.
// Immutable once a session has started.
type DifficultyProfile struct {
	Name           string  `json:"name"`
	SpawnInterval  float64 `json:"spawn_interval"`  // seconds between spawns
	SpeedFactor    float64 `json:"speed_factor"`    // multiplier on enemy base speed
	ScoreThreshold int     `json:"score_threshold"` // kills per progression stage
	// Each progression stage shrinks the spawn interval and raises the
	// speed factor by these fractions.
	SpawnRateDecrease float64 `json:"spawn_rate_decrease"`
	SpeedIncrease     float64 `json:"speed_increase"`
}

const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
	DifficultySpicy  = "Spicy"
	DifficultyHell   = "Hell"
)

// DifficultyLibrary maps level names to their profiles. The original game
// shipped five stops on its slider; the first three are the documented ones.
var DifficultyLibrary = map[string]DifficultyProfile{
	DifficultyEasy: {
		Name:              DifficultyEasy,
		SpawnInterval:     3.0,
		SpeedFactor:       1.0,
		ScoreThreshold:    15,
		SpawnRateDecrease: 0.3,
		SpeedIncrease:     0.3,
	},
	DifficultyMedium: {
		Name:              DifficultyMedium,
		SpawnInterval:     2.0,
		SpeedFactor:       1.5,
		ScoreThreshold:    10,
		SpawnRateDecrease: 0.4,
		SpeedIncrease:     0.4,
	},
	DifficultyHard: {
		Name:              DifficultyHard,
		SpawnInterval:     1.0,
		SpeedFactor:       2.5,
		ScoreThreshold:    5,
		SpawnRateDecrease: 0.5,
		SpeedIncrease:     0.5,
	},
	DifficultySpicy: {
		Name:              DifficultySpicy,
		SpawnInterval:     0.8,
		SpeedFactor:       3.0,
		ScoreThreshold:    3,
		SpawnRateDecrease: 0.6,
		SpeedIncrease:     0.6,
	},
	DifficultyHell: {
		Name:              DifficultyHell,
		SpawnInterval:     0.5,
		SpeedFactor:       3.5,
		ScoreThreshold:    1,
		SpawnRateDecrease: 0.7,
		SpeedIncrease:     0.7,
	},
}

// DifficultyOrder lists the levels from mildest to harshest, for UI.
var DifficultyOrder = []string{
	DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultySpicy, DifficultyHell,
}

// Difficulty looks a profile up by name.
func Difficulty(name string) (DifficultyProfile, error) {
	profile, ok := DifficultyLibrary[name]
	if !ok {
		return DifficultyProfile{}, fmt.Errorf("unknown difficulty level %q", name)
	}
	return profile, nil
}
