// internal/event/types.go
package event

import "coffee-defense/internal/types"

const (
	EnemySpawned       EventType = "EnemySpawned"
	EnemyReachedEnd    EventType = "EnemyReachedEnd"
	EnemyKilled        EventType = "EnemyKilled"
	TowerPlaced        EventType = "TowerPlaced"
	TowerFired         EventType = "TowerFired"
	BaseDestroyed      EventType = "BaseDestroyed"
	DifficultyAdvanced EventType = "DifficultyAdvanced" // score crossed a progression threshold
)

// EnemyPayload accompanies the enemy lifecycle events.
type EnemyPayload struct {
	ID    types.EntityID
	DefID string
}

// FirePayload accompanies TowerFired.
type FirePayload struct {
	TowerID  types.EntityID
	TargetID types.EntityID
	Damage   int
}

// TowerPayload accompanies TowerPlaced.
type TowerPayload struct {
	ID    types.EntityID
	DefID string
	X, Y  float64
}

// ProgressionPayload accompanies DifficultyAdvanced.
type ProgressionPayload struct {
	Stage         int
	SpawnInterval float64
	SpeedFactor   float64
}
