// internal/system/spawn.go
package system

import (
	"coffee-defense/internal/component"
	"coffee-defense/internal/config"
	"coffee-defense/internal/defs"
	"coffee-defense/internal/entity"
	"coffee-defense/internal/event"
	"coffee-defense/internal/utils"
	"coffee-defense/pkg/waypath"
)

// Spawn intervals never shrink below this, no matter how far the score
// progression compounds.
const minSpawnInterval = 0.25

// SpawnSystem creates enemies at the path entry on a difficulty-driven
// timer. It also owns the live progression state: every ScoreThreshold
// kills, spawns speed up and enemies get faster.
type SpawnSystem struct {
	ecs             *entity.ECS
	path            *waypath.Path
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService

	profile       defs.DifficultyProfile
	spawnInterval float64
	speedFactor   float64
	spawnTimer    float64
	stage         int
}

func NewSpawnSystem(ecs *entity.ECS, path *waypath.Path, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		path:            path,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		speedFactor:     1.0,
		spawnInterval:   defs.DifficultyLibrary[defs.DifficultyMedium].SpawnInterval,
	}
}

// Configure resets the system to the given profile's starting values.
// Called once when the session starts.
func (s *SpawnSystem) Configure(profile defs.DifficultyProfile) {
	s.profile = profile
	s.spawnInterval = profile.SpawnInterval
	s.speedFactor = profile.SpeedFactor
	s.spawnTimer = 0
	s.stage = 0
}

// SpawnInterval returns the current interval between spawns.
func (s *SpawnSystem) SpawnInterval() float64 {
	return s.spawnInterval
}

// SpeedFactor returns the current multiplier applied to enemy base speed.
func (s *SpawnSystem) SpeedFactor() float64 {
	return s.speedFactor
}

// Update advances the spawn timer and creates at most one enemy per step.
func (s *SpawnSystem) Update(deltaTime float64) {
	s.spawnTimer += deltaTime
	if s.spawnTimer >= s.spawnInterval {
		s.spawnEnemy()
		s.spawnTimer = 0
	}
}

// ApplyScore advances the progression when the score crosses another
// threshold multiple. Safe to call every step; it only reacts to changes.
func (s *SpawnSystem) ApplyScore(score int) {
	if s.profile.ScoreThreshold <= 0 {
		return
	}
	target := score / s.profile.ScoreThreshold
	for s.stage < target {
		s.stage++
		s.spawnInterval *= 1 - s.profile.SpawnRateDecrease
		if s.spawnInterval < minSpawnInterval {
			s.spawnInterval = minSpawnInterval
		}
		s.speedFactor *= 1 + s.profile.SpeedIncrease
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.DifficultyAdvanced,
			Data: event.ProgressionPayload{
				Stage:         s.stage,
				SpawnInterval: s.spawnInterval,
				SpeedFactor:   s.speedFactor,
			},
		})
	}
}

func (s *SpawnSystem) spawnEnemy() {
	enemyID := s.rng.ChooseWeighted(defs.SpawnTable())
	def, ok := defs.EnemyLibrary[enemyID]
	if !ok {
		return
	}

	id := s.ecs.NewEntity()
	start := s.path.Start()
	s.ecs.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	s.ecs.PathFollows[id] = &component.PathFollow{Distance: 0}
	s.ecs.Healths[id] = &component.Health{Value: def.Health}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    float32(config.EnemyRadius * def.Visuals.RadiusFactor),
		HasStroke: def.Visuals.StrokeWidth > 0,
	}
	s.ecs.Enemies[id] = &component.Enemy{DefID: enemyID}

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemyPayload{ID: id, DefID: enemyID},
	})
}
