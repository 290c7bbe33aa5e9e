package system

import (
	"testing"

	"coffee-defense/internal/defs"
	"coffee-defense/internal/entity"
	"coffee-defense/internal/event"
	"coffee-defense/internal/utils"
	"coffee-defense/pkg/waypath"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingListener struct {
	events []event.Event
}

func (l *countingListener) OnEvent(e event.Event) {
	l.events = append(l.events, e)
}

func newSpawnFixture() (*SpawnSystem, *entity.ECS, *event.Dispatcher) {
	ecs := entity.NewECS()
	path := waypath.NewPath([]waypath.Point{{X: 0, Y: 0}, {X: 500, Y: 0}})
	d := event.NewDispatcher()
	s := NewSpawnSystem(ecs, path, d, utils.NewPRNGService(42))
	return s, ecs, d
}

func TestSpawnOnePerIntervalBoundary(t *testing.T) {
	s, ecs, _ := newSpawnFixture()
	s.Configure(defs.DifficultyProfile{SpawnInterval: 2.0, SpeedFactor: 1.0})

	for i := 1; i <= 5; i++ {
		s.Update(2.0)
		assert.Len(t, ecs.Enemies, i, "one spawn per call boundary")
	}
}

func TestSpawnWaitsOutInterval(t *testing.T) {
	s, ecs, _ := newSpawnFixture()
	s.Configure(defs.DifficultyProfile{SpawnInterval: 1.0, SpeedFactor: 1.0})

	s.Update(0.4)
	s.Update(0.4)
	assert.Empty(t, ecs.Enemies)
	s.Update(0.4)
	assert.Len(t, ecs.Enemies, 1)
}

func TestSpawnedEnemyStartsAtPathEntry(t *testing.T) {
	s, ecs, d := newSpawnFixture()
	listener := &countingListener{}
	d.Subscribe(event.EnemySpawned, listener)
	s.Configure(defs.DifficultyProfile{SpawnInterval: 1.0, SpeedFactor: 1.0})

	s.Update(1.0)
	require.Len(t, ecs.Enemies, 1)
	for id := range ecs.Enemies {
		assert.Equal(t, 0.0, ecs.Positions[id].X)
		assert.Equal(t, 0.0, ecs.PathFollows[id].Distance)
		assert.Positive(t, ecs.Healths[id].Value)
		_, known := defs.EnemyLibrary[ecs.Enemies[id].DefID]
		assert.True(t, known, "spawned enemy uses a library definition")
	}
	require.Len(t, listener.events, 1)
	assert.Equal(t, event.EnemySpawned, listener.events[0].Type)
}

func TestScoreProgressionShrinksIntervalAndRaisesSpeed(t *testing.T) {
	s, _, d := newSpawnFixture()
	listener := &countingListener{}
	d.Subscribe(event.DifficultyAdvanced, listener)
	s.Configure(defs.DifficultyProfile{
		SpawnInterval:     2.0,
		SpeedFactor:       1.0,
		ScoreThreshold:    5,
		SpawnRateDecrease: 0.5,
		SpeedIncrease:     0.5,
	})

	s.ApplyScore(4)
	assert.Equal(t, 2.0, s.SpawnInterval(), "below the threshold nothing moves")

	s.ApplyScore(5)
	assert.InDelta(t, 1.0, s.SpawnInterval(), 1e-9)
	assert.InDelta(t, 1.5, s.SpeedFactor(), 1e-9)
	require.Len(t, listener.events, 1)

	// Jumping two thresholds at once compounds both stages.
	s.ApplyScore(15)
	assert.InDelta(t, 0.25, s.SpawnInterval(), 1e-9)
	assert.InDelta(t, 3.375, s.SpeedFactor(), 1e-9)
	assert.Len(t, listener.events, 3)
}

func TestSpawnIntervalNeverDropsBelowFloor(t *testing.T) {
	s, _, _ := newSpawnFixture()
	s.Configure(defs.DifficultyProfile{
		SpawnInterval:     1.0,
		SpeedFactor:       1.0,
		ScoreThreshold:    1,
		SpawnRateDecrease: 0.9,
		SpeedIncrease:     0.1,
	})

	s.ApplyScore(10)
	assert.Equal(t, 0.25, s.SpawnInterval())
}

func TestProgressionDisabledWithoutThreshold(t *testing.T) {
	s, _, _ := newSpawnFixture()
	s.Configure(defs.DifficultyProfile{SpawnInterval: 2.0, SpeedFactor: 1.0})

	s.ApplyScore(1000)
	assert.Equal(t, 2.0, s.SpawnInterval())
	assert.Equal(t, 1.0, s.SpeedFactor())
}
