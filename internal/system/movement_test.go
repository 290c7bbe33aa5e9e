package system

import (
	"testing"

	"coffee-defense/internal/component"
	"coffee-defense/internal/defs"
	"coffee-defense/internal/entity"
	"coffee-defense/internal/types"
	"coffee-defense/pkg/waypath"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func straightPath() *waypath.Path {
	return waypath.NewPath([]waypath.Point{{X: 0, Y: 100}, {X: 100, Y: 100}})
}

func addEnemy(ecs *entity.ECS, distance, speed float64, health int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{}
	ecs.Velocities[id] = &component.Velocity{Speed: speed}
	ecs.PathFollows[id] = &component.PathFollow{Distance: distance}
	ecs.Healths[id] = &component.Health{Value: health}
	ecs.Enemies[id] = &component.Enemy{DefID: defs.EnemyRedTop}
	return id
}

func TestMovementAdvancesAlongPath(t *testing.T) {
	ecs := entity.NewECS()
	path := straightPath()
	s := NewMovementSystem(ecs, path)
	id := addEnemy(ecs, 0, 10, 100)

	reached := s.Update(1.0, 1.0)
	assert.Empty(t, reached)
	assert.Equal(t, 10.0, ecs.PathFollows[id].Distance)
	assert.Equal(t, 10.0, ecs.Positions[id].X)
	assert.Equal(t, 100.0, ecs.Positions[id].Y)
}

func TestMovementAppliesSpeedFactor(t *testing.T) {
	ecs := entity.NewECS()
	s := NewMovementSystem(ecs, straightPath())
	id := addEnemy(ecs, 0, 10, 100)

	s.Update(1.0, 2.5)
	assert.Equal(t, 25.0, ecs.PathFollows[id].Distance)
}

func TestMovementProgressNeverDecreases(t *testing.T) {
	ecs := entity.NewECS()
	s := NewMovementSystem(ecs, straightPath())
	id := addEnemy(ecs, 0, 7, 100)

	prev := 0.0
	for i := 0; i < 30; i++ {
		s.Update(0.5, 1.0)
		d := ecs.PathFollows[id].Distance
		assert.GreaterOrEqual(t, d, prev)
		prev = d
	}
}

func TestMovementReachedEndExactlyOnce(t *testing.T) {
	ecs := entity.NewECS()
	s := NewMovementSystem(ecs, straightPath())
	id := addEnemy(ecs, 95, 10, 100)

	reached := s.Update(1.0, 1.0)
	require.Equal(t, []types.EntityID{id}, reached)
	assert.True(t, ecs.Enemies[id].ReachedEnd)
	assert.Equal(t, 100.0, ecs.PathFollows[id].Distance, "progress clamps at the path length")

	// A finished enemy is never reported or advanced again.
	reached = s.Update(1.0, 1.0)
	assert.Empty(t, reached)
	assert.Equal(t, 100.0, ecs.PathFollows[id].Distance)
}

func TestMovementSkipsDeadEnemies(t *testing.T) {
	ecs := entity.NewECS()
	s := NewMovementSystem(ecs, straightPath())
	id := addEnemy(ecs, 50, 10, 0)
	ecs.Enemies[id].Dead = true

	reached := s.Update(10.0, 1.0)
	assert.Empty(t, reached)
	assert.Equal(t, 50.0, ecs.PathFollows[id].Distance)
}
