package system

import (
	"testing"

	"coffee-defense/internal/component"
	"coffee-defense/internal/entity"
	"coffee-defense/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addTower(ecs *entity.ECS, x, y, rangePx float64, damage int, fireRate float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Towers[id] = &component.Tower{DefID: "TOWER_LIGHT"}
	ecs.Combats[id] = &component.Combat{Damage: damage, FireRate: fireRate, Range: rangePx}
	return id
}

func addEnemyAt(ecs *entity.ECS, x, y, progress float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.PathFollows[id] = &component.PathFollow{Distance: progress}
	ecs.Healths[id] = &component.Health{Value: 100}
	ecs.Enemies[id] = &component.Enemy{}
	return id
}

func TestCombatNoEnemiesNoFire(t *testing.T) {
	ecs := entity.NewECS()
	s := NewCombatSystem(ecs)
	addTower(ecs, 0, 0, 100, 25, 1.0)

	assert.Empty(t, s.Update(1.0))
}

func TestCombatAllOutOfRangeNoFire(t *testing.T) {
	ecs := entity.NewECS()
	s := NewCombatSystem(ecs)
	addTower(ecs, 0, 0, 100, 25, 1.0)
	addEnemyAt(ecs, 500, 500, 10)

	assert.Empty(t, s.Update(1.0))
}

func TestCombatTargetsFurthestProgress(t *testing.T) {
	ecs := entity.NewECS()
	s := NewCombatSystem(ecs)
	tower := addTower(ecs, 0, 0, 100, 25, 1.0)
	// The nearer enemy is less far along the path; the tower must
	// prioritize closeness to the base, not to itself.
	addEnemyAt(ecs, 10, 0, 20)
	far := addEnemyAt(ecs, 90, 0, 80)

	fires := s.Update(1.0)
	require.Len(t, fires, 1)
	assert.Equal(t, tower, fires[0].TowerID)
	assert.Equal(t, far, fires[0].TargetID)
	assert.Equal(t, 25, fires[0].Damage)
}

func TestCombatTieBreakByDistanceToTower(t *testing.T) {
	ecs := entity.NewECS()
	s := NewCombatSystem(ecs)
	addTower(ecs, 0, 0, 200, 25, 1.0)
	addEnemyAt(ecs, 150, 0, 50)
	near := addEnemyAt(ecs, 50, 0, 50)

	fires := s.Update(1.0)
	require.Len(t, fires, 1)
	assert.Equal(t, near, fires[0].TargetID)
}

func TestCombatCooldownGatesFiring(t *testing.T) {
	ecs := entity.NewECS()
	s := NewCombatSystem(ecs)
	tower := addTower(ecs, 0, 0, 100, 25, 2.0) // one shot per 0.5s
	addEnemyAt(ecs, 10, 0, 5)

	// Fresh tower fires immediately, then waits out 1/fire_rate.
	require.Len(t, s.Update(0.1), 1)
	assert.InDelta(t, 0.5, ecs.Combats[tower].FireCooldown, 1e-9)

	assert.Empty(t, s.Update(0.2))
	assert.Empty(t, s.Update(0.2))
	require.Len(t, s.Update(0.2), 1)
}

func TestCombatIgnoresDeadAndFinishedEnemies(t *testing.T) {
	ecs := entity.NewECS()
	s := NewCombatSystem(ecs)
	addTower(ecs, 0, 0, 100, 25, 1.0)
	dead := addEnemyAt(ecs, 10, 0, 5)
	ecs.Enemies[dead].Dead = true
	leaked := addEnemyAt(ecs, 20, 0, 90)
	ecs.Enemies[leaked].ReachedEnd = true

	assert.Empty(t, s.Update(1.0))
}

func TestCombatEachReadyTowerFires(t *testing.T) {
	ecs := entity.NewECS()
	s := NewCombatSystem(ecs)
	addTower(ecs, 0, 0, 100, 25, 1.0)
	addTower(ecs, 60, 0, 100, 30, 1.0)
	target := addEnemyAt(ecs, 30, 0, 40)

	fires := s.Update(1.0)
	require.Len(t, fires, 2)
	for _, f := range fires {
		assert.Equal(t, target, f.TargetID)
	}
}
