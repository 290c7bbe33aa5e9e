package defs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDifficultyLookup(t *testing.T) {
	for _, name := range DifficultyOrder {
		profile, err := Difficulty(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, profile.Name)
		assert.Positive(t, profile.SpawnInterval)
		assert.Positive(t, profile.SpeedFactor)
	}
}

func TestDifficultyUnknownRejected(t *testing.T) {
	_, err := Difficulty("Impossible")
	assert.Error(t, err)
}

func TestDifficultyOrderIsMonotonic(t *testing.T) {
	// Harder levels spawn faster and move enemies quicker.
	for i := 1; i < len(DifficultyOrder); i++ {
		prev := DifficultyLibrary[DifficultyOrder[i-1]]
		cur := DifficultyLibrary[DifficultyOrder[i]]
		assert.Less(t, cur.SpawnInterval, prev.SpawnInterval)
		assert.GreaterOrEqual(t, cur.SpeedFactor, prev.SpeedFactor)
		assert.LessOrEqual(t, cur.ScoreThreshold, prev.ScoreThreshold)
	}
}

func TestTowerLibraryHasLightAndHeavy(t *testing.T) {
	light, ok := TowerLibrary[TowerLight]
	require.True(t, ok)
	heavy, ok := TowerLibrary[TowerHeavy]
	require.True(t, ok)

	assert.Zero(t, light.Cost)
	assert.Positive(t, heavy.Cost)
	assert.Greater(t, heavy.Combat.Range, light.Combat.Range)
	assert.Greater(t, heavy.Combat.Damage, light.Combat.Damage)
	assert.Less(t, heavy.Combat.FireRate, light.Combat.FireRate)
}

func TestSpawnTableCoversLibrary(t *testing.T) {
	table := SpawnTable()
	require.Len(t, table, len(EnemyLibrary))
	for _, entry := range table {
		_, ok := EnemyLibrary[entry.EnemyID]
		assert.True(t, ok)
		assert.Positive(t, entry.Weight)
	}
}
