package utils

import (
	"testing"

	"coffee-defense/internal/defs"

	"github.com/stretchr/testify/assert"
)

func TestPRNGSeededReproducibility(t *testing.T) {
	a := NewPRNGService(99)
	b := NewPRNGService(99)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestChooseWeightedEmptyTable(t *testing.T) {
	s := NewPRNGService(1)
	assert.Equal(t, "", s.ChooseWeighted(nil))
}

func TestChooseWeightedZeroWeightsFallsBackToFirst(t *testing.T) {
	s := NewPRNGService(1)
	entries := []defs.SpawnEntry{
		{EnemyID: "A", Weight: 0},
		{EnemyID: "B", Weight: 0},
	}
	assert.Equal(t, "A", s.ChooseWeighted(entries))
}

func TestChooseWeightedRespectsWeights(t *testing.T) {
	s := NewPRNGService(7)
	entries := []defs.SpawnEntry{
		{EnemyID: "common", Weight: 99},
		{EnemyID: "rare", Weight: 1},
	}
	counts := map[string]int{}
	for i := 0; i < 1000; i++ {
		counts[s.ChooseWeighted(entries)]++
	}
	assert.Greater(t, counts["common"], 900)
	assert.Less(t, counts["rare"], 100)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(7, 0, 5))
	assert.Equal(t, 0.0, Clamp(-1, 0, 5))
	assert.Equal(t, 3.0, Clamp(3, 0, 5))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
	assert.Equal(t, 0.0, Lerp(0, 10, 0))
	assert.Equal(t, 10.0, Lerp(0, 10, 1))
}

func TestDist(t *testing.T) {
	assert.Equal(t, 5.0, Dist(0, 0, 3, 4))
}
