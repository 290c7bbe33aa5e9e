// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"coffee-defense/internal/defs"
)

// PRNGService wraps the standard generator so the whole game can run on a
// single seeded random source. A zero seed means "seed from the clock".
type PRNGService struct {
	rng *rand.Rand
}

func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Rand exposes the underlying generator for callers that take *rand.Rand.
func (s *PRNGService) Rand() *rand.Rand {
	return s.rng
}

// Intn returns a random int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float64 in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// ChooseWeighted performs a weighted roll over the spawn table and returns
// the chosen enemy ID. An empty table returns the empty string.
func (s *PRNGService) ChooseWeighted(entries []defs.SpawnEntry) string {
	if len(entries) == 0 {
		return ""
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}

	if totalWeight <= 0 {
		return entries[0].EnemyID
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry.EnemyID
		}
		upto += entry.Weight
	}

	return entries[len(entries)-1].EnemyID
}
