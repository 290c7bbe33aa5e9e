// internal/system/movement.go
package system

import (
	"coffee-defense/internal/entity"
	"coffee-defense/internal/types"
	"coffee-defense/pkg/waypath"
)

// MovementSystem advances enemies along the session path. Progress is a
// distance along the polyline, so it can only grow.
type MovementSystem struct {
	ecs  *entity.ECS
	path *waypath.Path
}

func NewMovementSystem(ecs *entity.ECS, path *waypath.Path) *MovementSystem {
	return &MovementSystem{ecs: ecs, path: path}
}

// Update moves every live enemy by speed * speedFactor * deltaTime and
// returns the entities that reached the end of the path this step. The
// ReachedEnd flag flips exactly once per enemy; finished or dead enemies
// are skipped entirely.
func (s *MovementSystem) Update(deltaTime, speedFactor float64) []types.EntityID {
	var reached []types.EntityID
	for id, enemy := range s.ecs.Enemies {
		if enemy.Dead || enemy.ReachedEnd {
			continue
		}
		follow, hasFollow := s.ecs.PathFollows[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasFollow || !hasVel {
			continue
		}

		follow.Distance += vel.Speed * speedFactor * deltaTime

		if pos, hasPos := s.ecs.Positions[id]; hasPos {
			p := s.path.PointAt(follow.Distance)
			pos.X = p.X
			pos.Y = p.Y
		}

		if follow.Distance >= s.path.Length() {
			follow.Distance = s.path.Length()
			enemy.ReachedEnd = true
			reached = append(reached, id)
		}
	}
	return reached
}
