// internal/system/projectile.go
package system

import (
	"math"

	"coffee-defense/internal/entity"
	"coffee-defense/internal/types"
)

// Tracers count as arrived inside this radius even if the step would not
// quite reach the target, so they do not orbit a moving enemy.
const tracerHitRadius = 8.0

// ProjectileSystem moves fired tracers toward their targets and retires
// them on arrival. Damage was already applied when the shot resolved, so
// nothing here touches health.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for id, proj := range s.ecs.Projectiles {
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.remove(id)
			continue
		}

		targetPos, targetExists := s.ecs.Positions[proj.TargetID]
		if !targetExists {
			// Target already removed; the tracer has nowhere to go.
			s.remove(id)
			continue
		}

		dx := targetPos.X - pos.X
		dy := targetPos.Y - pos.Y
		dist := math.Sqrt(dx*dx + dy*dy)

		step := proj.Speed * deltaTime
		if dist <= step || dist < tracerHitRadius {
			s.remove(id)
			continue
		}
		pos.X += dx / dist * step
		pos.Y += dy / dist * step
	}
}

func (s *ProjectileSystem) remove(id types.EntityID) {
	delete(s.ecs.Positions, id)
	delete(s.ecs.Projectiles, id)
	delete(s.ecs.Renderables, id)
}
