// internal/system/combat.go
package system

import (
	"coffee-defense/internal/entity"
	"coffee-defense/internal/types"
	"coffee-defense/internal/utils"
)

// FireEvent is a tower's decision to damage a specific enemy this step.
// The caller applies the damage so the step ordering stays in one place.
type FireEvent struct {
	TowerID  types.EntityID
	TargetID types.EntityID
	Damage   int
}

// CombatSystem runs tower target selection and cooldown gating.
type CombatSystem struct {
	ecs *entity.ECS
}

func NewCombatSystem(ecs *entity.ECS) *CombatSystem {
	return &CombatSystem{ecs: ecs}
}

// Update decrements cooldowns and collects one FireEvent per ready tower
// that has a target in range. Towers with nothing in range simply wait.
func (s *CombatSystem) Update(deltaTime float64) []FireEvent {
	var fires []FireEvent
	for id, combat := range s.ecs.Combats {
		if _, isTower := s.ecs.Towers[id]; !isTower {
			continue
		}
		combat.FireCooldown -= deltaTime
		if combat.FireCooldown > 0 {
			continue
		}

		target, found := s.selectTarget(id, combat.Range)
		if !found {
			continue
		}

		fires = append(fires, FireEvent{TowerID: id, TargetID: target, Damage: combat.Damage})
		combat.FireCooldown = 1 / combat.FireRate
	}
	return fires
}

// selectTarget picks the in-range enemy closest to the base, meaning the one
// furthest along the path. Ties break toward the smaller Euclidean distance
// from the tower, then toward the lower entity ID so the choice is stable
// regardless of map iteration order.
func (s *CombatSystem) selectTarget(towerID types.EntityID, rangePx float64) (types.EntityID, bool) {
	towerPos, ok := s.ecs.Positions[towerID]
	if !ok {
		return 0, false
	}

	var (
		bestID       types.EntityID
		bestProgress float64
		bestDist     float64
		found        bool
	)
	for id, enemy := range s.ecs.Enemies {
		if enemy.Dead || enemy.ReachedEnd {
			continue
		}
		pos, hasPos := s.ecs.Positions[id]
		follow, hasFollow := s.ecs.PathFollows[id]
		if !hasPos || !hasFollow {
			continue
		}
		dist := utils.Dist(towerPos.X, towerPos.Y, pos.X, pos.Y)
		if dist > rangePx {
			continue
		}

		better := false
		switch {
		case !found:
			better = true
		case follow.Distance > bestProgress:
			better = true
		case follow.Distance == bestProgress && dist < bestDist:
			better = true
		case follow.Distance == bestProgress && dist == bestDist && id < bestID:
			better = true
		}
		if better {
			bestID = id
			bestProgress = follow.Distance
			bestDist = dist
			found = true
		}
	}
	return bestID, found
}
