// internal/system/render.go
package system

import (
	"coffee-defense/internal/config"
	"coffee-defense/internal/entity"
	"coffee-defense/pkg/render"
	"coffee-defense/pkg/waypath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem draws the playable area: path, base, entities.
type RenderSystem struct {
	ecs  *entity.ECS
	path *waypath.Path
}

func NewRenderSystem(ecs *entity.ECS, path *waypath.Path) *RenderSystem {
	return &RenderSystem{ecs: ecs, path: path}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	// Path polyline first, everything walks on top of it.
	wps := s.path.Waypoints
	for i := 1; i < len(wps); i++ {
		vector.StrokeLine(screen,
			float32(wps[i-1].X), float32(wps[i-1].Y),
			float32(wps[i].X), float32(wps[i].Y),
			3.0, config.PathColor, true)
	}
	for _, wp := range wps {
		vector.DrawFilledCircle(screen, float32(wp.X), float32(wp.Y), 4, render.DarkenColor(config.PathColor), true)
	}

	// The base sits on the final waypoint.
	end := s.path.End()
	vector.DrawFilledCircle(screen, float32(end.X), float32(end.Y), 16, config.BaseColor, true)

	// Range circles under the towers that show them.
	for id, tower := range s.ecs.Towers {
		if !tower.IsSelected {
			continue
		}
		pos, hasPos := s.ecs.Positions[id]
		combat, hasCombat := s.ecs.Combats[id]
		if hasPos && hasCombat {
			vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), float32(combat.Range), 1.0, config.RangeColor, true)
		}
	}

	for id, r := range s.ecs.Renderables {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		if r.HasStroke {
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), r.Radius+config.TowerStrokeWidth, config.TowerStrokeColor, true)
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), r.Radius, r.Color, true)
	}

	// Thin health bars over wounded enemies.
	for id, enemy := range s.ecs.Enemies {
		if enemy.Dead || enemy.ReachedEnd {
			continue
		}
		health, hasHealth := s.ecs.Healths[id]
		pos, hasPos := s.ecs.Positions[id]
		if !hasHealth || !hasPos {
			continue
		}
		def, maxKnown := maxHealthFor(enemy.DefID)
		if !maxKnown || health.Value >= def {
			continue
		}
		frac := float32(health.Value) / float32(def)
		if frac < 0 {
			frac = 0
		}
		x := float32(pos.X) - config.EnemyRadius
		y := float32(pos.Y) - config.EnemyRadius - 6
		vector.DrawFilledRect(screen, x, y, 2*config.EnemyRadius, 3, config.HealthBarBack, true)
		vector.DrawFilledRect(screen, x, y, 2*config.EnemyRadius*frac, 3, config.HealthBarFront, true)
	}
}
