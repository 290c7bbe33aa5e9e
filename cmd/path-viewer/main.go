// cmd/path-viewer/main.go
//
// Stand-alone tool to eyeball path generation: draws a batch of generated
// paths, Space rolls a new batch, F shows the deterministic fallback.
package main

import (
	"fmt"
	"math/rand"
	"time"

	"coffee-defense/internal/config"
	"coffee-defense/pkg/waypath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const pathsPerBatch = 5

var batchColors = []rl.Color{
	rl.NewColor(80, 170, 255, 255),
	rl.NewColor(255, 170, 80, 255),
	rl.NewColor(120, 230, 120, 255),
	rl.NewColor(230, 120, 200, 255),
	rl.NewColor(230, 230, 110, 255),
}

func genConfig() waypath.GenConfig {
	return waypath.GenConfig{
		MinX:        config.PlayableAreaStartX,
		MaxX:        config.PlayableAreaStartX + config.PlayableAreaWidth,
		MinY:        config.PathMarginY,
		MaxY:        config.ScreenHeight - config.PathMarginY,
		Waypoints:   config.PathWaypoints,
		MinSegmentX: config.PathMinSegmentX,
		MaxAttempts: config.PathGenMaxAttempts,
	}
}

func generateBatch(rng *rand.Rand) []*waypath.Path {
	paths := make([]*waypath.Path, pathsPerBatch)
	for i := range paths {
		paths[i] = waypath.Generate(rng, genConfig())
	}
	return paths
}

func drawPath(p *waypath.Path, clr rl.Color) {
	wps := p.Waypoints
	for i := 1; i < len(wps); i++ {
		rl.DrawLineEx(
			rl.NewVector2(float32(wps[i-1].X), float32(wps[i-1].Y)),
			rl.NewVector2(float32(wps[i].X), float32(wps[i].Y)),
			2, clr)
	}
	for _, wp := range wps {
		rl.DrawCircleV(rl.NewVector2(float32(wp.X), float32(wp.Y)), 4, clr)
	}
	end := p.End()
	rl.DrawCircleV(rl.NewVector2(float32(end.X), float32(end.Y)), 8, rl.Green)
}

func main() {
	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Path Viewer | Space - regenerate, F - fallback")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	paths := generateBatch(rng)
	showFallback := false

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeySpace) {
			paths = generateBatch(rng)
		}
		if rl.IsKeyPressed(rl.KeyF) {
			showFallback = !showFallback
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(30, 30, 40, 255))

		// Playable area boundary.
		rl.DrawRectangleLines(config.PlayableAreaStartX, 0, config.PlayableAreaWidth, config.ScreenHeight, rl.Gray)

		if showFallback {
			drawPath(waypath.Fallback(genConfig()), rl.Red)
		} else {
			for i, p := range paths {
				drawPath(p, batchColors[i%len(batchColors)])
			}
		}

		for i, p := range paths {
			label := fmt.Sprintf("path %d: %d waypoints, length %.0f", i+1, len(p.Waypoints), p.Length())
			rl.DrawText(label, 10, int32(10+20*i), 16, rl.LightGray)
		}

		rl.EndDrawing()
	}
}
