// pkg/waypath/generate.go
package waypath

import "math/rand"

// GenConfig bounds the randomized generation. MinX/MaxX delimit the playable
// area on the x axis, MinY/MaxY the vertical band waypoints may occupy.
type GenConfig struct {
	MinX, MaxX  float64
	MinY, MaxY  float64
	Waypoints   int     // total count including the two fixed endpoints
	MinSegmentX float64 // minimum x advance between consecutive waypoints
	MaxAttempts int     // sampling retries before the straight-line fallback
}

// Generate produces a randomized path whose first waypoint is fixed at MinX
// and last at MaxX, with every intermediate waypoint strictly advancing in x.
// If sampling cannot satisfy the spacing constraint within MaxAttempts, it
// falls back to Fallback, so a playable path always comes back.
func Generate(rng *rand.Rand, cfg GenConfig) *Path {
	if cfg.Waypoints < 2 {
		cfg.Waypoints = 2
	}
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		pts := sample(rng, cfg)
		if validate(pts, cfg) {
			return NewPath(pts)
		}
	}
	return Fallback(cfg)
}

// Fallback is the deterministic straight line across the middle of the band.
func Fallback(cfg GenConfig) *Path {
	midY := (cfg.MinY + cfg.MaxY) / 2
	return NewPath([]Point{
		{X: cfg.MinX, Y: midY},
		{X: cfg.MaxX, Y: midY},
	})
}

func sample(rng *rand.Rand, cfg GenConfig) []Point {
	pts := make([]Point, 0, cfg.Waypoints)
	pts = append(pts, Point{X: cfg.MinX, Y: randY(rng, cfg)})

	n := cfg.Waypoints - 2
	for i := 0; i < n; i++ {
		x := cfg.MinX + (cfg.MaxX-cfg.MinX)*rng.Float64()
		pts = append(pts, Point{X: x, Y: randY(rng, cfg)})
	}
	// Intermediate points come out unordered; enemies never backtrack, so
	// sort them into increasing x before validation.
	inner := pts[1:]
	for i := 1; i < len(inner); i++ {
		for j := i; j > 0 && inner[j].X < inner[j-1].X; j-- {
			inner[j], inner[j-1] = inner[j-1], inner[j]
		}
	}
	pts = append(pts, Point{X: cfg.MaxX, Y: randY(rng, cfg)})
	return pts
}

func randY(rng *rand.Rand, cfg GenConfig) float64 {
	return cfg.MinY + (cfg.MaxY-cfg.MinY)*rng.Float64()
}

// validate rejects candidates with non-monotonic x or degenerate segments.
func validate(pts []Point, cfg GenConfig) bool {
	for i := 1; i < len(pts); i++ {
		if pts[i].X-pts[i-1].X < cfg.MinSegmentX {
			return false
		}
	}
	return true
}
