// pkg/waypath/path.go
package waypath

import "math"

// Point is a 2D waypoint in screen coordinates.
type Point struct {
	X, Y float64
}

// Sub returns the vector from p2 to p.
func (p Point) Sub(p2 Point) Point {
	return Point{p.X - p2.X, p.Y - p2.Y}
}

// Dist returns the Euclidean distance between two points.
func (p Point) Dist(p2 Point) float64 {
	dx := p.X - p2.X
	dy := p.Y - p2.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Path is an ordered polyline of waypoints from the left edge of the
// playable area to the right edge. Enemies track their progress as a
// distance along it, which makes advancement trivially monotonic.
type Path struct {
	Waypoints []Point
	// cumulative[i] is the distance from the start to Waypoints[i].
	cumulative []float64
	total      float64
}

// NewPath builds a path from the given waypoints and precomputes segment
// lengths. Waypoints are assumed to already satisfy the generator's
// invariants (strictly increasing x, no zero-length segments).
func NewPath(waypoints []Point) *Path {
	p := &Path{Waypoints: waypoints}
	p.cumulative = make([]float64, len(waypoints))
	for i := 1; i < len(waypoints); i++ {
		p.cumulative[i] = p.cumulative[i-1] + waypoints[i].Dist(waypoints[i-1])
	}
	if len(waypoints) > 0 {
		p.total = p.cumulative[len(waypoints)-1]
	}
	return p
}

// Length returns the total polyline length.
func (p *Path) Length() float64 {
	return p.total
}

// Start returns the first waypoint.
func (p *Path) Start() Point {
	return p.Waypoints[0]
}

// End returns the last waypoint, where the base sits.
func (p *Path) End() Point {
	return p.Waypoints[len(p.Waypoints)-1]
}

// PointAt returns the position at the given distance along the path.
// Distances outside [0, Length] clamp to the endpoints.
func (p *Path) PointAt(distance float64) Point {
	if distance <= 0 {
		return p.Start()
	}
	if distance >= p.total {
		return p.End()
	}
	// Find the segment containing the distance. Paths have a handful of
	// waypoints, so a linear scan is fine.
	i := 1
	for i < len(p.cumulative) && p.cumulative[i] < distance {
		i++
	}
	segStart := p.Waypoints[i-1]
	segEnd := p.Waypoints[i]
	segLen := p.cumulative[i] - p.cumulative[i-1]
	t := (distance - p.cumulative[i-1]) / segLen
	return Point{
		X: segStart.X + (segEnd.X-segStart.X)*t,
		Y: segStart.Y + (segEnd.Y-segStart.Y)*t,
	}
}
