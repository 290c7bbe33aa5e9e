// internal/component/movement.go
package component

// Position — screen-space position.
type Position struct {
	X, Y float64
}

// Velocity — base movement speed in pixels per second. The effective speed
// also carries the session's difficulty multiplier.
type Velocity struct {
	Speed float64
}

// PathFollow — progress along the session path, as distance traveled.
type PathFollow struct {
	Distance float64
}
