package component

// Health — remaining hit points.
type Health struct {
	Value int
}

// Combat — attack state for a tower.
type Combat struct {
	Damage       int
	FireRate     float64 // shots per second
	FireCooldown float64 // time left until the next shot
	Range        float64 // pixels
}
