// internal/component/projectile.go
package component

import "coffee-defense/internal/types"

// Projectile is the visible tracer for a shot. Damage is applied when the
// shot is resolved, so a tracer only flies toward where its target was and
// expires; losing the target mid-flight just retires it early.
type Projectile struct {
	TargetID types.EntityID
	Speed    float64
}
