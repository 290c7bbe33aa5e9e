package component

// Enemy marks an entity as an attacker walking the path toward the base.
type Enemy struct {
	DefID      string // ID from the enemy library
	ReachedEnd bool   // set exactly once, when the base is reached
	Dead       bool   // set when health hits zero; removal is idempotent
}
