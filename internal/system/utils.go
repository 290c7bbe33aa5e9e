// internal/system/utils.go
package system

import "coffee-defense/internal/defs"

// maxHealthFor looks up the starting health of an enemy definition.
func maxHealthFor(defID string) (int, bool) {
	def, ok := defs.EnemyLibrary[defID]
	if !ok {
		return 0, false
	}
	return def.Health, true
}
