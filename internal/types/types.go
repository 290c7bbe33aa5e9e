// internal/types/types.go
package types

// EntityID uniquely identifies an entity inside the ECS.
type EntityID uint64
