// internal/defs/types.go
package defs

import "image/color"

// Visuals describes how an entity is drawn, absent any sprite assets.
type Visuals struct {
	Color        color.RGBA `json:"color"`
	RadiusFactor float64    `json:"radius_factor"`
	StrokeWidth  float64    `json:"stroke_width"`
}
