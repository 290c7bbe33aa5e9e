package component

import "image/color"

// Renderable — circle visual for an entity.
type Renderable struct {
	Color     color.RGBA
	Radius    float32
	HasStroke bool
}
