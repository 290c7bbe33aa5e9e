// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"coffee-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton toggles between pause bars and a play triangle, with a small
// scale pulse after each click.
type PauseButton struct {
	X, Y          float32
	Size          float32
	IsPaused      bool
	LastClickTime time.Time
}

func NewPauseButton(x, y, size float32) *PauseButton {
	return &PauseButton{X: x, Y: y, Size: size}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	if b.IsPaused {
		// Triangle (play).
		p := vector.Path{}
		p.MoveTo(b.X-size, b.Y-size*1.2)
		p.LineTo(b.X-size, b.Y+size*1.2)
		p.LineTo(b.X+size, b.Y)
		p.Close()
		vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
		for i := range vs {
			vs[i].ColorR = float32(config.TextLightColor.R) / 255
			vs[i].ColorG = float32(config.TextLightColor.G) / 255
			vs[i].ColorB = float32(config.TextLightColor.B) / 255
			vs[i].ColorA = 1
		}
		screen.DrawTriangles(vs, is, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
	} else {
		// Two bars (pause).
		width := size * 0.6
		height := size * 2.0
		spacing := size * 0.4
		vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, config.TextLightColor, true)
		vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, config.TextLightColor, true)
	}
}

// IsClicked reports whether the cursor position lands on the button.
func (b *PauseButton) IsClicked(x, y int) bool {
	dx := float64(float32(x) - b.X)
	dy := float64(float32(y) - b.Y)
	r := float64(b.Size) * 1.6
	return dx*dx+dy*dy <= r*r
}

// Toggle flips the paused display and restarts the click pulse.
func (b *PauseButton) Toggle() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}

var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}()
