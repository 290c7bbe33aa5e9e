// internal/ui/health_bar.go
package ui

import (
	"fmt"

	"coffee-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"
)

// HealthBar renders the base health in the ribbon. The displayed value is
// tweened toward the real one so a hit reads as a slide, not a jump.
type HealthBar struct {
	X, Y      float32
	Max       int
	displayed float32
	target    int
	tween     *gween.Tween
	face      font.Face
}

func NewHealthBar(x, y float32, max int, face font.Face) *HealthBar {
	return &HealthBar{
		X:         x,
		Y:         y,
		Max:       max,
		displayed: float32(max),
		target:    max,
		face:      face,
	}
}

// SetHealth retargets the bar. Repeated calls with the same value are free.
func (h *HealthBar) SetHealth(value int) {
	if value == h.target {
		return
	}
	h.target = value
	h.tween = gween.New(h.displayed, float32(value), config.HealthBarTweenTime, ease.OutQuad)
}

func (h *HealthBar) Update(deltaTime float64) {
	if h.tween == nil {
		return
	}
	v, done := h.tween.Update(float32(deltaTime))
	h.displayed = v
	if done {
		h.tween = nil
	}
}

func (h *HealthBar) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, h.X, h.Y, config.HealthBarWidth, config.HealthBarHeight, config.HealthBarBack, true)
	frac := h.displayed / float32(h.Max)
	if frac < 0 {
		frac = 0
	}
	vector.DrawFilledRect(screen, h.X, h.Y, config.HealthBarWidth*frac, config.HealthBarHeight, config.HealthBarFront, true)

	label := fmt.Sprintf("Base %d/%d", h.target, h.Max)
	text.Draw(screen, label, h.face, int(h.X)+6, int(h.Y)+config.HealthBarHeight-4, config.TextLightColor)
}
