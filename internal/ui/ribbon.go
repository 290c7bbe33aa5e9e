// internal/ui/ribbon.go
package ui

import (
	"fmt"

	"coffee-defense/internal/config"
	"coffee-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Ribbon is the left-hand panel: score, base health, selected tower and
// difficulty. It reads game state passed in per frame and never mutates it.
type Ribbon struct {
	face      font.Face
	smallFace font.Face
	HealthBar *HealthBar
}

// RibbonInfo is the per-frame snapshot the ribbon renders.
type RibbonInfo struct {
	Score         int
	BaseHealth    int
	Difficulty    string
	SelectedTower string
	EnemyCount    int
	Paused        bool
}

func NewRibbon(face, smallFace font.Face) *Ribbon {
	return &Ribbon{
		face:      face,
		smallFace: smallFace,
		HealthBar: NewHealthBar(30, 120, config.BaseHealth, smallFace),
	}
}

func (r *Ribbon) Update(deltaTime float64, baseHealth int) {
	r.HealthBar.SetHealth(baseHealth)
	r.HealthBar.Update(deltaTime)
}

func (r *Ribbon) Draw(screen *ebiten.Image, info RibbonInfo) {
	vector.DrawFilledRect(screen, 0, 0, config.RibbonWidth, config.ScreenHeight, config.RibbonColor, false)
	vector.StrokeLine(screen, config.RibbonWidth, 0, config.RibbonWidth, config.ScreenHeight, 3, config.RibbonBorder, false)

	text.Draw(screen, "Coffee Defense", r.face, 30, 50, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Score: %d", info.Score), r.face, 30, 95, config.TextLightColor)

	r.HealthBar.Draw(screen)

	y := 180
	text.Draw(screen, fmt.Sprintf("Difficulty: %s", info.Difficulty), r.smallFace, 30, y, config.TextLightColor)
	y += 28
	selected := info.SelectedTower
	if def, ok := defs.TowerLibrary[selected]; ok {
		selected = fmt.Sprintf("%s (%d dmg, cost %d)", def.Name, def.Combat.Damage, def.Cost)
	}
	text.Draw(screen, "Tower: "+selected, r.smallFace, 30, y, config.TextLightColor)
	y += 28
	text.Draw(screen, fmt.Sprintf("Enemies: %d", info.EnemyCount), r.smallFace, 30, y, config.TextLightColor)

	y = config.ScreenHeight - 110
	text.Draw(screen, "1/2 - tower type", r.smallFace, 30, y, config.TextLightColor)
	text.Draw(screen, "click - place tower", r.smallFace, 30, y+22, config.TextLightColor)
	text.Draw(screen, "F9 - pause", r.smallFace, 30, y+44, config.TextLightColor)

	if info.Paused {
		text.Draw(screen, "PAUSED", r.face, 30, config.ScreenHeight-24, config.GameOverColor)
	}
}
