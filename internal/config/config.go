// internal/config/config.go
package config

import "image/color"

const (
	// The left-hand ribbon hosts the UI; gameplay happens to its right.
	GameSpaceWidth = 800
	RibbonWidth    = 300
	ScreenWidth    = GameSpaceWidth + RibbonWidth
	ScreenHeight   = 600

	PlayableAreaStartX = RibbonWidth
	PlayableAreaWidth  = GameSpaceWidth

	// Large frame deltas (OS pause, debugger stops) are clamped so enemies
	// cannot tunnel past tower ranges in a single step.
	MaxDeltaTime = 0.06

	BaseHealth    = 100
	DamagePerLeak = 10

	PathWaypoints      = 6
	PathMinSegmentX    = 20.0
	PathMarginY        = 40.0
	PathGenMaxAttempts = 16

	EnemyRadius = 10.0

	TowerRadius      = 12.0
	TowerStrokeWidth = 2.0

	// Heavy towers are bought with score points, Light ones are free.
	HeavyTowerCost = 10

	ProjectileSpeed  = 320.0 // pixels per second
	ProjectileRadius = 4.0

	PauseButtonX    = RibbonWidth - 40
	PauseButtonY    = 30
	PauseButtonSize = 14.0

	HealthBarWidth  = 240
	HealthBarHeight = 18
	// Displayed health eases toward the real value over this many seconds.
	HealthBarTweenTime = 0.35
)

var (
	BackgroundColor  = color.RGBA{50, 50, 50, 255}
	RibbonColor      = color.RGBA{30, 30, 40, 255}
	RibbonBorder     = color.RGBA{90, 90, 110, 255}
	PathColor        = color.RGBA{120, 110, 90, 255}
	BaseColor        = color.RGBA{50, 205, 50, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	RangeColor       = color.RGBA{70, 70, 255, 90}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	HealthBarBack    = color.RGBA{70, 30, 30, 255}
	HealthBarFront   = color.RGBA{200, 60, 60, 255}
	GameOverColor    = color.RGBA{220, 60, 60, 255}
)
