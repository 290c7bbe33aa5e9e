// internal/app/game.go
package app

import (
	"errors"

	"coffee-defense/internal/component"
	"coffee-defense/internal/config"
	"coffee-defense/internal/defs"
	"coffee-defense/internal/entity"
	"coffee-defense/internal/event"
	"coffee-defense/internal/system"
	"coffee-defense/internal/utils"
	"coffee-defense/pkg/waypath"
)

var (
	ErrSessionStarted = errors.New("difficulty is locked once the session has started")
	ErrGameOver       = errors.New("session is over")
)

// Game owns the full simulation state of one session: the path, the ECS,
// the systems and the player's score and base health. All mutation happens
// synchronously inside Step, on one goroutine.
type Game struct {
	ECS             *entity.ECS
	Path            *waypath.Path
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	SpawnSystem      *system.SpawnSystem
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	RenderSystem     *system.RenderSystem

	Score      int
	BaseHealth int

	phase             component.SessionPhase
	profile           defs.DifficultyProfile
	selectedTowerType string
	gameTime          float64
}

// NewGame builds a session with a freshly generated path. Seed 0 means
// "random session"; tests pass a fixed seed.
func NewGame(seed int64) *Game {
	rng := utils.NewPRNGService(seed)
	path := generatePath(rng)
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()

	g := &Game{
		ECS:               ecs,
		Path:              path,
		EventDispatcher:   eventDispatcher,
		Rng:               rng,
		BaseHealth:        config.BaseHealth,
		phase:             component.PhaseNotStarted,
		profile:           defs.DifficultyLibrary[defs.DifficultyMedium],
		selectedTowerType: defs.TowerLight,
	}
	g.SpawnSystem = system.NewSpawnSystem(ecs, path, eventDispatcher, rng)
	g.MovementSystem = system.NewMovementSystem(ecs, path)
	g.CombatSystem = system.NewCombatSystem(ecs)
	g.ProjectileSystem = system.NewProjectileSystem(ecs)
	g.RenderSystem = system.NewRenderSystem(ecs, path)

	attachLogListener(eventDispatcher)

	return g
}

func generatePath(rng *utils.PRNGService) *waypath.Path {
	return waypath.Generate(rng.Rand(), waypath.GenConfig{
		MinX:        config.PlayableAreaStartX,
		MaxX:        config.PlayableAreaStartX + config.PlayableAreaWidth,
		MinY:        config.PathMarginY,
		MaxY:        config.ScreenHeight - config.PathMarginY,
		Waypoints:   config.PathWaypoints,
		MinSegmentX: config.PathMinSegmentX,
		MaxAttempts: config.PathGenMaxAttempts,
	})
}

// Phase returns the current session phase.
func (g *Game) Phase() component.SessionPhase {
	return g.phase
}

// GameTime returns total simulated time.
func (g *Game) GameTime() float64 {
	return g.gameTime
}

// Difficulty returns the active profile.
func (g *Game) Difficulty() defs.DifficultyProfile {
	return g.profile
}

// SelectDifficulty picks the profile for the upcoming session. Only legal
// before Start; the profile is immutable afterwards.
func (g *Game) SelectDifficulty(name string) error {
	if g.phase != component.PhaseNotStarted {
		return ErrSessionStarted
	}
	profile, err := defs.Difficulty(name)
	if err != nil {
		return err
	}
	g.profile = profile
	return nil
}

// Start transitions NotStarted -> Running and arms the spawn controller.
func (g *Game) Start() {
	if g.phase != component.PhaseNotStarted {
		return
	}
	g.SpawnSystem.Configure(g.profile)
	g.phase = component.PhaseRunning
}

// Pause suspends the simulation; Step becomes a no-op until Resume.
func (g *Game) Pause() {
	if g.phase == component.PhaseRunning {
		g.phase = component.PhasePaused
	}
}

// Resume continues a paused session.
func (g *Game) Resume() {
	if g.phase == component.PhasePaused {
		g.phase = component.PhaseRunning
	}
}

// Step advances the simulation by deltaTime. The stage order is fixed:
// spawn, advance, fire, reap, game-over check. Outside Running it does
// nothing, which makes post-GameOver calls harmless.
func (g *Game) Step(deltaTime float64) {
	if g.phase != component.PhaseRunning {
		return
	}
	g.gameTime += deltaTime
	g.ECS.GameTime = g.gameTime

	// 1. Spawn.
	g.SpawnSystem.Update(deltaTime)

	// 2. Advance enemies; leakers damage the base and leave the field.
	reached := g.MovementSystem.Update(deltaTime, g.SpawnSystem.SpeedFactor())
	for _, id := range reached {
		enemy := g.ECS.Enemies[id]
		if enemy == nil {
			continue
		}
		g.BaseHealth -= config.DamagePerLeak
		if g.BaseHealth < 0 {
			g.BaseHealth = 0
		}
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.EnemyReachedEnd,
			Data: event.EnemyPayload{ID: id, DefID: enemy.DefID},
		})
		g.ECS.RemoveEntity(id)
	}

	// 3. Towers fire; damage lands immediately, tracers are cosmetic.
	for _, fire := range g.CombatSystem.Update(deltaTime) {
		g.applyFire(fire)
	}
	g.ProjectileSystem.Update(deltaTime)

	// 4. Reap kills and award score.
	g.reapDead()

	// 5. Game over check.
	if g.BaseHealth <= 0 {
		g.phase = component.PhaseGameOver
		g.EventDispatcher.Dispatch(event.Event{Type: event.BaseDestroyed})
	}
}

func (g *Game) applyFire(fire system.FireEvent) {
	health, ok := g.ECS.Healths[fire.TargetID]
	if !ok || health.Value <= 0 {
		// Target died or escaped earlier this step; the shot fizzles.
		return
	}
	health.Value -= fire.Damage
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerFired,
		Data: event.FirePayload{TowerID: fire.TowerID, TargetID: fire.TargetID, Damage: fire.Damage},
	})
	g.spawnTracer(fire)
}

func (g *Game) spawnTracer(fire system.FireEvent) {
	towerPos, ok := g.ECS.Positions[fire.TowerID]
	if !ok {
		return
	}
	tower := g.ECS.Towers[fire.TowerID]
	def, ok := defs.TowerLibrary[tower.DefID]
	if !ok {
		return
	}
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: towerPos.X, Y: towerPos.Y}
	g.ECS.Projectiles[id] = &component.Projectile{
		TargetID: fire.TargetID,
		Speed:    config.ProjectileSpeed,
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:  def.Visuals.Color,
		Radius: config.ProjectileRadius,
	}
}

func (g *Game) reapDead() {
	for id, enemy := range g.ECS.Enemies {
		if enemy.Dead || enemy.ReachedEnd {
			continue
		}
		health, ok := g.ECS.Healths[id]
		if !ok || health.Value > 0 {
			continue
		}
		enemy.Dead = true
		g.Score++
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.EnemyKilled,
			Data: event.EnemyPayload{ID: id, DefID: enemy.DefID},
		})
		g.ECS.RemoveEntity(id)
	}
	g.SpawnSystem.ApplyScore(g.Score)
}

// EnemyCount returns the number of live enemies, for the UI.
func (g *Game) EnemyCount() int {
	return len(g.ECS.Enemies)
}

// Reset rebuilds the session: new path, empty field, full base health. The
// selected difficulty carries over and can be changed again before Start.
func (g *Game) Reset() {
	g.Path = generatePath(g.Rng)
	g.ECS = entity.NewECS()
	g.SpawnSystem = system.NewSpawnSystem(g.ECS, g.Path, g.EventDispatcher, g.Rng)
	g.MovementSystem = system.NewMovementSystem(g.ECS, g.Path)
	g.CombatSystem = system.NewCombatSystem(g.ECS)
	g.ProjectileSystem = system.NewProjectileSystem(g.ECS)
	g.RenderSystem = system.NewRenderSystem(g.ECS, g.Path)
	g.Score = 0
	g.BaseHealth = config.BaseHealth
	g.selectedTowerType = defs.TowerLight
	g.gameTime = 0
	g.phase = component.PhaseNotStarted
}
