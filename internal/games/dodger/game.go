// Package dodger implements Space Rock Dodger: the player steers a ship
// through falling rocks, collects power-ups and travels as many light-years
// as possible before running out of lives.
package dodger

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-dodger/internal/config"
	"github.com/vovakirdan/space-dodger/internal/core"
)

// Game wraps a World with the platform-facing lifecycle.
type Game struct {
	world   *World
	cfg     config.DodgerConfig
	runtime core.RuntimeConfig
	logger  *log.Logger
	frames  int
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for gameplay events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// New creates a game for cfg. Panics if cfg is invalid; callers validate
// configuration at startup.
func New(cfg config.DodgerConfig, opts ...Option) *Game {
	if err := config.Validate(cfg); err != nil {
		panic(err)
	}
	g := &Game{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dodger"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Rock Dodger"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.world = NewWorld(g.cfg, runtime.Seed)
	g.frames = 0
	g.logger.Debug("world reset", "seed", runtime.Seed, "stars", len(g.world.Stars))
}

// Step advances the game by one frame of dt seconds.
// Once the game is over further steps change nothing.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	if g.world.Progress.GameOver() {
		return core.StepResult{State: g.State()}
	}

	g.frames++
	ev := g.world.Step(dt, in)
	g.logEvents(ev)

	if g.world.Progress.GameOver() {
		g.logger.Info("game over",
			"lightyears", g.world.Progress.Lightyears,
			"frames", g.frames,
		)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) logEvents(ev Events) {
	if ev.RocksSpawned > 0 {
		g.logger.Debug("rock spawned", "live", len(g.world.Rocks), "cap", g.world.Progress.ObstacleCap)
	}
	for _, k := range ev.PowerUpsSpawned {
		g.logger.Debug("power-up spawned", "kind", k)
	}
	if ev.Hits > 0 {
		g.logger.Info("hit", "lives", g.world.Progress.Lives, "lightyears", g.world.Progress.Lightyears)
	}
	for _, k := range ev.Collected {
		g.logger.Info("power-up collected", "kind", k, "lives", g.world.Progress.Lives)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Progress.Lightyears,
		Lives:    g.world.Progress.Lives,
		GameOver: g.world.Progress.GameOver(),
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	vp := newViewport(g.world.Width, g.world.Height, dst.Width(), dst.Height())
	w := g.world

	for _, s := range w.Stars {
		vp.drawStar(dst, s)
	}
	for i := range w.Rocks {
		vp.drawRock(dst, &w.Rocks[i])
	}
	for _, p := range w.PowerUps {
		vp.drawPowerUp(dst, p)
	}
	vp.drawPlayer(dst, &w.Player)

	g.drawHUD(dst)
}

// drawHUD renders the distance and lives labels plus active effects.
func (g *Game) drawHUD(dst *core.Screen) {
	p := &g.world.Player

	dst.DrawText(2, 0, fmt.Sprintf("LIGHT-YEARS: %d", g.world.Progress.Lightyears), core.ColorWhite)

	lives := fmt.Sprintf("LIVES: %d", g.world.Progress.Lives)
	dst.DrawText(dst.Width()-len(lives)-2, 0, lives, core.ColorWhite)

	x := 2
	if p.Boosted() {
		label := fmt.Sprintf("BOOST %.1fs", p.BoostTime)
		dst.DrawText(x, 1, label, KindBoost.Color())
		x += len(label) + 2
	}
	if p.Invincible {
		dst.DrawText(x, 1, fmt.Sprintf("SHIELD %.1fs", p.InvincibleTime), core.ColorOrange)
	}
}
