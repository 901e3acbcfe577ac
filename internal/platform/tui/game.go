package tui

import "github.com/vovakirdan/space-dodger/internal/core"

// Game is what the platform needs from a game. Games hold pure simulation
// logic and never import Bubble Tea.
type Game interface {
	// ID returns a short identifier such as "dodger".
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset initializes or restarts the game.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by dt seconds with the held actions in.
	Step(dt float64, in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}
