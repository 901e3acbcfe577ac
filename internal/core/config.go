package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Maximum frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the externally visible progress of a run.
type GameState struct {
	Score    int  // Light-years traveled
	Lives    int  // Remaining lives
	GameOver bool // Lives dropped to zero or below
}

// StepResult is returned by Game.Step after each frame.
type StepResult struct {
	State GameState
}
