package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from environment variables into target.
// Fields whose variables are unset keep their current values.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// dodgerEnv holds the environment overrides for the game config.
type dodgerEnv struct {
	FPS         int     `env:"DODGER_FPS"`
	Lives       int     `env:"DODGER_LIVES"`
	PlayerSpeed float64 `env:"DODGER_PLAYER_SPEED"`
	Stars       int     `env:"DODGER_STARS"`
	HoldMillis  int     `env:"DODGER_HOLD_MS"`
}

// ApplyEnv overlays DODGER_* environment variables onto cfg.
func ApplyEnv(cfg *DodgerConfig) error {
	e := dodgerEnv{
		FPS:         cfg.World.FPS,
		Lives:       cfg.Progress.InitialLives,
		PlayerSpeed: cfg.Player.Speed,
		Stars:       cfg.Stars.Count,
		HoldMillis:  cfg.Input.HoldMillis,
	}
	if err := ParseEnv(&e); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	cfg.World.FPS = e.FPS
	cfg.Progress.InitialLives = e.Lives
	cfg.Player.Speed = e.PlayerSpeed
	cfg.Stars.Count = e.Stars
	cfg.Input.HoldMillis = e.HoldMillis
	return nil
}
