package config

import (
	"errors"
	"fmt"
)

// Validate checks the startup preconditions of the simulation.
// None of the game components tolerate these values at runtime.
func Validate(cfg DodgerConfig) error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(cfg.World.Width > 0 && cfg.World.Height > 0, "world size must be positive, got %vx%v", cfg.World.Width, cfg.World.Height)
	check(cfg.World.FPS > 0, "world.fps must be positive, got %d", cfg.World.FPS)

	check(cfg.Player.Radius > 0, "player.radius must be positive, got %v", cfg.Player.Radius)
	check(2*cfg.Player.Radius <= cfg.World.Width && 2*cfg.Player.Radius <= cfg.World.Height, "player does not fit in the world")
	check(cfg.Player.Speed >= 0, "player.speed must not be negative, got %v", cfg.Player.Speed)
	check(cfg.Player.RunMultiplier >= 1, "player.run_multiplier must be at least 1, got %v", cfg.Player.RunMultiplier)

	check(len(cfg.Rocks.Widths) > 0, "rocks.widths must not be empty")
	for _, w := range cfg.Rocks.Widths {
		check(w > 0 && float64(w) <= cfg.World.Width, "rock width %d out of range", w)
	}
	check(len(cfg.Rocks.Heights) > 0, "rocks.heights must not be empty")
	for _, h := range cfg.Rocks.Heights {
		check(h > 0, "rock height %d must be positive", h)
	}
	check(cfg.Rocks.MinSpeed >= 0 && cfg.Rocks.MinSpeed <= cfg.Rocks.MaxSpeed, "rocks speed range [%d, %d] is invalid", cfg.Rocks.MinSpeed, cfg.Rocks.MaxSpeed)
	check(cfg.Rocks.SpawnInterval > 0, "rocks.spawn_interval must be positive, got %v", cfg.Rocks.SpawnInterval)
	check(cfg.Rocks.HitInvincibility > 0, "rocks.hit_invincibility must be positive, got %v", cfg.Rocks.HitInvincibility)
	check(cfg.Rocks.DamagePerHit > 0, "rocks.damage_per_hit must be positive, got %d", cfg.Rocks.DamagePerHit)

	check(cfg.PowerUps.SpawnInterval > 0, "powerups.spawn_interval must be positive, got %v", cfg.PowerUps.SpawnInterval)
	check(cfg.PowerUps.Radius > 0 && cfg.PowerUps.WrenchRadius > 0, "powerup radii must be positive")
	check(cfg.PowerUps.Speed >= 0, "powerups.speed must not be negative, got %v", cfg.PowerUps.Speed)
	check(cfg.PowerUps.SpawnMargin >= 0 && float64(2*cfg.PowerUps.SpawnMargin) <= cfg.World.Width, "powerups.spawn_margin %d out of range", cfg.PowerUps.SpawnMargin)
	check(cfg.PowerUps.BoostDuration > 0, "powerups.boost_duration must be positive, got %v", cfg.PowerUps.BoostDuration)
	check(cfg.PowerUps.BoostMultiplier >= 1, "powerups.boost_multiplier must be at least 1, got %v", cfg.PowerUps.BoostMultiplier)
	check(cfg.PowerUps.InvincibleDuration > 0, "powerups.invincible_duration must be positive, got %v", cfg.PowerUps.InvincibleDuration)

	check(cfg.Stars.Count >= 0, "stars.count must not be negative, got %d", cfg.Stars.Count)
	check(cfg.Stars.MinSpeed >= 0 && cfg.Stars.MinSpeed < cfg.Stars.MaxSpeed, "stars speed range [%v, %v) is invalid", cfg.Stars.MinSpeed, cfg.Stars.MaxSpeed)
	check(cfg.Stars.MinSize > 0 && cfg.Stars.MinSize <= cfg.Stars.MaxSize, "stars size range [%d, %d] is invalid", cfg.Stars.MinSize, cfg.Stars.MaxSize)

	check(cfg.Progress.InitialLives > 0, "progress.initial_lives must be positive, got %d", cfg.Progress.InitialLives)
	check(cfg.Progress.LightyearsPerSec >= 0, "progress.lightyears_per_sec must not be negative, got %v", cfg.Progress.LightyearsPerSec)

	check(cfg.Difficulty.SpeedDistance > 0, "difficulty.speed_distance must be positive, got %d", cfg.Difficulty.SpeedDistance)
	check(cfg.Difficulty.CapStep > 0, "difficulty.cap_step must be positive, got %d", cfg.Difficulty.CapStep)
	check(cfg.Difficulty.BaseCap >= 0 && cfg.Difficulty.BaseCap <= cfg.Difficulty.MaxCap, "difficulty cap range [%d, %d] is invalid", cfg.Difficulty.BaseCap, cfg.Difficulty.MaxCap)

	check(cfg.Input.HoldMillis > 0, "input.hold_ms must be positive, got %d", cfg.Input.HoldMillis)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
