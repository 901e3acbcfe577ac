package config

import (
	_ "embed"
)

//go:embed defaults/dodger.yaml
var defaultDodgerYAML []byte

// DefaultDodgerConfig returns the default Space Rock Dodger configuration.
func DefaultDodgerConfig() DodgerConfig {
	return DodgerConfig{
		World: WorldConfig{
			Width:  1920,
			Height: 1080,
			FPS:    60,
		},
		Player: PlayerConfig{
			Radius:        35,
			Speed:         400,
			RunMultiplier: 2,
			StartOffsetY:  100,
		},
		Rocks: RockConfig{
			Widths:           []int{200, 300, 400},
			Heights:          []int{20, 30, 50, 80},
			MinSpeed:         100,
			MaxSpeed:         250,
			SpawnInterval:    1.5,
			HitInvincibility: 1.5,
			DamagePerHit:     1,
		},
		PowerUps: PowerUpConfig{
			SpawnInterval:      5.0,
			Radius:             20,
			WrenchRadius:       30,
			Speed:              200,
			SpawnMargin:        50,
			BoostDuration:      3.0,
			BoostMultiplier:    2,
			InvincibleDuration: 3.0,
		},
		Stars: StarConfig{
			Count:    100,
			MinSpeed: 20,
			MaxSpeed: 100,
			MinSize:  1,
			MaxSize:  3,
		},
		Progress: ProgressConfig{
			InitialLives:     3,
			LightyearsPerSec: 1000,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			SpeedDistance: 500000,
			BaseCap:       5,
			CapStep:       50000,
			MaxCap:        20,
		},
		Input: InputConfig{
			HoldMillis: 150,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDodgerYAML
}
