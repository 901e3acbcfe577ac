// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// DodgerConfig contains all configuration for Space Rock Dodger.
type DodgerConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Rocks      RockConfig       `yaml:"rocks"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Stars      StarConfig       `yaml:"stars"`
	Progress   ProgressConfig   `yaml:"progress"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Input      InputConfig      `yaml:"input"`
}

// WorldConfig defines the logical play field and frame rate cap.
// The field is scaled onto whatever terminal size is available.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	FPS    int     `yaml:"fps"`
}

// PlayerConfig defines the ship.
type PlayerConfig struct {
	Radius        float64 `yaml:"radius"`
	Speed         float64 `yaml:"speed"`          // Pixels per second
	RunMultiplier float64 `yaml:"run_multiplier"` // Applied while Run is held
	StartOffsetY  float64 `yaml:"start_offset_y"` // Distance of spawn point from the bottom edge
}

// RockConfig defines falling obstacles.
type RockConfig struct {
	Widths           []int   `yaml:"widths"`
	Heights          []int   `yaml:"heights"`
	MinSpeed         int     `yaml:"min_speed"`
	MaxSpeed         int     `yaml:"max_speed"`
	SpawnInterval    float64 `yaml:"spawn_interval"`    // Seconds
	HitInvincibility float64 `yaml:"hit_invincibility"` // Seconds of shield after a hit
	DamagePerHit     int     `yaml:"damage_per_hit"`
}

// PowerUpConfig defines power-up spawning and effects.
type PowerUpConfig struct {
	SpawnInterval      float64 `yaml:"spawn_interval"` // Seconds
	Radius             float64 `yaml:"radius"`
	WrenchRadius       float64 `yaml:"wrench_radius"`
	Speed              float64 `yaml:"speed"`
	SpawnMargin        int     `yaml:"spawn_margin"`
	BoostDuration      float64 `yaml:"boost_duration"`
	BoostMultiplier    float64 `yaml:"boost_multiplier"`
	InvincibleDuration float64 `yaml:"invincible_duration"`
}

// StarConfig defines the decorative background particles.
type StarConfig struct {
	Count    int     `yaml:"count"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
	MinSize  int     `yaml:"min_size"`
	MaxSize  int     `yaml:"max_size"`
}

// ProgressConfig defines scoring and lives.
type ProgressConfig struct {
	InitialLives     int     `yaml:"initial_lives"`
	LightyearsPerSec float64 `yaml:"lightyears_per_sec"`
}

// DifficultyConfig defines how the game gets harder as distance grows.
type DifficultyConfig struct {
	Enabled       bool `yaml:"enabled"`
	SpeedDistance int  `yaml:"speed_distance"` // Distance that adds +1 to the rock speed multiplier
	BaseCap       int  `yaml:"base_cap"`       // Obstacle cap at distance 0
	CapStep       int  `yaml:"cap_step"`       // Distance per additional allowed rock
	MaxCap        int  `yaml:"max_cap"`
}

// InputConfig tunes the terminal input adapter.
type InputConfig struct {
	HoldMillis int `yaml:"hold_ms"` // How long a key counts as held after its last press
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Empty means "use config".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	case "":
		return "", true
	default:
		return "", false
	}
}
