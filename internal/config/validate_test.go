package config

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DodgerConfig)
	}{
		{"zero fps", func(c *DodgerConfig) { c.World.FPS = 0 }},
		{"negative rock interval", func(c *DodgerConfig) { c.Rocks.SpawnInterval = -1 }},
		{"zero powerup interval", func(c *DodgerConfig) { c.PowerUps.SpawnInterval = 0 }},
		{"empty widths", func(c *DodgerConfig) { c.Rocks.Widths = nil }},
		{"rock wider than world", func(c *DodgerConfig) { c.Rocks.Widths = []int{5000} }},
		{"inverted speed range", func(c *DodgerConfig) { c.Rocks.MinSpeed, c.Rocks.MaxSpeed = 300, 100 }},
		{"zero lives", func(c *DodgerConfig) { c.Progress.InitialLives = 0 }},
		{"zero cap step", func(c *DodgerConfig) { c.Difficulty.CapStep = 0 }},
		{"player too big", func(c *DodgerConfig) { c.Player.Radius = 600 }},
		{"empty star speed range", func(c *DodgerConfig) { c.Stars.MinSpeed = c.Stars.MaxSpeed }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDodgerConfig()
			tc.mutate(&cfg)
			if err := Validate(cfg); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	if err := Validate(DefaultDodgerConfig()); err != nil {
		t.Errorf("defaults should be valid: %v", err)
	}
}
