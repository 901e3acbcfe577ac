package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decode(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML failed to parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultDodgerConfig()) {
		t.Errorf("embedded defaults differ from DefaultDodgerConfig():\n%+v\n%+v", cfg, DefaultDodgerConfig())
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadCustomPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dodger.yaml")
	data := "player:\n  speed: 800\nstars:\n  count: 10\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player.Speed != 800 {
		t.Errorf("Player.Speed = %v, expected 800", cfg.Player.Speed)
	}
	if cfg.Stars.Count != 10 {
		t.Errorf("Stars.Count = %d, expected 10", cfg.Stars.Count)
	}
	// Untouched sections keep their defaults
	if cfg.Player.Radius != 35 || cfg.Rocks.SpawnInterval != 1.5 {
		t.Errorf("unset fields should keep defaults, got %+v", cfg.Player)
	}
}

func TestLoadMissingCustomFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() of a missing custom file should fail")
	}
	if !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadBrokenCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("player: [this is not a map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() of malformed YAML should fail")
	}
}

func TestResolveRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rocks:\n  spawn_interval: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Resolve(path, "")
	if err == nil {
		t.Fatal("Resolve() should reject a negative spawn interval")
	}
	if !strings.Contains(err.Error(), "rocks.spawn_interval") {
		t.Errorf("error should name the bad field: %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("DODGER_FPS", "30")
	t.Setenv("DODGER_LIVES", "7")
	t.Setenv("DODGER_PLAYER_SPEED", "555.5")

	cfg := DefaultDodgerConfig()
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("ApplyEnv() failed: %v", err)
	}
	if cfg.World.FPS != 30 {
		t.Errorf("FPS = %d, expected 30", cfg.World.FPS)
	}
	if cfg.Progress.InitialLives != 7 {
		t.Errorf("InitialLives = %d, expected 7", cfg.Progress.InitialLives)
	}
	if cfg.Player.Speed != 555.5 {
		t.Errorf("Player.Speed = %v, expected 555.5", cfg.Player.Speed)
	}
	// Unset variables keep current values
	if cfg.Stars.Count != 100 {
		t.Errorf("Stars.Count = %d, expected 100", cfg.Stars.Count)
	}
}

func TestApplyEnvInvalidValue(t *testing.T) {
	t.Setenv("DODGER_FPS", "fast")

	cfg := DefaultDodgerConfig()
	if err := ApplyEnv(&cfg); err == nil {
		t.Fatal("ApplyEnv() should fail on a non-numeric FPS")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		lives    int
		enabled  bool
		interval float64
	}{
		{"", 3, true, 1.5},
		{DifficultyEasy, 5, true, 1.5},
		{DifficultyNormal, 3, true, 1.5},
		{DifficultyHard, 2, true, 1.2},
		{DifficultyFixed, 3, false, 1.5},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultDodgerConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Progress.InitialLives != tc.lives {
				t.Errorf("InitialLives = %d, expected %d", cfg.Progress.InitialLives, tc.lives)
			}
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Difficulty.Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Rocks.SpawnInterval != tc.interval {
				t.Errorf("SpawnInterval = %v, expected %v", cfg.Rocks.SpawnInterval, tc.interval)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("insane"); ok {
		t.Error("ParsePreset should reject unknown presets")
	}
	if p, ok := ParsePreset(""); !ok || p != "" {
		t.Error("empty preset should be accepted as no preset")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultDodgerConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "spawn_interval: 1.5") {
		t.Errorf("marshaled YAML missing rock interval:\n%s", data)
	}
}
