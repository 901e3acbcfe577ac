package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-dodger/internal/config"
)

// cliEnv holds environment settings that are not part of the game config.
type cliEnv struct {
	Seed     int64  `env:"DODGER_SEED"`
	LogLevel string `env:"DODGER_LOG_LEVEL" envDefault:"info"`
}

// settings is everything a run needs, resolved from flags, environment and files.
type settings struct {
	cfg      config.DodgerConfig
	seed     int64
	logLevel string
}

// resolveSettings merges config sources. Flags win over the environment,
// which wins over config files.
func resolveSettings(fps int, seed int64, cfgPath, difficulty, logLevel string) (settings, error) {
	preset, ok := config.ParsePreset(difficulty)
	if !ok {
		return settings{}, fmt.Errorf("unknown difficulty %q (expected easy, normal, hard or fixed)", difficulty)
	}

	cfg, err := config.Resolve(cfgPath, preset)
	if err != nil {
		return settings{}, err
	}
	if fps < 0 {
		return settings{}, fmt.Errorf("--fps must be positive, got %d", fps)
	}
	if fps > 0 {
		cfg.World.FPS = fps
	}

	var e cliEnv
	if err := config.ParseEnv(&e); err != nil {
		return settings{}, err
	}

	s := settings{cfg: cfg, seed: e.Seed, logLevel: e.LogLevel}
	if seed != 0 {
		s.seed = seed
	}
	if logLevel != "" {
		s.logLevel = logLevel
	}
	return s, nil
}

// newLogger builds the gameplay logger. Without a file the game runs in the
// alternate screen, so logs are discarded.
func newLogger(levelName, path string) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	var w io.Writer = io.Discard
	var closer io.Closer = nopCloser{}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dodger",
		Level:           level,
	})
	return logger, closer, nil
}

// closeLog closes the log file. A close failure is reported only when the
// run itself succeeded.
func closeLog(c io.Closer, err error) error {
	if cerr := c.Close(); cerr != nil && err == nil {
		return fmt.Errorf("close log file: %w", cerr)
	}
	return err
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
