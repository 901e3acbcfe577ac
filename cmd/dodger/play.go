package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-dodger/internal/core"
	"github.com/vovakirdan/space-dodger/internal/games/dodger"
	"github.com/vovakirdan/space-dodger/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Space Rock Dodger",
	Long: `Start a run. The run ends when you lose your last life, press Esc,
or quit with Q/Ctrl+C. On game over the final distance is printed.

Difficulty options:
  easy   - 5 lives
  normal - 3 lives
  hard   - 2 lives, rocks every 1.2 seconds
  fixed  - No progression: rock speed and count never grow

Examples:
  dodger play
  dodger play --difficulty easy
  dodger play --config ./my-dodger.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	if err := play(cmd.OutOrStdout()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play(out io.Writer) (err error) {
	s, err := resolveSettings(flagFPS, flagSeed, flagConfig, flagDifficulty, flagLogLevel)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(s.logLevel, flagLogFile)
	if err != nil {
		return err
	}
	defer func() { err = closeLog(closer, err) }()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: s.cfg.World.FPS,
		Seed:     s.seed,
	}

	game := dodger.New(s.cfg, dodger.WithLogger(logger))
	logger.Info("starting", "fps", runtime.TickRate, "screen", fmt.Sprintf("%dx%d", width, height))

	hold := time.Duration(s.cfg.Input.HoldMillis) * time.Millisecond
	res, err := tui.Run(game, runtime, hold)
	if err != nil {
		return err
	}

	if res.GameOver {
		fmt.Fprintf(out, "GAME OVER! Final light-years: %d\n", res.Lightyears)
	}
	return nil
}
