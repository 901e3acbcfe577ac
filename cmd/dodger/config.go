package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-dodger/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a run would use, after config files,
DODGER_* environment variables, --difficulty and --fps are applied.

Use the output as a starting point for a custom config:
  dodger config > ~/.arcade/configs/dodger.yaml

Environment overrides:
  DODGER_FPS, DODGER_LIVES, DODGER_PLAYER_SPEED, DODGER_STARS, DODGER_HOLD_MS`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, _ []string) {
	if err := printConfig(cmd.OutOrStdout()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printConfig(out io.Writer) error {
	if flagDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	s, err := resolveSettings(flagFPS, flagSeed, flagConfig, flagDifficulty, flagLogLevel)
	if err != nil {
		return err
	}
	data, err := config.Marshal(s.cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
