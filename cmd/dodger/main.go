// dodger is Space Rock Dodger: steer a ship through falling rocks in the
// terminal and travel as many light-years as you can.
//
// Usage:
//
//	dodger                   - Play
//	dodger play              - Play (same as above)
//	dodger config            - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>             - Frame rate cap (default: from config, 60)
//	--seed <value>           - RNG seed for reproducible runs
//	--config <path>          - Custom config YAML
//	--difficulty <preset>    - easy, normal, hard or fixed
//	--log-level <level>      - debug, info, warn or error
//	--log-file <path>        - Write gameplay logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodger",
	Short: "Space Rock Dodger - dodge falling rocks in your terminal",
	Long: `Space Rock Dodger puts you in a ship at the bottom of the screen.
Rocks fall from above; touching one costs a life. Power-ups help:

  »  boost       - double speed for 3 seconds
  +  wrench      - one extra life
  ◊  invincible  - no damage for 3 seconds

The score is the distance traveled in light-years. Rocks get faster and
more numerous the farther you go.

Controls:
  WASD/Arrows       - Move
  Shift+direction   - Run (double speed)
  Esc               - Cancel
  Q/Ctrl+C          - Quit

Examples:
  dodger
  dodger --difficulty hard
  dodger --seed 42 --fps 30
  dodger --log-file dodger.log --log-level debug
  dodger config > my-dodger.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate cap (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = DODGER_SEED or time based)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default info)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write gameplay logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
