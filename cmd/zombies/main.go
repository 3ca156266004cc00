// zombies is a top-down arcade shooter for the terminal.
//
// Usage:
//
//	zombies                  - Play (same as "zombies play")
//	zombies play             - Play the game
//	zombies simulate         - Run the game headless with the autopilot
//	zombies config dump      - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--mute                - Start with sound off
//	--log-file <path>     - Log destination (default: ~/.zombies/zombies.log)
//	--log-level <level>   - debug, info, warn or error
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
	flagMute       bool
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "zombies",
	Short: "Zombie Attack - survive the horde in your terminal",
	Long: `Zombie Attack is a top-down arcade shooter played in the terminal.
Walk the grid, aim with the mouse and hold the button to shoot. Waves
grow larger and arrive faster as you level up.

Available commands:
  play      - Play the game (default)
  simulate  - Run headless with the autopilot and print a summary
  config    - Inspect the configuration

Examples:
  zombies
  zombies --difficulty hard
  zombies --config ./my-zombies.yaml --mute
  zombies simulate --ticks 10000 --seed 42
  zombies config dump --difficulty easy`,
	RunE: runPlay,

	// main prints the error once
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with sound off")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", defaultLogFile, "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
