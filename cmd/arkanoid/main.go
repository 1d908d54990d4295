// arkanoid is a brick breaker that runs in the terminal.
//
// Usage:
//
//	arkanoid play              - Pick a mode and difficulty, then play
//	arkanoid list              - List available game modes
//	arkanoid simulate          - Run a game headless and print the outcome
//	arkanoid config            - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs here while the game owns the terminal
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
)

var (
	// Global flags
	flagFPS      int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid",
	Short: "Arkanoid - break bricks in your terminal",
	Long: `Arkanoid is a terminal brick breaker. Steer the paddle, keep the ball
in play and destroy every brick to win.

Available commands:
  play      - Play the game
  list      - Show available game modes
  simulate  - Run a game without a terminal
  config    - Print the effective configuration

Examples:
  arkanoid play
  arkanoid play --mode arkanoid_practice --difficulty easy
  arkanoid simulate --ticks 5000 --script track
  arkanoid config --difficulty hard`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file used while the game is on screen")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
