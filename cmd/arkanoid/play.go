package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/platform/tui"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMode       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Arkanoid",
	Long: `Start a game. Without --mode and --difficulty a selection screen asks for them.

Controls:
  Left/A, Right/D  - Move the paddle
  Space            - Start the round
  P/Esc            - Pause
  R                - Restart (after winning or losing)
  Q/Ctrl+C         - Quit

Modes:
  arkanoid           - The ball falling past the paddle loses the round
  arkanoid_practice  - The floor bounces; clear every brick to finish

Difficulty options:
  easy    - Ball and paddle at 75% speed
  normal  - Classic speed
  hard    - Ball and paddle at 150% speed

Examples:
  arkanoid play
  arkanoid play --mode arkanoid --difficulty hard
  arkanoid play --config ./my-arkanoid.yaml --log-file arkanoid.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Game mode: arkanoid, arkanoid_practice")
}

// validateSelection checks the --mode and --difficulty flags before any screen is shown.
func validateSelection(mode, difficulty string) error {
	if mode != "" && !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q (run 'arkanoid list' to see available modes)", mode)
	}
	if difficulty != "" && config.ParseDifficulty(difficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (expected easy, normal or hard)", difficulty)
	}
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	if err := validateSelection(flagMode, flagDifficulty); err != nil {
		return err
	}

	console, err := consoleLogger()
	if err != nil {
		return err
	}

	// Surface config problems before the screen is taken over
	if _, loadErr := config.LoadArkanoid(flagConfig); loadErr != nil {
		console.Warn("using default config", "error", loadErr)
	}

	// Get terminal size early for the selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	selection, err := tui.RunSelector(cfg, tui.Selection{
		GameID:     flagMode,
		Difficulty: config.ParseDifficulty(flagDifficulty),
	})
	if err != nil {
		return err
	}
	// User pressed back or quit
	if selection == nil {
		return nil
	}

	arkanoid.SetConfigPath(flagConfig)
	arkanoid.SetDifficultyPreset(string(selection.Difficulty))

	game, err := registry.Create(selection.GameID)
	if err != nil {
		return err
	}

	logger, closeLog, err := sessionLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("starting game", "mode", selection.GameID, "difficulty", selection.Difficulty, "fps", cfg.TickRate)

	return tui.Run(game, cfg, logger)
}
