package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
)

var (
	flagTicks         int
	flagScript        string
	flagSimMode       string
	flagSimConfig     string
	flagSimDifficulty string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a game without a terminal",
	Long: `Runs the simulation headless with a scripted paddle and prints the outcome.

Scripts:
  idle   - The paddle never moves
  track  - The paddle follows the ball

Examples:
  arkanoid simulate
  arkanoid simulate --script track --ticks 20000
  arkanoid simulate --mode arkanoid_practice --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 10000, "Maximum number of ticks to simulate")
	simulateCmd.Flags().StringVar(&flagScript, "script", "track", "Paddle script: idle, track")
	simulateCmd.Flags().StringVar(&flagSimMode, "mode", "arkanoid", "Game mode: arkanoid, arkanoid_practice")
	simulateCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom game config YAML")
	simulateCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// Script chooses the input for the next tick from the current game state.
type Script func(g *arkanoid.Game) core.InputFrame

// scripts lists the available paddle scripts by name.
var scripts = map[string]Script{
	"idle":  idleScript,
	"track": trackScript,
}

func idleScript(*arkanoid.Game) core.InputFrame {
	return core.NewInputFrame()
}

// trackScript steers the paddle under the ball, with a small dead zone to avoid jitter.
func trackScript(g *arkanoid.Game) core.InputFrame {
	ball, paddle := g.Ball(), g.Paddle()
	deadZone := paddle.Speed / 2

	in := core.NewInputFrame()
	switch {
	case ball.X() < paddle.X()-deadZone:
		in.Set(core.ActionLeft)
	case ball.X() > paddle.X()+deadZone:
		in.Set(core.ActionRight)
	}
	return in
}

// SimulationResult summarizes a headless run.
type SimulationResult struct {
	Phase           arkanoid.Phase
	Ticks           int
	BricksRemaining int
	Hash            uint64
}

// simulate starts the game and steps it until it ends or maxTicks simulated ticks pass.
func simulate(g *arkanoid.Game, script Script, maxTicks int) SimulationResult {
	g.Step(core.InputOf(core.ActionStart))

	for g.Ticks() < maxTicks && !g.Phase().Terminal() {
		g.Step(script(g))
	}

	snap := g.Snapshot()
	return SimulationResult{
		Phase:           g.Phase(),
		Ticks:           g.Ticks(),
		BricksRemaining: g.BricksRemaining(),
		Hash:            snap.Hash(),
	}
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if err := validateSelection(flagSimMode, flagSimDifficulty); err != nil {
		return err
	}
	script, ok := scripts[flagScript]
	if !ok {
		return fmt.Errorf("unknown script %q (expected idle or track)", flagScript)
	}
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}

	logger, err := consoleLogger()
	if err != nil {
		return err
	}

	if _, loadErr := config.LoadArkanoid(flagSimConfig); loadErr != nil {
		logger.Warn("using default config", "error", loadErr)
	}

	arkanoid.SetConfigPath(flagSimConfig)
	arkanoid.SetDifficultyPreset(flagSimDifficulty)

	created, err := registry.Create(flagSimMode)
	if err != nil {
		return err
	}
	g, ok := created.(*arkanoid.Game)
	if !ok {
		return fmt.Errorf("mode %q cannot be simulated", flagSimMode)
	}

	g.Reset(core.RuntimeConfig{
		ScreenW:  core.DefaultConfig().ScreenW,
		ScreenH:  core.DefaultConfig().ScreenH,
		TickRate: flagFPS,
	})

	res := simulate(g, script, flagTicks)

	logger.Info("simulation finished",
		"mode", flagSimMode,
		"script", flagScript,
		"phase", res.Phase,
		"ticks", res.Ticks,
		"bricks", res.BricksRemaining,
	)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "mode:    %s\n", g.Title())
	fmt.Fprintf(out, "outcome: %s\n", res.Phase)
	fmt.Fprintf(out, "ticks:   %d\n", res.Ticks)
	fmt.Fprintf(out, "bricks:  %d/%d remaining\n", res.BricksRemaining, arkanoid.BrickCount)
	fmt.Fprintf(out, "hash:    %016x\n", res.Hash)

	return nil
}
