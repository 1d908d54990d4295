package arkanoid

import (
	"slices"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
)

// Phase is the game's position in its lifecycle.
// NotStarted -> Running -> Won | Lost. Won and Lost are terminal.
type Phase int

const (
	PhaseNotStarted Phase = iota // Title screen, waiting for the start input
	PhaseRunning                 // Ball in play
	PhaseWon                     // Every brick destroyed
	PhaseLost                    // Ball crossed the floor
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseRunning:
		return "running"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends the run.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// Message returns the text shown to the player in this phase.
func (p Phase) Message() string {
	switch p {
	case PhaseNotStarted:
		return "Press Space to Start!"
	case PhaseWon:
		return "You win!"
	case PhaseLost:
		return "You lose!"
	default:
		return ""
	}
}

// GameMode selects which floor rule applies.
type GameMode int

const (
	ModeClassic  GameMode = iota // Floor ends the game
	ModePractice                 // Floor bounces; only clearing the bricks ends the game
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParseDifficulty(preset)
}

// Game owns the ball, the paddle and the live bricks, and advances them one tick at a time.
type Game struct {
	mode GameMode

	// Game objects
	world  World
	ball   Ball
	paddle Paddle
	bricks []Brick

	// Game state
	phase     Phase
	paused    bool
	tickCount int

	// Configuration
	runtime core.RuntimeConfig
	cfg     config.ArkanoidConfig

	// Minimum terminal size for rendering
	minScreenW int
	minScreenH int
}

// New creates a new Arkanoid game instance (classic mode).
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewPractice creates a new Arkanoid game instance in practice mode.
func NewPractice() *Game {
	return &Game{mode: ModePractice}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModePractice {
		return "arkanoid_practice"
	}
	return "arkanoid"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModePractice {
		return "Arkanoid (Practice)"
	}
	return "Arkanoid"
}

// Reset loads configuration and initializes or restarts the game.
// A config that fails to load falls back to the defaults.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadArkanoid(configPath)
	if err != nil {
		cfg = config.DefaultArkanoidConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyArkanoidPreset(&cfg, difficultyPreset)
	}

	g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig initializes the game from an explicit configuration.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.ArkanoidConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.world = World{Width: cfg.World.Width, Height: cfg.World.Height}

	g.minScreenW = 30
	g.minScreenH = 12

	g.ball, g.paddle = newEntities(cfg)
	g.bricks = NewBrickGrid()

	g.phase = PhaseNotStarted
	g.paused = false
	g.tickCount = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Handle restart
	if in.Has(core.ActionRestart) && g.phase.Terminal() {
		g.ResetWithConfig(g.runtime, g.cfg)
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case PhaseNotStarted:
		if in.Has(core.ActionStart) {
			g.phase = PhaseRunning
		}
	case PhaseRunning:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if !g.paused {
			g.tick(in)
		}
	}

	return core.StepResult{State: g.State()}
}

// tick runs one simulation frame: motion, collisions, cleanup, terminal check.
func (g *Game) tick(in core.InputFrame) {
	g.tickCount++

	g.ball.Update(g.world, g.mode == ModePractice)
	g.paddle.Update(in, g.world)

	CheckPaddleCollision(&g.paddle, &g.ball)

	// Collision tests only mark bricks dead; removal happens in a separate pass.
	for i := range g.bricks {
		CheckBrickCollision(&g.bricks[i], &g.ball)
	}
	g.bricks = slices.DeleteFunc(g.bricks, func(b Brick) bool {
		return !b.Alive
	})

	if len(g.bricks) == 0 {
		g.phase = PhaseWon
	} else if g.ball.OutOfBounds {
		g.phase = PhaseLost
	}
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// BricksRemaining returns the number of live bricks.
func (g *Game) BricksRemaining() int {
	return len(g.bricks)
}

// Ticks returns the number of simulated ticks since the game started running.
func (g *Game) Ticks() int {
	return g.tickCount
}

// Ball returns a copy of the ball.
func (g *Game) Ball() Ball {
	return g.ball
}

// Paddle returns a copy of the paddle.
func (g *Game) Paddle() Paddle {
	return g.paddle
}

// World returns the playfield bounds.
func (g *Game) World() World {
	return g.world
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Started:  g.phase != PhaseNotStarted,
		GameOver: g.phase.Terminal(),
		Won:      g.phase == PhaseWon,
		Paused:   g.paused,
	}
}

// Register the games with the registry
func init() {
	registry.Register("arkanoid", func() registry.Game {
		return New()
	})
	registry.Register("arkanoid_practice", func() registry.Game {
		return NewPractice()
	})
}
