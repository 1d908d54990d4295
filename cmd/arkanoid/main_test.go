package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
)

func newSimGame(practice bool) *arkanoid.Game {
	g := arkanoid.New()
	if practice {
		g = arkanoid.NewPractice()
	}
	g.ResetWithConfig(core.DefaultConfig(), config.DefaultArkanoidConfig())
	return g
}

func TestSimulateIsDeterministic(t *testing.T) {
	for name, script := range scripts {
		t.Run(name, func(t *testing.T) {
			a := simulate(newSimGame(false), script, 3000)
			b := simulate(newSimGame(false), script, 3000)
			if a != b {
				t.Errorf("runs differ: %+v vs %+v", a, b)
			}
			if a.Ticks > 3000 {
				t.Errorf("simulated %d ticks, limit was 3000", a.Ticks)
			}
			if !a.Phase.Terminal() && a.Ticks != 3000 {
				t.Errorf("run stopped early in phase %v after %d ticks", a.Phase, a.Ticks)
			}
		})
	}
}

func TestSimulatePracticeNeverLoses(t *testing.T) {
	res := simulate(newSimGame(true), idleScript, 5000)
	if res.Phase == arkanoid.PhaseLost {
		t.Error("practice mode should never lose")
	}
}

func TestTrackScriptFollowsBall(t *testing.T) {
	g := newSimGame(false)

	// Ball starts at the paddle's x, so tracking holds still
	if in := trackScript(g); in.Has(core.ActionLeft) || in.Has(core.ActionRight) {
		t.Error("paddle under the ball should not move")
	}

	g.Step(core.InputOf(core.ActionStart))
	for range 20 {
		g.Step(core.NewInputFrame())
	}
	// Ball has drifted left of the idle paddle
	if in := trackScript(g); !in.Has(core.ActionLeft) {
		t.Errorf("paddle should chase the ball left, ball x=%v paddle x=%v", g.Ball().X(), g.Paddle().X())
	}
}

func TestValidateSelection(t *testing.T) {
	tests := []struct {
		name       string
		mode       string
		difficulty string
		wantErr    bool
	}{
		{"empty", "", "", false},
		{"classic hard", "arkanoid", "hard", false},
		{"practice", "arkanoid_practice", "", false},
		{"unknown mode", "tetris", "", true},
		{"unknown difficulty", "", "nightmare", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateSelection(tc.mode, tc.difficulty)
			if (err != nil) != tc.wantErr {
				t.Errorf("validateSelection() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestEffectiveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arkanoid.yaml")
	if err := os.WriteFile(path, []byte("ball:\n  speed: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := effectiveConfig(path, "hard")
	if err != nil {
		t.Fatalf("effectiveConfig() error = %v", err)
	}
	if cfg.Ball.Speed != 6 {
		t.Errorf("Ball.Speed = %v, expected 6", cfg.Ball.Speed)
	}
	if cfg.Paddle.Speed != 12 {
		t.Errorf("Paddle.Speed = %v, expected 12", cfg.Paddle.Speed)
	}

	if _, err := effectiveConfig(filepath.Join(t.TempDir(), "missing.yaml"), ""); err == nil {
		t.Error("missing config file should be an error")
	}
}

func TestListCommand(t *testing.T) {
	var buf bytes.Buffer
	listCmd.SetOut(&buf)
	runList(listCmd, nil)

	out := buf.String()
	for _, want := range []string{"arkanoid", "arkanoid_practice", "Arkanoid (Practice)"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output should contain %q, got:\n%s", want, out)
		}
	}
}

func TestRootFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()
	for _, name := range []string{"fps", "log-level", "log-file"} {
		if flags.Lookup(name) == nil {
			t.Errorf("root command should define --%s", name)
		}
	}
	// The simulation has no randomness to seed
	if flags.Lookup("seed") != nil {
		t.Error("root command should not define --seed")
	}
}
