package arkanoid

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

func TestRenderProjectsWorld(t *testing.T) {
	g := New()
	g.ResetWithConfig(testRuntime, config.DefaultArkanoidConfig())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// 800x600 world on 80x24 cells: x/10, y/25, edges rounded
	tests := []struct {
		name  string
		x, y  int
		want  rune
		color core.Color
	}{
		{"ball center", 40, 16, BallChar, core.ColorBall},
		{"paddle left", 36, 20, PaddleChar, core.ColorPaddle},
		{"paddle right", 43, 20, PaddleChar, core.ColorPaddle},
		{"above paddle", 40, 19, ' ', core.ColorDefault},
		{"left of first brick", 5, 1, ' ', core.ColorDefault},
		{"first brick", 6, 1, BrickGlyphs[0], core.ColorBrick},
		{"first brick right edge", 11, 1, BrickGlyphs[0], core.ColorBrick},
		{"second column brick", 12, 1, BrickGlyphs[1], core.ColorBrick},
		{"second row brick", 6, 2, BrickGlyphs[1], core.ColorBrick},
		{"empty beside paddle", 20, 20, ' ', core.ColorDefault},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cell := screen.GetCell(tc.x, tc.y)
			if cell.Rune != tc.want {
				t.Errorf("cell (%d, %d) = %q, expected %q", tc.x, tc.y, cell.Rune, tc.want)
			}
			if cell.Color != tc.color {
				t.Errorf("cell (%d, %d) color = %v, expected %v", tc.x, tc.y, cell.Color, tc.color)
			}
		})
	}

	if !strings.Contains(screen.String(), "Press Space to Start!") {
		t.Error("title screen should show the start prompt")
	}
}

func TestRenderBricksNeverShareCells(t *testing.T) {
	sizes := []struct{ w, h int }{{80, 24}, {120, 40}, {200, 60}}

	for _, size := range sizes {
		g := New()
		g.ResetWithConfig(testRuntime, config.DefaultArkanoidConfig())
		p := newProjection(g.world, core.NewScreen(size.w, size.h))

		owner := make(map[[2]int]int)
		for i, b := range g.bricks {
			x0, x1 := span(b.Left(), b.Right(), p.sx)
			y0, y1 := span(b.Top(), b.Bottom(), p.sy)
			for y := y0; y <= y1; y++ {
				for x := x0; x <= x1; x++ {
					if prev, taken := owner[[2]int{x, y}]; taken {
						t.Errorf("%dx%d: cell (%d, %d) claimed by bricks %d and %d", size.w, size.h, x, y, prev, i)
					}
					owner[[2]int{x, y}] = i
				}
			}
		}
	}
}

func TestSpan(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float64
		scale  float64
		wantLo int
		wantHi int
	}{
		{"whole cells", 0, 30, 0.1, 0, 2},
		{"rounds edges", 55, 115, 0.1, 6, 11},
		{"neighbour starts after gap", 118, 178, 0.1, 12, 17},
		{"narrow widened to one cell", 36, 56, 0.02, 1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lo, hi := span(tc.lo, tc.hi, tc.scale)
			if lo != tc.wantLo || hi != tc.wantHi {
				t.Errorf("span(%v, %v, %v) = (%d, %d), expected (%d, %d)", tc.lo, tc.hi, tc.scale, lo, hi, tc.wantLo, tc.wantHi)
			}
		})
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game)
		want  []string
	}{
		{"paused", func(g *Game) {
			g.phase = PhaseRunning
			g.paused = true
		}, []string{"PAUSED", "Press P to resume"}},
		{"won", func(g *Game) {
			g.phase = PhaseWon
		}, []string{"You win!", "Press R to restart"}},
		{"lost", func(g *Game) {
			g.phase = PhaseLost
		}, []string{"You lose!", "Press R to restart"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := New()
			g.ResetWithConfig(testRuntime, config.DefaultArkanoidConfig())
			tc.setup(g)

			screen := core.NewScreen(80, 24)
			g.Render(screen)
			out := screen.String()

			for _, s := range tc.want {
				if !strings.Contains(out, s) {
					t.Errorf("screen should contain %q", s)
				}
			}
			if strings.Contains(out, "Press Space to Start!") {
				t.Error("start prompt should only show before the game starts")
			}
		})
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New()
	g.ResetWithConfig(testRuntime, config.DefaultArkanoidConfig())

	screen := core.NewScreen(20, 8)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "too small") {
		t.Error("small screen should show a size warning")
	}
	if strings.ContainsRune(out, BallChar) {
		t.Error("small screen should not draw the playfield")
	}
}

func TestRenderDropsDestroyedBricks(t *testing.T) {
	g := New()
	g.ResetWithConfig(testRuntime, config.DefaultArkanoidConfig())
	g.bricks = nil

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	for _, glyph := range BrickGlyphs {
		if strings.ContainsRune(screen.String(), glyph) {
			t.Errorf("no bricks should be drawn, found %q", glyph)
		}
	}
}

func TestViewFrame(t *testing.T) {
	g := newRunningGame(t)
	g.Step(core.NewInputFrame())

	f := g.View()
	if len(f.Bricks) != g.BricksRemaining() {
		t.Errorf("frame has %d bricks, expected %d", len(f.Bricks), g.BricksRemaining())
	}
	if f.Ball != g.Ball().Circle {
		t.Errorf("frame ball = %+v, expected %+v", f.Ball, g.Ball().Circle)
	}
	if f.Paddle != g.Paddle().Rect {
		t.Errorf("frame paddle = %+v, expected %+v", f.Paddle, g.Paddle().Rect)
	}
	if f.Phase != PhaseRunning || f.Message != "" {
		t.Errorf("running frame should carry no message, got phase=%v message=%q", f.Phase, f.Message)
	}
	if f.World.Width != 800 || f.World.Height != 600 {
		t.Errorf("frame world = %+v", f.World)
	}

	// The frame is a copy; mutating it leaves the game alone
	f.Bricks[0].Center.X = -1
	if g.bricks[0].Center.X == -1 {
		t.Error("View() should not alias game state")
	}
}
