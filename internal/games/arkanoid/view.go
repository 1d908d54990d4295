package arkanoid

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Visual characters for rendering
const (
	BallChar   = '●'
	PaddleChar = '▀'
)

// BrickGlyphs alternate between neighbouring bricks so adjacent ones stay distinguishable.
var BrickGlyphs = []rune{'█', '▓'}

// Frame is everything a renderer needs for one tick, in world coordinates.
type Frame struct {
	World   World
	Ball    core.Circle
	Paddle  core.Rect
	Bricks  []core.Rect
	Phase   Phase
	Paused  bool
	Message string
}

// View returns the renderable state of the current tick.
func (g *Game) View() Frame {
	bricks := make([]core.Rect, len(g.bricks))
	for i, b := range g.bricks {
		bricks[i] = b.Rect
	}
	return Frame{
		World:   g.world,
		Ball:    g.ball.Circle,
		Paddle:  g.paddle.Rect,
		Bricks:  bricks,
		Phase:   g.phase,
		Paused:  g.paused,
		Message: g.phase.Message(),
	}
}

// Render draws the current game state to the screen, scaling the world onto the cell grid.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < g.minScreenW || dst.Height() < g.minScreenH {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	p := newProjection(g.world, dst)

	g.renderBricks(dst, p)
	g.renderPaddle(dst, p)
	g.renderBall(dst, p)
	g.renderOverlay(dst)
}

// projection maps world coordinates to screen cells.
type projection struct {
	sx, sy float64
}

func newProjection(w World, dst *core.Screen) projection {
	return projection{
		sx: float64(dst.Width()) / w.Width,
		sy: float64(dst.Height()) / w.Height,
	}
}

// cell converts a world point to the cell containing it.
func (p projection) cell(v core.Vec2) (int, int) {
	return int(math.Floor(v.X * p.sx)), int(math.Floor(v.Y * p.sy))
}

// span converts a world interval [lo, hi) to an inclusive cell range.
// Edges are rounded to the nearest cell boundary, so intervals that do not
// overlap in the world never share a cell. An interval narrower than half a
// cell is widened to one cell and may then touch a neighbour.
func span(lo, hi, scale float64) (int, int) {
	a := int(math.Round(lo * scale))
	b := int(math.Round(hi*scale)) - 1
	if b < a {
		b = a
	}
	return a, b
}

// renderBricks draws all live bricks.
func (g *Game) renderBricks(dst *core.Screen, p projection) {
	for _, b := range g.bricks {
		x0, x1 := span(b.Left(), b.Right(), p.sx)
		y0, y1 := span(b.Top(), b.Bottom(), p.sy)
		glyph := BrickGlyphs[(b.Row+b.Col)%len(BrickGlyphs)]
		dst.FillCells(x0, y0, x1, y1, glyph, core.ColorBrick)
	}
}

// renderPaddle draws the player's paddle.
func (g *Game) renderPaddle(dst *core.Screen, p projection) {
	x0, x1 := span(g.paddle.Left(), g.paddle.Right(), p.sx)
	y0, y1 := span(g.paddle.Top(), g.paddle.Bottom(), p.sy)
	dst.FillCells(x0, y0, x1, y1, PaddleChar, core.ColorPaddle)
}

// renderBall draws the ball as a single cell at its center.
func (g *Game) renderBall(dst *core.Screen, p projection) {
	x, y := p.cell(g.ball.Center)
	dst.SetColored(x, y, BallChar, core.ColorBall)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.phase {
	case PhaseNotStarted:
		dst.DrawTextCentered(dst.Height()*3/4, g.phase.Message())

	case PhaseRunning:
		if g.paused {
			g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
		}

	case PhaseWon, PhaseLost:
		g.drawCenteredBox(dst, g.phase.Message(), "Press R to restart, Q to quit")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillCells(boxX, boxY, boxX+boxW-1, boxY+boxH-1, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
