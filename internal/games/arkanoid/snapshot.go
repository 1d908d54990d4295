package arkanoid

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Snapshot contains the complete game state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick   uint64
	Phase  int
	Paused bool

	BallX, BallY   float64
	BallVX, BallVY float64
	OutOfBounds    bool

	PaddleX, PaddleY float64
	PaddleVX         float64

	// Live bricks as grid coordinates, 2 ints each: Row, Col
	BrickData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	brickData := make([]int, 0, len(g.bricks)*2)
	for _, b := range g.bricks {
		brickData = append(brickData, b.Row, b.Col)
	}

	return Snapshot{
		Tick:   uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Phase:  int(g.phase),
		Paused: g.paused,

		BallX:       g.ball.Center.X,
		BallY:       g.ball.Center.Y,
		BallVX:      g.ball.Velocity.X,
		BallVY:      g.ball.Velocity.Y,
		OutOfBounds: g.ball.OutOfBounds,

		PaddleX:  g.paddle.Center.X,
		PaddleY:  g.paddle.Center.Y,
		PaddleVX: g.paddle.Velocity.X,

		BrickData: brickData,
	}
}

// ApplySnapshot restores game state from a snapshot.
// Sizes and speeds come from the game's current configuration.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.phase = Phase(snap.Phase)
	g.paused = snap.Paused

	g.ball.Center = core.Vec2{X: snap.BallX, Y: snap.BallY}
	g.ball.Velocity = core.Vec2{X: snap.BallVX, Y: snap.BallVY}
	g.ball.OutOfBounds = snap.OutOfBounds

	g.paddle.Center = core.Vec2{X: snap.PaddleX, Y: snap.PaddleY}
	g.paddle.Velocity = core.Vec2{X: snap.PaddleVX}

	g.bricks = make([]Brick, 0, len(snap.BrickData)/2)
	for i := 0; i+1 < len(snap.BrickData); i += 2 {
		g.bricks = append(g.bricks, NewBrick(snap.BrickData[i], snap.BrickData[i+1]))
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	h = h*31 + boolBits(snap.Paused)

	for _, f := range []float64{snap.BallX, snap.BallY, snap.BallVX, snap.BallVY, snap.PaddleX, snap.PaddleY, snap.PaddleVX} {
		h = h*31 + math.Float64bits(f)
	}
	h = h*31 + boolBits(snap.OutOfBounds)

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}

func boolBits(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
