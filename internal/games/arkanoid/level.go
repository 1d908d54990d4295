package arkanoid

import "github.com/vovakirdan/tui-arkanoid/internal/core"

// Brick grid layout. The level is fixed; it is not loaded from config.
const (
	BrickCols   = 11
	BrickRows   = 4
	BrickWidth  = 60.0
	BrickHeight = 20.0
	BrickGap    = 3.0  // Space between neighbouring bricks
	GridOffsetX = 22.0 // Extra horizontal shift of the whole grid
)

// BrickCount is the number of bricks at level start.
const BrickCount = BrickCols * BrickRows

// BrickCenter returns the world-space center of the brick at (row, col).
// Columns start one pitch in from the left wall and rows two pitches down from the top.
func BrickCenter(row, col int) core.Vec2 {
	return core.Vec2{
		X: float64(col+1)*(BrickWidth+BrickGap) + GridOffsetX,
		Y: float64(row+2) * (BrickHeight + BrickGap),
	}
}

// NewBrick creates a live brick at grid position (row, col).
func NewBrick(row, col int) Brick {
	c := BrickCenter(row, col)
	return Brick{
		Rect:  core.NewRect(c.X, c.Y, BrickWidth, BrickHeight),
		Row:   row,
		Col:   col,
		Alive: true,
	}
}

// NewBrickGrid builds the full level, column by column.
func NewBrickGrid() []Brick {
	bricks := make([]Brick, 0, BrickCount)
	for col := range BrickCols {
		for row := range BrickRows {
			bricks = append(bricks, NewBrick(row, col))
		}
	}
	return bricks
}
