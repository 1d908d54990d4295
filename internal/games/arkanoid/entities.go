// Package arkanoid implements the Arkanoid brick breaker simulation:
// a paddle deflects a ball to destroy a fixed grid of bricks.
package arkanoid

import (
	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// World is the fixed-size playfield every entity is validated against.
type World struct {
	Width, Height float64
}

// Ball is the circle that bounces around the world.
// Each velocity component is always exactly +Speed or -Speed.
type Ball struct {
	core.Circle
	Velocity    core.Vec2 // Per-tick displacement
	Speed       float64   // Per-axis speed magnitude
	OutOfBounds bool      // Set once the ball crosses the floor; never cleared
}

// NewBall creates a ball centered on (x, y) heading up and to the left.
func NewBall(x, y, radius, speed float64) Ball {
	return Ball{
		Circle:   core.Circle{Center: core.Vec2{X: x, Y: y}, Radius: radius},
		Velocity: core.Vec2{X: -speed, Y: -speed},
		Speed:    speed,
	}
}

// X returns the ball's center x-coordinate.
func (b Ball) X() float64 { return b.Center.X }

// Y returns the ball's center y-coordinate.
func (b Ball) Y() float64 { return b.Center.Y }

// Paddle is the player-controlled bouncer. Only its horizontal velocity is ever non-zero.
type Paddle struct {
	core.Rect
	Velocity core.Vec2
	Speed    float64
}

// NewPaddle creates a stationary paddle centered on (x, y).
func NewPaddle(x, y, width, height, speed float64) Paddle {
	return Paddle{
		Rect:  core.NewRect(x, y, width, height),
		Speed: speed,
	}
}

// X returns the paddle's center x-coordinate.
func (p Paddle) X() float64 { return p.Center.X }

// Brick is a destructible block. Once Alive is false it is never revived.
type Brick struct {
	core.Rect
	Row, Col int // Grid coordinates, used for rendering and snapshots
	Alive    bool
}

// newEntities builds the ball and paddle from tuning config.
func newEntities(cfg config.ArkanoidConfig) (Ball, Paddle) {
	ball := NewBall(cfg.Ball.StartX, cfg.Ball.StartY, cfg.Ball.Radius, cfg.Ball.Speed)
	paddle := NewPaddle(cfg.Paddle.StartX, cfg.Paddle.StartY, cfg.Paddle.Width, cfg.Paddle.Height, cfg.Paddle.Speed)
	return ball, paddle
}
