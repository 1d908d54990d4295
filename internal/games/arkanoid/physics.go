package arkanoid

import (
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Update moves the ball one tick and reflects it off the walls.
// The left, right and top walls always bounce. The floor either ends the
// ball's life (OutOfBounds, velocity untouched) or, when floorBounces is set,
// bounces like the other walls.
func (b *Ball) Update(w World, floorBounces bool) {
	b.Center = b.Center.Add(b.Velocity)

	if b.Left() < 0 {
		b.Velocity.X = b.Speed
	} else if b.Right() > w.Width {
		b.Velocity.X = -b.Speed
	}

	if b.Top() < 0 {
		b.Velocity.Y = b.Speed
	} else if b.Bottom() > w.Height {
		if floorBounces {
			b.Velocity.Y = -b.Speed
		} else {
			b.OutOfBounds = true
		}
	}
}

// Update recomputes the paddle's velocity from this tick's input, then moves it.
// Velocity is not accumulated. Right input is checked last, so holding both
// directions moves right.
func (p *Paddle) Update(in core.InputFrame, w World) {
	if in.Has(core.ActionLeft) && p.Left() > 0 {
		p.Velocity.X = -p.Speed
	} else {
		p.Velocity.X = 0
	}
	if in.Has(core.ActionRight) && p.Right() < w.Width {
		p.Velocity.X = p.Speed
	}

	p.Center = p.Center.Add(p.Velocity)
}

// CollisionSide indicates which side of a brick the ball approached from.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionTop
	CollisionBottom
	CollisionLeft
	CollisionRight
)

// String returns the side name.
func (s CollisionSide) String() string {
	switch s {
	case CollisionTop:
		return "top"
	case CollisionBottom:
		return "bottom"
	case CollisionLeft:
		return "left"
	case CollisionRight:
		return "right"
	default:
		return "none"
	}
}

// CheckPaddleCollision bounces the ball upward if it overlaps the paddle.
// The horizontal direction depends only on which side of the paddle's center
// the ball's center is on. Returns true if a collision occurred.
func CheckPaddleCollision(p *Paddle, b *Ball) bool {
	if !core.Intersects(p, b) {
		return false
	}

	b.Velocity.Y = -b.Speed
	if b.X() < p.X() {
		b.Velocity.X = -b.Speed
	} else {
		b.Velocity.X = b.Speed
	}
	return true
}

// CheckBrickCollision destroys a live brick the ball overlaps and reflects the ball.
//
// The face that was struck is guessed from the overlap depths: the side with
// the smaller overlap on each axis is where the ball came from, and the axis
// with the smaller of those two overlaps is flipped. Equal overlaps resolve
// vertically. Exactly one velocity component changes.
func CheckBrickCollision(br *Brick, b *Ball) CollisionSide {
	if !br.Alive || !core.Intersects(br, b) {
		return CollisionNone
	}
	br.Alive = false

	overlapLeft := b.Right() - br.Left()
	overlapRight := br.Right() - b.Left()
	overlapTop := b.Bottom() - br.Top()
	overlapBottom := br.Bottom() - b.Top()

	fromLeft := core.AbsF(overlapLeft) < core.AbsF(overlapRight)
	fromTop := core.AbsF(overlapTop) < core.AbsF(overlapBottom)

	minOverlapX := overlapRight
	if fromLeft {
		minOverlapX = overlapLeft
	}
	minOverlapY := overlapBottom
	if fromTop {
		minOverlapY = overlapTop
	}

	if core.AbsF(minOverlapX) < core.AbsF(minOverlapY) {
		if fromLeft {
			b.Velocity.X = -b.Speed
			return CollisionLeft
		}
		b.Velocity.X = b.Speed
		return CollisionRight
	}

	if fromTop {
		b.Velocity.Y = -b.Speed
		return CollisionTop
	}
	b.Velocity.Y = b.Speed
	return CollisionBottom
}
