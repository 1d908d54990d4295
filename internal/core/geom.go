// Package core provides fundamental types and utilities for the arkanoid platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Vec2 is a 2D vector in world units, used for positions and per-tick velocities.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Boundable is any shape that can report its axis-aligned bounding box.
// Collision code works against this interface so it stays shape-agnostic.
type Boundable interface {
	Left() float64
	Right() float64
	Top() float64
	Bottom() float64
}

// Circle is a circle described by its center and radius.
type Circle struct {
	Center Vec2
	Radius float64
}

// Left returns the x-coordinate of the left edge of the bounding box.
func (c Circle) Left() float64 { return c.Center.X - c.Radius }

// Right returns the x-coordinate of the right edge of the bounding box.
func (c Circle) Right() float64 { return c.Center.X + c.Radius }

// Top returns the y-coordinate of the top edge of the bounding box.
func (c Circle) Top() float64 { return c.Center.Y - c.Radius }

// Bottom returns the y-coordinate of the bottom edge of the bounding box.
func (c Circle) Bottom() float64 { return c.Center.Y + c.Radius }

// Rect represents an axis-aligned rectangle positioned by its center.
type Rect struct {
	Center Vec2
	W, H   float64 // Full width and height
}

// NewRect creates a new rectangle centered on (x, y) with the given dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Center: Vec2{X: x, Y: y}, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 { return r.Center.X - r.W/2 }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.Center.X + r.W/2 }

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 { return r.Center.Y - r.H/2 }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Center.Y + r.H/2 }

// Intersects reports whether the bounding boxes of a and b overlap on both axes.
// Bounds are inclusive: shapes that only share an edge still intersect.
func Intersects(a, b Boundable) bool {
	return a.Right() >= b.Left() && a.Left() <= b.Right() &&
		a.Bottom() >= b.Top() && a.Top() <= b.Bottom()
}

// AbsF returns the absolute value of a float64.
func AbsF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
