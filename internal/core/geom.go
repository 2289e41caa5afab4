// Package core holds the types shared by the simulation and the terminal
// platform: geometry, input frames, the cell screen and the Game contract.
// It imports nothing outside the standard library.
package core

import "math"

// Rect is an axis-aligned box in integer units. X and Y are the top-left
// corner; Y grows downward.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether the two boxes share any area. Boxes that only
// touch along an edge do not intersect, and an empty box intersects nothing.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Empty reports whether the box has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Center returns the center point rounded toward the top-left.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// CenterF returns the exact center point.
func (r Rect) CenterF() (float64, float64) {
	return float64(r.X) + float64(r.W)/2, float64(r.Y) + float64(r.H)/2
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// RectAround builds a w x h box centered on (cx, cy). A fractional corner
// is floored.
func RectAround(cx, cy float64, w, h int) Rect {
	return Rect{
		X: int(math.Floor(cx - float64(w)/2)),
		Y: int(math.Floor(cy - float64(h)/2)),
		W: w,
		H: h,
	}
}

// InBounds reports, per axis, whether r lies fully inside a width x height
// field anchored at the origin. An edge exactly on the border is inside.
func InBounds(r Rect, width, height int) (withinX, withinY bool) {
	withinX = r.X >= 0 && r.Right() <= width
	withinY = r.Y >= 0 && r.Bottom() <= height
	return withinX, withinY
}

// FullyInBounds is InBounds collapsed to a single answer.
func FullyInBounds(r Rect, width, height int) bool {
	x, y := InBounds(r, width, height)
	return x && y
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
