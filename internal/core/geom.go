// Package core provides fundamental types and utilities shared by the
// simulation and its hosts. It contains no Bubble Tea dependencies to keep
// the round logic pure and testable.
package core

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Bounds is an axis-aligned region in arena pixels.
// Unlike Rect, both edges are inclusive: a point lying exactly on the
// boundary is inside.
type Bounds struct {
	Left, Right float64
	Top, Bottom float64
}

// Width returns the horizontal extent of the bounds.
func (b Bounds) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the bounds.
func (b Bounds) Height() float64 {
	return b.Bottom - b.Top
}

// Contains reports whether the point (x, y) lies within the bounds, edges included.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.Left && x <= b.Right && y >= b.Top && y <= b.Bottom
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
