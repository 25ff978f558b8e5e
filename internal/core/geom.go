// Package core provides fundamental types shared by the game and the platform layer.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"cmp"
	"math"
)

// Rect is an axis-aligned rectangle measured in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Span is a closed horizontal interval in world units.
type Span struct {
	Min, Max float64
}

// Contains reports whether x lies inside the span, edges included.
func (s Span) Contains(x float64) bool {
	return s.Min <= x && x <= s.Max
}

// Clamp restricts a value to be within [lo, hi].
func Clamp[T cmp.Ordered](val, lo, hi T) T {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Scale maps a world coordinate in [0, extent] onto a cell index in [0, cells).
// Values outside the world map outside the grid; callers clip when drawing.
func Scale(v, extent float64, cells int) int {
	if extent <= 0 || cells <= 0 {
		return 0
	}
	return int(math.Floor(v / extent * float64(cells)))
}
