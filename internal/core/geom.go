// Package core provides the platform primitives shared by games and the
// terminal front-end: screen buffers, input actions and runtime settings.
// It has no UI dependencies so game logic stays testable.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle from its top-left corner and size.
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

// Intersects reports whether two rectangles share at least one cell.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Viewport maps a window of continuous world coordinates onto a grid of
// screen cells. Top is the world y shown on the first row.
type Viewport struct {
	WorldW, WorldH float64
	Cols, Rows     int
	Top            float64
}

// Col returns the column holding world x.
func (v Viewport) Col(x float64) int {
	return int(math.Floor(x / v.WorldW * float64(v.Cols)))
}

// Row returns the row holding world y.
func (v Viewport) Row(y float64) int {
	return int(math.Floor((y - v.Top) / v.WorldH * float64(v.Rows)))
}

// Cells converts a world width to a cell count, never less than one.
func (v Viewport) Cells(w float64) int {
	return max(1, int(math.Round(w/v.WorldW*float64(v.Cols))))
}

// Project converts a world rectangle to the cells it covers.
func (v Viewport) Project(x, y, w, h float64) Rect {
	col, row := v.Col(x), v.Row(y)
	return Rect{
		X: col,
		Y: row,
		W: max(1, v.Col(x+w)-col),
		H: max(1, v.Row(y+h)-row),
	}
}

// ClampF restricts val to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
