package ui

// Rect is an area of the screen.
type Rect struct {
	X, Y, W, H int
}

// NewRect returns the Rect of the given dimensions, e.g. a pane's.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Contains returns whether the given position is within the Rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
