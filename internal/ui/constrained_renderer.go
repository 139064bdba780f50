package ui

import "github.com/ja-he/quickedit/internal/styling"

// CR is a constrained renderer for a TUI.
// It only allows rendering using the underlying renderer within the set
// dimension constraint.
//
// Non-conforming rendering requests are clipped to be within the bounds.
type CR struct {
	renderer Renderer

	constraint func() (x, y, w, h int)
}

// NewConstrainedRenderer returns a renderer drawing via the given renderer,
// but only within the given (possibly changing) constraint.
func NewConstrainedRenderer(
	renderer Renderer,
	constraint func() (x, y, w, h int),
) *CR {
	return &CR{
		renderer:   renderer,
		constraint: constraint,
	}
}

// Dimensions returns the current constraint.
func (r *CR) Dimensions() (x, y, w, h int) {
	return r.constraint()
}

// DrawText draws the given text, within the given dimensions, clipped to the
// constraint, in the given style.
//
// NOTE: the text is not shifted when the box is clipped on the left or top,
// so the beginning of the text remains visible.
func (r *CR) DrawText(x, y, w, h int, style styling.DrawStyling, text string) {
	clipped, ok := r.clip(Rect{x, y, w, h})
	if !ok {
		return
	}
	r.renderer.DrawText(clipped.X, clipped.Y, clipped.W, clipped.H, style, text)
}

// DrawBox draws a box of the given dimensions, clipped to the constraint, in
// the given style.
func (r *CR) DrawBox(x, y, w, h int, style styling.DrawStyling) {
	clipped, ok := r.clip(Rect{x, y, w, h})
	if !ok {
		return
	}
	r.renderer.DrawBox(clipped.X, clipped.Y, clipped.W, clipped.H, style)
}

// clip returns the intersection of the given box and the constraint, and
// whether it is non-empty.
func (r *CR) clip(box Rect) (Rect, bool) {
	bound := NewRect(r.constraint())

	left, top := max(box.X, bound.X), max(box.Y, bound.Y)
	right, bottom := min(box.X+box.W, bound.X+bound.W), min(box.Y+box.H, bound.Y+bound.H)
	if right <= left || bottom <= top {
		return Rect{}, false
	}
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}, true
}
