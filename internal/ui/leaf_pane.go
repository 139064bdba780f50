package ui

import (
	"github.com/ja-he/quickedit/internal/styling"
)

// LeafPane is a simple set of data and implementation of a "leaf pane", i.E. a
// pane that does not have subpanes but instead makes actual draw calls.
type LeafPane struct {
	BasePane
	Renderer   ConstrainedRenderer
	Dims       func() (x, y, w, h int)
	Stylesheet *styling.Stylesheet
}

// Dimensions returns the dimensions of the pane.
func (p *LeafPane) Dimensions() (x, y, w, h int) {
	return p.Dims()
}

// Undraw does nothing. Override this, if necessary.
func (p *LeafPane) Undraw() {}

// Fill draws the pane's whole area in the given style.
func (p *LeafPane) Fill(style styling.DrawStyling) {
	x, y, w, h := p.Dims()
	p.Renderer.DrawBox(x, y, w, h, style)
}
