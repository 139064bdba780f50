package ui

import (
	"fmt"

	"github.com/ja-he/quickedit/internal/styling"
)

// Pane is a UI pane.
//
// The panes are stacked on top of each other by the root pane, which draws
// the visible ones bottommost first and asks the topmost visible one at a
// position what is there.
type Pane interface {
	Draw()
	Undraw()
	IsVisible() bool
	Dimensions() (x, y, w, h int)
	GetPositionInfo(x, y int) PositionInfo
	Identify() PaneID
}

// PaneID uniquely identifies a pane. No two panes must ever share a PaneID.
type PaneID uint

// NonePaneID represents "no pane" or "invalid pane". Panes guaranteed to be
// assigned different IDs by GeneratePaneID.
const NonePaneID PaneID = 0

var id = NonePaneID

// GeneratePaneID generates a new unique pane ID.
var GeneratePaneID = func() PaneID {
	id++
	return id
}

// Renderer draws boxes and text.
type Renderer interface {
	// DrawBox draws a box of the indicated dimensions at the indicated location.
	DrawBox(x, y, w, h int, style styling.DrawStyling)
	// DrawText draws text within the box described by the given coordinates
	// and dimensions, wrapping at its width.
	DrawText(x, y, w, h int, style styling.DrawStyling, text string)
}

// ConstrainedRenderer is a renderer that is assumed to be constrained to
// certain dimensions, i.E. it does not draw outside of them.
type ConstrainedRenderer interface {
	Renderer

	// Dimensions returns the dimensions of the renderer.
	Dimensions() (x, y, w, h int)
}

// RenderOrchestratorControl is the set of functions of a renderer (e.g.,
// tcell.Screen) that the root pane needs to use to have full control over a
// render cycle. Other panes should not need this access to the renderer.
type RenderOrchestratorControl interface {
	Clear()
	Show()
}

// TextCursorController offers control of a text cursor, such as for a terminal.
type TextCursorController interface {
	HideCursor()
	ShowCursor(CursorLocation)
}

// CursorLocation is the cell a text cursor is shown in.
type CursorLocation struct {
	X int
	Y int
}

func (l CursorLocation) String() string {
	return fmt.Sprintf("%d:%d", l.X, l.Y)
}
