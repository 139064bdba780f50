package panes

import (
	"github.com/ja-he/quickedit/internal/model"
	"github.com/ja-he/quickedit/internal/styling"
	"github.com/ja-he/quickedit/internal/ui"
)

// StatusPane is a status bar that displays the mode, the route and the most
// recent announcement.
type StatusPane struct {
	ui.LeafPane

	mode        func() model.Mode
	route       func() string
	lastMessage func() string
}

// Draw draws this pane.
func (p *StatusPane) Draw() {
	x, y, w, h := p.Dimensions()

	bgStyle := p.Stylesheet.Status
	bgStyleEmph := bgStyle.DefaultEmphasized()

	p.Fill(bgStyle)

	modeStr := modeToString(p.mode())
	p.Renderer.DrawBox(x, y, len(modeStr)+2, h, bgStyleEmph)
	p.Renderer.DrawText(x+1, y, len(modeStr), 1, bgStyleEmph.Bolded(), modeStr)

	routeStr := "/" + p.route()
	p.Renderer.DrawText(x+w-len(routeStr)-1, y, len(routeStr), 1, bgStyle.Italicized(), routeStr)

	msgX := x + len(modeStr) + 3
	msgW := w - len(modeStr) - len(routeStr) - 5
	p.Renderer.DrawText(msgX, y, msgW, 1, bgStyle, truncate(p.lastMessage(), msgW))
}

func modeToString(mode model.Mode) string {
	switch mode {
	case model.ModeViewing:
		return "-- VIEW --"
	case model.ModeEditing:
		return "-- QUICK EDIT --"
	default:
		return "unknown"
	}
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *StatusPane) GetPositionInfo(x, y int) ui.PositionInfo {
	return &ui.StatusPanePositionInfo{}
}

// NewStatusPane constructs and returns a new StatusPane.
func NewStatusPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet *styling.Stylesheet,
	mode func() model.Mode,
	route func() string,
	lastMessage func() string,
) *StatusPane {
	return &StatusPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		mode:        mode,
		route:       route,
		lastMessage: lastMessage,
	}
}
