package panes

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/quickedit/internal/input"
	"github.com/ja-he/quickedit/internal/ui"
)

// RootPane acts as the root UI pane, wrapping all subpanes, managing the
// render cycle, invoking the subpanes' rendering, etc.
//
// All key input is handed to its input processor.
type RootPane struct {
	ID ui.PaneID

	renderer       ui.RenderOrchestratorControl
	cursorWrangler *ui.CursorWrangler

	dimensions func() (x, y, w, h int)

	fieldsPane ui.Pane
	statusPane ui.Pane
	logPane    ui.Pane
	modalPane  ui.Pane
	helpPane   ui.Pane

	inputProcessor input.SimpleInputProcessor

	log zerolog.Logger
}

// Dimensions gives the dimensions (x-axis offset, y-axis offset, width,
// height) for this pane.
func (p *RootPane) Dimensions() (x, y, w, h int) {
	return p.dimensions()
}

// panesInDrawOrder returns the subpanes bottommost first, split by visibility.
func (p *RootPane) panesInDrawOrder() (visible []ui.Pane, invisible []ui.Pane) {
	for _, pane := range []ui.Pane{p.fieldsPane, p.statusPane, p.logPane, p.modalPane, p.helpPane} {
		if pane.IsVisible() {
			visible = append(visible, pane)
		} else {
			invisible = append(invisible, pane)
		}
	}
	return visible, invisible
}

// GetPositionInfo returns information on a requested position, as given by
// the topmost visible pane containing it.
func (p *RootPane) GetPositionInfo(x, y int) ui.PositionInfo {
	visible, _ := p.panesInDrawOrder()
	for i := len(visible) - 1; i >= 0; i-- {
		if ui.NewRect(visible[i].Dimensions()).Contains(x, y) {
			return visible[i].GetPositionInfo(x, y)
		}
	}
	return &ui.NoPanePositionInfo{}
}

// Draw draws all visible subpanes and enacts the text cursor.
func (p *RootPane) Draw() {
	p.renderer.Clear()

	visible, invisible := p.panesInDrawOrder()
	for _, pane := range invisible {
		pane.Undraw()
	}
	for _, pane := range visible {
		p.log.Trace().Uint("pane", uint(pane.Identify())).Msg("drawing")
		pane.Draw()
	}

	// After all drawing draw or hide the cursor, depending on what is requested
	// during the draw of subpanes.
	p.cursorWrangler.Enact()

	p.renderer.Show()
}

// CapturesInput returns whether this processor "captures" input, i.E. whether
// it ought to take priority in processing over other processors.
func (p *RootPane) CapturesInput() bool {
	return p.inputProcessor.CapturesInput()
}

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied", i.E. the processor performed
// an action based on the input.
func (p *RootPane) ProcessInput(key input.Key) bool {
	return p.inputProcessor.ProcessInput(key)
}

// GetHelp returns the input help map for this processor.
func (p *RootPane) GetHelp() input.Help {
	return p.inputProcessor.GetHelp()
}

// Identify returns the root pane's ID.
func (p *RootPane) Identify() ui.PaneID { return p.ID }

// NewRootPane constructs and returns a new RootPane.
func NewRootPane(
	renderer ui.RenderOrchestratorControl,
	cursorWrangler *ui.CursorWrangler,
	dimensions func() (x, y, w, h int),
	fieldsPane ui.Pane,
	statusPane ui.Pane,
	logPane ui.Pane,
	modalPane ui.Pane,
	helpPane ui.Pane,
	inputProcessor input.SimpleInputProcessor,
) *RootPane {
	rootPane := &RootPane{
		ID:             ui.GeneratePaneID(),
		renderer:       renderer,
		cursorWrangler: cursorWrangler,
		dimensions:     dimensions,
		fieldsPane:     fieldsPane,
		statusPane:     statusPane,
		logPane:        logPane,
		modalPane:      modalPane,
		helpPane:       helpPane,
		inputProcessor: inputProcessor,
		log:            log.With().Str("component", "root-pane").Logger(),
	}
	rootPane.log.Trace().Uint("id", uint(rootPane.Identify())).Msg("created root pane")
	return rootPane
}
