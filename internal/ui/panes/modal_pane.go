package panes

import (
	"github.com/ja-he/quickedit/internal/control/edit"
	"github.com/ja-he/quickedit/internal/styling"
	"github.com/ja-he/quickedit/internal/ui"
)

// ModalPane shows the pending confirmation, if any, with a button per choice.
type ModalPane struct {
	ui.LeafPane

	pending     func() *edit.PendingConfirmation
	choiceLabel func(edit.Choice) string
}

type choiceButton struct {
	choice edit.Choice
	rect   ui.Rect
	label  string
}

func (p *ModalPane) buttons() []choiceButton {
	pending := p.pending()
	if pending == nil {
		return nil
	}
	x, y, w, h := p.Dimensions()
	row := y + h - 2

	var buttons []choiceButton
	col := x + 2
	for _, c := range pending.Choices {
		label := "[ " + p.choiceLabel(c) + " ]"
		width := len([]rune(label))
		if col+width > x+w-2 {
			width = x + w - 2 - col
		}
		buttons = append(buttons, choiceButton{choice: c, rect: ui.NewRect(col, row, width, 1), label: label})
		col += width + 2
	}
	return buttons
}

// Draw draws the confirmation popup.
func (p *ModalPane) Draw() {
	pending := p.pending()
	if pending == nil {
		return
	}
	x, y, w, _ := p.Dimensions()

	p.Fill(p.Stylesheet.Modal)
	p.Renderer.DrawText(x+1, y+1, w-2, 1, p.Stylesheet.Modal.Bolded(), padCenter(pending.Message, w-2))
	p.Renderer.DrawText(x+1, y+2, w-2, 1, p.Stylesheet.Modal.Italicized(), padCenter(string(pending.Property), w-2))
	for _, b := range p.buttons() {
		p.Renderer.DrawText(b.rect.X, b.rect.Y, b.rect.W, 1, p.Stylesheet.ModalChoice, truncate(b.label, b.rect.W))
	}
}

// IsVisible returns whether a confirmation is pending.
func (p *ModalPane) IsVisible() bool {
	return p.pending() != nil
}

// GetPositionInfo returns the choice at the given position, if any.
func (p *ModalPane) GetPositionInfo(x, y int) ui.PositionInfo {
	for _, b := range p.buttons() {
		if b.rect.Contains(x, y) {
			return &ui.ModalPanePositionInfo{Choice: b.choice}
		}
	}
	return &ui.ModalPanePositionInfo{}
}

// NewModalPane constructs and returns a new ModalPane.
func NewModalPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet *styling.Stylesheet,
	pending func() *edit.PendingConfirmation,
	choiceLabel func(edit.Choice) string,
) *ModalPane {
	return &ModalPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		pending:     pending,
		choiceLabel: choiceLabel,
	}
}
