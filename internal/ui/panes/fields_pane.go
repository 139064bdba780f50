package panes

import (
	"fmt"

	"github.com/ja-he/quickedit/internal/control/edit/editors"
	"github.com/ja-he/quickedit/internal/model"
	"github.com/ja-he/quickedit/internal/styling"
	"github.com/ja-he/quickedit/internal/ui"
)

// FieldView is what the fields pane shows of a field.
type FieldView interface {
	ID() model.PropertyID
	State() model.State
	Label() string
	Display() string
	Errors() []string
	Buffer() *editors.StringEditor
}

// FieldsPane lists the editable fields, each styled by its state, with a text
// cursor in the one being edited.
type FieldsPane struct {
	ui.LeafPane

	fields  func() []FieldView
	focused func() model.PropertyID

	cursor ui.CursorLocationRequestHandler
}

const (
	fieldIndent    = 2
	fieldStateTagW = 14
	fieldsCursorID = "fields-pane"
)

type fieldBox struct {
	field     FieldView
	y, height int
}

// layout computes the rows each field occupies: a label row, the (wrapped)
// value, a row per error and a spacer row.
func (p *FieldsPane) layout() []fieldBox {
	_, y, w, _ := p.Dimensions()
	valueWidth := w - 2*fieldIndent

	var boxes []fieldBox
	row := y + 1
	for _, f := range p.fields() {
		h := 1 + wrappedHeight(f.Display(), valueWidth) + len(f.Errors())
		boxes = append(boxes, fieldBox{field: f, y: row, height: h})
		row += h + 1
	}
	return boxes
}

func isBeingEdited(s model.State) bool {
	switch s {
	case model.StateActive, model.StateChanged, model.StateInvalid:
		return true
	}
	return false
}

// Draw draws the fields.
func (p *FieldsPane) Draw() {
	x, _, w, _ := p.Dimensions()
	p.Fill(p.Stylesheet.Normal)
	valueWidth := w - 2*fieldIndent

	cursorRequested := false
	for _, box := range p.layout() {
		f := box.field
		state := f.State()

		labelStyle := p.Stylesheet.Label
		marker := "  "
		if f.ID() == p.focused() {
			labelStyle = p.Stylesheet.Focus
			marker = "> "
		}
		p.Renderer.DrawText(x, box.y, w, 1, labelStyle, marker+truncate(f.Label(), w-fieldStateTagW-2))
		tag := fmt.Sprintf("[%s]", state)
		p.Renderer.DrawText(x+w-len(tag)-1, box.y, len(tag), 1, p.Stylesheet.Label.DefaultDimmed().Italicized(), tag)

		valueStyle := p.Stylesheet.ForState(state)
		valueHeight := box.height - 1 - len(f.Errors())
		p.Renderer.DrawBox(x+fieldIndent, box.y+1, valueWidth, valueHeight, valueStyle)
		p.Renderer.DrawText(x+fieldIndent, box.y+1, valueWidth, valueHeight, valueStyle, f.Display())

		for i, msg := range f.Errors() {
			p.Renderer.DrawText(x+fieldIndent, box.y+1+valueHeight+i, valueWidth, 1, p.Stylesheet.ForState(model.StateInvalid).Bolded(), truncate(msg, valueWidth))
		}

		if isBeingEdited(state) && valueWidth > 0 {
			pos := f.Buffer().GetCursorPos()
			p.cursor.Put(ui.CursorLocation{
				X: x + fieldIndent + pos%valueWidth,
				Y: box.y + 1 + pos/valueWidth,
			}, fieldsCursorID)
			cursorRequested = true
		}
	}
	if !cursorRequested {
		p.cursor.Delete(fieldsCursorID)
	}
}

// Undraw withdraws the text cursor.
func (p *FieldsPane) Undraw() {
	p.cursor.Delete(fieldsCursorID)
}

// GetPositionInfo returns the field displayed at the given position, if any.
func (p *FieldsPane) GetPositionInfo(x, y int) ui.PositionInfo {
	px, _, w, _ := p.Dimensions()
	for _, box := range p.layout() {
		if ui.NewRect(px, box.y, w, box.height).Contains(x, y) {
			return &ui.FieldsPanePositionInfo{Property: box.field.ID()}
		}
	}
	return &ui.FieldsPanePositionInfo{}
}

// NewFieldsPane constructs and returns a new FieldsPane.
func NewFieldsPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet *styling.Stylesheet,
	fields func() []FieldView,
	focused func() model.PropertyID,
	cursor ui.CursorLocationRequestHandler,
) *FieldsPane {
	return &FieldsPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		fields:  fields,
		focused: focused,
		cursor:  cursor,
	}
}
