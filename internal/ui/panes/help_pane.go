package panes

import (
	"sort"

	"github.com/ja-he/quickedit/internal/input"
	"github.com/ja-he/quickedit/internal/styling"
	"github.com/ja-he/quickedit/internal/ui"
)

// A HelpPane is a pane that displays a help popup, listing the key mappings
// currently in effect and their actions.
type HelpPane struct {
	ui.LeafPane

	content func() input.Help
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *HelpPane) GetPositionInfo(x, y int) ui.PositionInfo { return nil }

// Draw draws the help popup.
func (p *HelpPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dimensions()
	p.Fill(p.Stylesheet.Help)

	const border = 1
	const maxKeyWidth = 12
	const pad = 1
	keyOffset := x + border
	descriptionOffset := keyOffset + maxKeyWidth + pad

	content := sortedByAction(p.content())
	for i, m := range content {
		if i >= h-2*border {
			break
		}
		row := y + border + i
		keys := truncate(m.mapping, maxKeyWidth)
		keysWidth := len([]rune(keys))
		p.Renderer.DrawText(keyOffset+maxKeyWidth-keysWidth, row, keysWidth, 1, p.Stylesheet.Help.DefaultEmphasized().Bolded(), keys)
		p.Renderer.DrawText(descriptionOffset, row, w-(descriptionOffset-x)-border, 1, p.Stylesheet.Help.Italicized(), m.action)
	}
}

type mappingAndAction = struct {
	mapping string
	action  string
}

// sortedByAction returns the mappings sorted by their actions, then by the
// mappings, so that alternative bindings appear next to each other.
func sortedByAction(help input.Help) []mappingAndAction {
	content := make([]mappingAndAction, 0, len(help))
	for mapping, action := range help {
		content = append(content, mappingAndAction{mapping: mapping, action: action})
	}
	sort.Slice(content, func(i, j int) bool {
		if content[i].action != content[j].action {
			return content[i].action < content[j].action
		}
		return content[i].mapping < content[j].mapping
	})
	return content
}

// NewHelpPane constructs and returns a new HelpPane.
func NewHelpPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet *styling.Stylesheet,
	condition func() bool,
	content func() input.Help,
) *HelpPane {
	return &HelpPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:      ui.GeneratePaneID(),
				Visible: condition,
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		content: content,
	}
}
