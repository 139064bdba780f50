package ui

// BasePane is the base data necessary for a UI pane and provides a base
// implementation using them.
//
// Note that when constructing this value you need to assign the ID.
type BasePane struct {
	ID PaneID
	// Visible (if set) decides whether the pane is shown; unset, it always is.
	Visible func() bool
}

// Identify returns the panes ID.
func (p *BasePane) Identify() PaneID {
	if p.ID == NonePaneID {
		panic("pane has not been assigned an ID")
	}
	return p.ID
}

// IsVisible indicates whether the pane is visible.
func (p *BasePane) IsVisible() bool { return p.Visible == nil || p.Visible() }
