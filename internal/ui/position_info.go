package ui

import (
	"github.com/ja-he/quickedit/internal/control/edit"
	"github.com/ja-he/quickedit/internal/model"
)

// PositionInfo describes a position in the user interface.
//
// Retrievers should initially check for the type of pane they are receiving
// information on and can then retrieve the relevant additional information from
// whatever they got.
type PositionInfo interface{}

// NoPanePositionInfo is (no) information about no position.
type NoPanePositionInfo struct{}

// StatusPanePositionInfo provides information on a position in a status pane.
type StatusPanePositionInfo struct{}

// FieldsPanePositionInfo provides information on a position in the fields
// pane, importantly the property displayed there (empty, if none).
type FieldsPanePositionInfo struct {
	Property model.PropertyID
}

// ModalPanePositionInfo provides information on a position in the
// confirmation popup, importantly the choice displayed there (zero, if none).
type ModalPanePositionInfo struct {
	Choice edit.Choice
}
