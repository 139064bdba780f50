// Package edit implements the rules by which property editors may change
// their state: the transition gate, transition requests, and the flow for
// confirming the abandonment of unsaved changes.
package edit

import (
	"github.com/ja-he/quickedit/internal/input"
	"github.com/ja-he/quickedit/internal/model"
)

// Editable is a property editor whose state changes are governed by an
// Authority.
type Editable interface {
	// ID returns the property the editor edits.
	ID() model.PropertyID

	// State returns the editor's current state.
	State() model.State

	// RequestTransition asks the editor's authority for the transition to the
	// given state; the editor applies it only when the request is accepted.
	// done (if non-nil) is called with the outcome afterwards.
	RequestTransition(to model.State, ctx Context, done func(accepted bool))

	// ApplyState changes the editor's state without consulting the authority
	// and performs the editor's reaction to the new state.
	// Only an authority should call this.
	ApplyState(to model.State)
}

// Authority is the sole decider over the state changes of Editables.
type Authority interface {
	// RequestTransition decides the transition of e to the given state and
	// calls resolve exactly once with the outcome, possibly later (e.g. after
	// the user confirmed).
	RequestTransition(e Editable, to model.State, ctx Context, resolve func(accepted bool))
}

// InputProcessorCreator is implemented by editors that process input of
// their own while they are active.
type InputProcessorCreator interface {
	CreateInputProcessor(bindings input.Bindings) (input.ModalInputProcessor, error)
}
