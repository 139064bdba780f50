package edit

import (
	"fmt"

	"github.com/ja-he/quickedit/internal/model"
)

// Verdict is the outcome of consulting the gate about a transition.
type Verdict int

const (
	// Reject means the transition must not happen.
	Reject Verdict = iota
	// Accept means the transition may happen right away.
	Accept
	// Confirm means the user has to decide whether unsaved changes may be
	// abandoned before the transition can be decided.
	Confirm
)

func (v Verdict) String() string {
	switch v {
	case Reject:
		return "reject"
	case Accept:
		return "accept"
	case Confirm:
		return "confirm"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// Context qualifies a transition request.
type Context struct {
	// Reason tags what triggered the request.
	Reason model.Reason
	// Confirmed is set when the user already agreed to abandon unsaved
	// changes.
	Confirmed bool
}

// GateInput is everything the gate bases its verdict on.
type GateInput struct {
	Mode    model.Mode
	From    model.State
	To      model.State
	Context Context

	// HolderElsewhere is whether an editor other than the requesting one
	// currently is the highlighted or the active editor.
	HolderElsewhere bool
}

// Transition is a pair of states.
type Transition struct {
	From model.State
	To   model.State
}

// BackwardExceptions are the only backward transitions allowed while
// editing.
var BackwardExceptions = map[Transition]struct{}{
	// stop editing
	{model.StateActivating, model.StateCandidate}: {},
	{model.StateActive, model.StateCandidate}:     {},
	// stop editing, abandoning changes (needs confirmation)
	{model.StateChanged, model.StateCandidate}: {},
	{model.StateInvalid, model.StateCandidate}: {},
	// stop highlighting
	{model.StateHighlighted, model.StateCandidate}: {},
	// done saving
	{model.StateSaved, model.StateCandidate}: {},
	// retry saving after a validation error
	{model.StateInvalid, model.StateSaving}: {},
}

// IsBackwardException returns whether from -> to is one of the
// BackwardExceptions.
func IsBackwardException(from, to model.State) bool {
	_, ok := BackwardExceptions[Transition{from, to}]
	return ok
}

// Decide is the transition gate. It is a pure function of its input.
func Decide(g GateInput) Verdict {
	if g.Mode != model.ModeEditing {
		if g.To == model.StateInactive {
			return Accept
		}
		return Reject
	}

	if model.IsBackward(g.From, g.To) && !IsBackwardException(g.From, g.To) {
		return Reject
	}

	switch {

	case g.From == model.StateCandidate && g.To.IsSingleEditor():
		if g.HolderElsewhere {
			return Reject
		}

	case g.From.IsActive() && g.To == model.StateCandidate:
		if g.Context.Reason == model.ReasonMouseLeave {
			return Reject
		}

	case g.From.IsUnsaved() && g.To == model.StateCandidate:
		switch {
		case g.Context.Reason == model.ReasonMouseLeave:
			return Reject
		case g.Context.Confirmed:
			return Accept
		default:
			return Confirm
		}

	}

	return Accept
}
