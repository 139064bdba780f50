// Package model holds the data types shared by the in-place editing
// components: editor states, the global mode, transition reasons and the
// identifiers of editable properties.
package model

import (
	"fmt"
	"strings"
)

// State is the lifecycle state of a single property editor.
type State int

const (
	// StateNone is the state of an editor that was never set up.
	StateNone State = iota
	// StateInactive is the state of every editor while the page is merely
	// being viewed.
	StateInactive
	// StateCandidate marks an editor as editable, but not interacted with.
	StateCandidate
	// StateHighlighted marks the editor the user is pointing at (or has
	// tabbed to).
	StateHighlighted
	// StateActivating is the preparation phase before editing starts, e.g.
	// while loading untransformed content.
	StateActivating
	// StateActive is the state of the editor that is being edited.
	StateActive
	// StateChanged is the state of an active editor with unsaved
	// modifications.
	StateChanged
	// StateSaving is entered when the editor's content is handed to the save
	// backend.
	StateSaving
	// StateSaved is entered after a successful save.
	StateSaved
	// StateInvalid is entered when the save backend rejected the content.
	StateInvalid
)

// Sequence is the canonical order of states.
// A state's position in it defines whether a transition moves "backward".
//
// NOTE: changed and invalid are side branches (active -> changed,
// saving -> invalid), their position here is not meaningful on its own; the
// legal backward moves are exactly the exceptions of the transition gate.
var Sequence = []State{
	StateNone,
	StateInactive,
	StateCandidate,
	StateHighlighted,
	StateActivating,
	StateActive,
	StateChanged,
	StateSaving,
	StateSaved,
	StateInvalid,
}

// ActiveStates are the states in which a single editor exclusively owns the
// editing focus.
var ActiveStates = []State{StateActivating, StateActive}

// SingleEditorStates are the states at most one editor may be in at a time.
var SingleEditorStates = []State{StateHighlighted, StateActivating, StateActive}

var stateNames = map[State]string{
	StateNone:        "none",
	StateInactive:    "inactive",
	StateCandidate:   "candidate",
	StateHighlighted: "highlighted",
	StateActivating:  "activating",
	StateActive:      "active",
	StateChanged:     "changed",
	StateSaving:      "saving",
	StateSaved:       "saved",
	StateInvalid:     "invalid",
}

// Index returns the position of the state in Sequence, or -1 for a value
// that is not a state.
func (s State) Index() int {
	for i, candidate := range Sequence {
		if candidate == s {
			return i
		}
	}
	return -1
}

// IsValid returns whether s is one of the defined states.
func (s State) IsValid() bool { return s.Index() >= 0 }

// IsActive returns whether s is one of the ActiveStates.
func (s State) IsActive() bool { return contains(ActiveStates, s) }

// IsSingleEditor returns whether s is one of the SingleEditorStates.
func (s State) IsSingleEditor() bool { return contains(SingleEditorStates, s) }

// IsUnsaved returns whether an editor in s holds modifications that were not
// (successfully) saved.
func (s State) IsUnsaved() bool { return s == StateChanged || s == StateInvalid }

// IsBackward returns whether going from 'from' to 'to' moves to an earlier
// position in Sequence.
func IsBackward(from, to State) bool {
	return from.Index() > to.Index()
}

// String returns the lower-case name of the state.
func (s State) String() string {
	name, ok := stateNames[s]
	if !ok {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return name
}

// StateFromString parses the lower-case name of a state.
func StateFromString(s string) (State, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for state, name := range stateNames {
		if name == s {
			return state, nil
		}
	}
	return StateNone, fmt.Errorf("unknown state '%s'", s)
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("cannot marshal invalid state %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	parsed, err := StateFromString(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func contains(states []State, s State) bool {
	for _, candidate := range states {
		if candidate == s {
			return true
		}
	}
	return false
}
