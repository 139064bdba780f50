package edit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/quickedit/internal/control/action"
	"github.com/ja-he/quickedit/internal/input"
	"github.com/ja-he/quickedit/internal/model"
)

// Choice is an answer to a pending confirmation.
type Choice int

const (
	_ Choice = iota
	// ChoiceDiscard abandons the unsaved changes.
	ChoiceDiscard
	// ChoiceSave keeps editing and saves the changes instead.
	ChoiceSave
)

func (c Choice) String() string {
	switch c {
	case ChoiceDiscard:
		return "discard"
	case ChoiceSave:
		return "save"
	default:
		return fmt.Sprintf("Choice(%d)", int(c))
	}
}

// ChoiceFromString parses "discard" or "save".
func ChoiceFromString(s string) (Choice, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "discard":
		return ChoiceDiscard, nil
	case "save":
		return ChoiceSave, nil
	default:
		return 0, fmt.Errorf("unknown choice '%s'", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Choice) UnmarshalText(text []byte) error {
	parsed, err := ChoiceFromString(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ErrNoPendingConfirmation is returned when a choice is made while no
// confirmation is pending.
var ErrNoPendingConfirmation = errors.New("no confirmation pending")

// PendingConfirmation is a question to the user that has not been answered
// yet.
type PendingConfirmation struct {
	ID       uuid.UUID
	Property model.PropertyID
	Message  string
	Choices  []Choice

	onChoice func(Choice)
}

// ConfirmationFlow asks the user whether unsaved changes may be abandoned.
// At most one confirmation is pending at any time.
type ConfirmationFlow struct {
	pending *PendingConfirmation

	// OnOpen (if set) is called after a confirmation was opened.
	OnOpen func(*PendingConfirmation)
	// OnClose (if set) is called after the pending confirmation was answered,
	// before the answer is acted upon.
	OnClose func(*PendingConfirmation, Choice)
}

// Open opens a confirmation for the given property, which calls onChoice with
// the user's answer.
// It returns false (and opens nothing) when another confirmation is pending.
func (f *ConfirmationFlow) Open(property model.PropertyID, message string, onChoice func(Choice)) bool {
	if f.pending != nil {
		log.Warn().
			Str("property", string(property)).
			Str("pending-for", string(f.pending.Property)).
			Msg("refusing to open confirmation while another is pending")
		return false
	}

	f.pending = &PendingConfirmation{
		ID:       uuid.New(),
		Property: property,
		Message:  message,
		Choices:  []Choice{ChoiceDiscard, ChoiceSave},
		onChoice: onChoice,
	}
	log.Debug().Str("property", string(property)).Str("confirmation", f.pending.ID.String()).Msg("opened confirmation")
	if f.OnOpen != nil {
		f.OnOpen(f.pending)
	}
	return true
}

// IsOpen returns whether a confirmation is pending.
func (f *ConfirmationFlow) IsOpen() bool { return f.pending != nil }

// Pending returns the pending confirmation, or nil.
func (f *ConfirmationFlow) Pending() *PendingConfirmation { return f.pending }

// Choose answers the pending confirmation.
// The confirmation is closed before its callback runs, so the callback may
// open a new one.
func (f *ConfirmationFlow) Choose(c Choice) error {
	if f.pending == nil {
		return ErrNoPendingConfirmation
	}
	if c != ChoiceDiscard && c != ChoiceSave {
		return fmt.Errorf("invalid choice %s", c)
	}

	answered := f.pending
	f.pending = nil
	log.Debug().Str("property", string(answered.Property)).Str("confirmation", answered.ID.String()).Str("choice", c.String()).Msg("confirmation answered")
	if f.OnClose != nil {
		f.OnClose(answered, c)
	}
	if answered.onChoice != nil {
		answered.onChoice(c)
	}
	return nil
}

// CreateInputProcessor creates the input processor by which the user answers
// the pending confirmation.
// The bindings' actionspecs must be "discard" or "save".
func (f *ConfirmationFlow) CreateInputProcessor(bindings input.Bindings) (input.SimpleInputProcessor, error) {
	mappings := map[input.Keyspec]action.Action{}
	for keyspec, actionspec := range bindings {
		choice, err := ChoiceFromString(string(actionspec))
		if err != nil {
			return nil, fmt.Errorf("invalid confirmation binding '%s' -> '%s': %w", keyspec, actionspec, err)
		}
		mappings[keyspec] = action.NewSimple(
			func() string { return choice.String() },
			func() {
				if err := f.Choose(choice); err != nil {
					log.Warn().Err(err).Str("choice", choice.String()).Msg("could not choose")
				}
			},
		)
	}
	tree, err := input.ConstructInputTree(mappings)
	if err != nil {
		return nil, fmt.Errorf("could not construct confirmation input tree: %w", err)
	}
	return tree, nil
}
