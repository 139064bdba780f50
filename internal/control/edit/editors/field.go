// Package editors contains the property editors.
package editors

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/quickedit/internal/config"
	"github.com/ja-he/quickedit/internal/control/edit"
	"github.com/ja-he/quickedit/internal/input"
	"github.com/ja-he/quickedit/internal/model"
	"github.com/ja-he/quickedit/internal/storage"
)

// Kind is the way a property is edited.
type Kind int

const (
	_ Kind = iota
	// KindDirect properties are edited directly in place.
	KindDirect
	// KindForm properties are edited in a freshly loaded form.
	KindForm
	// KindProcessedText properties are displayed transformed and edited
	// untransformed.
	KindProcessedText
)

func (k Kind) String() string {
	switch k {
	case KindDirect:
		return "direct"
	case KindForm:
		return "form"
	case KindProcessedText:
		return "processed-text"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KindFromString parses "direct", "form" or "processed-text".
// The empty string is "direct".
func KindFromString(s string) (Kind, error) {
	switch s {
	case "", "direct":
		return KindDirect, nil
	case "form":
		return KindForm, nil
	case "processed-text":
		return KindProcessedText, nil
	default:
		return 0, fmt.Errorf("unknown field kind '%s'", s)
	}
}

var whitespaceRun = regexp.MustCompile(`\s+`)

var transformationFilters = map[string]func(string) string{
	"trim":                strings.TrimSpace,
	"collapse-whitespace": func(s string) string { return whitespaceRun.ReplaceAllString(s, " ") },
	"upper":               strings.ToUpper,
	"lower":               strings.ToLower,
}

// Field is the editor of a single property.
// It applies a state only once its authority accepted the transition to it,
// and reacts to its states as follows:
//
//	inactive, candidate  -> discard unsaved modifications
//	activating           -> load the untransformed value, then request active
//	active               -> the first modification requests changed
//	saving               -> validate and save, then request saved or invalid
//	saved                -> request candidate
type Field struct {
	id        model.PropertyID
	label     string
	kind      Kind
	required  bool
	maxLength int
	filters   []string

	state     model.State
	authority edit.Authority
	store     storage.FieldStore

	// the last saved (untransformed) value
	original string
	buffer   StringEditor
	errors   []string
}

// NewField returns a pointer to a new, inactive field editor for the given
// configured property.
// Its initial value is loaded from the store, falling back to the configured
// content if the store does not know the property.
func NewField(cfg config.Field, store storage.FieldStore, authority edit.Authority) (*Field, error) {
	id, err := model.ParsePropertyID(cfg.ID)
	if err != nil {
		return nil, err
	}
	kind, err := KindFromString(cfg.Kind)
	if err != nil {
		return nil, fmt.Errorf("field '%s': %w", cfg.ID, err)
	}
	for _, filter := range cfg.TransformationFilters {
		if _, ok := transformationFilters[filter]; !ok {
			return nil, fmt.Errorf("field '%s': unknown transformation filter '%s'", cfg.ID, filter)
		}
	}
	if cfg.MaxLength < 0 {
		return nil, fmt.Errorf("field '%s': negative max-length %d", cfg.ID, cfg.MaxLength)
	}

	f := &Field{
		id:        id,
		label:     cfg.Label,
		kind:      kind,
		required:  cfg.Required,
		maxLength: cfg.MaxLength,
		filters:   cfg.TransformationFilters,
		state:     model.StateInactive,
		authority: authority,
		store:     store,
		original:  cfg.Content,
	}
	if f.label == "" {
		f.label = id.FieldName()
	}

	stored, err := store.Load(id)
	switch {
	case err == nil:
		f.original = stored
	case errors.Is(err, storage.ErrNotFound):
		log.Debug().Str("property", string(id)).Msg("property not stored yet, using configured content")
	default:
		return nil, fmt.Errorf("could not load '%s': %w", id, err)
	}

	f.buffer.Reset(f.original)
	f.buffer.OnModify = f.onModify
	return f, nil
}

// ID returns the edited property.
func (f *Field) ID() model.PropertyID { return f.id }

// State returns the current state.
func (f *Field) State() model.State { return f.state }

// Label returns the human-readable name of the property.
func (f *Field) Label() string { return f.label }

// Kind returns the field's kind.
func (f *Field) Kind() Kind { return f.kind }

// Errors returns the messages of the last failed save.
func (f *Field) Errors() []string { return f.errors }

// Buffer returns the text buffer holding the value being edited.
func (f *Field) Buffer() *StringEditor { return &f.buffer }

// Saved returns the last saved (untransformed) value.
func (f *Field) Saved() string { return f.original }

// Display returns what is to be shown for the property: while it is being
// edited the buffer's content, otherwise the transformed saved value.
func (f *Field) Display() string {
	switch f.state {
	case model.StateActive, model.StateChanged, model.StateSaving, model.StateInvalid:
		return f.buffer.Content
	default:
		return f.transformed(f.original)
	}
}

func (f *Field) transformed(s string) string {
	if f.kind != KindProcessedText {
		return s
	}
	for _, filter := range f.filters {
		s = transformationFilters[filter](s)
	}
	return s
}

// RequestTransition asks the authority for the transition and applies it if
// accepted.
func (f *Field) RequestTransition(to model.State, ctx edit.Context, done func(accepted bool)) {
	if f.authority == nil {
		log.Error().Str("property", string(f.id)).Msg("field has no authority to request transitions from")
		if done != nil {
			done(false)
		}
		return
	}
	f.authority.RequestTransition(f, to, ctx, func(accepted bool) {
		if accepted {
			f.ApplyState(to)
		}
		if done != nil {
			done(accepted)
		}
	})
}

// ApplyState changes the state and performs the field's reaction to it.
func (f *Field) ApplyState(to model.State) {
	from := f.state
	f.state = to
	log.Debug().Str("property", string(f.id)).Str("from", from.String()).Str("to", to.String()).Msg("field changed state")

	switch to {

	case model.StateInactive, model.StateCandidate:
		if from != model.StateSaved {
			f.buffer.Reset(f.original)
		}
		f.errors = nil

	case model.StateActivating:
		f.prepare()
		f.RequestTransition(model.StateActive, edit.Context{}, nil)

	case model.StateSaving:
		f.save()

	case model.StateSaved:
		f.original = f.buffer.Content
		f.errors = nil
		f.RequestTransition(model.StateCandidate, edit.Context{}, nil)

	}
}

// prepare loads the untransformed value of the property for editing.
func (f *Field) prepare() {
	needsLoad := f.kind == KindForm || (f.kind == KindProcessedText && len(f.filters) > 0)
	if needsLoad {
		stored, err := f.store.Load(f.id)
		switch {
		case err == nil:
			f.original = stored
		case errors.Is(err, storage.ErrNotFound):
		default:
			log.Warn().Err(err).Str("property", string(f.id)).Msg("could not load untransformed value, editing last known value")
		}
	}
	f.buffer.Reset(f.original)
}

func (f *Field) onModify() {
	if f.state == model.StateActive {
		f.RequestTransition(model.StateChanged, edit.Context{}, nil)
	}
}

// Validate returns the problems with the given value (none if it is valid).
func (f *Field) Validate(value string) []string {
	var problems []string
	if f.required && strings.TrimSpace(value) == "" {
		problems = append(problems, fmt.Sprintf("%s field is required.", f.label))
	}
	if f.maxLength > 0 && len([]rune(value)) > f.maxLength {
		problems = append(problems, fmt.Sprintf("%s cannot be longer than %d characters.", f.label, f.maxLength))
	}
	return problems
}

func (f *Field) save() {
	value := f.buffer.Content

	if problems := f.Validate(value); len(problems) > 0 {
		f.errors = problems
		f.RequestTransition(model.StateInvalid, edit.Context{}, nil)
		return
	}

	err := f.store.Save(f.id, value)
	if err != nil {
		var verr *storage.ValidationError
		if errors.As(err, &verr) {
			f.errors = verr.Messages
		} else {
			log.Error().Err(err).Str("property", string(f.id)).Msg("could not save")
			f.errors = []string{err.Error()}
		}
		f.RequestTransition(model.StateInvalid, edit.Context{}, nil)
		return
	}

	f.RequestTransition(model.StateSaved, edit.Context{}, nil)
}

// StartSaving requests the saving state, unless nothing is being edited.
func (f *Field) StartSaving() {
	switch f.state {
	case model.StateActive, model.StateChanged, model.StateInvalid:
		f.RequestTransition(model.StateSaving, edit.Context{}, nil)
	default:
		log.Debug().Str("property", string(f.id)).Str("state", f.state.String()).Msg("nothing to save")
	}
}

// Stop requests to stop editing.
func (f *Field) Stop() {
	f.RequestTransition(model.StateCandidate, edit.Context{Reason: model.ReasonOverlay}, nil)
}

// CreateInputProcessor creates the input processor for editing the field.
// Besides the text editing actions, "save" and "stop" can be bound.
func (f *Field) CreateInputProcessor(bindings input.Bindings) (input.ModalInputProcessor, error) {
	return f.buffer.CreateInputProcessor(bindings, map[input.Actionspec]func(){
		"save": f.StartSaving,
		"stop": f.Stop,
	})
}
