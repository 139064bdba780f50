package styling

import (
	"fmt"

	"github.com/ja-he/quickedit/internal/config"
	"github.com/ja-he/quickedit/internal/model"
)

// Stylesheet represents all styles used by the application for rendering.
type Stylesheet struct {
	Normal DrawStyling

	States map[model.State]DrawStyling
	Label  DrawStyling
	Focus  DrawStyling

	Status      DrawStyling
	Modal       DrawStyling
	ModalChoice DrawStyling
	Help        DrawStyling

	LogDefault  DrawStyling
	LogTitleBox DrawStyling

	LogEntryTypeError DrawStyling
	LogEntryTypeWarn  DrawStyling
	LogEntryTypeInfo  DrawStyling
	LogEntryTypeDebug DrawStyling
	LogEntryTypeTrace DrawStyling

	LogEntryTime DrawStyling
}

// ForState returns the styling for an editor in the given state, falling back
// to the normal styling.
func (s *Stylesheet) ForState(state model.State) DrawStyling {
	if styling, ok := s.States[state]; ok {
		return styling
	}
	return s.Normal
}

// NewStylesheetFromConfig constructs a new stylesheet from a given config
// stylesheet.
func NewStylesheetFromConfig(cfg config.Stylesheet) (*Stylesheet, error) {
	stylesheet := Stylesheet{States: map[model.State]DrawStyling{}}

	for _, entry := range []struct {
		name string
		src  config.Styling
		dst  *DrawStyling
	}{
		{"normal", cfg.Normal, &stylesheet.Normal},
		{"label", cfg.Label, &stylesheet.Label},
		{"focus", cfg.Focus, &stylesheet.Focus},
		{"status", cfg.Status, &stylesheet.Status},
		{"modal", cfg.Modal, &stylesheet.Modal},
		{"modal-choice", cfg.ModalChoice, &stylesheet.ModalChoice},
		{"help", cfg.Help, &stylesheet.Help},
		{"log-default", cfg.LogDefault, &stylesheet.LogDefault},
		{"log-title-box", cfg.LogTitleBox, &stylesheet.LogTitleBox},
		{"log-entry-type-error", cfg.LogEntryTypeError, &stylesheet.LogEntryTypeError},
		{"log-entry-type-warn", cfg.LogEntryTypeWarn, &stylesheet.LogEntryTypeWarn},
		{"log-entry-type-info", cfg.LogEntryTypeInfo, &stylesheet.LogEntryTypeInfo},
		{"log-entry-type-debug", cfg.LogEntryTypeDebug, &stylesheet.LogEntryTypeDebug},
		{"log-entry-type-trace", cfg.LogEntryTypeTrace, &stylesheet.LogEntryTypeTrace},
		{"log-entry-time", cfg.LogEntryTime, &stylesheet.LogEntryTime},
	} {
		styling, err := StyleFromConfig(entry.src)
		if err != nil {
			return nil, fmt.Errorf("invalid styling '%s': %w", entry.name, err)
		}
		*entry.dst = styling
	}

	for state, src := range map[model.State]config.Styling{
		model.StateInactive:    cfg.Inactive,
		model.StateCandidate:   cfg.Candidate,
		model.StateHighlighted: cfg.Highlighted,
		model.StateActivating:  cfg.Activating,
		model.StateActive:      cfg.Active,
		model.StateChanged:     cfg.Changed,
		model.StateSaving:      cfg.Saving,
		model.StateSaved:       cfg.Saved,
		model.StateInvalid:     cfg.Invalid,
	} {
		styling, err := StyleFromConfig(src)
		if err != nil {
			return nil, fmt.Errorf("invalid styling for state '%s': %w", state, err)
		}
		stylesheet.States[state] = styling
	}

	return &stylesheet, nil
}

// StyleFromConfig constructs a styling from its config file definition.
func StyleFromConfig(cfg config.Styling) (DrawStyling, error) {
	s, err := StyleFromHex(cfg.Fg, cfg.Bg)
	if err != nil {
		return nil, err
	}
	if cfg.Style != nil {
		s.bold = cfg.Style.Bold
		s.italic = cfg.Style.Italic
		s.underlined = cfg.Style.Underlined
	}
	return s, nil
}
