package model

import (
	"fmt"
	"strings"
)

// Mode is the global mode of the page: either merely viewing it or editing
// it in place.
type Mode int

const (
	_ Mode = iota
	// ModeViewing is the default mode, in which no editor may leave the
	// inactive state.
	ModeViewing
	// ModeEditing is the mode in which editors become candidates for editing.
	ModeEditing
)

// String returns "viewing" or "editing".
func (m Mode) String() string {
	switch m {
	case ModeViewing:
		return "viewing"
	case ModeEditing:
		return "editing"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ModeFromString parses "viewing" or "editing".
func ModeFromString(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "viewing", "view":
		return ModeViewing, nil
	case "editing", "edit":
		return ModeEditing, nil
	default:
		return 0, fmt.Errorf("unknown mode '%s'", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ModeFromString(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Reason tags what triggered a transition request.
type Reason string

const (
	// ReasonNone is the reason of plain requests (e.g. clicks).
	ReasonNone Reason = ""
	// ReasonMouseLeave is given when the pointer left the editor.
	ReasonMouseLeave Reason = "mouseleave"
	// ReasonOverlay is given when the user dismissed editing via the overlay
	// or the escape key.
	ReasonOverlay Reason = "overlay"
	// ReasonMenu is given when the user switched to viewing via the menu or
	// the route.
	ReasonMenu Reason = "menu"
	// ReasonTab is given for transitions caused by keyboard focus cycling.
	ReasonTab Reason = "tab"
	// ReasonClick is given when the user activated an editor.
	ReasonClick Reason = "click"
)
