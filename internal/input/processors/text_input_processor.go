package processors

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/quickedit/internal/control/action"
	"github.com/ja-he/quickedit/internal/input"
)

// TextInputProcessor is a SimpleInputProcessor specifically for text input.
// It can have a number of defined mappings for single keys (e.g. ESC to stop
// editing); any rune it is asked to process is handed to its rune callback,
// which could, e.g., insert the rune into a string.
type TextInputProcessor struct {
	mappings map[input.Key]action.Action

	runeCallback func(r rune)
}

// ProcessInput processes mapped keys by their action and runes by the rune
// callback.
func (p *TextInputProcessor) ProcessInput(key input.Key) bool {
	if a, ok := p.mappings[key]; ok {
		a.Do()
		return true
	}
	if key.Key == tcell.KeyRune {
		p.runeCallback(key.Ch)
		return true
	}
	return false
}

// CapturesInput always returns true, text input takes precedence.
func (p *TextInputProcessor) CapturesInput() bool {
	return true
}

// GetHelp returns the input help map for this processor.
func (p *TextInputProcessor) GetHelp() input.Help {
	result := input.Help{}
	for k, a := range p.mappings {
		result[input.ToConfigIdentifierString(k)] = a.Explain()
	}
	return result
}

// NewTextInputProcessor returns a pointer to a new TextInputProcessor.
// Each keyspec must denote exactly one key.
func NewTextInputProcessor(
	mappings map[input.Keyspec]action.Action,
	runeCallback func(r rune),
) (*TextInputProcessor, error) {
	keyMappings := map[input.Key]action.Action{}
	for keyspec, a := range mappings {
		keys, err := input.ConfigKeyspecToKeys(keyspec)
		if err != nil {
			return nil, fmt.Errorf("could not convert '%s' to keys: %w", keyspec, err)
		}
		if len(keys) != 1 {
			return nil, fmt.Errorf("keyspec '%s' for text processor has not exactly one key (but %d)", keyspec, len(keys))
		}
		keyMappings[keys[0]] = a
	}
	return &TextInputProcessor{
		mappings:     keyMappings,
		runeCallback: runeCallback,
	}, nil
}
