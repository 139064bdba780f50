package editors

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/quickedit/internal/control/action"
	"github.com/ja-he/quickedit/internal/input"
	"github.com/ja-he/quickedit/internal/input/processors"
)

// StringEditor is a single-line text buffer with a cursor.
type StringEditor struct {
	Content   string
	CursorPos int

	// OnModify (if set) is called after every modification of the content.
	OnModify func()
}

// GetContent returns the current (edited) contents.
func (e *StringEditor) GetContent() string { return e.Content }

// GetCursorPos returns the current cursor position in the string, 0 being
// the first character.
func (e *StringEditor) GetCursorPos() int { return e.CursorPos }

// Reset replaces the content and moves the cursor past its end.
// It does not count as a modification.
func (e *StringEditor) Reset(content string) {
	e.Content = content
	e.CursorPos = len([]rune(content))
}

func (e *StringEditor) modified() {
	if e.OnModify != nil {
		e.OnModify()
	}
}

// DeleteRune deletes the rune at the cursor position.
func (e *StringEditor) DeleteRune() {
	tmpStr := []rune(e.Content)
	if e.CursorPos < len(tmpStr) {
		preCursor := tmpStr[:e.CursorPos]
		postCursor := tmpStr[e.CursorPos+1:]

		e.Content = string(append(preCursor, postCursor...))
		e.modified()
	}
}

// BackspaceRune deletes the rune before the cursor position.
func (e *StringEditor) BackspaceRune() {
	if e.CursorPos > 0 {
		tmpStr := []rune(e.Content)
		preCursor := tmpStr[:e.CursorPos-1]
		postCursor := tmpStr[e.CursorPos:]

		e.Content = string(append(preCursor, postCursor...))
		e.CursorPos--
		e.modified()
	}
}

// BackspaceWord deletes the runes from the beginning of the word before the
// cursor to the cursor.
func (e *StringEditor) BackspaceWord() {
	if e.CursorPos == 0 {
		return
	}
	tmpStr := []rune(e.Content)
	i := e.CursorPos
	for i > 0 && tmpStr[i-1] == ' ' {
		i--
	}
	for i > 0 && tmpStr[i-1] != ' ' {
		i--
	}
	e.Content = string(append(tmpStr[:i:i], tmpStr[e.CursorPos:]...))
	e.CursorPos = i
	e.modified()
}

// BackspaceToBeginning deletes all runes before the cursor position.
func (e *StringEditor) BackspaceToBeginning() {
	if e.CursorPos == 0 {
		return
	}
	e.Content = string([]rune(e.Content)[e.CursorPos:])
	e.CursorPos = 0
	e.modified()
}

// DeleteToEnd deletes all runes after the cursor position.
func (e *StringEditor) DeleteToEnd() {
	tmpStr := []rune(e.Content)
	if e.CursorPos >= len(tmpStr) {
		return
	}
	e.Content = string(tmpStr[:e.CursorPos])
	e.modified()
}

// Clear deletes all runes in the editor.
func (e *StringEditor) Clear() {
	if e.Content == "" {
		return
	}
	e.Content = ""
	e.CursorPos = 0
	e.modified()
}

// MoveCursorToBeginning moves the cursor to the beginning of the string.
func (e *StringEditor) MoveCursorToBeginning() {
	e.CursorPos = 0
}

// MoveCursorPastEnd moves the cursor past the end of the string.
func (e *StringEditor) MoveCursorPastEnd() {
	e.CursorPos = len([]rune(e.Content))
}

// MoveCursorLeft moves the cursor one rune to the left.
func (e *StringEditor) MoveCursorLeft() {
	if e.CursorPos > 0 {
		e.CursorPos--
	}
}

// MoveCursorRight moves the cursor one rune to the right, at most past the
// end of the string.
func (e *StringEditor) MoveCursorRight() {
	if e.CursorPos < len([]rune(e.Content)) {
		e.CursorPos++
	}
}

// AddRune adds a rune at the cursor position.
func (e *StringEditor) AddRune(newRune rune) {
	if strconv.IsPrint(newRune) {
		tmpName := []rune(e.Content)
		cursorPos := e.CursorPos
		if len(tmpName) == cursorPos {
			tmpName = append(tmpName, newRune)
		} else {
			tmpName = append(tmpName[:cursorPos+1], tmpName[cursorPos:]...)
			tmpName[cursorPos] = newRune
		}
		e.Content = string(tmpName)
		e.CursorPos++
		e.modified()
	}
}

// Actions returns the editing operations by the actionspecs they can be bound
// to.
func (e *StringEditor) Actions() map[input.Actionspec]func() {
	return map[input.Actionspec]func(){
		"move-cursor-rune-left":    e.MoveCursorLeft,
		"move-cursor-rune-right":   e.MoveCursorRight,
		"move-cursor-to-beginning": e.MoveCursorToBeginning,
		"move-cursor-past-end":     e.MoveCursorPastEnd,
		"backspace":                e.BackspaceRune,
		"backspace-word":           e.BackspaceWord,
		"backspace-to-beginning":   e.BackspaceToBeginning,
		"delete-rune":              e.DeleteRune,
		"delete-to-end":            e.DeleteToEnd,
		"clear":                    e.Clear,
	}
}

// CreateInputProcessor creates an input processor for the editor, which
// inserts typed runes and performs the bound actions.
// extra supplies actions beyond the editing operations (e.g. "save").
func (e *StringEditor) CreateInputProcessor(bindings input.Bindings, extra map[input.Actionspec]func()) (input.ModalInputProcessor, error) {
	actionspecToFunc := e.Actions()
	for spec, f := range extra {
		actionspecToFunc[spec] = f
	}

	mappings := map[input.Keyspec]action.Action{}
	for keyspec, actionspec := range bindings {
		f, ok := actionspecToFunc[actionspec]
		if !ok {
			return nil, fmt.Errorf("unknown action '%s' bound to '%s'", actionspec, keyspec)
		}
		mappings[keyspec] = action.NewSimple(func() string { return string(actionspec) }, f)
	}
	textInput, err := processors.NewTextInputProcessor(mappings, e.AddRune)
	if err != nil {
		return nil, fmt.Errorf("could not construct text input processor: %w", err)
	}
	log.Debug().Int("mappings", len(mappings)).Msg("constructed string editor input processor")

	return processors.NewModalInputProcessor(textInput), nil
}
