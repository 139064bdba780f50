package config

import "github.com/ja-he/quickedit/internal/input"

// Default returns the default configuration for the given colorscheme type
// (light or dark).
func Default(colorschemeType ColorschemeType) Config {
	return Config{
		Keys:       defaultKeys(),
		Messages:   defaultMessages(),
		Stylesheet: defaultStylesheet(colorschemeType),
		Fields: []Field{
			{ID: "node:1:title:und:full", Label: "Title", Kind: "direct", Content: "A day at the lake", Required: true, MaxLength: 64},
			{ID: "node:1:body:und:full", Label: "Body", Kind: "processed-text", Content: "  We went  swimming.  ", TransformationFilters: []string{"trim", "collapse-whitespace"}},
			{ID: "node:1:field_tags:und:full", Label: "Tags", Kind: "form", Content: "lake, summer"},
			{ID: "node:2:title:und:full", Label: "Title (2)", Kind: "direct", Content: "Another day", Required: true},
		},
	}
}

func defaultKeys() Keys {
	return Keys{
		App: input.Bindings{
			"<tab>":     "focus-next",
			"<backtab>": "focus-prev",
			"<cr>":      "activate",
			"<space>":   "activate",
			"<esc>":     "escape",
			"e":         "toggle-mode",
			"q":         "exit",
			"?":         "toggle-help",
			"L":         "toggle-log",
		},
		Confirm: input.Bindings{
			"d":    "discard",
			"s":    "save",
			"<cr>": "save",
		},
		FieldEditor: input.Bindings{
			"<esc>":   "stop",
			"<c-s>":   "save",
			"<cr>":    "save",
			"<left>":  "move-cursor-rune-left",
			"<right>": "move-cursor-rune-right",
			"<home>":  "move-cursor-to-beginning",
			"<end>":   "move-cursor-past-end",
			"<c-a>":   "move-cursor-to-beginning",
			"<c-e>":   "move-cursor-past-end",
			"<bs>":    "backspace",
			"<c-bs>":  "backspace",
			"<del>":   "delete-rune",
			"<c-u>":   "backspace-to-beginning",
			"<c-k>":   "delete-to-end",
			"<c-w>":   "backspace-word",
		},
	}
}

func defaultMessages() Messages {
	return Messages{
		UnsavedChanges: "You have unsaved changes",
		Discard:        "Discard changes",
		Save:           "Save",
		EditingMode:    "Quick edit enabled",
		ViewingMode:    "Quick edit disabled",
		Saved:          "Saved",
		Invalid:        "Could not save",
	}
}

func defaultStylesheet(colorschemeType ColorschemeType) Stylesheet {
	if colorschemeType == Light {
		return Stylesheet{
			Normal:      Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			Inactive:    Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			Candidate:   Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			Highlighted: Styling{Fg: "#000000", Bg: "#ccebff", Style: &FontStyle{}},
			Activating:  Styling{Fg: "#404040", Bg: "#ccebff", Style: &FontStyle{Italic: true}},
			Active:      Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{Underlined: true}},
			Changed:     Styling{Fg: "#000000", Bg: "#fff0cc", Style: &FontStyle{Underlined: true}},
			Saving:      Styling{Fg: "#404040", Bg: "#fff0cc", Style: &FontStyle{Italic: true}},
			Saved:       Styling{Fg: "#3a751a", Bg: "#c2edab", Style: &FontStyle{}},
			Invalid:     Styling{Fg: "#882222", Bg: "#ffaaaa", Style: &FontStyle{Underlined: true}},
			Label:       Styling{Fg: "#808080", Bg: "#ffffff", Style: &FontStyle{Bold: true}},
			Focus:       Styling{Fg: "#0065a3", Bg: "#ffffff", Style: &FontStyle{Bold: true}},
			Status:      Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			Modal:       Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			ModalChoice: Styling{Fg: "#ffffff", Bg: "#0065a3", Style: &FontStyle{Bold: true}},
			Help:        Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},

			LogDefault:        Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			LogTitleBox:       Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{Bold: true}},
			LogEntryTypeError: Styling{Fg: "#882222", Bg: "#ffaaaa", Style: &FontStyle{Bold: true}},
			LogEntryTypeWarn:  Styling{Fg: "#cc8f00", Bg: "#fff0cc", Style: &FontStyle{Bold: true}},
			LogEntryTypeInfo:  Styling{Fg: "#3a751a", Bg: "#c2edab", Style: &FontStyle{Bold: true}},
			LogEntryTypeDebug: Styling{Fg: "#0065a3", Bg: "#ccebff", Style: &FontStyle{Bold: true}},
			LogEntryTypeTrace: Styling{Fg: "#a3008b", Bg: "#ffccf7", Style: &FontStyle{Bold: true}},
			LogEntryTime:      Styling{Fg: "#c0c0c0", Bg: "#ffffff", Style: &FontStyle{}},
		}
	}
	return Stylesheet{
		Normal:      Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
		Inactive:    Styling{Fg: "#c0c0c0", Bg: "#000000", Style: &FontStyle{}},
		Candidate:   Styling{Fg: "#ffffff", Bg: "#202020", Style: &FontStyle{}},
		Highlighted: Styling{Fg: "#ffffff", Bg: "#0065a3", Style: &FontStyle{}},
		Activating:  Styling{Fg: "#ccebff", Bg: "#0065a3", Style: &FontStyle{Italic: true}},
		Active:      Styling{Fg: "#ffffff", Bg: "#404040", Style: &FontStyle{Underlined: true}},
		Changed:     Styling{Fg: "#fff0cc", Bg: "#734700", Style: &FontStyle{Underlined: true}},
		Saving:      Styling{Fg: "#fff0cc", Bg: "#cc8f00", Style: &FontStyle{Italic: true}},
		Saved:       Styling{Fg: "#c2edab", Bg: "#3a751a", Style: &FontStyle{}},
		Invalid:     Styling{Fg: "#ffaaaa", Bg: "#882222", Style: &FontStyle{Underlined: true}},
		Label:       Styling{Fg: "#808080", Bg: "#000000", Style: &FontStyle{Bold: true}},
		Focus:       Styling{Fg: "#ccebff", Bg: "#000000", Style: &FontStyle{Bold: true}},
		Status:      Styling{Fg: "#f0f0f0", Bg: "#202020", Style: &FontStyle{}},
		Modal:       Styling{Fg: "#ffffff", Bg: "#404040", Style: &FontStyle{}},
		ModalChoice: Styling{Fg: "#000000", Bg: "#ccebff", Style: &FontStyle{Bold: true}},
		Help:        Styling{Fg: "#ffffff", Bg: "#404040", Style: &FontStyle{}},

		LogDefault:        Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
		LogTitleBox:       Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{Bold: true}},
		LogEntryTypeError: Styling{Fg: "#ffaaaa", Bg: "#882222", Style: &FontStyle{Bold: true}},
		LogEntryTypeWarn:  Styling{Fg: "#fff0cc", Bg: "#cc8f00", Style: &FontStyle{Bold: true}},
		LogEntryTypeInfo:  Styling{Fg: "#c2edab", Bg: "#3a751a", Style: &FontStyle{Bold: true}},
		LogEntryTypeDebug: Styling{Fg: "#ccebff", Bg: "#0065a3", Style: &FontStyle{Bold: true}},
		LogEntryTypeTrace: Styling{Fg: "#ffccf7", Bg: "#a3008b", Style: &FontStyle{Bold: true}},
		LogEntryTime:      Styling{Fg: "#808080", Bg: "#000000", Style: &FontStyle{}},
	}
}
