// Package config defines the configuration file format and its defaults.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ja-he/quickedit/internal/input"
)

// Config is the configuration data as present in a config file at
// '${QUICKEDIT_HOME}/config.yaml'.
type Config struct {
	Keys       Keys       `yaml:"keys"`
	Messages   Messages   `yaml:"messages"`
	Stylesheet Stylesheet `yaml:"stylesheet"`
	Fields     []Field    `yaml:"fields"`
}

// Keys holds the key bindings.
// A binding set given in a config file replaces the default set as a whole.
type Keys struct {
	// App are the bindings available whenever no editor or confirmation takes
	// precedence (e.g. "focus-next", "escape", "toggle-mode").
	App input.Bindings `yaml:"app"`
	// Confirm are the bindings answering a pending confirmation ("discard",
	// "save").
	Confirm input.Bindings `yaml:"confirm"`
	// FieldEditor are the bindings of an active field editor (e.g. "save",
	// "stop", "backspace").
	FieldEditor input.Bindings `yaml:"field-editor"`
}

// Messages are the texts shown to (or announced for) the user.
type Messages struct {
	UnsavedChanges string `yaml:"unsaved-changes"`
	Discard        string `yaml:"discard"`
	Save           string `yaml:"save"`
	EditingMode    string `yaml:"editing-mode"`
	ViewingMode    string `yaml:"viewing-mode"`
	Saved          string `yaml:"saved"`
	Invalid        string `yaml:"invalid"`
}

// A Stylesheet is the stylesheet contents defined in a config file.
type Stylesheet struct {
	Normal      Styling `yaml:"normal"`
	Inactive    Styling `yaml:"inactive"`
	Candidate   Styling `yaml:"candidate"`
	Highlighted Styling `yaml:"highlighted"`
	Activating  Styling `yaml:"activating"`
	Active      Styling `yaml:"active"`
	Changed     Styling `yaml:"changed"`
	Saving      Styling `yaml:"saving"`
	Saved       Styling `yaml:"saved"`
	Invalid     Styling `yaml:"invalid"`
	Label       Styling `yaml:"label"`
	Focus       Styling `yaml:"focus"`

	Status      Styling `yaml:"status"`
	Modal       Styling `yaml:"modal"`
	ModalChoice Styling `yaml:"modal-choice"`
	Help        Styling `yaml:"help"`

	LogDefault        Styling `yaml:"log-default"`
	LogTitleBox       Styling `yaml:"log-title-box"`
	LogEntryTypeError Styling `yaml:"log-entry-type-error"`
	LogEntryTypeWarn  Styling `yaml:"log-entry-type-warn"`
	LogEntryTypeInfo  Styling `yaml:"log-entry-type-info"`
	LogEntryTypeDebug Styling `yaml:"log-entry-type-debug"`
	LogEntryTypeTrace Styling `yaml:"log-entry-type-trace"`
	LogEntryTime      Styling `yaml:"log-entry-time"`
}

// A Styling is a styling as defined in a config file.
// It must contain fore- and background colors and can optionally specify font
// style (bold, italic, underlined).
type Styling struct {
	Fg    string     `yaml:"fg"`
	Bg    string     `yaml:"bg"`
	Style *FontStyle `yaml:"style"`
}

// A FontStyle can be any combination of bold, italic, and underlined.
type FontStyle struct {
	Bold       bool `yaml:"bold,omitempty"`
	Italic     bool `yaml:"italic,omitempty"`
	Underlined bool `yaml:"underlined,omitempty"`
}

// A Field is an editable property as defined in a config file.
type Field struct {
	ID                    string   `yaml:"id"`
	Label                 string   `yaml:"label"`
	Kind                  string   `yaml:"kind,omitempty"`
	Content               string   `yaml:"content,omitempty"`
	Required              bool     `yaml:"required,omitempty"`
	MaxLength             int      `yaml:"max-length,omitempty"`
	TransformationFilters []string `yaml:"transformation-filters,omitempty"`
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment a given default configuration.
func ParseConfigAugmentDefaults(defaultTheme ColorschemeType, yamlData []byte) (Config, error) {
	defaultConfig := Default(defaultTheme)

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%w)", err)
	}

	result := defaultConfig.augmentWith(parsedConfig)

	return result, nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	result.Keys = base.Keys.augmentWith(augment.Keys)
	result.Messages = base.Messages.augmentWith(augment.Messages)
	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)

	if len(augment.Fields) > 0 {
		result.Fields = augment.Fields
	}

	return result
}

func (base Keys) augmentWith(augment Keys) Keys {
	result := base
	if len(augment.App) > 0 {
		result.App = augment.App
	}
	if len(augment.Confirm) > 0 {
		result.Confirm = augment.Confirm
	}
	if len(augment.FieldEditor) > 0 {
		result.FieldEditor = augment.FieldEditor
	}
	return result
}

func (base Messages) augmentWith(augment Messages) Messages {
	result := base
	for _, m := range []struct{ dst, src *string }{
		{&result.UnsavedChanges, &augment.UnsavedChanges},
		{&result.Discard, &augment.Discard},
		{&result.Save, &augment.Save},
		{&result.EditingMode, &augment.EditingMode},
		{&result.ViewingMode, &augment.ViewingMode},
		{&result.Saved, &augment.Saved},
		{&result.Invalid, &augment.Invalid},
	} {
		if *m.src != "" {
			*m.dst = *m.src
		}
	}
	return result
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base

	result.Normal.overwriteIfDefined(augment.Normal)
	result.Inactive.overwriteIfDefined(augment.Inactive)
	result.Candidate.overwriteIfDefined(augment.Candidate)
	result.Highlighted.overwriteIfDefined(augment.Highlighted)
	result.Activating.overwriteIfDefined(augment.Activating)
	result.Active.overwriteIfDefined(augment.Active)
	result.Changed.overwriteIfDefined(augment.Changed)
	result.Saving.overwriteIfDefined(augment.Saving)
	result.Saved.overwriteIfDefined(augment.Saved)
	result.Invalid.overwriteIfDefined(augment.Invalid)
	result.Label.overwriteIfDefined(augment.Label)
	result.Focus.overwriteIfDefined(augment.Focus)
	result.Status.overwriteIfDefined(augment.Status)
	result.Modal.overwriteIfDefined(augment.Modal)
	result.ModalChoice.overwriteIfDefined(augment.ModalChoice)
	result.Help.overwriteIfDefined(augment.Help)
	result.LogDefault.overwriteIfDefined(augment.LogDefault)
	result.LogTitleBox.overwriteIfDefined(augment.LogTitleBox)
	result.LogEntryTypeError.overwriteIfDefined(augment.LogEntryTypeError)
	result.LogEntryTypeWarn.overwriteIfDefined(augment.LogEntryTypeWarn)
	result.LogEntryTypeInfo.overwriteIfDefined(augment.LogEntryTypeInfo)
	result.LogEntryTypeDebug.overwriteIfDefined(augment.LogEntryTypeDebug)
	result.LogEntryTypeTrace.overwriteIfDefined(augment.LogEntryTypeTrace)
	result.LogEntryTime.overwriteIfDefined(augment.LogEntryTime)

	return result
}

func (s *Styling) overwriteIfDefined(augment Styling) {
	if augment.Fg != "" && augment.Bg != "" {
		s.Fg = augment.Fg
		s.Bg = augment.Bg
	}
	if augment.Style != nil {
		s.Style = &FontStyle{
			Bold:       augment.Style.Bold,
			Italic:     augment.Style.Italic,
			Underlined: augment.Style.Underlined,
		}
	}
}

// A ColorschemeType can either be light or dark.
type ColorschemeType = int

const (
	_ ColorschemeType = iota
	Dark
	Light
)

// ColorschemeTypeFromString parses "dark" or "light".
func ColorschemeTypeFromString(s string) (ColorschemeType, error) {
	switch s {
	case "dark":
		return Dark, nil
	case "light":
		return Light, nil
	default:
		return 0, fmt.Errorf("unknown theme '%s' (valid: dark, light)", s)
	}
}
