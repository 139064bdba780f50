package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/ja-he/quickedit/internal/config"
	"github.com/ja-he/quickedit/internal/control/app"
	"github.com/ja-he/quickedit/internal/control/edit"
	"github.com/ja-he/quickedit/internal/input"
	"github.com/ja-he/quickedit/internal/model"
	"github.com/ja-he/quickedit/internal/storage"
	"github.com/ja-he/quickedit/internal/storage/providers"
)

// ReplayCommand is the `replay` command, for `go-flags` to parse command line
// args into.
type ReplayCommand struct {
	Theme    string `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme"`
	Config   string `short:"c" long:"config" description:"config file to use instead of the one in the quickedit home directory" value-name:"<file>"`
	StoreDir string `long:"store-dir" description:"save values to this directory instead of keeping them in memory" value-name:"<dir>"`
	Verbose  bool   `long:"verbose" description:"log debug output to stderr"`

	Args struct {
		Script string `positional-arg-name:"<script.yaml>" required:"true"`
	} `positional-args:"true"`
}

// Script is a sequence of interactions to replay against the configured
// fields.
type Script struct {
	// Fields (if given) replace the configured fields.
	Fields []config.Field `yaml:"fields"`
	// Refuse makes the (in-memory) save backend refuse every value for the
	// given properties with the given messages.
	Refuse map[model.PropertyID][]string `yaml:"refuse"`
	Steps  []Step                        `yaml:"steps"`
}

// Step is a single interaction; exactly one of its members must be set.
type Step struct {
	Mode     *model.Mode    `yaml:"mode"`
	Navigate *string        `yaml:"navigate"`
	Request  *RequestStep   `yaml:"request"`
	Key      *input.Keyspec `yaml:"key"`
	Type     *string        `yaml:"type"`
	Choose   *edit.Choice   `yaml:"choose"`
}

// RequestStep requests a transition on behalf of an editor.
type RequestStep struct {
	Property  model.PropertyID `yaml:"property"`
	To        model.State      `yaml:"to"`
	Reason    model.Reason     `yaml:"reason"`
	Confirmed bool             `yaml:"confirmed"`
}

// ParseScript parses a replay script.
func ParseScript(data []byte) (Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return Script{}, fmt.Errorf("could not parse script: %w", err)
	}
	for i, step := range script.Steps {
		if n := step.actions(); n != 1 {
			return Script{}, fmt.Errorf("step %d has %d actions, expected exactly one", i+1, n)
		}
	}
	return script, nil
}

func (s Step) actions() int {
	n := 0
	for _, set := range []bool{s.Mode != nil, s.Navigate != nil, s.Request != nil, s.Key != nil, s.Type != nil, s.Choose != nil} {
		if set {
			n++
		}
	}
	return n
}

// Execute runs the replay.
// (This gets called by `go-flags` when `replay` is provided on the command
// line)
func (command *ReplayCommand) Execute(args []string) error {
	level := zerolog.WarnLevel
	if command.Verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	configPath := command.Config
	if configPath == "" {
		configPath = filepath.Join(homeDir(), "config.yaml")
	}
	cfg, err := loadConfig(command.Theme, configPath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(command.Args.Script)
	if err != nil {
		return fmt.Errorf("could not read script: %w", err)
	}
	script, err := ParseScript(data)
	if err != nil {
		return err
	}

	var store storage.FieldStore
	if command.StoreDir != "" {
		if len(script.Refuse) > 0 {
			log.Warn().Msg("refusals only apply to the in-memory store, ignoring")
		}
		store = providers.NewFilesFieldStore(command.StoreDir)
	} else {
		store = newRefusingStore(script.Refuse)
	}

	return Replay(script, cfg, store, os.Stdout)
}

func newRefusingStore(refuse map[model.PropertyID][]string) *providers.MemoryFieldStore {
	store := providers.NewMemoryFieldStore(nil)
	if len(refuse) > 0 {
		store.Refuse = func(id model.PropertyID, _ string) []string { return refuse[id] }
	}
	return store
}

// Replay runs the script's steps against the fields (of the script, or else
// of the config), writing a line per step to out.
func Replay(script Script, cfg config.Config, store storage.FieldStore, out io.Writer) error {
	if len(script.Fields) > 0 {
		cfg.Fields = script.Fields
	}

	logger := log.With().Str("component", "replay").Logger()
	ignored := func(name string) func() {
		return func() { logger.Debug().Str("action", name).Msg("ignoring front end action") }
	}
	controller, err := app.NewController(app.Options{
		Logger:   &logger,
		Keys:     cfg.Keys,
		Messages: cfg.Messages,
		ExtraActions: map[input.Actionspec]func(){
			"exit":        ignored("exit"),
			"toggle-help": ignored("toggle-help"),
			"toggle-log":  ignored("toggle-log"),
		},
	})
	if err != nil {
		return err
	}
	if _, err := setUpFields(cfg, store, controller); err != nil {
		return err
	}

	fmt.Fprintf(out, "%3d %-44s %s\n", 0, "start", snapshot(controller))
	for i, step := range script.Steps {
		description, err := runStep(controller, step)
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		fmt.Fprintf(out, "%3d %-44s %s\n", i+1, description, snapshot(controller))
	}
	return nil
}

func runStep(c *app.Controller, step Step) (string, error) {
	switch {

	case step.Mode != nil:
		c.SetMode(*step.Mode)
		return fmt.Sprintf("mode %s", step.Mode), nil

	case step.Navigate != nil:
		if err := c.Router().Navigate(*step.Navigate); err != nil {
			return "", err
		}
		return fmt.Sprintf("navigate /%s", *step.Navigate), nil

	case step.Request != nil:
		r := step.Request
		e, ok := c.Lookup(r.Property)
		if !ok {
			return "", fmt.Errorf("no field '%s'", r.Property)
		}
		outcome := "pending"
		e.RequestTransition(r.To, edit.Context{Reason: r.Reason, Confirmed: r.Confirmed}, func(accepted bool) {
			if accepted {
				outcome = "accepted"
			} else {
				outcome = "rejected"
			}
		})
		return fmt.Sprintf("request %s for %s: %s", r.To, r.Property.FieldName(), outcome), nil

	case step.Key != nil:
		keys, err := input.ConfigKeyspecToKeys(*step.Key)
		if err != nil {
			return "", err
		}
		applied := 0
		for _, k := range keys {
			if c.ProcessInput(k) {
				applied++
			}
		}
		return fmt.Sprintf("key %s (%d/%d applied)", *step.Key, applied, len(keys)), nil

	case step.Type != nil:
		for _, r := range *step.Type {
			c.ProcessInput(input.RuneKey(r))
		}
		return fmt.Sprintf("type %q", *step.Type), nil

	case step.Choose != nil:
		if err := c.Choose(*step.Choose); err != nil {
			return "", err
		}
		return fmt.Sprintf("choose %s", step.Choose), nil

	}
	return "", fmt.Errorf("empty step")
}

// snapshot describes the controller's mode, route, editor states and pending
// confirmation.
func snapshot(c *app.Controller) string {
	states := make([]string, 0, len(c.Editors()))
	for _, e := range c.Editors() {
		states = append(states, fmt.Sprintf("%s=%s", e.ID().FieldName(), e.State()))
	}
	s := fmt.Sprintf("%s /%s [%s]", c.Mode(), c.Router().Current(), strings.Join(states, " "))
	if p := c.Confirmation(); p != nil {
		s += fmt.Sprintf(" confirm(%s)", p.Property.FieldName())
	}
	return s
}
