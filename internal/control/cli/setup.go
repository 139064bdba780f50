package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/quickedit/internal/config"
	"github.com/ja-he/quickedit/internal/control/app"
	"github.com/ja-he/quickedit/internal/control/edit/editors"
	"github.com/ja-he/quickedit/internal/storage"
)

// homeDir returns ${QUICKEDIT_HOME}, defaulting to ~/.config/quickedit.
func homeDir() string {
	home := os.Getenv("QUICKEDIT_HOME")
	if home == "" {
		return filepath.Join(os.Getenv("HOME"), ".config", "quickedit")
	}
	return strings.TrimRight(home, "/")
}

// loadConfig reads the config file at the given path on top of the theme's
// defaults. A missing file means the defaults.
func loadConfig(theme string, path string) (config.Config, error) {
	colorscheme := config.Dark
	if theme != "" {
		var err error
		colorscheme, err = config.ColorschemeTypeFromString(theme)
		if err != nil {
			return config.Config{}, err
		}
	}

	yamlData, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Info().Str("file", path).Msg("no config file, using defaults")
		yamlData = nil
	case err != nil:
		return config.Config{}, fmt.Errorf("could not read config file '%s': %w", path, err)
	}

	cfg, err := config.ParseConfigAugmentDefaults(colorscheme, yamlData)
	if err != nil {
		return config.Config{}, fmt.Errorf("could not parse config file '%s': %w", path, err)
	}
	return cfg, nil
}

// setUpFields creates a field per configured field and registers them with
// the controller.
func setUpFields(cfg config.Config, store storage.FieldStore, controller *app.Controller) ([]*editors.Field, error) {
	fields := make([]*editors.Field, 0, len(cfg.Fields))
	for _, fieldCfg := range cfg.Fields {
		field, err := editors.NewField(fieldCfg, store, controller)
		if err != nil {
			return nil, err
		}
		if err := controller.Register(field); err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}
