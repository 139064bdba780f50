package cli

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/quickedit/internal/control/app"
	"github.com/ja-he/quickedit/internal/potatolog"
	"github.com/ja-he/quickedit/internal/storage"
	"github.com/ja-he/quickedit/internal/storage/providers"
	"github.com/ja-he/quickedit/internal/styling"
	"github.com/ja-he/quickedit/internal/tui"
)

// TUICommand is the `tui` command, for `go-flags` to parse command line args
// into.
type TUICommand struct {
	Theme         string `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme (note: only sets defaults, which are individually overridden by settings in config.yaml"`
	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs dropped)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`
	InMemory      bool   `long:"in-memory" description:"keep saved values in memory only instead of writing them to the data directory"`
	Editing       bool   `short:"e" long:"editing" description:"start in quick edit mode"`
	MetricsAddr   string `long:"metrics-addr" description:"serve Prometheus metrics on this address (e.g. ':9090')" value-name:"<addr>"`
}

// Execute runs the TUI.
// (This gets called by `go-flags` when `tui` is provided on the command line)
func (command *TUICommand) Execute(args []string) error {
	// set up stderr logger until TUI set up
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// create TUI logger
	var logWriter io.Writer
	if command.LogOutputFile != "" {
		var fileLogger io.Writer
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			stderrLogger.Error().Err(err).Str("file", command.LogOutputFile).Msg("could not open file for logging")
			return err
		}
		defer file.Close()
		if command.LogPretty {
			fileLogger = zerolog.ConsoleWriter{Out: file}
		} else {
			fileLogger = file
		}
		logWriter = zerolog.MultiLevelWriter(fileLogger, potatolog.GlobalMemoryLogReaderWriter)
	} else {
		logWriter = potatolog.GlobalMemoryLogReaderWriter
	}
	tuiLogger := zerolog.New(logWriter).With().Timestamp().Caller().Logger()

	// temporarily log to both (in case the TUI doesn't get set we want the info
	// on the stderr logger, otherwise the TUI logger is relevant)
	log.Logger = log.Output(zerolog.MultiLevelWriter(stderrLogger, tuiLogger))

	home := homeDir()
	cfg, err := loadConfig(command.Theme, filepath.Join(home, "config.yaml"))
	if err != nil {
		return err
	}
	stylesheet, err := styling.NewStylesheetFromConfig(cfg.Stylesheet)
	if err != nil {
		return err
	}

	var store storage.FieldStore
	if command.InMemory {
		store = providers.NewMemoryFieldStore(nil)
	} else {
		store = providers.NewFilesFieldStore(filepath.Join(home, "data"))
	}

	var metrics *app.Metrics
	if command.MetricsAddr != "" {
		metrics = app.NewMetrics()
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		server := &http.Server{Addr: command.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Str("addr", command.MetricsAddr).Msg("metrics server failed")
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				log.Warn().Err(err).Msg("could not shut down metrics server")
			}
		}()
		log.Info().Str("addr", command.MetricsAddr).Msg("serving metrics")
	}

	screenHandler, err := tui.NewTUIScreenHandler()
	if err != nil {
		return err
	}

	controller, err := NewController(cfg, stylesheet, store, metrics, screenHandler, screenHandler.GetEventPollable(), tuiLogger)
	if err != nil {
		screenHandler.Fini()
		return err
	}
	if command.Editing {
		if err := controller.app.Router().Navigate(string(app.RouteQuickEdit)); err != nil {
			screenHandler.Fini()
			return err
		}
	}

	// now that the screen is initialized, we'll always want the TUI logger, so
	// we're making it the global logger
	log.Logger = tuiLogger

	controller.Run()
	return nil
}
