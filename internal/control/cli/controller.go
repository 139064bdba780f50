package cli

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/quickedit/internal/config"
	"github.com/ja-he/quickedit/internal/control/app"
	"github.com/ja-he/quickedit/internal/control/edit"
	"github.com/ja-he/quickedit/internal/control/edit/editors"
	"github.com/ja-he/quickedit/internal/input"
	"github.com/ja-he/quickedit/internal/model"
	"github.com/ja-he/quickedit/internal/potatolog"
	"github.com/ja-he/quickedit/internal/storage"
	"github.com/ja-he/quickedit/internal/styling"
	"github.com/ja-he/quickedit/internal/tui"
	"github.com/ja-he/quickedit/internal/ui"
	"github.com/ja-he/quickedit/internal/ui/panes"
)

// Screen is what the TUI controller needs of a screen.
type Screen interface {
	tui.InitializedScreen
	tui.ScreenSynchronizer
	ui.ConstrainedRenderer
	ui.RenderOrchestratorControl
	ui.TextCursorController
}

// Controller is the struct for the TUI controller.
// It owns the app controller: every screen event is processed on the
// goroutine running Run.
type Controller struct {
	app      *app.Controller
	fields   []*editors.Field
	rootPane *panes.RootPane

	showHelp bool
	showLog  bool
	exiting  bool

	// hovered is the property under the mouse cursor, if any
	hovered model.PropertyID

	screenEvents      tui.EventPollable
	initializedScreen tui.InitializedScreen
	syncer            tui.ScreenSynchronizer
}

// NewController creates a new Controller for the configured fields, rendering
// to the given screen.
func NewController(
	cfg config.Config,
	stylesheet *styling.Stylesheet,
	store storage.FieldStore,
	metrics *app.Metrics,
	screen Screen,
	events tui.EventPollable,
	logger zerolog.Logger,
) (*Controller, error) {
	controller := &Controller{
		screenEvents:      events,
		initializedScreen: screen,
		syncer:            screen,
	}

	appController, err := app.NewController(app.Options{
		Logger:   &logger,
		Keys:     cfg.Keys,
		Messages: cfg.Messages,
		Metrics:  metrics,
		ExtraActions: map[input.Actionspec]func(){
			"exit":        func() { controller.exiting = true },
			"toggle-help": func() { controller.showHelp = !controller.showHelp },
			"toggle-log":  func() { controller.showLog = !controller.showLog },
		},
	})
	if err != nil {
		return nil, err
	}
	controller.app = appController
	appController.Router().OnRevert = func() {
		log.Info().Msg("stayed in quick edit, editor refused to stop")
	}

	controller.fields, err = setUpFields(cfg, store, appController)
	if err != nil {
		return nil, err
	}

	screenDimensions := screen.Dimensions
	fieldsDimensions := func() (x, y, w, h int) {
		_, _, sw, sh := screenDimensions()
		if controller.showLog {
			return 0, 0, sw / 2, sh - 1
		}
		return 0, 0, sw, sh - 1
	}
	statusDimensions := func() (x, y, w, h int) {
		_, _, sw, sh := screenDimensions()
		return 0, sh - 1, sw, 1
	}
	logDimensions := func() (x, y, w, h int) {
		_, _, sw, sh := screenDimensions()
		return sw / 2, 0, sw - sw/2, sh - 1
	}
	centered := func(width, height int) func() (x, y, w, h int) {
		return func() (x, y, w, h int) {
			_, _, sw, sh := screenDimensions()
			w, h = min(width, sw), min(height, sh)
			return (sw - w) / 2, (sh - h) / 2, w, h
		}
	}
	constrained := func(dimensions func() (x, y, w, h int)) ui.ConstrainedRenderer {
		return ui.NewConstrainedRenderer(screen, dimensions)
	}

	cursorWrangler := ui.NewCursorWrangler(screen)
	texts := appController.Texts()

	fieldsPane := panes.NewFieldsPane(
		constrained(fieldsDimensions),
		fieldsDimensions,
		stylesheet,
		controller.fieldViews,
		func() model.PropertyID {
			if focused := appController.Focused(); focused != nil {
				return focused.ID()
			}
			return ""
		},
		cursorWrangler,
	)
	statusPane := panes.NewStatusPane(
		constrained(statusDimensions),
		statusDimensions,
		stylesheet,
		appController.Mode,
		func() string { return string(appController.Router().Current()) },
		func() string {
			messages := appController.Messages()
			if len(messages) == 0 {
				return ""
			}
			return messages[len(messages)-1]
		},
	)
	logPane := panes.NewLogPane(
		constrained(logDimensions),
		logDimensions,
		stylesheet,
		func() bool { return controller.showLog },
		func() string { return "LOG" },
		potatolog.GlobalMemoryLogReaderWriter,
		zerolog.DebugLevel,
	)
	modalDimensions := centered(50, 6)
	modalPane := panes.NewModalPane(
		constrained(modalDimensions),
		modalDimensions,
		stylesheet,
		appController.Confirmation,
		func(c edit.Choice) string {
			switch c {
			case edit.ChoiceDiscard:
				return texts.Discard
			case edit.ChoiceSave:
				return texts.Save
			}
			return c.String()
		},
	)
	helpDimensions := centered(60, 20)
	helpPane := panes.NewHelpPane(
		constrained(helpDimensions),
		helpDimensions,
		stylesheet,
		func() bool { return controller.showHelp },
		appController.GetHelp,
	)

	controller.rootPane = panes.NewRootPane(
		screen,
		cursorWrangler,
		screenDimensions,
		fieldsPane,
		statusPane,
		logPane,
		modalPane,
		helpPane,
		appController,
	)

	return controller, nil
}

func (c *Controller) fieldViews() []panes.FieldView {
	views := make([]panes.FieldView, len(c.fields))
	for i, f := range c.fields {
		views[i] = f
	}
	return views
}

// HandleEvent processes a single screen event.
// It returns false once the program should exit.
func (c *Controller) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {

	case *tcell.EventKey:
		key := input.KeyFromTcellEvent(e)
		if !c.rootPane.ProcessInput(key) {
			log.Debug().Str("key", key.ToDebugString()).Msg("could not apply key input")
		}

	case *tcell.EventMouse:
		x, y := e.Position()
		c.handleMouse(x, y, e.Buttons())

	case *tcell.EventResize:
		c.syncer.NeedsSync()

	}
	return !c.exiting
}

func (c *Controller) handleMouse(x, y int, buttons tcell.ButtonMask) {
	info := c.rootPane.GetPositionInfo(x, y)

	hovered := model.PropertyID("")
	if fieldsInfo, ok := info.(*ui.FieldsPanePositionInfo); ok {
		hovered = fieldsInfo.Property
	}
	if hovered != c.hovered {
		c.leave(c.hovered)
		c.enter(hovered)
		c.hovered = hovered
	}

	if buttons&tcell.Button1 == 0 {
		return
	}
	switch info := info.(type) {

	case *ui.ModalPanePositionInfo:
		if info.Choice != 0 {
			if err := c.app.Choose(info.Choice); err != nil {
				log.Warn().Err(err).Msg("could not choose")
			}
		}

	case *ui.FieldsPanePositionInfo:
		if info.Property == "" || (c.app.Active() != nil && c.app.Active().ID() != info.Property) {
			c.app.Overlay()
			return
		}
		c.click(info.Property)

	case *ui.StatusPanePositionInfo:
		if c.app.Confirmation() == nil {
			c.app.ToggleMode()
		}

	}
}

// enter highlights the editor of the given property, if it is a candidate.
func (c *Controller) enter(property model.PropertyID) {
	if property == "" {
		return
	}
	e, ok := c.app.Lookup(property)
	if !ok || e.State() != model.StateCandidate {
		return
	}
	e.RequestTransition(model.StateHighlighted, edit.Context{}, nil)
}

// leave tells the editor of the given property that the mouse left it.
func (c *Controller) leave(property model.PropertyID) {
	if property == "" {
		return
	}
	e, ok := c.app.Lookup(property)
	if !ok {
		return
	}
	switch e.State() {
	case model.StateInactive, model.StateCandidate:
		return
	}
	e.RequestTransition(model.StateCandidate, edit.Context{Reason: model.ReasonMouseLeave}, nil)
}

// click starts editing the editor of the given property.
func (c *Controller) click(property model.PropertyID) {
	e, ok := c.app.Lookup(property)
	if !ok {
		return
	}
	activate := func() {
		e.RequestTransition(model.StateActivating, edit.Context{Reason: model.ReasonClick}, nil)
	}
	switch e.State() {
	case model.StateHighlighted:
		activate()
	case model.StateCandidate:
		e.RequestTransition(model.StateHighlighted, edit.Context{}, func(accepted bool) {
			if accepted {
				activate()
			}
		})
	}
}

// Draw renders the UI.
func (c *Controller) Draw() {
	c.rootPane.Draw()
}

// Run runs the event loop until exiting.
// Screen events are polled on a separate goroutine and handed to this one,
// which is the only one touching the controllers.
func (c *Controller) Run() {
	log.Info().Msg("quickedit TUI started")
	defer c.initializedScreen.Fini()

	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(c.screenEvents, events, done)

	c.Draw()
	for ev := range events {
		if !c.HandleEvent(ev) {
			log.Info().Msg("exiting")
			return
		}
		// skip rendering while more events are queued
		if len(events) == 0 {
			c.Draw()
		}
	}
}

// pollEvents hands the source's events to the given channel until the source
// is finalized or done is closed, then closes the channel.
func pollEvents(source tui.EventPollable, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := source.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
