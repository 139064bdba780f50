// Package app implements the controller that is the sole authority over the
// state changes of all property editors, and the router mapping routes to its
// mode.
package app

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/quickedit/internal/config"
	"github.com/ja-he/quickedit/internal/control/action"
	"github.com/ja-he/quickedit/internal/control/edit"
	"github.com/ja-he/quickedit/internal/input"
	"github.com/ja-he/quickedit/internal/input/processors"
	"github.com/ja-he/quickedit/internal/model"
)

const maxMessages = 32

// Options configure a Controller.
type Options struct {
	// Logger is the logger to use; the zero value means the global logger.
	Logger *zerolog.Logger

	Keys     config.Keys
	Messages config.Messages

	// Metrics (if non-nil) records transition decisions and confirmations.
	Metrics *Metrics

	// ExtraActions are additional actions the app key bindings may name, e.g.
	// "exit" for a front end.
	ExtraActions map[input.Actionspec]func()
}

// Controller decides every state change of its registered editors and
// tracks which editor is highlighted and which is active.
// It is not safe for concurrent use.
type Controller struct {
	log zerolog.Logger

	mode        model.Mode
	editors     []edit.Editable
	highlighted edit.Editable
	active      edit.Editable
	focused     int

	confirmation edit.ConfirmationFlow
	router       *Router
	metrics      *Metrics

	keys     config.Keys
	texts    config.Messages
	messages []string

	onChange []func()

	input          *processors.ModalInputProcessor
	confirmInput   input.SimpleInputProcessor
	editorInput    input.ModalInputProcessor
	editorInputFor edit.Editable
}

// NewController returns a pointer to a new controller in viewing mode without
// editors.
func NewController(opts Options) (*Controller, error) {
	c := &Controller{
		log:     log.Logger,
		mode:    model.ModeViewing,
		focused: -1,
		metrics: opts.Metrics,
		keys:    opts.Keys,
		texts:   opts.Messages,
	}
	if opts.Logger != nil {
		c.log = *opts.Logger
	}
	c.router = &Router{controller: c, route: RouteView}

	unlessConfirming := func() bool { return !c.confirmation.IsOpen() }
	actionspecToFunc := map[input.Actionspec]func(){
		"focus-next":  c.FocusNext,
		"focus-prev":  c.FocusPrev,
		"activate":    c.ActivateFocused,
		"escape":      c.Escape,
		"toggle-mode": c.ToggleMode,
	}
	for spec, f := range opts.ExtraActions {
		actionspecToFunc[spec] = f
	}

	mappings := map[input.Keyspec]action.Action{}
	for keyspec, actionspec := range opts.Keys.App {
		f, ok := actionspecToFunc[actionspec]
		if !ok {
			return nil, fmt.Errorf("unknown app action '%s' bound to '%s'", actionspec, keyspec)
		}
		mappings[keyspec] = action.NewGuarded(
			unlessConfirming,
			action.NewSimple(func() string { return string(actionspec) }, f),
		)
	}
	appInput, err := input.ConstructInputTree(mappings)
	if err != nil {
		return nil, fmt.Errorf("could not construct app input tree: %w", err)
	}
	c.input = processors.NewModalInputProcessor(appInput)

	c.confirmInput, err = c.confirmation.CreateInputProcessor(opts.Keys.Confirm)
	if err != nil {
		return nil, err
	}
	c.confirmation.OnOpen = func(p *edit.PendingConfirmation) {
		c.metrics.RecordConfirmationOpened()
		c.announce(p.Message)
		c.syncInput()
		c.changed()
	}
	c.confirmation.OnClose = func(_ *edit.PendingConfirmation, choice edit.Choice) {
		c.metrics.RecordConfirmationAnswered(choice)
		c.syncInput()
		c.changed()
	}

	return c, nil
}

// Register adds editors to be governed by the controller.
// Editors are brought to the state of the current mode (inactive or
// candidate) without being gated.
func (c *Controller) Register(editors ...edit.Editable) error {
	for _, e := range editors {
		if _, exists := c.Lookup(e.ID()); exists {
			return fmt.Errorf("editor for '%s' already registered", e.ID())
		}
		c.editors = append(c.editors, e)
		e.ApplyState(c.modeState())
		c.log.Debug().Str("property", string(e.ID())).Msg("registered editor")
	}
	c.changed()
	return nil
}

// Editors returns the registered editors in the order of their registration.
func (c *Controller) Editors() []edit.Editable { return c.editors }

// Lookup returns the editor registered for the given property.
func (c *Controller) Lookup(id model.PropertyID) (edit.Editable, bool) {
	for _, e := range c.editors {
		if e.ID() == id {
			return e, true
		}
	}
	return nil, false
}

// Mode returns the current mode.
func (c *Controller) Mode() model.Mode { return c.mode }

// Highlighted returns the highlighted editor, or nil.
func (c *Controller) Highlighted() edit.Editable { return c.highlighted }

// Active returns the active editor, or nil.
func (c *Controller) Active() edit.Editable { return c.active }

// Focused returns the editor focused by keyboard, or nil.
func (c *Controller) Focused() edit.Editable {
	if c.focused < 0 || c.focused >= len(c.editors) {
		return nil
	}
	return c.editors[c.focused]
}

// Confirmation returns the pending confirmation, or nil.
func (c *Controller) Confirmation() *edit.PendingConfirmation { return c.confirmation.Pending() }

// Choose answers the pending confirmation.
func (c *Controller) Choose(choice edit.Choice) error { return c.confirmation.Choose(choice) }

// Router returns the controller's router.
func (c *Controller) Router() *Router { return c.router }

// Texts returns the configured user-facing texts.
func (c *Controller) Texts() config.Messages { return c.texts }

// Messages returns the most recent announcements, oldest first.
func (c *Controller) Messages() []string { return c.messages }

// OnChange registers a function to be called after every accepted
// transition, mode change and confirmation change.
func (c *Controller) OnChange(f func()) { c.onChange = append(c.onChange, f) }

func (c *Controller) changed() {
	for _, f := range c.onChange {
		f()
	}
}

func (c *Controller) announce(msg string) {
	c.log.Info().Str("message", msg).Msg("announcement")
	c.messages = append(c.messages, msg)
	if len(c.messages) > maxMessages {
		c.messages = c.messages[len(c.messages)-maxMessages:]
	}
}

func (c *Controller) isRegistered(e edit.Editable) bool {
	for _, registered := range c.editors {
		if registered == e {
			return true
		}
	}
	return false
}

func (c *Controller) holderElsewhere(e edit.Editable) bool {
	return (c.highlighted != nil && c.highlighted != e) || (c.active != nil && c.active != e)
}

func (c *Controller) modeState() model.State {
	if c.mode == model.ModeEditing {
		return model.StateCandidate
	}
	return model.StateInactive
}

// RequestTransition decides the transition of e to the given state.
// Accepted transitions first update which editor is highlighted and active,
// then resolve.
// A transition that needs confirmation resolves once the user answered.
func (c *Controller) RequestTransition(e edit.Editable, to model.State, ctx edit.Context, resolve func(accepted bool)) {
	req := edit.NewRequest(e.ID(), e.State(), to, ctx, resolve)
	logger := c.log.With().
		Str("request", req.ID.String()).
		Str("property", string(req.Property)).
		Str("from", req.From.String()).
		Str("to", to.String()).
		Str("reason", string(ctx.Reason)).
		Logger()

	if !c.isRegistered(e) {
		logger.Error().Msg("transition requested by unregistered editor")
		c.metrics.RecordVerdict(edit.Reject)
		req.Resolve(false)
		return
	}
	if !to.IsValid() || to == model.StateNone {
		logger.Error().Msg("transition requested to invalid state")
		c.metrics.RecordVerdict(edit.Reject)
		req.Resolve(false)
		return
	}

	verdict := c.decide(e, to, ctx)
	logger.Debug().Str("verdict", verdict.String()).Msg("decided transition request")

	switch verdict {

	case edit.Reject:
		c.metrics.RecordVerdict(edit.Reject)
		req.Resolve(false)

	case edit.Accept:
		c.metrics.RecordVerdict(edit.Accept)
		c.accept(e, req)

	case edit.Confirm:
		opened := c.confirmation.Open(e.ID(), c.texts.UnsavedChanges, func(choice edit.Choice) {
			c.confirmed(e, req, choice)
		})
		if !opened {
			logger.Debug().Msg("another confirmation is pending, rejecting")
			c.metrics.RecordVerdict(edit.Reject)
			req.Resolve(false)
			return
		}
		c.metrics.RecordVerdict(edit.Confirm)

	}
}

func (c *Controller) decide(e edit.Editable, to model.State, ctx edit.Context) edit.Verdict {
	return edit.Decide(edit.GateInput{
		Mode:            c.mode,
		From:            e.State(),
		To:              to,
		Context:         ctx,
		HolderElsewhere: c.holderElsewhere(e),
	})
}

// confirmed acts on the user's answer to the confirmation opened for req.
func (c *Controller) confirmed(e edit.Editable, req *edit.Request, choice edit.Choice) {
	switch choice {

	case edit.ChoiceDiscard:
		// the situation may have changed while the user was deciding
		confirmedCtx := req.Context
		confirmedCtx.Confirmed = true
		verdict := c.decide(e, req.To, confirmedCtx)
		if verdict != edit.Accept {
			c.log.Warn().Str("property", string(req.Property)).Str("verdict", verdict.String()).Msg("discarding no longer possible")
			req.Resolve(false)
			return
		}
		c.accept(e, req)

	case edit.ChoiceSave:
		req.Resolve(false)
		if c.active != e {
			c.log.Warn().Str("property", string(req.Property)).Msg("asked to save, but the editor is no longer active")
			return
		}
		e.RequestTransition(model.StateSaving, edit.Context{}, nil)

	}
}

func (c *Controller) accept(e edit.Editable, req *edit.Request) {
	to := req.To

	switch {
	case to.IsSingleEditor():
		c.highlighted = e
	case to == model.StateCandidate || to == model.StateInactive:
		if c.highlighted == e {
			c.highlighted = nil
		}
	}
	switch {
	case to.IsActive():
		c.active = e
	case to == model.StateCandidate || to == model.StateInactive:
		if c.active == e {
			c.active = nil
		}
	}
	if to == model.StateHighlighted {
		for i, registered := range c.editors {
			if registered == e {
				c.focused = i
			}
		}
	}

	req.Resolve(true)

	switch to {
	case model.StateSaved:
		c.announce(fmt.Sprintf("%s: %s", c.texts.Saved, label(e)))
	case model.StateInvalid:
		c.announce(fmt.Sprintf("%s: %s", c.texts.Invalid, label(e)))
	}
	c.syncInput()
	c.changed()
}

// labeled is implemented by editors with a human-readable name.
type labeled interface {
	Label() string
}

func label(e edit.Editable) string {
	if l, ok := e.(labeled); ok {
		return l.Label()
	}
	return string(e.ID())
}

// SetMode switches between viewing and editing.
// All editors are reset to inactive (viewing) or candidate (editing) without
// being gated, and neither a highlighted nor an active editor remains.
// A pending confirmation is left alone.
func (c *Controller) SetMode(m model.Mode) {
	if m == c.mode {
		return
	}
	c.log.Info().Str("from", c.mode.String()).Str("to", m.String()).Msg("switching mode")

	c.mode = m
	c.highlighted = nil
	c.active = nil
	c.focused = -1
	target := c.modeState()
	for _, e := range c.editors {
		e.ApplyState(target)
	}

	switch m {
	case model.ModeEditing:
		c.router.route = RouteQuickEdit
		c.announce(c.texts.EditingMode)
	case model.ModeViewing:
		c.router.route = RouteView
		c.announce(c.texts.ViewingMode)
	}
	c.syncInput()
	c.changed()
}

// ToggleMode switches to the respective other mode, going through the router
// like a click on the menu would.
func (c *Controller) ToggleMode() {
	route := RouteQuickEdit
	if c.mode == model.ModeEditing {
		route = RouteView
	}
	if err := c.router.Navigate(string(route)); err != nil {
		c.log.Error().Err(err).Msg("could not toggle mode")
	}
}

// Escape stops the active editor, or, if there is none, stops editing
// altogether.
func (c *Controller) Escape() {
	if c.active != nil {
		c.active.RequestTransition(model.StateCandidate, edit.Context{Reason: model.ReasonOverlay}, nil)
		return
	}
	c.SetMode(model.ModeViewing)
}

// Overlay handles a click on the overlay around the active editor, which
// stops it.
func (c *Controller) Overlay() {
	if c.active == nil {
		return
	}
	c.active.RequestTransition(model.StateCandidate, edit.Context{Reason: model.ReasonOverlay}, nil)
}

// FocusNext moves the keyboard focus to the next candidate editor.
func (c *Controller) FocusNext() { c.cycleFocus(1) }

// FocusPrev moves the keyboard focus to the previous candidate editor.
func (c *Controller) FocusPrev() { c.cycleFocus(-1) }

func (c *Controller) cycleFocus(step int) {
	if c.mode != model.ModeEditing {
		return
	}
	if c.active != nil {
		c.log.Debug().Msg("not cycling focus while an editor is active")
		return
	}
	n := len(c.editors)
	if n == 0 {
		return
	}

	current := c.focused
	if c.highlighted != nil {
		for i, e := range c.editors {
			if e == c.highlighted {
				current = i
			}
		}
	}
	base := current
	if base < 0 {
		if step > 0 {
			base = -1
		} else {
			base = n
		}
	}

	next := -1
	for i := 1; i <= n; i++ {
		idx := ((base+step*i)%n + n) % n
		if idx != current && c.editors[idx].State() == model.StateCandidate {
			next = idx
			break
		}
	}
	if next < 0 {
		return
	}

	focusNext := func() {
		c.editors[next].RequestTransition(model.StateHighlighted, edit.Context{Reason: model.ReasonTab}, nil)
	}
	if c.highlighted != nil && c.highlighted.State() == model.StateHighlighted {
		c.highlighted.RequestTransition(model.StateCandidate, edit.Context{Reason: model.ReasonTab}, func(accepted bool) {
			if accepted {
				focusNext()
			}
		})
		return
	}
	focusNext()
}

// ActivateFocused starts editing the highlighted (or keyboard focused)
// editor.
func (c *Controller) ActivateFocused() {
	target := c.highlighted
	if target == nil {
		target = c.Focused()
	}
	if target == nil {
		return
	}
	target.RequestTransition(model.StateActivating, edit.Context{Reason: model.ReasonClick}, nil)
}

// ProcessInput processes the key by the topmost of: the confirmation, the
// active editor, the app bindings.
func (c *Controller) ProcessInput(k input.Key) bool { return c.input.ProcessInput(k) }

// CapturesInput returns whether the controller is in the middle of a key
// sequence (or a confirmation or editor takes all input).
func (c *Controller) CapturesInput() bool { return c.input.CapturesInput() }

// GetHelp returns the help for the input currently processed.
func (c *Controller) GetHelp() input.Help { return c.input.GetHelp() }

// syncInput rebuilds the input overlays from the active editor and the
// pending confirmation.
func (c *Controller) syncInput() {
	c.input.PopModalOverlays(0)

	if c.active != c.editorInputFor {
		c.editorInput = nil
		c.editorInputFor = c.active
		if creator, ok := c.active.(edit.InputProcessorCreator); ok && c.active != nil {
			p, err := creator.CreateInputProcessor(c.keys.FieldEditor)
			if err != nil {
				c.log.Error().Err(err).Str("property", string(c.active.ID())).Msg("could not create editor input processor")
			} else {
				c.editorInput = p
			}
		}
	}
	if c.editorInput != nil {
		c.input.ApplyModalOverlay(c.editorInput)
	}

	if c.confirmation.IsOpen() {
		c.input.ApplyModalOverlay(c.confirmInput)
	}
}
