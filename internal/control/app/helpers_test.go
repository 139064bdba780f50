package app_test

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ja-he/quickedit/internal/config"
	"github.com/ja-he/quickedit/internal/control/app"
	"github.com/ja-he/quickedit/internal/control/edit"
	"github.com/ja-he/quickedit/internal/input"
	"github.com/ja-he/quickedit/internal/model"
)

// stub is an editor without any reactions to its states.
type stub struct {
	id        model.PropertyID
	state     model.State
	authority edit.Authority
	applied   []model.State
}

func (s *stub) ID() model.PropertyID { return s.id }
func (s *stub) State() model.State   { return s.state }
func (s *stub) ApplyState(to model.State) {
	s.state = to
	s.applied = append(s.applied, to)
}
func (s *stub) RequestTransition(to model.State, ctx edit.Context, done func(bool)) {
	s.authority.RequestTransition(s, to, ctx, func(accepted bool) {
		if accepted {
			s.ApplyState(to)
		}
		if done != nil {
			done(accepted)
		}
	})
}

// outcome captures the resolution of a request.
type outcome struct {
	resolved bool
	accepted bool
}

func request(s *stub, to model.State, ctx edit.Context) *outcome {
	o := &outcome{}
	s.RequestTransition(to, ctx, func(accepted bool) {
		o.resolved = true
		o.accepted = accepted
	})
	return o
}

func mustAccept(t *testing.T, s *stub, states ...model.State) {
	t.Helper()
	for _, to := range states {
		if o := request(s, to, edit.Context{}); !o.resolved || !o.accepted {
			t.Fatalf("%s could not go to %s (from %s)", s.id, to, s.state)
		}
	}
}

// frontEndActions are the actions of the default bindings that the controller
// does not implement itself.
func frontEndActions() map[input.Actionspec]func() {
	return map[input.Actionspec]func(){
		"exit":        func() {},
		"toggle-help": func() {},
		"toggle-log":  func() {},
	}
}

func newController(t *testing.T, mode model.Mode, n int) (*app.Controller, []*stub) {
	t.Helper()
	return newMeasuredController(t, mode, n, nil)
}

func newMeasuredController(t *testing.T, mode model.Mode, n int, metrics *app.Metrics) (*app.Controller, []*stub) {
	t.Helper()
	nop := zerolog.Nop()
	cfg := config.Default(config.Dark)
	c, err := app.NewController(app.Options{
		Logger:       &nop,
		Keys:         cfg.Keys,
		Messages:     cfg.Messages,
		Metrics:      metrics,
		ExtraActions: frontEndActions(),
	})
	if err != nil {
		t.Fatal("could not create controller:", err.Error())
	}
	stubs := make([]*stub, n)
	for i := range stubs {
		stubs[i] = &stub{id: model.PropertyID(fmt.Sprintf("node:%d:title:und:full", i)), authority: c}
		if err := c.Register(stubs[i]); err != nil {
			t.Fatal("could not register:", err.Error())
		}
	}
	c.SetMode(mode)
	return c, stubs
}
