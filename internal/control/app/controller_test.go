package app_test

import (
	"math/rand"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ja-he/quickedit/internal/control/app"
	"github.com/ja-he/quickedit/internal/control/edit"
	"github.com/ja-he/quickedit/internal/model"
)

func TestTransitions(t *testing.T) {

	t.Run("highlighting without a holder", func(t *testing.T) {
		c, s := newController(t, model.ModeEditing, 2)
		o := request(s[0], model.StateHighlighted, edit.Context{})
		if !o.resolved || !o.accepted {
			t.Error("highlighting rejected")
		}
		if c.Highlighted() != s[0] {
			t.Error("holder not updated")
		}
	})

	t.Run("highlight refused while another is active", func(t *testing.T) {
		c, s := newController(t, model.ModeEditing, 2)
		mustAccept(t, s[0], model.StateHighlighted, model.StateActivating, model.StateActive)
		if c.Active() != s[0] {
			t.Fatal("active holder not updated")
		}
		o := request(s[1], model.StateHighlighted, edit.Context{})
		if !o.resolved || o.accepted {
			t.Error("second editor highlighted while first is active")
		}
		if s[1].State() != model.StateCandidate {
			t.Error("rejected state applied:", s[1].State())
		}
	})

	t.Run("mouseleave does not stop editing", func(t *testing.T) {
		c, s := newController(t, model.ModeEditing, 1)
		mustAccept(t, s[0], model.StateHighlighted, model.StateActivating, model.StateActive)
		o := request(s[0], model.StateCandidate, edit.Context{Reason: model.ReasonMouseLeave})
		if !o.resolved || o.accepted {
			t.Error("mouseleave stopped editing")
		}
		if c.Active() != s[0] || s[0].State() != model.StateActive {
			t.Error("active editor changed")
		}
	})

	t.Run("saving unsaved changes when asked", func(t *testing.T) {
		c, s := newController(t, model.ModeEditing, 1)
		mustAccept(t, s[0], model.StateHighlighted, model.StateActivating, model.StateActive, model.StateChanged)

		o := request(s[0], model.StateCandidate, edit.Context{})
		if o.resolved {
			t.Fatal("request resolved without confirmation")
		}
		if c.Confirmation() == nil || c.Confirmation().Property != s[0].ID() {
			t.Fatal("no confirmation for the editor")
		}
		if err := c.Choose(edit.ChoiceSave); err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if !o.resolved || o.accepted {
			t.Error("original request not rejected")
		}
		if s[0].State() != model.StateSaving {
			t.Error("editor not driven to saving:", s[0].State())
		}
		if c.Confirmation() != nil {
			t.Error("confirmation still pending")
		}
	})

	t.Run("only deactivation while viewing", func(t *testing.T) {
		_, s := newController(t, model.ModeViewing, 1)
		s[0].state = model.StateCandidate
		if o := request(s[0], model.StateHighlighted, edit.Context{}); !o.resolved || o.accepted {
			t.Error("highlighting accepted while viewing")
		}
		if o := request(s[0], model.StateInactive, edit.Context{}); !o.resolved || !o.accepted {
			t.Error("deactivation rejected while viewing")
		}
	})

	t.Run("retrying to save after invalid", func(t *testing.T) {
		_, s := newController(t, model.ModeEditing, 1)
		mustAccept(t, s[0], model.StateHighlighted, model.StateActivating, model.StateActive, model.StateChanged, model.StateSaving, model.StateInvalid)
		if o := request(s[0], model.StateSaving, edit.Context{}); !o.resolved || !o.accepted {
			t.Error("retrying to save rejected")
		}
	})

}

func TestConfirmation(t *testing.T) {

	t.Run("discard", func(t *testing.T) {
		c, s := newController(t, model.ModeEditing, 1)
		mustAccept(t, s[0], model.StateHighlighted, model.StateActivating, model.StateActive, model.StateChanged)
		o := request(s[0], model.StateCandidate, edit.Context{Reason: model.ReasonOverlay})
		if err := c.Choose(edit.ChoiceDiscard); err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if !o.resolved || !o.accepted {
			t.Error("original request not accepted")
		}
		if s[0].State() != model.StateCandidate {
			t.Error("editor not candidate:", s[0].State())
		}
		if c.Active() != nil || c.Highlighted() != nil {
			t.Error("holders not cleared")
		}
	})

	t.Run("single pending", func(t *testing.T) {
		c, s := newController(t, model.ModeEditing, 1)
		mustAccept(t, s[0], model.StateHighlighted, model.StateActivating, model.StateActive, model.StateChanged)
		first := request(s[0], model.StateCandidate, edit.Context{})
		second := request(s[0], model.StateCandidate, edit.Context{Reason: model.ReasonMenu})
		if first.resolved {
			t.Error("first request resolved early")
		}
		if !second.resolved || second.accepted {
			t.Error("second request not rejected right away")
		}
		if err := c.Choose(edit.ChoiceDiscard); err != nil {
			t.Fatal(err.Error())
		}
		if !first.accepted {
			t.Error("first request not accepted after discarding")
		}
	})

	t.Run("confirmed context skips confirmation", func(t *testing.T) {
		c, s := newController(t, model.ModeEditing, 1)
		mustAccept(t, s[0], model.StateHighlighted, model.StateActivating, model.StateActive, model.StateChanged)
		if o := request(s[0], model.StateCandidate, edit.Context{Confirmed: true}); !o.resolved || !o.accepted {
			t.Error("confirmed request not accepted")
		}
		if c.Confirmation() != nil {
			t.Error("confirmation opened despite confirmed context")
		}
	})

	t.Run("refused confirmation counts as rejection", func(t *testing.T) {
		metrics := app.NewMetrics()
		_, s := newMeasuredController(t, model.ModeEditing, 1, metrics)
		mustAccept(t, s[0], model.StateHighlighted, model.StateActivating, model.StateActive, model.StateChanged)
		request(s[0], model.StateCandidate, edit.Context{})
		request(s[0], model.StateCandidate, edit.Context{Reason: model.ReasonMenu})

		rec := httptest.NewRecorder()
		metrics.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
		for _, line := range []string{
			`quickedit_transitions_total{verdict="accept"} 4`,
			`quickedit_transitions_total{verdict="confirm"} 1`,
			`quickedit_transitions_total{verdict="reject"} 1`,
		} {
			if !strings.Contains(rec.Body.String(), line) {
				t.Errorf("missing '%s' in:\n%s", line, rec.Body.String())
			}
		}
	})

	t.Run("mode change while pending", func(t *testing.T) {
		c, s := newController(t, model.ModeEditing, 1)
		mustAccept(t, s[0], model.StateHighlighted, model.StateActivating, model.StateActive, model.StateChanged)
		o := request(s[0], model.StateCandidate, edit.Context{})
		c.SetMode(model.ModeViewing)
		if c.Confirmation() == nil {
			t.Fatal("mode change removed pending confirmation")
		}
		if err := c.Choose(edit.ChoiceDiscard); err != nil {
			t.Fatal(err.Error())
		}
		if !o.resolved || o.accepted {
			t.Error("stale request accepted")
		}
		if s[0].State() != model.StateInactive {
			t.Error("editor not inactive:", s[0].State())
		}
	})

}

func TestRequestTransition(t *testing.T) {

	t.Run("unregistered editor", func(t *testing.T) {
		c, _ := newController(t, model.ModeEditing, 1)
		stranger := &stub{id: "node:9:title:und:full", state: model.StateCandidate, authority: c}
		if o := request(stranger, model.StateHighlighted, edit.Context{}); !o.resolved || o.accepted {
			t.Error("unregistered editor's request accepted")
		}
		if c.Highlighted() != nil {
			t.Error("unregistered editor became holder")
		}
	})

	t.Run("none is no target", func(t *testing.T) {
		_, s := newController(t, model.ModeEditing, 1)
		if o := request(s[0], model.StateNone, edit.Context{}); !o.resolved || o.accepted {
			t.Error("transition to none accepted")
		}
	})

	t.Run("duplicate registration", func(t *testing.T) {
		c, s := newController(t, model.ModeEditing, 1)
		if err := c.Register(&stub{id: s[0].id, authority: c}); err == nil {
			t.Error("no error registering duplicate property")
		}
	})

	t.Run("holders follow transitions", func(t *testing.T) {
		c, s := newController(t, model.ModeEditing, 1)
		mustAccept(t, s[0], model.StateHighlighted)
		if c.Highlighted() != s[0] || c.Active() != nil {
			t.Error("unexpected holders after highlighting")
		}
		mustAccept(t, s[0], model.StateActivating)
		if c.Highlighted() != s[0] || c.Active() != s[0] {
			t.Error("unexpected holders after activating")
		}
		mustAccept(t, s[0], model.StateActive, model.StateCandidate)
		if c.Highlighted() != nil || c.Active() != nil {
			t.Error("holders not cleared on candidate")
		}
	})

	t.Run("on change", func(t *testing.T) {
		c, s := newController(t, model.ModeEditing, 1)
		changes := 0
		c.OnChange(func() { changes++ })
		mustAccept(t, s[0], model.StateHighlighted)
		request(s[0], model.StateSaved, edit.Context{Reason: model.ReasonMouseLeave})
		c.SetMode(model.ModeViewing)
		if changes != 3 {
			t.Errorf("%d change notifications, expected 3", changes)
		}
	})

}

func TestSetMode(t *testing.T) {
	c, s := newController(t, model.ModeViewing, 3)
	for _, e := range s {
		if e.State() != model.StateInactive {
			t.Error("registered editor not inactive:", e.State())
		}
	}

	c.SetMode(model.ModeEditing)
	mustAccept(t, s[1], model.StateHighlighted, model.StateActivating, model.StateActive, model.StateChanged)

	c.SetMode(model.ModeViewing)
	for _, e := range s {
		if e.State() != model.StateInactive {
			t.Error("editor not reset to inactive:", e.State())
		}
	}
	if c.Highlighted() != nil || c.Active() != nil {
		t.Error("holders not cleared when viewing")
	}
	if c.Router().Current() != app.RouteView {
		t.Error("route not view:", c.Router().Current())
	}

	c.SetMode(model.ModeEditing)
	for _, e := range s {
		if e.State() != model.StateCandidate {
			t.Error("editor not reset to candidate:", e.State())
		}
	}
	// a holder left over from before would make this fail
	mustAccept(t, s[0], model.StateHighlighted)

	before := len(s[2].applied)
	c.SetMode(model.ModeEditing)
	if len(s[2].applied) != before {
		t.Error("setting the same mode reset editors")
	}
}

func TestEscape(t *testing.T) {
	c, s := newController(t, model.ModeEditing, 1)
	mustAccept(t, s[0], model.StateHighlighted, model.StateActivating, model.StateActive)

	c.Escape()
	if s[0].State() != model.StateCandidate || c.Mode() != model.ModeEditing {
		t.Error("escape did not just stop the active editor:", s[0].State(), c.Mode())
	}

	c.Escape()
	if c.Mode() != model.ModeViewing || c.Router().Current() != app.RouteView {
		t.Error("escape without active editor did not stop editing")
	}
}

func TestOverlay(t *testing.T) {
	c, s := newController(t, model.ModeEditing, 1)
	c.Overlay()
	if c.Mode() != model.ModeEditing {
		t.Error("overlay click without active editor changed mode")
	}
	mustAccept(t, s[0], model.StateHighlighted, model.StateActivating, model.StateActive)
	c.Overlay()
	if s[0].State() != model.StateCandidate {
		t.Error("overlay click did not stop the active editor")
	}
}

func TestFocus(t *testing.T) {
	c, s := newController(t, model.ModeEditing, 3)

	expectHighlighted := func(i int) {
		t.Helper()
		for j, e := range s {
			expected := model.StateCandidate
			if j == i {
				expected = model.StateHighlighted
			}
			if e.State() != expected {
				t.Errorf("editor %d is %s, expected %s", j, e.State(), expected)
			}
		}
		if c.Focused() != s[i] {
			t.Error("focused editor not tracked")
		}
	}

	c.FocusNext()
	expectHighlighted(0)
	c.FocusNext()
	expectHighlighted(1)
	c.FocusPrev()
	expectHighlighted(0)
	c.FocusPrev()
	expectHighlighted(2)
	c.FocusNext()
	expectHighlighted(0)

	c.ActivateFocused()
	if s[0].State() != model.StateActivating || c.Active() != s[0] {
		t.Error("focused editor not activating")
	}
	c.FocusNext()
	if s[1].State() != model.StateCandidate {
		t.Error("focus moved while editing")
	}

	t.Run("not while viewing", func(t *testing.T) {
		c, s := newController(t, model.ModeViewing, 2)
		c.FocusNext()
		c.ActivateFocused()
		for _, e := range s {
			if e.State() != model.StateInactive {
				t.Error("focus changed while viewing")
			}
		}
	})
}

// TestExclusivity drives random requests and checks that at no point two
// editors are in a single editor state.
func TestExclusivity(t *testing.T) {
	c, s := newController(t, model.ModeEditing, 4)
	rng := rand.New(rand.NewSource(42))
	reasons := []model.Reason{model.ReasonNone, model.ReasonMouseLeave, model.ReasonOverlay, model.ReasonMenu, model.ReasonTab}

	for i := 0; i < 5000; i++ {
		switch r := rng.Intn(100); {
		case r < 2:
			c.SetMode(model.Mode(1 + rng.Intn(2)))
		case r < 6:
			if c.Confirmation() != nil {
				_ = c.Choose(edit.Choice(1 + rng.Intn(2)))
			}
		default:
			e := s[rng.Intn(len(s))]
			to := model.Sequence[1+rng.Intn(len(model.Sequence)-1)]
			ctx := edit.Context{Reason: reasons[rng.Intn(len(reasons))], Confirmed: rng.Intn(4) == 0}
			request(e, to, ctx)
		}

		var holders []*stub
		for _, e := range s {
			if e.State().IsSingleEditor() {
				holders = append(holders, e)
			}
		}
		if len(holders) > 1 {
			t.Fatalf("step %d: %d editors in single editor states", i, len(holders))
		}
		if len(holders) == 1 && c.Highlighted() != holders[0] {
			t.Fatalf("step %d: editor %s in %s is not the highlighted holder", i, holders[0].id, holders[0].State())
		}
		if c.Mode() == model.ModeViewing {
			for _, e := range s {
				if e.State() != model.StateInactive {
					t.Fatalf("step %d: editor %s is %s while viewing", i, e.id, e.State())
				}
			}
		}
	}
}

func TestToggleMode(t *testing.T) {

	t.Run("both directions", func(t *testing.T) {
		c, s := newController(t, model.ModeViewing, 2)

		c.ToggleMode()
		if c.Mode() != model.ModeEditing || c.Router().Current() != app.RouteQuickEdit {
			t.Fatal("not editing after toggling:", c.Mode(), c.Router().Current())
		}
		for _, e := range s {
			if e.State() != model.StateCandidate {
				t.Error("editor not candidate:", e.State())
			}
		}

		c.ToggleMode()
		if c.Mode() != model.ModeViewing || c.Router().Current() != app.RouteView {
			t.Fatal("not viewing after toggling back:", c.Mode(), c.Router().Current())
		}
		for _, e := range s {
			if e.State() != model.StateInactive {
				t.Error("editor not inactive:", e.State())
			}
		}
	})

	t.Run("stops the active editor", func(t *testing.T) {
		c, s := newController(t, model.ModeEditing, 1)
		mustAccept(t, s[0], model.StateHighlighted, model.StateActivating, model.StateActive)
		c.ToggleMode()
		if c.Mode() != model.ModeViewing || c.Active() != nil {
			t.Error("active editor kept editing")
		}
		if s[0].State() != model.StateInactive {
			t.Error("editor not inactive:", s[0].State())
		}
	})

	t.Run("asks about unsaved changes", func(t *testing.T) {
		c, s := newController(t, model.ModeEditing, 1)
		mustAccept(t, s[0], model.StateHighlighted, model.StateActivating, model.StateActive, model.StateChanged)
		c.ToggleMode()
		if c.Confirmation() == nil || c.Mode() != model.ModeEditing {
			t.Fatal("toggled without asking")
		}
		if err := c.Choose(edit.ChoiceDiscard); err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if c.Mode() != model.ModeViewing || c.Router().Current() != app.RouteView {
			t.Error("not viewing after discarding:", c.Mode(), c.Router().Current())
		}
	})

}
