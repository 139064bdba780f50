package app_test

import (
	"testing"

	"github.com/ja-he/quickedit/internal/control/app"
	"github.com/ja-he/quickedit/internal/control/edit"
	"github.com/ja-he/quickedit/internal/model"
)

func TestParseRoute(t *testing.T) {
	for s, expected := range map[string]app.Route{
		"":           app.RouteView,
		"view":       app.RouteView,
		"quick-edit": app.RouteQuickEdit,
	} {
		r, err := app.ParseRoute(s)
		if err != nil {
			t.Errorf("unexpected error for '%s': %s", s, err.Error())
		}
		if r != expected {
			t.Errorf("'%s' parsed as '%s', expected '%s'", s, r, expected)
		}
	}
	if _, err := app.ParseRoute("edit"); err == nil {
		t.Error("no error for unknown route")
	}
}

func TestNavigate(t *testing.T) {

	t.Run("enter and leave", func(t *testing.T) {
		c, s := newController(t, model.ModeViewing, 2)
		if err := c.Router().Navigate("quick-edit"); err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if c.Mode() != model.ModeEditing || c.Router().Current() != app.RouteQuickEdit {
			t.Error("not editing after navigating to quick-edit")
		}
		if s[1].State() != model.StateCandidate {
			t.Error("editor not candidate:", s[1].State())
		}
		if err := c.Router().Navigate("view"); err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if c.Mode() != model.ModeViewing || c.Router().Current() != app.RouteView {
			t.Error("not viewing after navigating to view")
		}
	})

	t.Run("unknown route", func(t *testing.T) {
		c, _ := newController(t, model.ModeEditing, 1)
		if err := c.Router().Navigate("nowhere"); err == nil {
			t.Error("no error for unknown route")
		}
		if c.Mode() != model.ModeEditing || c.Router().Current() != app.RouteQuickEdit {
			t.Error("unknown route changed mode or route")
		}
	})

	t.Run("active editor stops", func(t *testing.T) {
		c, s := newController(t, model.ModeEditing, 1)
		mustAccept(t, s[0], model.StateHighlighted, model.StateActivating, model.StateActive)
		if err := c.Router().Navigate("view"); err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if c.Mode() != model.ModeViewing || s[0].State() != model.StateInactive {
			t.Error("not viewing after stopping the active editor")
		}
	})

	t.Run("unsaved changes, discard", func(t *testing.T) {
		c, s := newController(t, model.ModeEditing, 1)
		mustAccept(t, s[0], model.StateHighlighted, model.StateActivating, model.StateActive, model.StateChanged)
		if err := c.Router().Navigate("view"); err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if c.Confirmation() == nil {
			t.Fatal("no confirmation for leaving with unsaved changes")
		}
		if c.Mode() != model.ModeEditing {
			t.Error("mode changed before confirmation")
		}
		if err := c.Choose(edit.ChoiceDiscard); err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if c.Mode() != model.ModeViewing || c.Router().Current() != app.RouteView {
			t.Error("not viewing after discarding")
		}
	})

	t.Run("unsaved changes, save reverts", func(t *testing.T) {
		c, s := newController(t, model.ModeEditing, 1)
		reverted := false
		c.Router().OnRevert = func() { reverted = true }
		mustAccept(t, s[0], model.StateHighlighted, model.StateActivating, model.StateActive, model.StateChanged)
		if err := c.Router().Navigate("view"); err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if err := c.Choose(edit.ChoiceSave); err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if !reverted {
			t.Error("route revert not reported")
		}
		if c.Mode() != model.ModeEditing || c.Router().Current() != app.RouteQuickEdit {
			t.Error("route not reverted")
		}
		if s[0].State() != model.StateSaving {
			t.Error("editor not saving:", s[0].State())
		}
	})

	t.Run("toggle", func(t *testing.T) {
		c, _ := newController(t, model.ModeViewing, 1)
		c.ToggleMode()
		if c.Mode() != model.ModeEditing {
			t.Error("toggle did not start editing")
		}
		c.ToggleMode()
		if c.Mode() != model.ModeViewing {
			t.Error("toggle did not stop editing")
		}
		messages := c.Messages()
		if len(messages) < 2 || messages[len(messages)-1] != c.Texts().ViewingMode || messages[len(messages)-2] != c.Texts().EditingMode {
			t.Error("mode changes not announced:", messages)
		}
	})

}
