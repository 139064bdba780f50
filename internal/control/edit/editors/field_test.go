package editors_test

import (
	"testing"

	"github.com/ja-he/quickedit/internal/config"
	"github.com/ja-he/quickedit/internal/control/edit"
	"github.com/ja-he/quickedit/internal/control/edit/editors"
	"github.com/ja-he/quickedit/internal/model"
	"github.com/ja-he/quickedit/internal/storage/providers"
)

// permissive accepts every transition and records it.
type permissive struct {
	transitions []model.State
	refuse      map[model.State]bool
}

func (a *permissive) RequestTransition(e edit.Editable, to model.State, _ edit.Context, resolve func(bool)) {
	if a.refuse[to] {
		resolve(false)
		return
	}
	a.transitions = append(a.transitions, to)
	resolve(true)
}

func newField(t *testing.T, cfg config.Field, store *providers.MemoryFieldStore) (*editors.Field, *permissive) {
	t.Helper()
	a := &permissive{}
	f, err := editors.NewField(cfg, store, a)
	if err != nil {
		t.Fatal("could not create field:", err.Error())
	}
	return f, a
}

func statesEqual(a, b []model.State) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewField(t *testing.T) {

	t.Run("prefers stored value", func(t *testing.T) {
		store := providers.NewMemoryFieldStore(map[model.PropertyID]string{"node:1:title:und:full": "Stored"})
		f, _ := newField(t, config.Field{ID: "node:1:title:und:full", Content: "Configured"}, store)
		if f.Saved() != "Stored" {
			t.Error("unexpected value:", f.Saved())
		}
		if f.State() != model.StateInactive {
			t.Error("new field not inactive:", f.State())
		}
		if f.Label() != "title" {
			t.Error("label not defaulted to field name:", f.Label())
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, cfg := range []config.Field{
			{ID: "node:1"},
			{ID: "node:1:title:und:full", Kind: "wysiwyg"},
			{ID: "node:1:title:und:full", TransformationFilters: []string{"markdown"}},
			{ID: "node:1:title:und:full", MaxLength: -1},
		} {
			if _, err := editors.NewField(cfg, providers.NewMemoryFieldStore(nil), &permissive{}); err == nil {
				t.Errorf("no error for %v", cfg)
			}
		}
	})

}

func TestField(t *testing.T) {
	titleCfg := config.Field{ID: "node:1:title:und:full", Label: "Title", Content: "Hello", Required: true, MaxLength: 8}

	t.Run("activating prepares and activates", func(t *testing.T) {
		f, a := newField(t, titleCfg, providers.NewMemoryFieldStore(nil))
		f.RequestTransition(model.StateActivating, edit.Context{}, nil)
		if f.State() != model.StateActive {
			t.Error("field not active:", f.State())
		}
		if !statesEqual(a.transitions, []model.State{model.StateActivating, model.StateActive}) {
			t.Error("unexpected transitions:", a.transitions)
		}
	})

	t.Run("first modification changes", func(t *testing.T) {
		f, a := newField(t, titleCfg, providers.NewMemoryFieldStore(nil))
		f.ApplyState(model.StateActive)
		f.Buffer().AddRune('!')
		f.Buffer().AddRune('!')
		if f.State() != model.StateChanged {
			t.Error("field not changed:", f.State())
		}
		if !statesEqual(a.transitions, []model.State{model.StateChanged}) {
			t.Error("unexpected transitions:", a.transitions)
		}
		if f.Display() != "Hello!!" {
			t.Error("unexpected display:", f.Display())
		}
	})

	t.Run("save success", func(t *testing.T) {
		store := providers.NewMemoryFieldStore(nil)
		f, a := newField(t, titleCfg, store)
		f.ApplyState(model.StateActive)
		f.Buffer().AddRune('!')
		f.StartSaving()

		expected := []model.State{model.StateChanged, model.StateSaving, model.StateSaved, model.StateCandidate}
		if !statesEqual(a.transitions, expected) {
			t.Error("unexpected transitions:", a.transitions)
		}
		if v, _ := store.Load(f.ID()); v != "Hello!" {
			t.Error("not stored:", v)
		}
		if f.Saved() != "Hello!" || f.Display() != "Hello!" {
			t.Error("saved value not kept:", f.Saved(), f.Display())
		}
	})

	t.Run("validation failure", func(t *testing.T) {
		store := providers.NewMemoryFieldStore(nil)
		f, _ := newField(t, titleCfg, store)
		f.ApplyState(model.StateActive)
		f.Buffer().Clear()
		f.StartSaving()
		if f.State() != model.StateInvalid {
			t.Fatal("field not invalid:", f.State())
		}
		if len(f.Errors()) != 1 || f.Errors()[0] != "Title field is required." {
			t.Error("unexpected errors:", f.Errors())
		}
		if _, err := store.Load(f.ID()); err == nil {
			t.Error("invalid value was stored")
		}

		for _, r := range "way too long" {
			f.Buffer().AddRune(r)
		}
		f.StartSaving()
		if f.State() != model.StateInvalid || len(f.Errors()) != 1 || f.Errors()[0] != "Title cannot be longer than 8 characters." {
			t.Error("unexpected state / errors:", f.State(), f.Errors())
		}
	})

	t.Run("backend refusal", func(t *testing.T) {
		store := providers.NewMemoryFieldStore(nil)
		store.Refuse = func(model.PropertyID, string) []string { return []string{"nope"} }
		f, _ := newField(t, titleCfg, store)
		f.ApplyState(model.StateActive)
		f.StartSaving()
		if f.State() != model.StateInvalid || len(f.Errors()) != 1 || f.Errors()[0] != "nope" {
			t.Error("unexpected state / errors:", f.State(), f.Errors())
		}
	})

	t.Run("candidate discards", func(t *testing.T) {
		f, _ := newField(t, titleCfg, providers.NewMemoryFieldStore(nil))
		f.ApplyState(model.StateActive)
		f.Buffer().AddRune('?')
		f.ApplyState(model.StateCandidate)
		if f.Buffer().Content != "Hello" || f.Display() != "Hello" {
			t.Error("modification not discarded:", f.Buffer().Content)
		}
	})

	t.Run("refused transition is not applied", func(t *testing.T) {
		a := &permissive{refuse: map[model.State]bool{model.StateHighlighted: true}}
		f, err := editors.NewField(titleCfg, providers.NewMemoryFieldStore(nil), a)
		if err != nil {
			t.Fatal(err.Error())
		}
		f.ApplyState(model.StateCandidate)
		var outcome *bool
		f.RequestTransition(model.StateHighlighted, edit.Context{}, func(accepted bool) { outcome = &accepted })
		if outcome == nil || *outcome {
			t.Error("done not called with false")
		}
		if f.State() != model.StateCandidate {
			t.Error("refused state applied:", f.State())
		}
	})

	t.Run("processed text", func(t *testing.T) {
		store := providers.NewMemoryFieldStore(nil)
		f, _ := newField(t, config.Field{
			ID:                    "node:1:body:und:full",
			Kind:                  "processed-text",
			Content:               "  some   text ",
			TransformationFilters: []string{"trim", "collapse-whitespace", "upper"},
		}, store)
		if f.Display() != "SOME TEXT" {
			t.Errorf("unexpected transformed display '%s'", f.Display())
		}

		if err := store.Save(f.ID(), " fresh  from store"); err != nil {
			t.Fatal(err.Error())
		}
		f.RequestTransition(model.StateActivating, edit.Context{}, nil)
		if f.Display() != " fresh  from store" {
			t.Errorf("untransformed value not loaded for editing: '%s'", f.Display())
		}
	})

	t.Run("no authority", func(t *testing.T) {
		f, err := editors.NewField(titleCfg, providers.NewMemoryFieldStore(nil), nil)
		if err != nil {
			t.Fatal(err.Error())
		}
		accepted := true
		f.RequestTransition(model.StateCandidate, edit.Context{}, func(a bool) { accepted = a })
		if accepted || f.State() != model.StateInactive {
			t.Error("transition without authority")
		}
	})

	t.Run("kinds", func(t *testing.T) {
		for s, expected := range map[string]editors.Kind{"": editors.KindDirect, "form": editors.KindForm, "processed-text": editors.KindProcessedText} {
			k, err := editors.KindFromString(s)
			if err != nil || k != expected {
				t.Errorf("'%s' parsed as %s (%v)", s, k, err)
			}
		}
		if _, err := editors.KindFromString("x"); err == nil {
			t.Error("no error for unknown kind")
		}
	})
}
