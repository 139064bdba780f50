package input_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/quickedit/internal/control/action"
	"github.com/ja-he/quickedit/internal/input"
)

func TestConfigKeyspecToKeys(t *testing.T) {

	t.Run("valid", func(t *testing.T) {
		expectKeys := func(s input.Keyspec, expected ...input.Key) {
			keys, err := input.ConfigKeyspecToKeys(s)
			if err != nil {
				t.Errorf("unexpected error on valid spec '%s': %s", s, err.Error())
				return
			}
			if len(keys) != len(expected) {
				t.Errorf("spec '%s' gave %d keys, expected %d", s, len(keys), len(expected))
				return
			}
			for i := range keys {
				if keys[i] != expected[i] {
					t.Errorf("spec '%s' key %d is %s, expected %s", s, i, keys[i].ToDebugString(), expected[i].ToDebugString())
				}
			}
		}

		t.Run("empty", func(t *testing.T) { expectKeys("") })
		t.Run("single", func(t *testing.T) { expectKeys("x", input.RuneKey('x')) })
		t.Run("<c-a>", func(t *testing.T) { expectKeys("<c-a>", input.Key{Key: tcell.KeyCtrlA}) })
		t.Run("<space>", func(t *testing.T) { expectKeys("<space>", input.RuneKey(' ')) })
		t.Run("<ESC>", func(t *testing.T) { expectKeys("<ESC>", input.Key{Key: tcell.KeyESC}) })
		t.Run("<tab><backtab>", func(t *testing.T) {
			expectKeys("<tab><backtab>", input.Key{Key: tcell.KeyTab}, input.Key{Key: tcell.KeyBacktab})
		})
		t.Run("with special", func(t *testing.T) {
			expectKeys("x<c-w>z", input.RuneKey('x'), input.Key{Key: tcell.KeyCtrlW}, input.RuneKey('z'))
		})
	})

	t.Run("invalid", func(t *testing.T) {
		for _, s := range []input.Keyspec{"c-w>", "<c-w", "<c-w<c-a>", "<c+a>", "<nope>"} {
			keys, err := input.ConfigKeyspecToKeys(s)
			if err == nil {
				t.Errorf("no error on invalid spec '%s'", s)
			}
			if keys != nil {
				t.Errorf("unexpected key seq on invalid spec '%s': %v", s, keys)
			}
		}
	})

}

func TestToConfigIdentifierString(t *testing.T) {
	cases := map[input.Keyspec]string{
		"x":       "x",
		"<esc>":   "<esc>",
		"<tab>":   "<tab>",
		"<c-i>":   "<tab>",
		"<cr>":    "<cr>",
		"<c-s>":   "<c-s>",
		"<space>": "<space>",
	}
	for spec, expected := range cases {
		keys, err := input.ConfigKeyspecToKeys(spec)
		if err != nil || len(keys) != 1 {
			t.Fatalf("could not parse '%s'", spec)
		}
		if actual := input.ToConfigIdentifierString(keys[0]); actual != expected {
			t.Errorf("'%s' described as '%s', expected '%s'", spec, actual, expected)
		}
	}
}

func TestConstructInputTree(t *testing.T) {

	t.Run("empty map produces single-node tree", func(t *testing.T) {
		tree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{})
		if err != nil {
			t.Fatal(err.Error())
		}
		validateNewlyCreatedTree(t, tree)
		if tree.ProcessInput(input.RuneKey('x')) {
			t.Error("empty tree claims to apply (non-added) input")
		}
	})

	t.Run("sequences", func(t *testing.T) {
		xyzDone := false
		ctrlaDone := false
		tree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
			"xyz":   dummy("xyz", func() { xyzDone = true }),
			"<c-a>": dummy("c-a", func() { ctrlaDone = true }),
		})
		if err != nil {
			t.Fatal(err.Error())
		}
		validateNewlyCreatedTree(t, tree)

		if tree.ProcessInput(input.Key{}) {
			t.Error("tree processes non-added input")
		}
		if !tree.ProcessInput(input.RuneKey('x')) || !tree.CapturesInput() {
			t.Error("tree fails to process and capture start of sequence")
		}
		if tree.ProcessInput(input.Key{}) {
			t.Error("tree processes invalid input in middle of sequence")
		}
		if tree.CapturesInput() {
			t.Error("tree still captures after broken sequence")
		}
		if !tree.ProcessInput(input.Key{Key: tcell.KeyCtrlA}) || !ctrlaDone {
			t.Error("<c-a> not applied")
		}
		for _, r := range "xyz" {
			if !tree.ProcessInput(input.RuneKey(r)) {
				t.Errorf("tree fails to process '%c'", r)
			}
		}
		if !xyzDone {
			t.Error("xyz action not applied")
		}
		if tree.CapturesInput() {
			t.Error("tree claims to capture input after complete sequence")
		}
	})

	t.Run("invalid keyspec errors", func(t *testing.T) {
		tree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{"<asdf": dummy("", nil)})
		if err == nil || tree != nil {
			t.Error("expected error and nil tree for invalid keyspec")
		}
	})

	t.Run("prefix collision errors", func(t *testing.T) {
		_, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
			"d":  dummy("d", nil),
			"dd": dummy("dd", nil),
		})
		if err == nil {
			t.Error("no error for sequence that is prefix of another")
		}
	})

	t.Run("same key twice errors", func(t *testing.T) {
		_, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
			"<tab>": dummy("tab", nil),
			"<c-i>": dummy("c-i", nil),
		})
		if err == nil {
			t.Error("no error for two specs of the same key")
		}
	})

	t.Run("empty keyspec errors", func(t *testing.T) {
		_, err := input.ConstructInputTree(map[input.Keyspec]action.Action{"": dummy("nothing", nil)})
		if err == nil {
			t.Error("no error for empty keyspec")
		}
	})

}

func TestGetHelp(t *testing.T) {
	tree, err := input.ConstructInputTree(
		map[input.Keyspec]action.Action{
			"a":     dummy("A", nil),
			"bc":    dummy("BC", nil),
			"<esc>": dummy("ESC", nil),
		},
	)
	if err != nil {
		t.Fatal("unexpectedly tree construction failed while testing help")
	}
	help := tree.GetHelp()
	if len(help) != 3 {
		t.Error("got help with unexpected amount of entries:", len(help))
	}
	for combo, expected := range map[string]string{"a": "A", "bc": "BC", "<esc>": "ESC"} {
		if help[combo] != expected {
			t.Errorf("help for '%s' is '%s', expected '%s'", combo, help[combo], expected)
		}
	}

	if len(input.NewNode().GetHelp()) != 0 {
		t.Error("got non-empty help from empty node")
	}
}

func validateNewlyCreatedTree(t *testing.T, newlyCreated *input.Tree) {
	t.Helper()

	if newlyCreated.Root == nil || newlyCreated.Current == nil {
		t.Error("either root or current is nil on newly created tree:", newlyCreated.Root, ",", newlyCreated.Current)
	}
	if newlyCreated.Root != newlyCreated.Current {
		t.Error("root and current differ on newly created tree")
	}
	if newlyCreated.CapturesInput() {
		t.Error("newly created tree claims to capture input")
	}
}

func dummy(explanation string, f func()) action.Action {
	if f == nil {
		f = func() {}
	}
	return action.NewSimple(func() string { return explanation }, f)
}
