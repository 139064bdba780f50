package tui_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/quickedit/internal/styling"
	"github.com/ja-he/quickedit/internal/tui"
	"github.com/ja-he/quickedit/internal/ui"
)

func newSimulated(t *testing.T) (tcell.SimulationScreen, *tui.ScreenHandler) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	handler, err := tui.NewScreenHandler(screen)
	if err != nil {
		t.Fatal("could not set up screen:", err.Error())
	}
	screen.SetSize(20, 5)
	return screen, handler
}

func TestScreenHandler(t *testing.T) {
	style, err := styling.StyleFromHex("#ffffff", "#000000")
	if err != nil {
		t.Fatal("unexpected error:", err.Error())
	}

	t.Run("dimensions", func(t *testing.T) {
		_, h := newSimulated(t)
		defer h.Fini()
		x, y, w, hgt := h.Dimensions()
		if x != 0 || y != 0 || w != 20 || hgt != 5 {
			t.Error("unexpected dimensions:", x, y, w, hgt)
		}
	})

	t.Run("wrapping text", func(t *testing.T) {
		screen, h := newSimulated(t)
		defer h.Fini()
		h.DrawText(2, 1, 3, 2, style, "abcdefgh")
		h.Show()

		expected := map[[2]int]rune{{2, 1}: 'a', {4, 1}: 'c', {2, 2}: 'd', {4, 2}: 'f'}
		for pos, r := range expected {
			mainc, _, _, _ := screen.GetContent(pos[0], pos[1])
			if mainc != r {
				t.Errorf("expected '%c' at %v, got '%c'", r, pos, mainc)
			}
		}
		if mainc, _, _, _ := screen.GetContent(2, 3); mainc == 'g' {
			t.Error("text drawn beyond height")
		}
	})

	t.Run("cursor", func(t *testing.T) {
		screen, h := newSimulated(t)
		defer h.Fini()
		h.ShowCursor(ui.CursorLocation{X: 3, Y: 2})
		h.Show()
		x, y, visible := screen.GetCursor()
		if !visible || x != 3 || y != 2 {
			t.Error("cursor not shown at location:", x, y, visible)
		}
		h.HideCursor()
		h.Show()
		if _, _, visible := screen.GetCursor(); visible {
			t.Error("cursor not hidden")
		}
	})
}

func TestDrawTextWide(t *testing.T) {
	style, err := styling.StyleFromHex("#ffffff", "#000000")
	if err != nil {
		t.Fatal("unexpected error:", err.Error())
	}
	screen, h := newSimulated(t)
	defer h.Fini()
	h.DrawText(0, 0, 3, 2, style, "a世界")
	h.Show()

	if mainc, _, _, _ := screen.GetContent(1, 0); mainc != '世' {
		t.Errorf("expected '世' at 1:0, got '%c'", mainc)
	}
	if mainc, _, _, _ := screen.GetContent(0, 1); mainc != '界' {
		t.Errorf("expected '界' wrapped to 0:1, got '%c'", mainc)
	}
}
