package panes

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// padCenter centers s in a string of the given (cell) width, truncating it if
// it is too wide.
func padCenter(s string, width int) string {
	s = truncate(s, width)
	space := width - runewidth.StringWidth(s)
	if space <= 0 {
		return s
	}
	left := space / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", space-left)
}

// truncate cuts s to the given (cell) width, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// wrappedHeight returns the number of rows s takes when wrapped at width,
// leaving room for a cursor past its end.
func wrappedHeight(s string, width int) int {
	if width <= 0 {
		return 1
	}
	return runewidth.StringWidth(s)/width + 1
}
