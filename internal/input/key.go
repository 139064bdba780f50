package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Key is a single key press, as input processors expect it.
type Key struct {
	Mod tcell.ModMask
	Key tcell.Key
	Ch  rune
}

// ToDebugString returns a description of the key for logging.
func (k *Key) ToDebugString() string {
	return fmt.Sprintf(
		"(%s (%d),'%s'(%d))",
		tcell.KeyNames[k.Key],
		int(k.Key),
		string(k.Ch),
		int(k.Ch),
	)
}

// KeyFromTcellEvent formats a tcell.EventKey to a Key as this package expects
// it. Any Key for a tcell.EventKey should be converted by this function.
func KeyFromTcellEvent(e *tcell.EventKey) Key {
	if e.Key() == tcell.KeyRune {
		return Key{Key: tcell.KeyRune, Ch: e.Rune()}
	}
	return Key{Key: e.Key()}
}

// RuneKey returns the Key for typing the given rune.
func RuneKey(r rune) Key {
	return Key{Key: tcell.KeyRune, Ch: r}
}
