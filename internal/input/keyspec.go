package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

type namedKey struct {
	identifier string
	key        Key
}

// namedKeys are the identifiers usable within '<' and '>' in a Keyspec.
// Some keys have several identifiers (e.g. <tab> and <c-i>), the first one
// listed is the one used to describe the key.
var namedKeys = []namedKey{
	{"space", Key{Key: tcell.KeyRune, Ch: ' '}},
	{"cr", Key{Key: tcell.KeyEnter}},
	{"esc", Key{Key: tcell.KeyESC}},
	{"tab", Key{Key: tcell.KeyTab}},
	{"backtab", Key{Key: tcell.KeyBacktab}},
	{"del", Key{Key: tcell.KeyDelete}},
	{"bs", Key{Key: tcell.KeyBackspace2}},
	{"left", Key{Key: tcell.KeyLeft}},
	{"right", Key{Key: tcell.KeyRight}},
	{"up", Key{Key: tcell.KeyUp}},
	{"down", Key{Key: tcell.KeyDown}},
	{"home", Key{Key: tcell.KeyHome}},
	{"end", Key{Key: tcell.KeyEnd}},

	{"c-space", Key{Key: tcell.KeyCtrlSpace}},
	{"c-bs", Key{Key: tcell.KeyBackspace}},
}

func init() {
	for r := 'a'; r <= 'z'; r++ {
		namedKeys = append(namedKeys, namedKey{"c-" + string(r), Key{Key: tcell.KeyCtrlA + tcell.Key(r-'a')}})
	}
}

// ConfigKeyspecToKeys converts full key sequence specification strings (e.g.
// "<space>qw" meaning the SPACE key, then the Q key, then the W key) to the
// appropriate sequence of Keys (or an error, if invalid).
func ConfigKeyspecToKeys(spec Keyspec) ([]Key, error) {
	result := make([]Key, 0)

	specR := []rune(spec)
	for pos := 0; pos < len(specR); pos++ {
		switch specR[pos] {

		case '<':
			end := pos + 1
			for end < len(specR) && specR[end] != '>' {
				if specR[end] == '<' {
					return nil, fmt.Errorf("illegal second opening special context ('<') before previous is closed (pos %d)", end)
				}
				if !unicode.IsLetter(specR[end]) && specR[end] != '-' {
					return nil, fmt.Errorf("illegal character '%c' in special context (pos %d)", specR[end], end)
				}
				end++
			}
			if end >= len(specR) {
				return nil, fmt.Errorf("special context opened at pos %d is never closed", pos)
			}
			key, err := KeyIdentifierToKey(string(specR[pos+1 : end]))
			if err != nil {
				return nil, fmt.Errorf("error mapping identifier '%s' to key: %w", string(specR[pos:end+1]), err)
			}
			result = append(result, key)
			pos = end

		case '>':
			return nil, fmt.Errorf("illegal closing of special context ('>') while none open (pos %d)", pos)

		default:
			result = append(result, RuneKey(specR[pos]))

		}
	}

	return result, nil
}

// KeyIdentifierToKey converts the given special identifier to the appropriate
// key (or an error, if invalid).
func KeyIdentifierToKey(identifier string) (Key, error) {
	identifier = strings.ToLower(identifier)
	for _, named := range namedKeys {
		if named.identifier == identifier {
			return named.key, nil
		}
	}
	return Key{}, fmt.Errorf("no mapping present for identifier '%s'", identifier)
}

// ToConfigIdentifierString converts the given key to its configuration
// identifier, e.g. for help listings.
func ToConfigIdentifierString(k Key) string {
	for _, named := range namedKeys {
		if named.key == k {
			return "<" + named.identifier + ">"
		}
	}
	if k.Key == tcell.KeyRune {
		return string(k.Ch)
	}
	return fmt.Sprintf("<%s>", strings.ToLower(tcell.KeyNames[k.Key]))
}
