// Package action models the things key bindings and menu entries can do.
package action

// Action is something that can be done (e.g. in response to a key press) and
// explained (e.g. in a help listing).
type Action interface {
	Do()
	Explain() string
}
