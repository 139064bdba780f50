package input

// Keyspec is a key sequence as written in the configuration, e.g. "<esc>" or
// "gg".
type Keyspec string

// Actionspec names an action a key sequence is bound to, e.g. "focus-next".
type Actionspec string

// Bindings maps key sequences to the names of actions.
type Bindings = map[Keyspec]Actionspec
