package action

// Simple implements the Action interface as a plain func() which is called on
// Do.
type Simple struct {
	action  func()
	explain func() string
}

// Do performs this simple action.
func (a *Simple) Do() {
	a.action()
}

// Explain returns the explanation for this simple action's Do member.
func (a *Simple) Explain() string {
	return a.explain()
}

// NewSimple returns a pointer to a new simple action, which stores the given
// action function and the given explainer to use when prompted with Do or
// Explain respectively.
func NewSimple(explainer func() string, action func()) *Simple {
	return &Simple{
		action:  action,
		explain: explainer,
	}
}

// Guarded is an Action that only does something while its guard holds, e.g.
// focus cycling, which must not happen while a confirmation is pending.
type Guarded struct {
	inner Action
	guard func() bool
}

// Do performs the wrapped action, if the guard allows it.
func (a *Guarded) Do() {
	if a.guard() {
		a.inner.Do()
	}
}

// Explain returns the wrapped action's explanation.
func (a *Guarded) Explain() string { return a.inner.Explain() }

// NewGuarded wraps the given action such that it is only done while guard
// returns true.
func NewGuarded(guard func() bool, inner Action) *Guarded {
	return &Guarded{inner: inner, guard: guard}
}
