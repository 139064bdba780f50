package ui

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// CursorLocationRequestHandler is an interface for a type that can handle
// requests to place a (text/terminal) cursor on the screen.
type CursorLocationRequestHandler interface {
	Put(l CursorLocation, requesterID string)
	Delete(requesterID string)
}

// CursorWrangler collects the requests to place a (text/terminal) cursor on
// the screen during a draw and enacts the most recent one afterwards.
type CursorWrangler struct {
	mtx sync.RWMutex

	cc TextCursorController

	requested bool
	location  CursorLocation
	requester string
}

// NewCursorWrangler creates a new CursorWrangler.
func NewCursorWrangler(controller TextCursorController) *CursorWrangler {
	return &CursorWrangler{cc: controller}
}

// Put requests the cursor at the given location, superseding any other
// request.
func (w *CursorWrangler) Put(l CursorLocation, requesterID string) {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	if w.requested && w.requester != requesterID {
		log.Warn().
			Str("requester", requesterID).
			Str("location", l.String()).
			Str("previous-requester", w.requester).
			Str("previous-location", w.location.String()).
			Msg("cursor already requested, overwriting")
	}

	w.requested = true
	w.location = l
	w.requester = requesterID
}

// Delete withdraws the requester's request for a cursor.
// Requests of others are left alone.
func (w *CursorWrangler) Delete(requesterID string) {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	if !w.requested || w.requester != requesterID {
		log.Trace().Str("requester", requesterID).Msg("ignoring cursor deletion of non-requester")
		return
	}

	w.requested = false
	w.requester = ""
}

// Enact shows the cursor at the requested location via the underlying cursor
// controller, or hides it, if there is no request.
func (w *CursorWrangler) Enact() {
	w.mtx.RLock()
	defer w.mtx.RUnlock()

	if w.requested {
		w.cc.ShowCursor(w.location)
	} else {
		w.cc.HideCursor()
	}
}
