package edit

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/quickedit/internal/model"
)

// Request is a single transition request of an editor.
// It is resolved exactly once.
type Request struct {
	ID       uuid.UUID
	Property model.PropertyID
	From     model.State
	To       model.State
	Context  Context

	resolve  func(accepted bool)
	resolved bool
}

// NewRequest returns a pointer to a new, unresolved request which delivers
// its outcome to resolve.
func NewRequest(property model.PropertyID, from, to model.State, ctx Context, resolve func(accepted bool)) *Request {
	return &Request{
		ID:       uuid.New(),
		Property: property,
		From:     from,
		To:       to,
		Context:  ctx,
		resolve:  resolve,
	}
}

// Resolve delivers the outcome of the request.
// Any call after the first is ignored.
func (r *Request) Resolve(accepted bool) {
	if r.resolved {
		log.Warn().
			Str("request", r.ID.String()).
			Str("property", string(r.Property)).
			Bool("accepted", accepted).
			Msg("ignoring repeated resolution of transition request")
		return
	}
	r.resolved = true
	if r.resolve != nil {
		r.resolve(accepted)
	}
}

// Resolved returns whether the request has been resolved.
func (r *Request) Resolved() bool { return r.resolved }
