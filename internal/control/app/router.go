package app

import (
	"fmt"

	"github.com/ja-he/quickedit/internal/control/edit"
	"github.com/ja-he/quickedit/internal/model"
)

// Route is a navigable location of the page.
type Route string

const (
	// RouteView is the route of merely viewing the page.
	RouteView Route = "view"
	// RouteQuickEdit is the route of editing the page in place.
	RouteQuickEdit Route = "quick-edit"
)

// ParseRoute parses a route, where the empty route is RouteView.
func ParseRoute(s string) (Route, error) {
	switch Route(s) {
	case "", RouteView:
		return RouteView, nil
	case RouteQuickEdit:
		return RouteQuickEdit, nil
	default:
		return "", fmt.Errorf("unknown route '%s'", s)
	}
}

// Router maps routes to the controller's mode.
type Router struct {
	controller *Controller
	route      Route

	// OnRevert (if set) is called when navigating to RouteView was refused
	// and the route was reverted to RouteQuickEdit.
	OnRevert func()
}

// Current returns the current route.
func (r *Router) Current() Route { return r.route }

// Navigate goes to the given route.
// Leaving RouteQuickEdit while an editor is active asks that editor to stop
// first; if it refuses, the route reverts to RouteQuickEdit.
// With unsaved changes, the outcome may only be known after the user
// answered the resulting confirmation.
func (r *Router) Navigate(s string) error {
	route, err := ParseRoute(s)
	if err != nil {
		return err
	}
	c := r.controller
	c.log.Debug().Str("from", string(r.route)).Str("to", string(route)).Msg("navigating")
	r.route = route

	switch route {

	case RouteQuickEdit:
		c.SetMode(model.ModeEditing)

	case RouteView:
		if c.active == nil {
			c.SetMode(model.ModeViewing)
			return nil
		}
		c.active.RequestTransition(model.StateCandidate, edit.Context{Reason: model.ReasonMenu}, func(accepted bool) {
			if accepted {
				c.SetMode(model.ModeViewing)
				return
			}
			c.log.Debug().Msg("active editor refused to stop, reverting route")
			r.route = RouteQuickEdit
			if r.OnRevert != nil {
				r.OnRevert()
			}
			c.changed()
		})

	}
	return nil
}
