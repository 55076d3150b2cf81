package router

import (
	"fmt"

	"github.com/rentwheels-dev/rentwheels/internal/cli/session"
)

// maxHops bounds redirect chains so a miswired route table fails loudly
// instead of looping.
const maxHops = 8

// Guard decides whether a route renders for the given session.
type Guard func(session.Session) Decision

// RenderFunc draws a screen. It runs only after the route's guard allowed it.
type RenderFunc func() error

// Route ties a path to its screen. Guard may be nil for public routes.
type Route struct {
	Guard  Guard
	Render RenderFunc
}

// Router dispatches navigations over a route table, following guard
// redirects until a screen renders.
type Router struct {
	routes   map[string]Route
	current  func() session.Session
	notify   func(string)
	notFound RenderFunc
}

// New creates a Router. current supplies the session snapshot each guard
// evaluation reads; notify surfaces guard notices to the user.
func New(current func() session.Session, notify func(string)) *Router {
	return &Router{
		routes:  make(map[string]Route),
		current: current,
		notify:  notify,
	}
}

// Handle registers a route.
func (r *Router) Handle(path string, route Route) {
	r.routes[path] = route
}

// HandleNotFound registers the screen shown for unknown paths.
func (r *Router) HandleNotFound(render RenderFunc) {
	r.notFound = render
}

// Navigate walks the route table from path, evaluating each route's guard
// against a fresh session snapshot, and renders exactly one screen.
func (r *Router) Navigate(path string) error {
	for hop := 0; hop < maxHops; hop++ {
		route, ok := r.routes[path]
		if !ok {
			if r.notFound != nil {
				return r.notFound()
			}
			return fmt.Errorf("no screen registered for %s", path)
		}

		if route.Guard != nil {
			decision := route.Guard(r.current())
			if decision.Action == Redirect {
				if decision.Notice != "" && r.notify != nil {
					r.notify(decision.Notice)
				}
				path = decision.Target
				continue
			}
		}

		if route.Render == nil {
			return fmt.Errorf("no screen registered for %s", path)
		}
		return route.Render()
	}
	return fmt.Errorf("redirect loop while navigating to %s", path)
}
