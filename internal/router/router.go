// Package router holds the route state machine that decides which page is
// mounted. Routes are opaque names; navigation is one-directional.
package router

import (
	"github.com/alexisbeaulieu97/cui/internal/keyboard"
	"github.com/alexisbeaulieu97/cui/internal/layout"
	"github.com/alexisbeaulieu97/cui/internal/logger"
	cuierrors "github.com/alexisbeaulieu97/cui/pkg/errors"
)

// Page is a routable top-level component.
type Page struct {
	Route string
	Title string
	View  layout.Component
}

// Router tracks the current route and keeps the keyboard manager in sync
// with it.
type Router struct {
	keys     *keyboard.Manager
	log      *logger.Logger
	pages    map[string]Page
	order    []string
	current  string
	previous string
	onChange func()
}

// New creates a Router with no routes.
func New(keys *keyboard.Manager, log *logger.Logger) *Router {
	return &Router{keys: keys, log: log, pages: make(map[string]Page)}
}

// Register adds or replaces a page.
func (r *Router) Register(p Page) {
	if _, ok := r.pages[p.Route]; !ok {
		r.order = append(r.order, p.Route)
	}
	r.pages[p.Route] = p
}

// OnChange sets the callback run after every navigation.
func (r *Router) OnChange(fn func()) {
	r.onChange = fn
}

// Pages returns the registered pages in registration order.
func (r *Router) Pages() []Page {
	out := make([]Page, len(r.order))
	for i, route := range r.order {
		out[i] = r.pages[route]
	}
	return out
}

// Current returns the active route, or "" before the first navigation.
func (r *Router) Current() string {
	return r.current
}

// Previous returns the route that was active before the current one.
func (r *Router) Previous() string {
	return r.previous
}

// Navigate makes route current. Unknown routes return a RouteError and leave
// the state untouched.
func (r *Router) Navigate(route string) error {
	if _, ok := r.pages[route]; !ok {
		return cuierrors.NewRouteError(route, "no page registered")
	}
	if route != r.current {
		r.previous = r.current
		r.current = route
		r.log.WithFields(map[string]any{"from": r.previous, "to": route}).Debug("navigate")
	}
	if r.keys != nil {
		r.keys.SetCurrentRoute(route)
	}
	if r.onChange != nil {
		r.onChange()
	}
	return nil
}

// Back navigates to the previous route, if there is one.
func (r *Router) Back() error {
	if r.previous == "" {
		return nil
	}
	return r.Navigate(r.previous)
}

// View renders the current page. Rendering before any navigation, or after
// the current page was removed, panics with a RouteError since the tree is
// malformed.
func (r *Router) View() layout.Component {
	return func(ctx layout.Context) []layout.Line {
		p, ok := r.pages[r.current]
		if !ok {
			panic(cuierrors.NewRouteError(r.current, "page not implemented"))
		}
		return p.View(ctx)
	}
}
