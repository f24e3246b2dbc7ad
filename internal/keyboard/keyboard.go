// Package keyboard routes key events through prioritised handler groups:
// modal handlers first, then the handlers of the current route, then global
// handlers.
package keyboard

import (
	"slices"
	"strings"

	"github.com/alexisbeaulieu97/cui/internal/logger"
)

// Common key names. Printable keys use the character itself.
const (
	KeyEnter     = "Enter"
	KeyEscape    = "Escape"
	KeyTab       = "Tab"
	KeyBackspace = "Backspace"
	KeyUp        = "ArrowUp"
	KeyDown      = "ArrowDown"
	KeyLeft      = "ArrowLeft"
	KeyRight     = "ArrowRight"
	KeySpace     = " "
)

// KeyEvent is a key press from the host input source.
type KeyEvent struct {
	Key   string
	Shift bool
	Ctrl  bool
	Meta  bool
	Alt   bool

	prevented bool
}

// PreventDefault marks the event as consumed so the host skips its own
// handling.
func (e *KeyEvent) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *KeyEvent) DefaultPrevented() bool { return e.prevented }

// Printable reports whether the event is a single printable character typed
// without Ctrl or Meta.
func (e *KeyEvent) Printable() bool {
	if e.Ctrl || e.Meta {
		return false
	}
	r := []rune(e.Key)
	return len(r) == 1 && r[0] >= ' ' && r[0] != 0x7f
}

// Handler reacts to a key event. Returning true stops dispatch.
type Handler func(ev *KeyEvent) bool

// Registration binds a handler to an optional set of keys. An empty Keys
// matches every key. Higher Priority runs first within its group;
// StopPropagation stops dispatch after the handler runs whatever it returns.
type Registration struct {
	Keys            []string
	Handler         Handler
	Priority        int
	StopPropagation bool
}

// On is shorthand for a registration on keys.
func On(handler Handler, keys ...string) Registration {
	return Registration{Keys: keys, Handler: handler}
}

// Matches reports whether the registration accepts key, ignoring case.
func (r Registration) Matches(key string) bool {
	if len(r.Keys) == 0 {
		return true
	}
	for _, k := range r.Keys {
		if strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}

// TextTarget is a focused text input. While one is focused it sees every
// key first; keys it does not consume go to modal handlers only, so route
// and global shortcuts never fire while typing.
type TextTarget interface {
	HandleKey(ev *KeyEvent) bool
}

type layer struct {
	regs []Registration
}

// Manager holds the handler registry of one app. It is not safe for
// concurrent use; the event loop owns it.
type Manager struct {
	log    *logger.Logger
	route  string
	routes map[string][]Registration
	modals []*layer
	global []Registration
	focus  TextTarget
	// gen counts changes to the active handlers.
	gen uint64
}

// NewManager creates an empty Manager.
func NewManager(log *logger.Logger) *Manager {
	return &Manager{log: log, routes: make(map[string][]Registration)}
}

// CurrentRoute returns the route whose handlers are active.
func (m *Manager) CurrentRoute() string {
	return m.route
}

// SetCurrentRoute switches the active route. Modal handlers and text focus
// are cleared; global handlers persist.
func (m *Manager) SetCurrentRoute(route string) {
	if len(m.modals) > 0 {
		m.log.WithFields(map[string]any{"route": route, "modals": len(m.modals)}).Debug("route change cleared modal handlers")
	}
	m.route = route
	m.modals = nil
	m.focus = nil
	m.gen++
}

// SetRouteHandlers replaces the handlers registered for route.
func (m *Manager) SetRouteHandlers(route string, regs ...Registration) {
	m.routes[route] = ordered(regs)
	if route == m.route {
		m.gen++
	}
}

// SetGlobalHandlers replaces the global handlers.
func (m *Manager) SetGlobalHandlers(regs ...Registration) {
	m.global = ordered(regs)
	m.gen++
}

// PushModalHandlers adds a modal layer on top of the stack and returns a
// function that removes exactly that layer. The release function is a no-op
// once the layer is gone, for example after a route change.
func (m *Manager) PushModalHandlers(regs ...Registration) func() {
	l := &layer{regs: ordered(regs)}
	m.modals = append(m.modals, l)
	m.gen++
	return func() {
		if i := slices.Index(m.modals, l); i >= 0 {
			m.modals = slices.Delete(m.modals, i, i+1)
			m.gen++
		}
	}
}

// PopModalHandlers removes the top modal layer, if any.
func (m *Manager) PopModalHandlers() {
	if len(m.modals) > 0 {
		m.modals = m.modals[:len(m.modals)-1]
		m.gen++
	}
}

// ModalDepth returns the number of modal layers.
func (m *Manager) ModalDepth() int {
	return len(m.modals)
}

// Focus directs every key to t until Blur or a route change.
func (m *Manager) Focus(t TextTarget) {
	m.focus = t
	m.gen++
}

// Blur clears the focused text target.
func (m *Manager) Blur() {
	if m.focus != nil {
		m.focus = nil
		m.gen++
	}
}

// Focused returns the focused text target, if any.
func (m *Manager) Focused() TextTarget {
	return m.focus
}

// Dispatch runs ev through the active handlers and reports whether a
// handler stopped it. Modal layers are tried most recent first, then the
// current route's handlers, then global handlers.
//
// A handler that changes the active handlers (navigating, pushing or
// popping a modal layer, moving focus) ends dispatch and the event counts
// as handled: handlers registered against the old state never see it.
func (m *Manager) Dispatch(ev *KeyEvent) bool {
	gen := m.gen
	typing := m.focus != nil
	if typing && (m.focus.HandleKey(ev) || m.gen != gen) {
		ev.PreventDefault()
		return true
	}

	for _, group := range m.groups(typing) {
		for _, reg := range group {
			if reg.Handler == nil || !reg.Matches(ev.Key) {
				continue
			}
			if reg.Handler(ev) || reg.StopPropagation || m.gen != gen {
				ev.PreventDefault()
				return true
			}
		}
	}
	return false
}

// groups lists the handler groups in dispatch order. While typing only the
// modal layers take part.
func (m *Manager) groups(modalsOnly bool) [][]Registration {
	groups := make([][]Registration, 0, len(m.modals)+2)
	for i := len(m.modals) - 1; i >= 0; i-- {
		groups = append(groups, m.modals[i].regs)
	}
	if modalsOnly {
		return groups
	}
	if regs := m.routes[m.route]; len(regs) > 0 {
		groups = append(groups, regs)
	}
	if len(m.global) > 0 {
		groups = append(groups, m.global)
	}
	return groups
}

// ordered copies regs sorted by descending priority, keeping registration
// order among equals.
func ordered(regs []Registration) []Registration {
	out := slices.Clone(regs)
	slices.SortStableFunc(out, func(a, b Registration) int {
		return b.Priority - a.Priority
	})
	return out
}
