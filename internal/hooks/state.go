package hooks

import "slices"

// Setter updates one state slot and requests a repaint.
type Setter[T any] struct {
	rt *Runtime
	s  *slot
}

// Set replaces the stored value.
func (s Setter[T]) Set(v T) {
	s.s.value = v
	s.rt.triggerRender()
}

// Update replaces the stored value with fn applied to the current one.
func (s Setter[T]) Update(fn func(T) T) {
	s.Set(fn(valueAs[T](s.s.value)))
}

// UseState returns the value held in the next slot, initialising it to
// initial on first use, and a Setter for it.
func UseState[T any](c *Cursor, initial T) (T, Setter[T]) {
	s, fresh := c.next(kindState)
	if fresh {
		s.value = initial
	}
	return valueAs[T](s.value), Setter[T]{rt: c.rt, s: s}
}

// UseStateFunc is UseState with a lazily computed initial value.
func UseStateFunc[T any](c *Cursor, initial func() T) (T, Setter[T]) {
	s, fresh := c.next(kindState)
	if fresh {
		s.value = initial()
	}
	return valueAs[T](s.value), Setter[T]{rt: c.rt, s: s}
}

// UseEffect runs effect the first time its slot is reached for this
// component. A returned cleanup is kept and runs on Runtime.Dispose.
func UseEffect(c *Cursor, effect func() func()) {
	s, fresh := c.next(kindEffect)
	if !fresh {
		return
	}
	s.cleanup = effect()
}

// Ref is a mutable box that survives re-renders without triggering them.
type Ref[T any] struct {
	Current T
}

// UseRef returns the same *Ref on every render of the component.
func UseRef[T any](c *Cursor, initial T) *Ref[T] {
	s, fresh := c.next(kindRef)
	if fresh {
		s.value = &Ref[T]{Current: initial}
	}
	return s.value.(*Ref[T])
}

// UseMemo caches compute's result until one of deps changes. Deps are
// compared with ==, so they must be comparable values.
func UseMemo[T any](c *Cursor, compute func() T, deps ...any) T {
	s, fresh := c.next(kindMemo)
	if fresh || !slices.Equal(s.deps, deps) {
		s.value = compute()
		s.deps = slices.Clone(deps)
	}
	return valueAs[T](s.value)
}

// valueAs converts a stored slot value back to T. A nil interface stored for
// an interface-typed T comes back as T's zero value.
func valueAs[T any](v any) T {
	t, _ := v.(T)
	return t
}
