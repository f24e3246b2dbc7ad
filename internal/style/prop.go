package style

type propState uint8

const (
	stateAbsent propState = iota
	statePresent
	stateUnset
)

// Prop is an optional style value. The zero Prop is absent and lets an
// inherited value through; Unset explicitly cancels an inherited value.
type Prop[T comparable] struct {
	state propState
	value T
}

// Of returns a Prop holding v.
func Of[T comparable](v T) Prop[T] {
	return Prop[T]{state: statePresent, value: v}
}

// Unset returns a Prop that cancels whatever a parent supplied.
func Unset[T comparable]() Prop[T] {
	return Prop[T]{state: stateUnset}
}

// Get returns the value and whether one is present.
func (p Prop[T]) Get() (T, bool) {
	if p.state != statePresent {
		var zero T
		return zero, false
	}
	return p.value, true
}

// Or returns the value, or fallback when none is present.
func (p Prop[T]) Or(fallback T) T {
	if p.state != statePresent {
		return fallback
	}
	return p.value
}

// IsSet reports whether a value is present.
func (p Prop[T]) IsSet() bool { return p.state == statePresent }

// IsUnset reports whether the prop explicitly cancels an inherited value.
func (p Prop[T]) IsUnset() bool { return p.state == stateUnset }

// IsAbsent reports whether the prop carries no opinion at all.
func (p Prop[T]) IsAbsent() bool { return p.state == stateAbsent }

// over returns p when it carries an opinion (set or unset), parent otherwise.
func (p Prop[T]) over(parent Prop[T]) Prop[T] {
	if p.state != stateAbsent {
		return p
	}
	return parent
}
