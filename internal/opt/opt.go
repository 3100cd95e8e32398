// Package opt provides an explicit optional value for parameters that may be
// absent, such as search filters and game defaults.
package opt

// Value holds a T that may or may not be set.
// The zero Value is unset.
type Value[T any] struct {
	v  T
	ok bool
}

// Some returns a set Value holding v.
func Some[T any](v T) Value[T] { return Value[T]{v: v, ok: true} }

// None returns an unset Value.
func None[T any]() Value[T] { return Value[T]{} }

// Get returns the held value and whether it is set.
func (o Value[T]) Get() (T, bool) { return o.v, o.ok }

// IsSet reports whether a value is held.
func (o Value[T]) IsSet() bool { return o.ok }

// Or returns the held value, or def when unset.
func (o Value[T]) Or(def T) T {
	if o.ok {
		return o.v
	}
	return def
}

// FromPtr converts a nil-able pointer (e.g. a decoded JSON field) to a Value.
func FromPtr[T any](p *T) Value[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}
