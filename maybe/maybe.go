/*
Package maybe provides an optional-value type.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe represents an optional value of type T. Collections use it for
// queries which may legitimately have no answer, e.g. the last element of
// a possibly-empty vector.
type Maybe[T any] struct {
	value T
	ok    bool
}

// Just wraps a present value.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, ok: true}
}

// Nothing is the absent value.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromFound adapts the (value, found) return convention.
func FromFound[T any](x T, found bool) Maybe[T] {
	if found {
		return Just(x)
	}
	return Nothing[T]()
}

// IsJust reports whether a value is present.
func (m Maybe[T]) IsJust() bool {
	return m.ok
}

// Value returns the contained value, together with a presence flag.
func (m Maybe[T]) Value() (T, bool) {
	return m.value, m.ok
}

// WithDefault returns the contained value, or def if absent.
func (m Maybe[T]) WithDefault(def T) T {
	if m.ok {
		return m.value
	}
	return def
}

// Map applies f to a present value and leaves Nothing untouched.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.ok {
		return Just(f(m.value))
	}
	return m
}

// Map applies f to a present value, possibly changing the value type.
func Map[T, S any](f func(T) S, m Maybe[T]) Maybe[S] {
	if v, ok := m.Value(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}

// AndThen chains a computation which may itself fail.
func AndThen[T, S any](f func(T) Maybe[S], m Maybe[T]) Maybe[S] {
	if v, ok := m.Value(); ok {
		return f(v)
	}
	return Nothing[S]()
}
