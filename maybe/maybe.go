package maybe

import (
	"errors"
	"fmt"
)

// ErrEmptyUnwrap is the panic value raised by Unwrap on an Empty.
// Callers that need to recover from it can match with errors.Is.
var ErrEmptyUnwrap = errors.New("maybe: no such value")

// Maybe represents a value that may or may not be present.
// This replaces nullable pointers and provides explicit handling of missing values.
//
// Maybe is an immutable value type: no method mutates the receiver, and
// Map/FlatMap return new instances. When T is comparable, Maybe[T] is
// comparable too — two Some values are equal iff their contained values are
// equal, all Empty values of the same instantiation are equal, and a Some
// never equals an Empty. The same property makes Maybe[T] usable as a map
// key; inserting a Maybe whose interface payload is dynamically unhashable
// (a slice, a map) panics with the runtime's hashing error, which the library
// deliberately does not intercept.
type Maybe[T any] struct {
	value   T
	present bool
}

// Some creates a Maybe with a value.
func Some[T any](value T) Maybe[T] {
	return Maybe[T]{
		value:   value,
		present: true,
	}
}

// Empty creates a Maybe with no value. It is the zero value of Maybe[T];
// the type parameter exists only so the result fits any Maybe[T] context.
func Empty[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromPointer creates a Maybe from a pointer.
// Returns Some(value) if the pointer is non-nil, Empty if nil.
func FromPointer[T any](ptr *T) Maybe[T] {
	if ptr != nil {
		return Some(*ptr)
	}
	return Empty[T]()
}

// IsSome returns true if the Maybe contains a value.
func (m Maybe[T]) IsSome() bool {
	return m.present
}

// IsEmpty returns true if the Maybe is empty.
func (m Maybe[T]) IsEmpty() bool {
	return !m.present
}

// Unwrap returns the value if present, panics with ErrEmptyUnwrap if Empty.
// This is the sole escape hatch into imperative handling; use it only when
// a prior Match/Map/FlatMap guarantees the value exists.
func (m Maybe[T]) Unwrap() T {
	if !m.present {
		panic(ErrEmptyUnwrap)
	}
	return m.value
}

// UnwrapOr returns the value if present, otherwise returns the fallback.
func (m Maybe[T]) UnwrapOr(fallback T) T {
	if m.present {
		return m.value
	}
	return fallback
}

// UnwrapOrElse returns the value if present, otherwise calls the function and
// returns its result.
func (m Maybe[T]) UnwrapOrElse(fn func() T) T {
	if m.present {
		return m.value
	}
	return fn()
}

// Match executes ifSome with the value if present, ifEmpty otherwise.
// Exactly one of the two functions is invoked.
func (m Maybe[T]) Match(ifSome func(T), ifEmpty func()) {
	if m.present {
		ifSome(m.value)
	} else {
		ifEmpty()
	}
}

// Filter returns the Maybe if the predicate holds for the contained value,
// otherwise Empty.
func (m Maybe[T]) Filter(predicate func(T) bool) Maybe[T] {
	if m.present && predicate(m.value) {
		return m
	}
	return Empty[T]()
}

// ToPointer returns a pointer to the value if present, nil if Empty.
func (m Maybe[T]) ToPointer() *T {
	if m.present {
		return &m.value
	}
	return nil
}

// String renders Some(v) as "Some(v)" and Empty as "Empty()". Nested
// containers render recursively: Some(Some(1)) is "Some(Some(1))".
func (m Maybe[T]) String() string {
	if m.present {
		return fmt.Sprintf("Some(%v)", m.value)
	}
	return "Empty()"
}

// Map transforms a Maybe[T] into a Maybe[U] by applying fn to the contained
// value. If the Maybe is Empty, fn is not invoked and Empty[U] is returned.
//
// Map is a package-level function because a method cannot introduce the new
// type parameter U.
func Map[T, U any](m Maybe[T], fn func(T) U) Maybe[U] {
	if m.present {
		return Some(fn(m.value))
	}
	return Empty[U]()
}

// FlatMap transforms a Maybe[T] into a Maybe[U] using a function that itself
// returns a Maybe[U]; the function's result is returned directly, never
// re-wrapped. This prevents Maybe[Maybe[U]]. If the Maybe is Empty, fn is not
// invoked.
func FlatMap[T, U any](m Maybe[T], fn func(T) Maybe[U]) Maybe[U] {
	if m.present {
		return fn(m.value)
	}
	return Empty[U]()
}

// Match invokes ifSome with the value if present, ifEmpty otherwise, and
// returns the invoked function's result. Exactly one branch runs.
func Match[T, U any](m Maybe[T], ifSome func(T) U, ifEmpty func() U) U {
	if m.present {
		return ifSome(m.value)
	}
	return ifEmpty()
}
