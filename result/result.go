package result

import (
	"fmt"

	"git.home.luguber.info/inful/foundation/maybe"
)

// Result represents an operation that either succeeded with a value T or
// failed with an error E. This replaces the common pattern of returning
// (T, error) with a more explicit type.
//
// Result is an immutable value type with the same structural equality and
// hashing behavior as maybe.Maybe: when T and E are comparable, two Ok values
// are equal iff their values are equal, two Err values are equal iff their
// errors are equal, and an Ok never equals an Err, payload regardless.
//
// Result deliberately has no Unwrap. The only way to extract a raw value or
// error imperatively is through the Ok and Err accessors, e.g.
// r.Ok().Unwrap(), which routes every extraction through the optional
// container's explicit failure path.
type Result[T any, E error] struct {
	value T
	err   E
	ok    bool
}

// Ok creates a successful Result with the given value.
func Ok[T any, E error](value T) Result[T, E] {
	return Result[T, E]{
		value: value,
		ok:    true,
	}
}

// Err creates a failed Result with the given error.
func Err[T any, E error](err E) Result[T, E] {
	return Result[T, E]{
		err: err,
	}
}

// FromTuple creates a Result from the traditional Go (value, error) pair.
func FromTuple[T any, E error](value T, err E) Result[T, E] {
	if any(err) != nil {
		return Err[T, E](err)
	}
	return Ok[T, E](value)
}

// IsOk returns true if the Result represents a successful operation.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr returns true if the Result represents a failed operation.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Ok returns Some of the value if the Result is successful, Empty otherwise.
func (r Result[T, E]) Ok() maybe.Maybe[T] {
	if r.ok {
		return maybe.Some(r.value)
	}
	return maybe.Empty[T]()
}

// Err returns Some of the error if the Result failed, Empty otherwise.
func (r Result[T, E]) Err() maybe.Maybe[E] {
	if r.ok {
		return maybe.Empty[E]()
	}
	return maybe.Some(r.err)
}

// Match executes ifOk with the value if successful, ifErr with the error
// otherwise. Exactly one of the two functions is invoked.
func (r Result[T, E]) Match(ifOk func(T), ifErr func(E)) {
	if r.ok {
		ifOk(r.value)
	} else {
		ifErr(r.err)
	}
}

// String renders a successful Result as "Ok(v)" and a failed one as "Err(e)".
func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// Map transforms a successful Result[T, E] into Result[U, E] by applying fn
// to the value. A failed Result passes through unchanged and fn is not
// invoked.
func Map[T, U any, E error](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.ok {
		return Ok[U, E](fn(r.value))
	}
	return Err[U, E](r.err)
}

// MapErr transforms the error of a failed Result[T, E1] into Result[T, E2].
// A successful Result passes through unchanged and fn is not invoked.
func MapErr[T any, E1, E2 error](r Result[T, E1], fn func(E1) E2) Result[T, E2] {
	if r.ok {
		return Ok[T, E2](r.value)
	}
	return Err[T, E2](fn(r.err))
}

// FlatMap transforms a successful Result[T, E] using a function that itself
// returns a Result; the function's result is returned directly, never
// re-wrapped. This prevents Result[Result[U, E], E]. A failed Result passes
// through unchanged and fn is not invoked.
//
// Go generics cannot express "any error supertype of E" as a bound, so fn
// must return the same error type; callers that mix error types instantiate
// with E = error.
func FlatMap[T, U any, E error](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if r.ok {
		return fn(r.value)
	}
	return Err[U, E](r.err)
}

// Match invokes ifOk with the value if successful, ifErr with the error
// otherwise, and returns the invoked function's result. Exactly one branch
// runs.
func Match[T, U any, E error](r Result[T, E], ifOk func(T) U, ifErr func(E) U) U {
	if r.ok {
		return ifOk(r.value)
	}
	return ifErr(r.err)
}
