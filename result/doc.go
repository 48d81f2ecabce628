// Package result provides a generic container for the outcome of an
// operation that may fail.
//
// A Result[T, E] is always in exactly one of two states: Ok, holding a
// success value of type T, or Err, holding an error of type E. E is
// constrained to the error interface, so the failure side always carries an
// error-like payload.
//
// Key features:
//   - Ok / Err: the only two constructors; immutable value semantics
//   - Map / MapErr / FlatMap / Match: combinators touching only their variant
//   - Ok() / Err() accessors returning maybe.Maybe, composing the two types
//   - FromTuple: bridge from Go's (value, error) convention
//
// Example usage:
//
//	func toInt(s string) result.Result[int, error] {
//		return result.FromTuple(strconv.Atoi(s))
//	}
//
//	func inverse(i int) result.Result[float64, error] {
//		if i == 0 {
//			return result.Err[float64, error](errDivisionByZero)
//		}
//		return result.Ok[float64, error](1 / float64(i))
//	}
//
//	res := result.FlatMap(toInt("5"), inverse) // Ok(0.2)
//	res.Ok().Unwrap()                          // 0.2
//
// Note Result defines no Unwrap of its own. Users extract values with
// r.Ok().Unwrap() (or errors with r.Err().Unwrap()), which limits imperative
// functionality to the maybe package.
package result
