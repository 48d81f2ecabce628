// Package maybe provides a generic optional container for values that may or
// may not be present.
//
// A Maybe[T] is always in exactly one of two states: Some, holding a single
// value of type T, or Empty, holding nothing. Callers construct instances
// with Some and Empty and interact through the combinators rather than
// inspecting state by hand.
//
// Key features:
//   - Some / Empty: the only two constructors; immutable value semantics
//   - Map / FlatMap / Match: functional combinators, Empty short-circuits
//   - Unwrap: the single imperative escape hatch, panicking with
//     ErrEmptyUnwrap on Empty
//   - UnwrapOr / UnwrapOrElse / Filter: convenience accessors
//   - FromPointer / ToPointer: bridges to nullable-pointer code
//
// Example usage:
//
//	func lookup(key string, table map[string]int) maybe.Maybe[int] {
//		if n, ok := table[key]; ok {
//			return maybe.Some(n)
//		}
//		return maybe.Empty[int]()
//	}
//
//	animals := map[string]int{"cat": 1, "dog": 2}
//	maybe.Map(lookup("cat", animals), strconv.Itoa) // Some(1)
//
//	greeting := maybe.Match(lookup("fish", animals),
//		func(n int) string { return strings.Repeat("Morning!", n) },
//		func() string { return "I wonder where that fish has gone ..." },
//	)
//
// Aside from Unwrap, the API is purely functional.
package maybe
