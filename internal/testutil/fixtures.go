// Package testutil provides shared fixtures for the container tests: a
// representative domain of sample payload values.
package testutil

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Scalars is a representative set of comparable payloads covering the kinds
// the containers must treat uniformly: nil, booleans, integers, floats,
// strings.
var Scalars = []any{
	nil,
	true, false,
	-1, 0, 1,
	-1.0, 0.0, 1.0,
	"a", "z", "@",
}

// Unhashables are payloads whose dynamic types the runtime cannot hash.
// Inserting a container wrapping one of these as a map key must panic.
var Unhashables = []any{
	[]int{},
	map[string]int{},
	func() {},
}

// Errs is a representative set of error payloads: a plain sentinel error,
// a wrapped error, and a typed error.
var Errs = []error{
	errors.New("boom"),
	fmt.Errorf("outer: %w", errors.New("inner")),
	&TaggedError{ID: uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"), Msg: "tagged"},
}

// TaggedError is a typed error carrying an identifier, so the fixture domain
// includes a non-primitive struct payload.
type TaggedError struct {
	ID  uuid.UUID
	Msg string
}

func (e *TaggedError) Error() string {
	return fmt.Sprintf("%s [%s]", e.Msg, e.ID)
}
