package graph

import (
	"errors"
	"fmt"
)

// Record-level errors. The caller is expected to log them and continue with
// the next record; the graph keeps whatever state was built before the
// failure point.
var (
	// ErrMissingLinkage indicates that an upstream entity required by a later
	// step (for example the TopologicalNode of a piece of equipment) does not
	// exist. Upserts completed before the failure are not rolled back.
	ErrMissingLinkage = errors.New("missing linkage")

	// ErrMalformedNumericField indicates that a measurement or limit value
	// could not be parsed as a floating point number. Nothing is mutated.
	ErrMalformedNumericField = errors.New("malformed numeric field")

	// ErrMalformedTimestamp indicates that a measurement timestamp is not in
	// one of the accepted layouts. Nothing is mutated.
	ErrMalformedTimestamp = errors.New("malformed timestamp")

	// ErrInvalidRecord indicates that a required field is missing or that an
	// enumerated field (unit multiplier, unit symbol) holds an unknown value.
	// Nothing is mutated.
	ErrInvalidRecord = errors.New("invalid record")
)

// ErrDuplicateKey is returned by Cache.Put when a natural key already maps to
// a different entity. The builder never triggers it when it looks up before
// it puts; seeing it means a programming error and the builder panics.
var ErrDuplicateKey = errors.New("duplicate natural key")

func missingLinkage(kind, name string) error {
	return fmt.Errorf("%w: no %s for %q", ErrMissingLinkage, kind, name)
}
