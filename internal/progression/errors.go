package progression

import "github.com/go-faster/errors"

var (
	// ErrInvalidArgument is returned when a progression cannot be built from
	// the given step.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrExhausted is returned by [Iterator.Advance] when there are no
	// elements left.
	ErrExhausted = errors.New("iterator exhausted")
)
