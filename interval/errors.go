package interval

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidBound is returned when an interval is built from a NaN bound,
	// from inverted bounds or from an infinity on the wrong side.
	ErrInvalidBound = errors.New("invalid interval bound")

	// ErrTypeMismatch is raised when an operation receives a value that is
	// neither an Interval nor a Union.
	ErrTypeMismatch = errors.New("operand must be an Interval or a Union")

	// ErrSyntax is returned by Parse on malformed input.
	ErrSyntax = errors.New("invalid interval syntax")
)
