package geom

import (
	"errors"
)

var (
	// ErrInfiniteSolutions is returned when a query has infinitely many
	// answers, such as the roots of a ray that runs along the queried level
	// set. It is distinct from an empty result, which means no solution.
	ErrInfiniteSolutions = errors.New("infinite solutions")

	// ErrDomain is returned when the inputs violate a geometric precondition
	// of an operation, such as bisecting rays that don't share an origin.
	ErrDomain = errors.New("invalid domain")
)

// GeometryError records the operation that produced one of the kernel's
// sentinel errors. Use [errors.Is] to test for the kind.
type GeometryError struct {
	Op  string
	Err error
}

func (e *GeometryError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *GeometryError) Unwrap() error {
	return e.Err
}

// geomErr wraps kind and logs it at debug level.
func geomErr(op string, kind error, args ...any) error {
	Logger().Debug("geometry error", append([]any{"op", op, "err", kind}, args...)...)
	return &GeometryError{Op: op, Err: kind}
}
