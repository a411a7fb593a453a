package spatialmath

import (
	"github.com/pkg/errors"
)

var (
	// ErrDegenerateVector is returned when a vector that must be normalized has (near) zero length,
	// e.g. two coincident landmarks or two parallel axes fed to a cross product.
	ErrDegenerateVector = errors.New("degenerate vector cannot be normalized")

	// ErrSingularMatrix is returned when a matrix that must be inverted is numerically singular.
	ErrSingularMatrix = errors.New("matrix is singular")

	// ErrNotRigid is returned when a matrix is not a proper homogeneous rigid transform.
	ErrNotRigid = errors.New("matrix is not a rigid transform")
)

// NewDegenerateVectorError returns an error naming the vector that could not be normalized.
func NewDegenerateVectorError(name string) error {
	return errors.Wrapf(ErrDegenerateVector, "%s", name)
}

// NewNotRigidError returns an error describing why a matrix is not a rigid transform.
func NewNotRigidError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrNotRigid, format, args...)
}
