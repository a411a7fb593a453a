package anatomy

import "github.com/pkg/errors"

var (
	// ErrIncompleteCalibration is returned when a rigid body lacks its side, a landmark or its
	// calibration tracker pose, so no pose can be derived from it.
	ErrIncompleteCalibration = errors.New("incomplete calibration")

	// ErrMissingDatum is returned when a sample has no tracker reading for a bone.
	ErrMissingDatum = errors.New("no tracker datum")
)

func newMissingFieldError(bone, field string) error {
	return errors.Wrapf(ErrIncompleteCalibration, "%s: missing %s", bone, field)
}
