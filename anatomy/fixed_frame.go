package anatomy

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/jcs/referenceframe"
	"go.viam.com/jcs/spatialmath"
)

// FixedFrame derives bone B's anatomical frame in the global frame from its medial, lateral and far
// landmark positions. The origin is the medial/lateral midpoint; i is the mediolateral axis; j is
// the long axis crossed with i; k completes a right-handed basis.
func FixedFrame[B Bone](side Side, medial, lateral, far r3.Vector) (referenceframe.Transform[referenceframe.Global, B], error) {
	var bone B
	var zero referenceframe.Transform[referenceframe.Global, B]
	if !side.Valid() {
		return zero, errors.Errorf("%s fixed frame: invalid side %d", bone.FrameName(), side)
	}

	origin := spatialmath.Midpoint(medial, lateral)
	i, err := spatialmath.Unit(bone.MediolateralAxis(medial, lateral, side), "mediolateral axis")
	if err != nil {
		return zero, errors.Wrapf(err, "%s fixed frame", bone.FrameName())
	}
	hint, err := spatialmath.Unit(bone.LongAxis(origin, far), "long axis")
	if err != nil {
		return zero, errors.Wrapf(err, "%s fixed frame", bone.FrameName())
	}
	j, err := spatialmath.UnitCross(hint, i, "anteroposterior axis")
	if err != nil {
		return zero, errors.Wrapf(err, "%s fixed frame", bone.FrameName())
	}
	k, err := spatialmath.UnitCross(i, j, "superior axis")
	if err != nil {
		return zero, errors.Wrapf(err, "%s fixed frame", bone.FrameName())
	}

	rot := spatialmath.NewRotationMatrixFromColumns(i, j, k)
	return referenceframe.NewTransformFromPose[referenceframe.Global, B](rot, origin), nil
}
