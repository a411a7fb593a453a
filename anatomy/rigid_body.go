package anatomy

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/jcs/referenceframe"
)

// RigidBody is a fully calibrated bone. It is read-only after Build and safe for concurrent use.
type RigidBody[B Bone] struct {
	side    Side
	medial  Landmark[B, Medial]
	lateral Landmark[B, Lateral]
	far     BoneLandmark[B]
	tracker CalibrationPose[B]

	fixed  referenceframe.Transform[referenceframe.Global, B]
	offset referenceframe.Transform[referenceframe.Tracker[B], B]
}

// Side returns the side of the body.
func (rb *RigidBody[B]) Side() Side {
	return rb.side
}

// Medial returns the medial landmark.
func (rb *RigidBody[B]) Medial() Landmark[B, Medial] {
	return rb.medial
}

// Lateral returns the lateral landmark.
func (rb *RigidBody[B]) Lateral() Landmark[B, Lateral] {
	return rb.lateral
}

// Far returns the landmark at the far end of the bone.
func (rb *RigidBody[B]) Far() BoneLandmark[B] {
	return rb.far
}

// Tracker returns the calibration tracker pose.
func (rb *RigidBody[B]) Tracker() CalibrationPose[B] {
	return rb.tracker
}

// FixedFrame returns the bone's anatomical frame in the global frame at calibration time.
func (rb *RigidBody[B]) FixedFrame() referenceframe.Transform[referenceframe.Global, B] {
	return rb.fixed
}

// StaticOffset returns the bone's anatomical frame expressed in its tracker's frame.
func (rb *RigidBody[B]) StaticOffset() referenceframe.Transform[referenceframe.Tracker[B], B] {
	return rb.offset
}

// Locate expresses the position of a landmark digitized on this bone in the bone's anatomical frame.
func (rb *RigidBody[B]) Locate(l BoneLandmark[B]) r3.Vector {
	return referenceframe.Compose(rb.fixed.Inverse(), l.Probe().Pose()).Origin()
}

// Resolve returns the bone's pose in the global frame for one tracker sample.
func (rb *RigidBody[B]) Resolve(d *Datum[B]) (referenceframe.Transform[referenceframe.Global, B], error) {
	var zero referenceframe.Transform[referenceframe.Global, B]
	if rb == nil {
		return zero, errors.Wrapf(ErrIncompleteCalibration, "%s: not calibrated", referenceframe.Name[B]())
	}
	if d == nil {
		return zero, errors.Wrapf(ErrMissingDatum, "%s", referenceframe.Name[referenceframe.Tracker[B]]())
	}
	return referenceframe.Compose(d.Pose(), rb.offset), nil
}

func (rb *RigidBody[B]) String() string {
	return fmt.Sprintf("%s (%s side)\nfixed frame: %s\nstatic offset: %s",
		referenceframe.Name[B](), rb.side, rb.fixed, rb.offset)
}
