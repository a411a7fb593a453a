package anatomy

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/jcs/referenceframe"
)

// CalibrationPose is bone B's tracker pose in the global frame at the moment its landmarks were digitized.
type CalibrationPose[B Bone] = referenceframe.Transform[referenceframe.Global, referenceframe.Tracker[B]]

// Builder accumulates the calibration of one bone. Every With method returns a new Builder and leaves
// the receiver untouched, so partially filled builders can be shared and branched.
type Builder[B Bone] struct {
	side    *Side
	medial  *Landmark[B, Medial]
	lateral *Landmark[B, Lateral]
	far     BoneLandmark[B]
	tracker *CalibrationPose[B]
}

// NewBuilder returns an empty builder for bone B.
func NewBuilder[B Bone]() Builder[B] {
	return Builder[B]{}
}

// WithSide sets the side of the body.
func (b Builder[B]) WithSide(side Side) Builder[B] {
	b.side = &side
	return b
}

// WithMedial sets the medial landmark.
func (b Builder[B]) WithMedial(l Landmark[B, Medial]) Builder[B] {
	b.medial = &l
	return b
}

// WithLateral sets the lateral landmark.
func (b Builder[B]) WithLateral(l Landmark[B, Lateral]) Builder[B] {
	b.lateral = &l
	return b
}

// WithFar sets the landmark at the far end of the bone. Its role must match B's FarRole, which is
// checked by Build.
func (b Builder[B]) WithFar(l BoneLandmark[B]) Builder[B] {
	b.far = l
	return b
}

// WithTracker sets the calibration tracker pose.
func (b Builder[B]) WithTracker(t CalibrationPose[B]) Builder[B] {
	b.tracker = &t
	return b
}

// WithTrackerProbe sets the calibration tracker pose from a raw tracker reading.
func (b Builder[B]) WithTrackerProbe(p ProbeData) Builder[B] {
	return b.WithTracker(NewDatum[B](0, p).Pose())
}

// Build validates that every field is present and computes the fixed frame and static offset.
// Missing fields are reported together, each wrapping ErrIncompleteCalibration.
func (b Builder[B]) Build() (*RigidBody[B], error) {
	var bone B
	name := bone.FrameName()

	var errs error
	if b.side == nil {
		errs = multierr.Append(errs, newMissingFieldError(name, "side"))
	}
	if b.medial == nil {
		errs = multierr.Append(errs, newMissingFieldError(name, "medial landmark"))
	}
	if b.lateral == nil {
		errs = multierr.Append(errs, newMissingFieldError(name, "lateral landmark"))
	}
	if b.far == nil {
		errs = multierr.Append(errs, newMissingFieldError(name, bone.FarRole().RoleName()+" landmark"))
	} else if got, want := b.far.Role().RoleName(), bone.FarRole().RoleName(); got != want {
		errs = multierr.Append(errs, errors.Errorf("%s: far landmark must be %s, got %s", name, want, got))
	}
	if b.tracker == nil {
		errs = multierr.Append(errs, newMissingFieldError(name, "calibration tracker pose"))
	}
	if errs != nil {
		return nil, errs
	}

	fixed, err := FixedFrame[B](*b.side, b.medial.Position(), b.lateral.Position(), b.far.Position())
	if err != nil {
		return nil, err
	}
	offset, err := referenceframe.Relative(*b.tracker, fixed)
	if err != nil {
		return nil, errors.Wrapf(err, "%s static offset", name)
	}
	return &RigidBody[B]{
		side:    *b.side,
		medial:  *b.medial,
		lateral: *b.lateral,
		far:     b.far,
		tracker: *b.tracker,
		fixed:   fixed,
		offset:  offset,
	}, nil
}
