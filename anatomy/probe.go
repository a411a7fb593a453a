package anatomy

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/jcs/referenceframe"
	"go.viam.com/jcs/spatialmath"
)

// ProbeData is one pose reading from the tracking system: the orientation and position of a tool
// (a probe tip or a tracker) in the global frame.
type ProbeData struct {
	name        string
	label       string
	orientation spatialmath.Quaternion
	translation r3.Vector
}

// NewProbeData builds a reading from the raw quaternion (w, x, y, z) and translation. The quaternion
// is normalized; a zero quaternion is an error.
func NewProbeData(name, label string, q0, qx, qy, qz float64, translation r3.Vector) (ProbeData, error) {
	q, err := spatialmath.NewUnitQuaternion(q0, qx, qy, qz)
	if err != nil {
		return ProbeData{}, errors.Wrapf(err, "probe %q", name)
	}
	return ProbeData{name: name, label: label, orientation: q, translation: translation}, nil
}

// Name of the tool that produced the reading.
func (p ProbeData) Name() string {
	return p.name
}

// Label describes what was measured, e.g. "medial epicondyle".
func (p ProbeData) Label() string {
	return p.label
}

// Orientation returns the unit quaternion.
func (p ProbeData) Orientation() quat.Number {
	return quat.Number(p.orientation)
}

// Translation returns the measured position.
func (p ProbeData) Translation() r3.Vector {
	return p.translation
}

// Scaled returns a copy with the translation multiplied by s, for unit conversion.
func (p ProbeData) Scaled(s float64) ProbeData {
	p.translation = p.translation.Mul(s)
	return p
}

// Pose returns the tool's pose in the global frame, translation · rotation.
func (p ProbeData) Pose() referenceframe.Transform[referenceframe.Global, referenceframe.Probe] {
	q := p.orientation
	return referenceframe.NewTransformFromPose[referenceframe.Global, referenceframe.Probe](&q, p.translation)
}

func (p ProbeData) String() string {
	e := p.orientation.EulerAngles()
	return fmt.Sprintf("%s (%s): position (%.3f, %.3f, %.3f), roll %.2f pitch %.2f yaw %.2f",
		p.name, p.label, p.translation.X, p.translation.Y, p.translation.Z, e[0], e[1], e[2])
}

// Landmark is a digitized anatomical point on bone B playing role R.
type Landmark[B Bone, R Role] struct {
	probe ProbeData
}

// NewLandmark tags a probe reading as a landmark.
func NewLandmark[B Bone, R Role](p ProbeData) Landmark[B, R] {
	return Landmark[B, R]{probe: p}
}

// Probe returns the underlying reading.
func (l Landmark[B, R]) Probe() ProbeData {
	return l.probe
}

// Position returns the landmark's position in the global frame.
func (l Landmark[B, R]) Position() r3.Vector {
	return l.probe.translation
}

// Role returns the landmark's role.
func (l Landmark[B, R]) Role() Role {
	var r R
	return r
}

func (l Landmark[B, R]) String() string {
	var b B
	return fmt.Sprintf("%s %s landmark: %s", b.FrameName(), l.Role().RoleName(), l.probe)
}

// BoneLandmark is any landmark on bone B, whatever its role.
type BoneLandmark[B Bone] interface {
	Probe() ProbeData
	Position() r3.Vector
	Role() Role
}
