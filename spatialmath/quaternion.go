package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/jcs/utils"
)

const radToDeg = 180 / math.Pi

// Quaternion is a unit quaternion orientation (w, x, y, z).
type Quaternion quat.Number

// NewUnitQuaternion normalizes the given components into a unit quaternion. Trackers report quaternions
// that are only approximately unit length, so every reading goes through here on ingestion.
func NewUnitQuaternion(w, x, y, z float64) (Quaternion, error) {
	q := quat.Number{Real: w, Imag: x, Jmag: y, Kmag: z}
	n := quat.Abs(q)
	if n < vectorEpsilon || math.IsNaN(n) || math.IsInf(n, 0) {
		return Quaternion{}, errors.Errorf("cannot normalize quaternion %v", q)
	}
	return Quaternion(quat.Scale(1/n, q)), nil
}

// Quaternion returns orientation in quaternion representation.
func (q *Quaternion) Quaternion() quat.Number {
	return quat.Number(*q)
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (q *Quaternion) RotationMatrix() *RotationMatrix {
	return QuatToRotationMatrix(quat.Number(*q))
}

// EulerAngles returns the orientation as (roll, pitch, yaw) in degrees.
func (q *Quaternion) EulerAngles() []float64 {
	return QuatToEuler(quat.Number(*q))
}

// QuatToRotationMatrix converts a unit quaternion into the equivalent 3x3 rotation matrix.
func QuatToRotationMatrix(q quat.Number) *RotationMatrix {
	mq := mgl64.Quat{W: q.Real, V: mgl64.Vec3{q.Imag, q.Jmag, q.Kmag}}.Normalize()
	return &RotationMatrix{mat: mq.Mat4().Mat3()}
}

// QuatToEuler converts a rotation unit quaternion to euler angles.
// See the following wikipedia page for the formulas used here:
// https://en.wikipedia.org/wiki/Conversion_between_quaternions_and_Euler_angles#Quaternion_to_Euler_angles_conversion
// Euler angles are terrible, don't use them.
func QuatToEuler(q quat.Number) []float64 {
	w := q.Real
	x := q.Imag
	y := q.Jmag
	z := q.Kmag

	angles := []float64{
		math.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y)),
		math.Asin(utils.ClampUnit(2 * (w*y - x*z))),
		math.Atan2(2*(w*z+y*x), 1-2*(y*y+z*z)),
	}
	for i := range angles {
		angles[i] *= radToDeg
	}
	return angles
}

// QuaternionAlmostEqual is an equality test for quaternions. q and -q describe the same rotation,
// so both signs are accepted.
func QuaternionAlmostEqual(a, b quat.Number, tol float64) bool {
	within := func(a, b quat.Number) bool {
		return math.Abs(a.Real-b.Real) < tol &&
			math.Abs(a.Imag-b.Imag) < tol &&
			math.Abs(a.Jmag-b.Jmag) < tol &&
			math.Abs(a.Kmag-b.Kmag) < tol
	}
	return within(a, b) || within(a, Flip(b))
}

// Flip will multiply a quaternion by -1, returning a quaternion representing the same orientation but in the opposing octant.
func Flip(q quat.Number) quat.Number {
	return quat.Number{Real: -q.Real, Imag: -q.Imag, Jmag: -q.Jmag, Kmag: -q.Kmag}
}
