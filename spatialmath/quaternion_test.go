package spatialmath

import (
	"math"
	"testing"

	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"
)

// femoral tracker reading at calibration time, and the matrix a reference matrix-algebra tool produced for it.
var (
	femurTrackerQuat = [4]float64{0.9573733, -0.0372205, -0.1895465, 0.2147628}
	femurTrackerRot  = [3][3]float64{
		{0.8358, -0.3970, -0.3793},
		{0.4254, 0.9049, -0.0096},
		{0.3470, -0.1533, 0.9252},
	}
)

func TestNewUnitQuaternion(t *testing.T) {
	q, err := NewUnitQuaternion(2, 0, 0, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, q.Quaternion(), test.ShouldResemble, quat.Number{Real: 1})

	q, err = NewUnitQuaternion(1, 1, 1, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, quat.Abs(q.Quaternion()), test.ShouldAlmostEqual, 1)
	test.That(t, q.Imag, test.ShouldAlmostEqual, 0.5)

	_, err = NewUnitQuaternion(0, 0, 0, 0)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = NewUnitQuaternion(math.NaN(), 0, 0, 1)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestQuatToRotationMatrix(t *testing.T) {
	q, err := NewUnitQuaternion(femurTrackerQuat[0], femurTrackerQuat[1], femurTrackerQuat[2], femurTrackerQuat[3])
	test.That(t, err, test.ShouldBeNil)
	rm := q.RotationMatrix()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			test.That(t, rm.At(r, c), test.ShouldAlmostEqual, femurTrackerRot[r][c], 5e-3)
		}
	}
	test.That(t, rm.IsRotation(1e-9), test.ShouldBeTrue)

	// 90 degrees about z sends x to y
	rz := QuatToRotationMatrix(quat.Number{Real: math.Cos(math.Pi / 4), Kmag: math.Sin(math.Pi / 4)})
	test.That(t, rz.Col(0).Y, test.ShouldAlmostEqual, 1)
	test.That(t, rz.Col(1).X, test.ShouldAlmostEqual, -1)
}

func TestQuaternionRoundTrip(t *testing.T) {
	q, err := NewUnitQuaternion(0.4031, 0.4746, 0.4196, -0.6604)
	test.That(t, err, test.ShouldBeNil)
	back := q.RotationMatrix().Quaternion()
	test.That(t, QuaternionAlmostEqual(q.Quaternion(), back, 1e-9), test.ShouldBeTrue)
	test.That(t, QuaternionAlmostEqual(q.Quaternion(), Flip(back), 1e-9), test.ShouldBeTrue)
	test.That(t, QuaternionAlmostEqual(q.Quaternion(), quat.Number{Real: 1}, 1e-3), test.ShouldBeFalse)
}

func TestQuatToEuler(t *testing.T) {
	th := math.Pi / 4
	q45x := quat.Number{Real: math.Cos(th / 2), Imag: math.Sin(th / 2)}
	angles := QuatToEuler(q45x)
	test.That(t, angles[0], test.ShouldAlmostEqual, 45)
	test.That(t, angles[1], test.ShouldAlmostEqual, 0)
	test.That(t, angles[2], test.ShouldAlmostEqual, 0)
}
