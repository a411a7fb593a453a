package referenceframe

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/jcs/spatialmath"
)

type thigh struct{}

func (thigh) FrameName() string { return "thigh" }

type shank struct{}

func (shank) FrameName() string { return "shank" }

func pose[S, T Frame](t *testing.T, w, x, y, z float64, p r3.Vector) Transform[S, T] {
	t.Helper()
	q, err := spatialmath.NewUnitQuaternion(w, x, y, z)
	test.That(t, err, test.ShouldBeNil)
	return NewTransformFromPose[S, T](&q, p)
}

func TestFrameNames(t *testing.T) {
	test.That(t, Name[Global](), test.ShouldEqual, "global")
	test.That(t, Name[Tracker[thigh]](), test.ShouldEqual, "thigh_tracker")
	test.That(t, Name[Probe](), test.ShouldEqual, "probe")
}

func TestNewTransform(t *testing.T) {
	m := mgl64.Translate3D(1, 2, 3).Mul4(mgl64.HomogRotate3DZ(math.Pi / 3))
	tf, err := NewTransform[Global, thigh](m)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, tf.Matrix(), test.ShouldResemble, m)

	_, err = NewTransform[Global, thigh](mgl64.Scale3D(1, 2, 1))
	test.That(t, errors.Is(err, spatialmath.ErrNotRigid), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "global -> thigh")
}

func TestIdentityComposition(t *testing.T) {
	tf := pose[Global, thigh](t, 0.8228, 0.1357, 0.4408, -0.3318, r3.Vector{X: 15.32, Y: -54.997, Z: -2097.60})

	right := Compose(tf, Identity[thigh, thigh]())
	left := Compose(Identity[Global, Global](), tf)
	test.That(t, right.AlmostEqual(tf, 1e-12), test.ShouldBeTrue)
	test.That(t, left.AlmostEqual(tf, 1e-12), test.ShouldBeTrue)
}

func TestComposeAssociativeNotCommutative(t *testing.T) {
	a := pose[Global, Tracker[thigh]](t, 0.9574, -0.0372, -0.1895, 0.2148, r3.Vector{X: -149.37, Y: -19.41, Z: -2148.29})
	b := pose[Tracker[thigh], thigh](t, 0.4031, 0.4746, 0.4196, -0.6604, r3.Vector{X: 162.5, Y: -76.4, Z: 1.9})
	c := pose[thigh, shank](t, 0.4281, 0.4662, 0.4472, -0.6320, r3.Vector{X: -8.57, Y: 15.89, Z: -40})

	test.That(t, Compose(Compose(a, b), c).AlmostEqual(Compose(a, Compose(b, c)), 1e-9), test.ShouldBeTrue)

	ab := Compose(a, b).Matrix()
	ba := b.Matrix().Mul4(a.Matrix())
	test.That(t, spatialmath.Mat4AlmostEqual(ab, ba, 1e-3), test.ShouldBeFalse)
}

func TestRelative(t *testing.T) {
	a := pose[Global, thigh](t, 0.7390869, 0.1446579, 0.3029275, 0.584003, r3.Vector{X: 57.113, Y: -9.573, Z: -1830.174})
	b := pose[Global, shank](t, 0.0928529, -0.0505891, -0.2052756, 0.9729753, r3.Vector{X: 279.027, Y: 308.978, Z: -1774.889})

	rel, err := Relative(a, b)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, Compose(a, rel).AlmostEqual(b, 1e-9), test.ShouldBeTrue)
	test.That(t, rel.AlmostEqual(Compose(a.Inverse(), b), 1e-9), test.ShouldBeTrue)

	self, err := Relative(a, a)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, self.AlmostEqual(Identity[thigh, thigh](), 1e-9), test.ShouldBeTrue)

	_, err = Relative(Transform[Global, thigh]{}, b)
	test.That(t, errors.Is(err, spatialmath.ErrSingularMatrix), test.ShouldBeTrue)
}

func TestBasisAndOrigin(t *testing.T) {
	tf := pose[Global, thigh](t, math.Cos(math.Pi/4), 0, 0, math.Sin(math.Pi/4), r3.Vector{X: 4, Y: 5, Z: 6})

	test.That(t, spatialmath.R3VectorAlmostEqual(tf.BasisI(), r3.Vector{Y: 1}, 1e-12), test.ShouldBeTrue)
	test.That(t, spatialmath.R3VectorAlmostEqual(tf.BasisJ(), r3.Vector{X: -1}, 1e-12), test.ShouldBeTrue)
	test.That(t, spatialmath.R3VectorAlmostEqual(tf.BasisK(), r3.Vector{Z: 1}, 1e-12), test.ShouldBeTrue)
	test.That(t, tf.Origin(), test.ShouldResemble, r3.Vector{X: 4, Y: 5, Z: 6})

	inv := tf.Inverse()
	test.That(t, spatialmath.R3VectorAlmostEqual(inv.Origin(), r3.Vector{X: -5, Y: 4, Z: -6}, 1e-12), test.ShouldBeTrue)
}

func TestRotation(t *testing.T) {
	q, err := spatialmath.NewUnitQuaternion(0.9573733, -0.0372205, -0.1895465, 0.2147628)
	test.That(t, err, test.ShouldBeNil)
	tf := NewTransformFromPose[Global, Tracker[thigh]](&q, r3.Vector{})
	test.That(t, spatialmath.QuaternionAlmostEqual(tf.Rotation(), q.Quaternion(), 1e-9), test.ShouldBeTrue)
	test.That(t, quat.Abs(tf.Rotation()), test.ShouldAlmostEqual, 1)
	test.That(t, tf.RotationMatrix().IsRotation(1e-9), test.ShouldBeTrue)
}

func TestString(t *testing.T) {
	s := Identity[Global, Tracker[shank]]().String()
	test.That(t, s, test.ShouldContainSubstring, "global <- shank_tracker")
}
