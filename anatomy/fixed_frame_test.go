package anatomy

import (
	"errors"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"go.viam.com/jcs/referenceframe"
	"go.viam.com/jcs/spatialmath"
)

func TestFemurFixedFrame(t *testing.T) {
	ff, err := FixedFrame[Femur](Right, femurMedialPos, femurLateralPos, femurProximalPos)
	test.That(t, err, test.ShouldBeNil)
	expectMatrix(t, ff.Matrix(), [3][4]float64{
		{-0.019738, -0.931045, -0.364371, 16.117664},
		{-0.880569, -0.156411, 0.447363, -19.395319},
		{-0.473506, 0.329684, -0.816762, -2078.458293},
	}, 1e-4)
	test.That(t, ff.RotationMatrix().IsRotation(1e-4), test.ShouldBeTrue)
}

func TestTibiaFixedFrame(t *testing.T) {
	ff, err := FixedFrame[Tibia](Right, tibiaMedialPos, tibiaLateralPos, tibiaDistalPos)
	test.That(t, err, test.ShouldBeNil)
	expectMatrix(t, ff.Matrix(), [3][4]float64{
		{-0.014520, 0.095943, -0.995281, 66.375150},
		{0.764218, 0.642952, 0.050830, -33.906150},
		{0.644795, -0.759873, -0.082657, -2055.147200},
	}, 1e-4)
}

func TestPatellaFollowsTibiaConventions(t *testing.T) {
	tib, err := FixedFrame[Tibia](Left, tibiaMedialPos, tibiaLateralPos, tibiaDistalPos)
	test.That(t, err, test.ShouldBeNil)
	pat, err := FixedFrame[Patella](Left, tibiaMedialPos, tibiaLateralPos, tibiaDistalPos)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, spatialmath.Mat4AlmostEqual(tib.Matrix(), pat.Matrix(), 1e-12), test.ShouldBeTrue)
}

func TestFixedFrameOrthonormal(t *testing.T) {
	check := func(i, j, k r3.Vector) {
		test.That(t, i.Norm(), test.ShouldAlmostEqual, 1, 1e-4)
		test.That(t, j.Norm(), test.ShouldAlmostEqual, 1, 1e-4)
		test.That(t, k.Norm(), test.ShouldAlmostEqual, 1, 1e-4)
		test.That(t, i.Dot(j), test.ShouldAlmostEqual, 0, 1e-4)
		test.That(t, j.Dot(k), test.ShouldAlmostEqual, 0, 1e-4)
		test.That(t, i.Dot(k), test.ShouldAlmostEqual, 0, 1e-4)
		test.That(t, spatialmath.R3VectorAlmostEqual(i.Cross(j), k, 1e-4), test.ShouldBeTrue)
	}
	for _, side := range []Side{Right, Left} {
		f, err := FixedFrame[Femur](side, femurMedialPos, femurLateralPos, femurProximalPos)
		test.That(t, err, test.ShouldBeNil)
		check(f.BasisI(), f.BasisJ(), f.BasisK())

		tb, err := FixedFrame[Tibia](side, tibiaMedialPos, tibiaLateralPos, tibiaDistalPos)
		test.That(t, err, test.ShouldBeNil)
		check(tb.BasisI(), tb.BasisJ(), tb.BasisK())
	}
}

func TestFixedFrameSideSymmetry(t *testing.T) {
	symmetric := func(t *testing.T, a, b referenceframe.Transform[referenceframe.Global, Femur]) {
		t.Helper()
		test.That(t, spatialmath.R3VectorAlmostEqual(a.BasisI(), b.BasisI().Mul(-1), 1e-9), test.ShouldBeTrue)
		test.That(t, spatialmath.R3VectorAlmostEqual(a.BasisK(), b.BasisK(), 1e-9), test.ShouldBeTrue)
		test.That(t, spatialmath.R3VectorAlmostEqual(a.Origin(), b.Origin(), 1e-9), test.ShouldBeTrue)
	}

	right, err := FixedFrame[Femur](Right, femurMedialPos, femurLateralPos, femurProximalPos)
	test.That(t, err, test.ShouldBeNil)

	t.Run("side flipped", func(t *testing.T) {
		left, err := FixedFrame[Femur](Left, femurMedialPos, femurLateralPos, femurProximalPos)
		test.That(t, err, test.ShouldBeNil)
		symmetric(t, right, left)
	})

	t.Run("medial and lateral swapped", func(t *testing.T) {
		swapped, err := FixedFrame[Femur](Right, femurLateralPos, femurMedialPos, femurProximalPos)
		test.That(t, err, test.ShouldBeNil)
		symmetric(t, right, swapped)
	})

	t.Run("mirrored configuration", func(t *testing.T) {
		mirrored, err := FixedFrame[Femur](Left, femurLateralPos, femurMedialPos, femurProximalPos)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, mirrored.AlmostEqual(right, 1e-9), test.ShouldBeTrue)
	})
}

func TestFixedFrameDegenerate(t *testing.T) {
	t.Run("coincident medial and lateral", func(t *testing.T) {
		_, err := FixedFrame[Tibia](Right, tibiaMedialPos, tibiaMedialPos, tibiaDistalPos)
		test.That(t, errors.Is(err, spatialmath.ErrDegenerateVector), test.ShouldBeTrue)
		test.That(t, err.Error(), test.ShouldContainSubstring, "mediolateral axis")
	})

	t.Run("far landmark at origin", func(t *testing.T) {
		origin := spatialmath.Midpoint(tibiaMedialPos, tibiaLateralPos)
		_, err := FixedFrame[Tibia](Right, tibiaMedialPos, tibiaLateralPos, origin)
		test.That(t, errors.Is(err, spatialmath.ErrDegenerateVector), test.ShouldBeTrue)
	})

	t.Run("collinear landmarks", func(t *testing.T) {
		far := tibiaMedialPos.Add(tibiaMedialPos.Sub(tibiaLateralPos).Mul(3))
		_, err := FixedFrame[Tibia](Right, tibiaMedialPos, tibiaLateralPos, far)
		test.That(t, errors.Is(err, spatialmath.ErrDegenerateVector), test.ShouldBeTrue)
	})

	t.Run("unknown side", func(t *testing.T) {
		_, err := FixedFrame[Femur](Side(0), femurMedialPos, femurLateralPos, femurProximalPos)
		test.That(t, err, test.ShouldNotBeNil)
	})
}
