package anatomy

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"go.viam.com/jcs/spatialmath"
)

// Calibration of a right knee: averaged probe-tip positions of the digitized landmarks and the
// tracker readings taken while they were digitized.
var (
	femurMedialPos   = r3.Vector{X: 15.3196551724138, Y: -54.9971034482759, Z: -2097.60234482759}
	femurLateralPos  = r3.Vector{X: 16.9156724137931, Y: 16.2064655172414, Z: -2059.31424137931}
	femurProximalPos = r3.Vector{X: -8.56891525423729, Y: 15.8874915254237, Z: -2131.43533898305}

	tibiaMedialPos  = r3.Vector{X: 66.899, Y: -61.4777, Z: -2078.4102}
	tibiaLateralPos = r3.Vector{X: 65.8513, Y: -6.3346, Z: -2031.8842}
	tibiaDistalPos  = r3.Vector{X: 209.2022, Y: -37.8499, Z: -2040.4506}
)

func probe(t *testing.T, name string, q [4]float64, p r3.Vector) ProbeData {
	t.Helper()
	pd, err := NewProbeData(name, name, q[0], q[1], q[2], q[3], p)
	test.That(t, err, test.ShouldBeNil)
	return pd
}

func femurTracker(t *testing.T) ProbeData {
	t.Helper()
	return probe(t, "femur tracker", [4]float64{0.9573733, -0.0372205, -0.1895465, 0.2147628},
		r3.Vector{X: -149.371, Y: -19.411, Z: -2148.287})
}

func tibiaTracker(t *testing.T) ProbeData {
	t.Helper()
	return probe(t, "tibia tracker", [4]float64{0.9573, -0.0375, -0.1896, 0.2147},
		r3.Vector{X: -149.4019, Y: -19.4073, Z: -2148.327})
}

func femurBuilder(t *testing.T) Builder[Femur] {
	t.Helper()
	return NewBuilder[Femur]().
		WithSide(Right).
		WithMedial(NewLandmark[Femur, Medial](probe(t, "probe", [4]float64{0.8228, 0.1357, 0.4408, -0.3318}, femurMedialPos))).
		WithLateral(NewLandmark[Femur, Lateral](probe(t, "probe", [4]float64{0.4031, 0.4746, 0.4196, -0.6604}, femurLateralPos))).
		WithFar(NewLandmark[Femur, Proximal](probe(t, "probe", [4]float64{0.4281, 0.4662, 0.4472, -0.6320}, femurProximalPos))).
		WithTrackerProbe(femurTracker(t))
}

func tibiaBuilder(t *testing.T) Builder[Tibia] {
	t.Helper()
	identity := [4]float64{1, 0, 0, 0}
	return NewBuilder[Tibia]().
		WithSide(Right).
		WithMedial(NewLandmark[Tibia, Medial](probe(t, "probe", identity, tibiaMedialPos))).
		WithLateral(NewLandmark[Tibia, Lateral](probe(t, "probe", identity, tibiaLateralPos))).
		WithFar(NewLandmark[Tibia, Distal](probe(t, "probe", identity, tibiaDistalPos))).
		WithTrackerProbe(tibiaTracker(t))
}

func rows(m [3][4]float64) [4][4]float64 {
	return [4][4]float64{m[0], m[1], m[2], {0, 0, 0, 1}}
}

func expectMatrix(t *testing.T, got mgl64.Mat4, want [3][4]float64, tol float64) {
	t.Helper()
	test.That(t, spatialmath.Mat4AlmostEqual(got, spatialmath.HomogeneousFromRows(rows(want)), tol), test.ShouldBeTrue)
}
