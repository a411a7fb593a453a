package anatomy

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"
)

func TestNewProbeData(t *testing.T) {
	p, err := NewProbeData("tool", "medial epicondyle", 2, 0, 0, 0, r3.Vector{X: 1, Y: 2, Z: 3})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p.Name(), test.ShouldEqual, "tool")
	test.That(t, p.Label(), test.ShouldEqual, "medial epicondyle")
	test.That(t, p.Orientation(), test.ShouldResemble, quat.Number{Real: 1})
	test.That(t, p.Translation(), test.ShouldResemble, r3.Vector{X: 1, Y: 2, Z: 3})
	test.That(t, p.Scaled(10).Translation(), test.ShouldResemble, r3.Vector{X: 10, Y: 20, Z: 30})
	test.That(t, p.Translation(), test.ShouldResemble, r3.Vector{X: 1, Y: 2, Z: 3})

	_, err = NewProbeData("tool", "", 0, 0, 0, 0, r3.Vector{})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, `probe "tool"`)
}

func TestProbeDataPose(t *testing.T) {
	m := femurTracker(t).Pose()
	test.That(t, m.Origin(), test.ShouldResemble, femurTracker(t).Translation())
	expectMatrix(t, m.Matrix(), [3][4]float64{
		{0.835898, -0.397106, -0.378921, -149.371},
		{0.425326, 0.904983, -0.010147, -19.411},
		{0.346946, -0.152683, 0.925374, -2148.287},
	}, 1e-5)
}

func TestProbeDataString(t *testing.T) {
	p, err := NewProbeData("stylus", "tip", 1, 0, 0, 0, r3.Vector{X: 1.5})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p.String(), test.ShouldEqual,
		"stylus (tip): position (1.500, 0.000, 0.000), roll 0.00 pitch 0.00 yaw 0.00")

	l := NewLandmark[Tibia, Distal](p)
	test.That(t, l.String(), test.ShouldStartWith, "tibia distal landmark: stylus")
}
