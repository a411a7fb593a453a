package spatialmath

import (
	"errors"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestUnit(t *testing.T) {
	u, err := Unit(r3.Vector{X: 3, Y: 0, Z: 4}, "v")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, u.X, test.ShouldAlmostEqual, 0.6)
	test.That(t, u.Z, test.ShouldAlmostEqual, 0.8)
	test.That(t, u.Norm(), test.ShouldAlmostEqual, 1)

	_, err = Unit(r3.Vector{}, "lateral - medial")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, ErrDegenerateVector), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "lateral - medial")
}

func TestUnitCross(t *testing.T) {
	k, err := UnitCross(r3.Vector{X: 2}, r3.Vector{Y: 5}, "k")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, R3VectorAlmostEqual(k, r3.Vector{Z: 1}, 1e-12), test.ShouldBeTrue)

	_, err = UnitCross(r3.Vector{X: 1, Y: 1}, r3.Vector{X: -2, Y: -2}, "parallel")
	test.That(t, errors.Is(err, ErrDegenerateVector), test.ShouldBeTrue)
}

func TestMidpoint(t *testing.T) {
	m := Midpoint(r3.Vector{X: 1, Y: 2, Z: 3}, r3.Vector{X: 3, Y: -2, Z: 5})
	test.That(t, m, test.ShouldResemble, r3.Vector{X: 2, Y: 0, Z: 4})
}
