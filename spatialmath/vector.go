package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// vectorEpsilon is the smallest norm a vector may have and still be normalized.
const vectorEpsilon = 1e-9

// Unit returns v scaled to unit length. name is used in the error if v has no direction.
func Unit(v r3.Vector, name string) (r3.Vector, error) {
	n := v.Norm()
	if n < vectorEpsilon {
		return r3.Vector{}, NewDegenerateVectorError(name)
	}
	return v.Mul(1 / n), nil
}

// UnitCross returns the normalized cross product a × b.
func UnitCross(a, b r3.Vector, name string) (r3.Vector, error) {
	return Unit(a.Cross(b), name)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b r3.Vector) r3.Vector {
	return a.Add(b).Mul(0.5)
}

// R3VectorAlmostEqual compares two r3.Vector objects and returns if the all elementwise differences are less than epsilon.
func R3VectorAlmostEqual(a, b r3.Vector, epsilon float64) bool {
	d := a.Sub(b)
	return math.Abs(d.X) < epsilon && math.Abs(d.Y) < epsilon && math.Abs(d.Z) < epsilon
}

func vec3ToR3(v mgl64.Vec3) r3.Vector {
	return r3.Vector{X: v[0], Y: v[1], Z: v[2]}
}

func r3ToVec3(v r3.Vector) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}
