// Package utils contains small numeric helpers shared across the module.
package utils

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Float64AlmostEqual compares two float64s and returns if the difference between them is less than epsilon.
func Float64AlmostEqual(a, b, epsilon float64) bool {
	return scalar.EqualWithinAbs(a, b, epsilon)
}

// ClampUnit limits v to [-1, 1]. Dot products of unit vectors drift slightly outside that range
// from rounding, which would make asin/acos return NaN.
func ClampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// AsinDeg returns asin(v) in degrees, with v clamped to [-1, 1].
func AsinDeg(v float64) float64 {
	return RadToDeg(math.Asin(ClampUnit(v)))
}

// AcosDeg returns acos(v) in degrees, with v clamped to [-1, 1].
func AcosDeg(v float64) float64 {
	return RadToDeg(math.Acos(ClampUnit(v)))
}
