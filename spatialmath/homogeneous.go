package spatialmath

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// RigidTolerance is the default tolerance used when checking that a matrix is a rigid transform.
const RigidTolerance = 1e-4

// NewHomogeneous returns translation · rotation: rotate in the local frame first, then translate
// into the parent frame.
func NewHomogeneous(translation r3.Vector, rotation *RotationMatrix) mgl64.Mat4 {
	return mgl64.Translate3D(translation.X, translation.Y, translation.Z).Mul4(rotation.Mat3().Mat4())
}

// HomogeneousFromRows builds a matrix from a row-major [4][4] array, the order matrices are usually written in.
func HomogeneousFromRows(rows [4][4]float64) mgl64.Mat4 {
	var m mgl64.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m.Set(r, c, rows[r][c])
		}
	}
	return m
}

// ValidateRigid checks that m has a [0 0 0 1] bottom row and a proper rotation block, within tol.
func ValidateRigid(m mgl64.Mat4, tol float64) error {
	for c := 0; c < 4; c++ {
		want := 0.
		if c == 3 {
			want = 1
		}
		v := m.At(3, c)
		if math.IsNaN(v) || math.Abs(v-want) > tol {
			return NewNotRigidError("bottom row element %d is %f, want %f", c, v, want)
		}
	}
	for r := 0; r < 3; r++ {
		t := m.At(r, 3)
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return NewNotRigidError("translation element %d is %f", r, t)
		}
	}
	rot := RotationMatrix{mat: m.Mat3()}
	if !rot.IsRotation(tol) {
		return NewNotRigidError("rotation block %v is not orthonormal with determinant +1", &rot)
	}
	return nil
}

// InvertRigid returns the inverse of a rigid transform: [Rᵀ | -Rᵀt].
func InvertRigid(m mgl64.Mat4) mgl64.Mat4 {
	rt := m.Mat3().Transpose()
	t := m.Col(3).Vec3()
	nt := rt.Mul3x1(t).Mul(-1)
	out := rt.Mat4()
	out.SetCol(3, mgl64.Vec4{nt[0], nt[1], nt[2], 1})
	return out
}

// SingularCondition is the condition number above which SolveRigid treats a matrix as singular.
const SingularCondition = 1e12

// SolveRigid returns X such that a · X = b, found by LU factorization of a.
// It returns ErrSingularMatrix instead of a matrix full of NaN when a is singular or too badly
// conditioned to invert.
func SolveRigid(a, b mgl64.Mat4) (mgl64.Mat4, error) {
	var lu mat.LU
	lu.Factorize(toDense(a))
	if det := lu.Det(); det == 0 || math.IsNaN(det) {
		return mgl64.Mat4{}, errors.Wrapf(ErrSingularMatrix, "determinant %f", det)
	}
	if cond := lu.Cond(); cond > SingularCondition || math.IsNaN(cond) {
		return mgl64.Mat4{}, errors.Wrapf(ErrSingularMatrix, "condition number %g", cond)
	}
	var x mat.Dense
	if err := lu.SolveTo(&x, false, toDense(b)); err != nil {
		return mgl64.Mat4{}, errors.Wrapf(ErrSingularMatrix, "%v", err)
	}
	out := fromDense(&x)
	for _, v := range out {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return mgl64.Mat4{}, errors.Wrap(ErrSingularMatrix, "solution is not finite")
		}
	}
	return out, nil
}

// Mat4AlmostEqual reports whether every element of a and b differs by less than tol.
func Mat4AlmostEqual(a, b mgl64.Mat4, tol float64) bool {
	return a.ApproxEqualThreshold(b, tol)
}

// FormatMat4 renders m row by row.
func FormatMat4(m mgl64.Mat4) string {
	rows := make([]string, 0, 4)
	for r := 0; r < 4; r++ {
		rows = append(rows, fmt.Sprintf("[%10.4f %10.4f %10.4f %12.4f]", m.At(r, 0), m.At(r, 1), m.At(r, 2), m.At(r, 3)))
	}
	return strings.Join(rows, "\n")
}

func toDense(m mgl64.Mat4) *mat.Dense {
	d := mat.NewDense(4, 4, nil)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			d.Set(r, c, m.At(r, c))
		}
	}
	return d
}

func fromDense(d mat.Matrix) mgl64.Mat4 {
	var m mgl64.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m.Set(r, c, d.At(r, c))
		}
	}
	return m
}
