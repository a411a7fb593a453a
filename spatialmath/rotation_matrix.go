package spatialmath

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// RotationMatrix is a 3x3 rotation matrix. Its columns are the rotated frame's axes.
type RotationMatrix struct {
	mat mgl64.Mat3
}

// NewRotationMatrixFromColumns builds a rotation matrix whose columns are the given axes.
// The axes are trusted to be a right-handed orthonormal basis; use IsRotation to check.
func NewRotationMatrixFromColumns(i, j, k r3.Vector) *RotationMatrix {
	return &RotationMatrix{mat: mgl64.Mat3FromCols(r3ToVec3(i), r3ToVec3(j), r3ToVec3(k))}
}

// NewRotationMatrixFromMat3 wraps a 3x3 matrix.
func NewRotationMatrixFromMat3(m mgl64.Mat3) *RotationMatrix {
	return &RotationMatrix{mat: m}
}

// Quaternion returns orientation in quaternion representation.
func (rm *RotationMatrix) Quaternion() quat.Number {
	q := mgl64.Mat4ToQuat(rm.mat.Mat4()).Normalize()
	return quat.Number{Real: q.W, Imag: q.V[0], Jmag: q.V[1], Kmag: q.V[2]}
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (rm *RotationMatrix) RotationMatrix() *RotationMatrix {
	return rm
}

// At returns the float corresponding to the element at the specified location.
func (rm *RotationMatrix) At(row, col int) float64 {
	return rm.mat.At(row, col)
}

// Col returns the column at index j as an r3.Vector.
func (rm *RotationMatrix) Col(j int) r3.Vector {
	return vec3ToR3(rm.mat.Col(j))
}

// Mat3 returns the underlying matrix.
func (rm *RotationMatrix) Mat3() mgl64.Mat3 {
	return rm.mat
}

// IsRotation reports whether the matrix is orthonormal with determinant +1, within tol.
func (rm *RotationMatrix) IsRotation(tol float64) bool {
	gram := rm.mat.Transpose().Mul3(rm.mat)
	if !gram.ApproxEqualThreshold(mgl64.Ident3(), tol) {
		return false
	}
	return math.Abs(rm.mat.Det()-1) < tol
}

func (rm *RotationMatrix) String() string {
	return fmt.Sprintf("[%.4f %.4f %.4f; %.4f %.4f %.4f; %.4f %.4f %.4f]",
		rm.At(0, 0), rm.At(0, 1), rm.At(0, 2),
		rm.At(1, 0), rm.At(1, 1), rm.At(1, 2),
		rm.At(2, 0), rm.At(2, 1), rm.At(2, 2))
}
