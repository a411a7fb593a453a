package referenceframe

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/jcs/spatialmath"
)

// Transform is the pose of frame T expressed in frame S: a 4x4 homogeneous rigid matrix that maps
// coordinates expressed in T into S. Values are immutable; every operation returns a new Transform.
//
// The zero value is not a valid transform. Build one with NewTransform, NewTransformFromPose or Identity.
type Transform[S, T Frame] struct {
	mat mgl64.Mat4
}

// NewTransform wraps a homogeneous matrix after checking that it is rigid. The rotation block is not
// re-orthonormalized.
func NewTransform[S, T Frame](m mgl64.Mat4) (Transform[S, T], error) {
	if err := spatialmath.ValidateRigid(m, spatialmath.RigidTolerance); err != nil {
		return Transform[S, T]{}, errors.Wrapf(err, "transform %s -> %s", Name[S](), Name[T]())
	}
	return Transform[S, T]{mat: m}, nil
}

// NewTransformFromPose builds translation · rotation from an orientation and the position of T's origin in S.
func NewTransformFromPose[S, T Frame](o spatialmath.Orientation, translation r3.Vector) Transform[S, T] {
	return Transform[S, T]{mat: spatialmath.NewHomogeneous(translation, o.RotationMatrix())}
}

// Identity returns the transform that leaves coordinates unchanged.
func Identity[S, T Frame]() Transform[S, T] {
	return Transform[S, T]{mat: mgl64.Ident4()}
}

// Compose chains two transforms through their shared frame G: (A <- G) · (G <- B) = (A <- B).
// It is associative but not commutative.
func Compose[A, G, B Frame](lhs Transform[A, G], rhs Transform[G, B]) Transform[A, B] {
	return Transform[A, B]{mat: lhs.mat.Mul4(rhs.mat)}
}

// Relative is left division: given two poses expressed in the same frame G, it returns the pose of T
// expressed in F, i.e. the X solving lhs · X = rhs.
func Relative[G, F, T Frame](lhs Transform[G, F], rhs Transform[G, T]) (Transform[F, T], error) {
	m, err := spatialmath.SolveRigid(lhs.mat, rhs.mat)
	if err != nil {
		return Transform[F, T]{}, errors.Wrapf(err, "relative pose of %s in %s", Name[T](), Name[F]())
	}
	return Transform[F, T]{mat: m}, nil
}

// Inverse returns the transform in the opposite direction.
func (t Transform[S, T]) Inverse() Transform[T, S] {
	return Transform[T, S]{mat: spatialmath.InvertRigid(t.mat)}
}

// BasisI returns T's first axis expressed in S.
func (t Transform[S, T]) BasisI() r3.Vector {
	return t.axis(0)
}

// BasisJ returns T's second axis expressed in S.
func (t Transform[S, T]) BasisJ() r3.Vector {
	return t.axis(1)
}

// BasisK returns T's third axis expressed in S.
func (t Transform[S, T]) BasisK() r3.Vector {
	return t.axis(2)
}

func (t Transform[S, T]) axis(j int) r3.Vector {
	c := t.mat.Col(j)
	return r3.Vector{X: c[0], Y: c[1], Z: c[2]}
}

// Origin returns the position of T's origin expressed in S.
func (t Transform[S, T]) Origin() r3.Vector {
	return t.axis(3)
}

// RotationMatrix returns the rotation block.
func (t Transform[S, T]) RotationMatrix() *spatialmath.RotationMatrix {
	return spatialmath.NewRotationMatrixFromMat3(t.mat.Mat3())
}

// Rotation returns the rotation block as a unit quaternion.
func (t Transform[S, T]) Rotation() quat.Number {
	return t.RotationMatrix().Quaternion()
}

// Matrix returns a copy of the homogeneous matrix.
func (t Transform[S, T]) Matrix() mgl64.Mat4 {
	return t.mat
}

// AlmostEqual reports whether every matrix element of t and other differs by less than tol.
func (t Transform[S, T]) AlmostEqual(other Transform[S, T], tol float64) bool {
	return spatialmath.Mat4AlmostEqual(t.mat, other.mat, tol)
}

func (t Transform[S, T]) String() string {
	return fmt.Sprintf("%s <- %s\n%s", Name[S](), Name[T](), spatialmath.FormatMat4(t.mat))
}
