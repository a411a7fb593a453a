// Package jcs decomposes the relative pose of two bones into joint coordinate system motion.
package jcs

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"go.viam.com/jcs/anatomy"
	"go.viam.com/jcs/referenceframe"
)

// ErrUnsupportedSolver is returned by solvers that are declared but not implemented.
var ErrUnsupportedSolver = errors.New("solver not supported")

// Motion is the six degree of freedom motion of a joint. Rotations are in degrees, translations in
// the unit of the input poses.
type Motion struct {
	Flexion  float64
	External float64
	Varus    float64
	Anterior float64
	Lateral  float64
	Distal   float64
}

// MotionFields names the Motion components in the order Values returns them.
var MotionFields = [6]string{"flexion", "external", "varus", "anterior", "lateral", "distal"}

// Values returns the components in MotionFields order.
func (m Motion) Values() [6]float64 {
	return [6]float64{m.Flexion, m.External, m.Varus, m.Anterior, m.Lateral, m.Distal}
}

// AlmostEqual reports whether every component of m and other differs by less than tol.
func (m Motion) AlmostEqual(other Motion, tol float64) bool {
	a, b := m.Values(), other.Values()
	for i := range a {
		if math.Abs(a[i]-b[i]) >= tol {
			return false
		}
	}
	return true
}

func (m Motion) String() string {
	return fmt.Sprintf("flexion %.2f°, external %.2f°, varus %.2f°, anterior %.3f, lateral %.3f, distal %.3f",
		m.Flexion, m.External, m.Varus, m.Anterior, m.Lateral, m.Distal)
}

// Solver computes the motion of body T relative to body F from their simultaneous global poses.
type Solver[F, T referenceframe.Frame] interface {
	Name() string
	Solve(f referenceframe.Transform[referenceframe.Global, F], t referenceframe.Transform[referenceframe.Global, T],
		side anatomy.Side) (Motion, error)
}
