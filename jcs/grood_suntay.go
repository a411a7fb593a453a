package jcs

import (
	"github.com/pkg/errors"

	"go.viam.com/jcs/anatomy"
	"go.viam.com/jcs/referenceframe"
	"go.viam.com/jcs/spatialmath"
	"go.viam.com/jcs/utils"
)

// GroodSuntay is the Grood & Suntay floating axis decomposition. The flexion axis is F's i axis, the
// long axis is T's k axis and the floating axis is their common perpendicular.
type GroodSuntay[F, T anatomy.Bone] struct{}

// Tibiofemoral returns the solver for the tibia relative to the femur.
func Tibiofemoral() GroodSuntay[anatomy.Femur, anatomy.Tibia] {
	return GroodSuntay[anatomy.Femur, anatomy.Tibia]{}
}

// Patellofemoral returns the solver for the patella relative to the femur.
func Patellofemoral() GroodSuntay[anatomy.Femur, anatomy.Patella] {
	return GroodSuntay[anatomy.Femur, anatomy.Patella]{}
}

// Name returns e.g. "grood-suntay femur/tibia".
func (GroodSuntay[F, T]) Name() string {
	return "grood-suntay " + referenceframe.Name[F]() + "/" + referenceframe.Name[T]()
}

// Solve decomposes the pose of T relative to F. It fails only when the flexion axis and the long axis
// are parallel, which leaves the floating axis undefined.
func (gs GroodSuntay[F, T]) Solve(
	f referenceframe.Transform[referenceframe.Global, F],
	t referenceframe.Transform[referenceframe.Global, T],
	side anatomy.Side,
) (Motion, error) {
	if !side.Valid() {
		return Motion{}, errors.Errorf("%s: invalid side %d", gs.Name(), side)
	}
	fi, fk := f.BasisI(), f.BasisK()
	ti, tk := t.BasisI(), t.BasisK()

	e1, e3 := fi, tk
	e2, err := spatialmath.UnitCross(e3, e1, "floating axis")
	if err != nil {
		return Motion{}, errors.Wrap(err, gs.Name())
	}

	var m Motion
	m.Flexion = utils.AsinDeg(e2.Mul(-1).Dot(fk))
	m.Varus = 90 - utils.AcosDeg(fi.Dot(tk))

	h := t.Origin().Sub(f.Origin())
	if side == anatomy.Right {
		m.External = utils.AsinDeg(e2.Mul(-1).Dot(ti))
		m.Lateral = h.Dot(fi)
	} else {
		m.External = utils.AsinDeg(e2.Dot(ti))
		m.Lateral = h.Dot(fi.Mul(-1))
	}
	m.Anterior = h.Dot(e2)
	m.Distal = -h.Dot(tk)
	return m, nil
}
