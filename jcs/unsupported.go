package jcs

import (
	"github.com/pkg/errors"

	"go.viam.com/jcs/anatomy"
	"go.viam.com/jcs/referenceframe"
)

// Helical is the finite helical axis decomposition. Not implemented.
type Helical[F, T referenceframe.Frame] struct{}

// Name returns "helical".
func (Helical[F, T]) Name() string {
	return "helical"
}

// Solve always returns ErrUnsupportedSolver.
func (h Helical[F, T]) Solve(
	referenceframe.Transform[referenceframe.Global, F],
	referenceframe.Transform[referenceframe.Global, T],
	anatomy.Side,
) (Motion, error) {
	return Motion{}, errors.Wrap(ErrUnsupportedSolver, h.Name())
}

// SARA is the symmetrical axis of rotation approach. Not implemented.
type SARA[F, T referenceframe.Frame] struct{}

// Name returns "sara".
func (SARA[F, T]) Name() string {
	return "sara"
}

// Solve always returns ErrUnsupportedSolver.
func (s SARA[F, T]) Solve(
	referenceframe.Transform[referenceframe.Global, F],
	referenceframe.Transform[referenceframe.Global, T],
	anatomy.Side,
) (Motion, error) {
	return Motion{}, errors.Wrap(ErrUnsupportedSolver, s.Name())
}
