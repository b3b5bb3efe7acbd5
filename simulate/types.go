// SPDX-License-Identifier: MIT

package simulate

import "context"

// RHS is the right-hand side dy/dt = f(t, y) handed to an integrator.
type RHS func(t float64, y []float64) ([]float64, error)

// Step bounds one integration attempt.
type Step struct {
	Max float64 // largest internal step
	N   int     // step budget for the whole interval
}

// Integrator advances y0 from t0 to t1 and returns the state at t1.
// It reports failure (divergence, exhausted budget, RHS error) as an error.
type Integrator interface {
	Integrate(ctx context.Context, f RHS, t0, t1 float64, y0 []float64, step Step) ([]float64, error)
}

// System is the model side of a simulation.
// *model.Model and *labelmodel.LabelModel satisfy it.
type System interface {
	RHS(t float64, y []float64) ([]float64, error)
	NumCompounds() int
}
