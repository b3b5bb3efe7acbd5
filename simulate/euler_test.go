// SPDX-License-Identifier: MIT

package simulate_test

import (
	"context"
	"errors"
	"math"

	"github.com/QTB-HHU/modelbase/simulate"
)

var (
	errStiff  = errors.New("step too large")
	errBudget = errors.New("step budget exhausted")
)

// euler is a fixed-step explicit Euler integrator. It fails every
// attempt whose Max exceeds failAbove, and every interval starting at or
// after failFrom, and records the steps it was called with.
type euler struct {
	failAbove float64
	failFrom  float64
	calls     []simulate.Step
}

func newEuler() *euler {
	return &euler{failAbove: math.Inf(1), failFrom: math.Inf(1)}
}

func (e *euler) Integrate(ctx context.Context, f simulate.RHS, t0, t1 float64, y0 []float64, step simulate.Step) ([]float64, error) {
	e.calls = append(e.calls, step)
	if step.Max > e.failAbove || t0 >= e.failFrom {
		return nil, errStiff
	}
	y := append([]float64(nil), y0...)
	t := t0
	for n := 0; t1-t > 1e-12; n++ {
		if n >= step.N {
			return nil, errBudget
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		h := math.Min(step.Max, t1-t)
		dy, err := f(t, y)
		if err != nil {
			return nil, err
		}
		for i := range y {
			y[i] += h * dy[i]
		}
		t += h
	}

	return y, nil
}
