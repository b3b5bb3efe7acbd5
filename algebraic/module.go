// SPDX-License-Identifier: MIT

// Package algebraic wraps pure concentration-derivation functions used for
// rapid-equilibrium, quasi-steady-state and conservation relations.
//
// A Module computes a small vector of derived concentrations from a small
// vector of inputs and its own parameter set. It knows nothing about names;
// a model binds input and output names when the module is attached.
package algebraic

import (
	"errors"
	"fmt"

	"github.com/QTB-HHU/modelbase/parameters"
)

var (
	// ErrNilFunc is returned by New when fn is nil.
	ErrNilFunc = errors.New("algebraic: nil module function")

	// ErrRaggedBatch is returned by Batch when rows differ in length.
	ErrRaggedBatch = errors.New("algebraic: batch rows differ in length")
)

// Func derives output concentrations from input values x.
// Implementations must not retain or modify x.
type Func func(p *parameters.Set, x []float64) ([]float64, error)

// Module is a Func bound to its own parameters. Immutable after New.
type Module struct {
	fn  Func
	par *parameters.Set
}

// New returns a Module evaluating fn with pars. A nil pars is replaced
// by an empty set.
func New(fn Func, pars *parameters.Set) (*Module, error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	if pars == nil {
		pars = parameters.New(nil, nil)
	}

	return &Module{fn: fn, par: pars}, nil
}

// Params returns the module's parameter set.
func (m *Module) Params() *parameters.Set { return m.par }

// Concentrations applies the module to a single input vector.
func (m *Module) Concentrations(x []float64) ([]float64, error) {
	return m.fn(m.par, x)
}

// Batch applies the module row-wise to a batch of input vectors (rows are
// independent samples, e.g. the time points of a trajectory).
//
// Errors:
//   - ErrRaggedBatch if rows have different lengths.
//   - any error of the module function, wrapped with the row index.
//
// Complexity: O(rows) module calls.
func (m *Module) Batch(x [][]float64) ([][]float64, error) {
	out := make([][]float64, len(x))
	for i, row := range x {
		if len(row) != len(x[0]) {
			return nil, fmt.Errorf("row %d has %d values, row 0 has %d: %w", i, len(row), len(x[0]), ErrRaggedBatch)
		}
		v, err := m.fn(m.par, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}
