// SPDX-License-Identifier: MIT

package model

import (
	"fmt"

	"github.com/QTB-HHU/modelbase/matrix"
	"github.com/QTB-HHU/modelbase/namespace"
)

// Derivative returns dy/dt at state y: for every reaction with a
// stoichiometry, each compound c receives delta[c]·rate. Rates without
// stoichiometry are evaluated but contribute nothing.
//
// Implementation:
//   - Stage 1: build the full concentration vector.
//   - Stage 2: evaluate every rate on its cached argument indices.
//   - Stage 3: scatter rate·delta into dy using the compiled terms.
//
// Complexity: O(names + Σ args + Σ stoichiometry entries + module cost).
func (m *Model) Derivative(y []float64, ctx Context) ([]float64, error) {
	z, err := m.FullConcentrationVector(y)
	if err != nil {
		return nil, err
	}
	dy := make([]float64, len(m.dyn))
	for _, r := range m.rates {
		if len(r.terms) == 0 {
			continue
		}
		v := r.eval(m.par, r.values(z), ctx)
		for _, t := range r.terms {
			dy[t.pos] += t.delta * v
		}
	}

	return dy, nil
}

// RHS is Derivative with the context {TimeKey: t}. It has the signature
// ODE integrators expect.
func (m *Model) RHS(t float64, y []float64) ([]float64, error) {
	return m.Derivative(y, Context{TimeKey: t})
}

// StoichiometryMatrix returns N with N[i][j] the coefficient of dynamic
// compound i (CompoundNames order) in reaction j (RateNames order).
// N·RatesArray(y) equals Derivative(y).
func (m *Model) StoichiometryMatrix() (*matrix.Dense, error) {
	n, err := matrix.NewDenseZeroOK(len(m.dyn), len(m.rates))
	if err != nil {
		return nil, fmt.Errorf("model: stoichiometry matrix: %w", err)
	}
	for j, r := range m.rates {
		for _, t := range r.terms {
			if err = n.Set(t.pos, j, t.delta); err != nil {
				return nil, fmt.Errorf("model: stoichiometry matrix: %w", err)
			}
		}
	}

	return n, nil
}

// CompoundStoichiometry returns the row of N for a dynamic compound: its
// coefficient in every reaction, in RateNames order.
//
// Errors: namespace.ErrUnknownName, or ErrNotDynamic for a derived name.
func (m *Model) CompoundStoichiometry(compound string) ([]float64, error) {
	i, err := m.DynamicIndex(compound)
	if err != nil {
		return nil, err
	}
	n, err := m.StoichiometryMatrix()
	if err != nil {
		return nil, err
	}

	return n.Row(i)
}

// ReactionStoichiometry returns the column of N for a reaction: the
// coefficient of every dynamic compound, in CompoundNames order.
//
// Errors: namespace.ErrUnknownName for an unknown reaction.
func (m *Model) ReactionStoichiometry(reaction string) ([]float64, error) {
	j, ok := m.rateIdx[reaction]
	if !ok {
		return nil, fmt.Errorf("model: reaction %q: %w", reaction, namespace.ErrUnknownName)
	}
	n, err := m.StoichiometryMatrix()
	if err != nil {
		return nil, err
	}

	return n.Col(j)
}
