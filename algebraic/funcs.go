// SPDX-License-Identifier: MIT

package algebraic

import "github.com/QTB-HHU/modelbase/parameters"

// Sum returns the single derived value Σx. Labeled models use it to expose
// the total of all isotopologues of a compound under the compound's name.
func Sum(_ *parameters.Set, x []float64) ([]float64, error) {
	total := 0.0
	for _, v := range x {
		total += v
	}

	return []float64{total}, nil
}

// Conservation returns a Func computing the complementary pool of a
// conserved moiety: [total - x[0]], where total is read from the named
// parameter. For X + Xi = Xtot it derives Xi from X.
func Conservation(totalParam string) Func {
	return func(p *parameters.Set, x []float64) ([]float64, error) {
		total, err := p.Get(totalParam)
		if err != nil {
			return nil, err
		}

		return []float64{total - x[0]}, nil
	}
}

// RapidEquilibrium returns a Func splitting a pool A into two species in
// rapid equilibrium X <=> Y with constant K = Y/X read from keqParam:
// [A/(1+K), A*K/(1+K)].
func RapidEquilibrium(keqParam string) Func {
	return func(p *parameters.Set, x []float64) ([]float64, error) {
		k, err := p.Get(keqParam)
		if err != nil {
			return nil, err
		}

		return []float64{x[0] / (1 + k), x[0] * k / (1 + k)}, nil
	}
}
