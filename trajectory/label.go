// SPDX-License-Identifier: MIT

package trajectory

import "github.com/QTB-HHU/modelbase/label"

// LabelIndex locates the isotopologue columns of labeled compounds.
// *labelmodel.LabelModel satisfies it.
type LabelIndex interface {
	CarbonCount(base string) (int, error)
	DynamicIndex(name string) (int, error)
}

// LabelQuery aggregates labeled compounds over recorded runs.
type LabelQuery struct {
	res *Results
	idx LabelIndex
}

// NewLabelQuery binds res to the label layout of idx.
func NewLabelQuery(res *Results, idx LabelIndex) *LabelQuery {
	return &LabelQuery{res: res, idx: idx}
}

// sumOver sums the isotopologue columns of base for the given patterns,
// per time point.
func (q *LabelQuery) sumOver(base string, patterns []label.Pattern, runs []int) ([]float64, error) {
	cols := make([]int, len(patterns))
	for i, p := range patterns {
		j, err := q.idx.DynamicIndex(base + p.String())
		if err != nil {
			return nil, err
		}
		cols[i] = j
	}
	Y, err := q.res.VarsByIndex(cols, runs...)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(Y))
	for t, row := range Y {
		for _, v := range row {
			out[t] += v
		}
	}

	return out, nil
}

// where returns the patterns over the carbons of base accepted by keep.
func (q *LabelQuery) where(base string, keep func(label.Pattern) bool) ([]label.Pattern, error) {
	c, err := q.idx.CarbonCount(base)
	if err != nil {
		return nil, err
	}
	all, err := label.Patterns(c)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, p := range all {
		if keep(p) {
			out = append(out, p)
		}
	}

	return out, nil
}

// Total returns the summed concentration of all isotopologues of base.
func (q *LabelQuery) Total(base string, runs ...int) ([]float64, error) {
	ps, err := q.where(base, func(label.Pattern) bool { return true })
	if err != nil {
		return nil, err
	}

	return q.sumOver(base, ps, runs)
}

// LabelAtPos returns the summed concentration of isotopologues of base
// labeled at every position in positions; other positions are free.
//
// Errors: label.ErrLengthMismatch for a position outside the carbon range.
func (q *LabelQuery) LabelAtPos(base string, positions []int, runs ...int) ([]float64, error) {
	c, err := q.idx.CarbonCount(base)
	if err != nil {
		return nil, err
	}
	mask, err := label.WithLabelAt(c, positions...)
	if err != nil {
		return nil, err
	}
	ps, err := q.where(base, func(p label.Pattern) bool { return p.Bits&mask.Bits == mask.Bits })
	if err != nil {
		return nil, err
	}

	return q.sumOver(base, ps, runs)
}

// NumLabel returns the summed concentration of isotopologues of base with
// exactly k labeled positions. k outside [0, c] yields zeros.
func (q *LabelQuery) NumLabel(base string, k int, runs ...int) ([]float64, error) {
	c, err := q.idx.CarbonCount(base)
	if err != nil {
		return nil, err
	}
	ps, err := label.Combinations(c, k)
	if err != nil {
		return nil, err
	}

	return q.sumOver(base, ps, runs)
}

// TotalLabel returns Σ_{k=0..c} k·NumLabel(base, k), the concentration of
// labeled atoms of base.
func (q *LabelQuery) TotalLabel(base string, runs ...int) ([]float64, error) {
	c, err := q.idx.CarbonCount(base)
	if err != nil {
		return nil, err
	}
	T, err := q.res.T(runs...)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(T))
	for k := 1; k <= c; k++ {
		n, err := q.NumLabel(base, k, runs...)
		if err != nil {
			return nil, err
		}
		for t, v := range n {
			out[t] += float64(k) * v
		}
	}

	return out, nil
}
