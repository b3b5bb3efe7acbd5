// SPDX-License-Identifier: MIT

package trajectory

import (
	"fmt"
	"regexp"

	"github.com/QTB-HHU/modelbase/model"
)

// Result is one recorded time course. Y[i] is the state at T[i].
type Result struct {
	ID string
	T  []float64
	Y  [][]float64
}

// Resolver maps compound names to state columns.
// *model.Model and *labelmodel.LabelModel satisfy it.
type Resolver interface {
	DynamicIndex(name string) (int, error)
	CompoundNames() []string
}

// FullEvaluator extends states by derived quantities.
type FullEvaluator interface {
	FullConcentrationBatch(Y [][]float64) ([][]float64, error)
}

// RateEvaluator evaluates a named rate at one state.
type RateEvaluator interface {
	Rate(name string, y []float64, ctx model.Context) (float64, error)
}

// Results is an ordered collection of runs.
// The zero value is an empty collection ready to use.
type Results struct {
	runs []Result
}

// Append adds res as the next run.
//
// Errors: ErrRaggedRun if len(res.T) != len(res.Y).
func (r *Results) Append(res Result) error {
	if len(res.T) != len(res.Y) {
		return fmt.Errorf("run %q: %d time points, %d states: %w", res.ID, len(res.T), len(res.Y), ErrRaggedRun)
	}
	r.runs = append(r.runs, res)

	return nil
}

// Len reports the number of runs.
func (r *Results) Len() int { return len(r.runs) }

// Clear drops all runs.
func (r *Results) Clear() { r.runs = nil }

// Run returns run i.
func (r *Results) Run(i int) (Result, error) {
	if i < 0 || i >= len(r.runs) {
		return Result{}, fmt.Errorf("run %d of %d: %w", i, len(r.runs), ErrRunOutOfRange)
	}

	return r.runs[i], nil
}

// selected returns the requested runs; none means all.
func (r *Results) selected(runs []int) ([]Result, error) {
	if len(runs) == 0 {
		return r.runs, nil
	}
	out := make([]Result, len(runs))
	for i, j := range runs {
		res, err := r.Run(j)
		if err != nil {
			return nil, err
		}
		out[i] = res
	}

	return out, nil
}

// T returns the time points of the selected runs, concatenated.
func (r *Results) T(runs ...int) ([]float64, error) {
	sel, err := r.selected(runs)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0)
	for _, res := range sel {
		out = append(out, res.T...)
	}

	return out, nil
}

// Y returns the states of the selected runs, concatenated. Rows are
// shared with the stored runs and must not be modified.
func (r *Results) Y(runs ...int) ([][]float64, error) {
	sel, err := r.selected(runs)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, 0)
	for _, res := range sel {
		out = append(out, res.Y...)
	}

	return out, nil
}

// Var returns column i of the selected states.
func (r *Results) Var(i int, runs ...int) ([]float64, error) {
	cols, err := r.VarsByIndex([]int{i}, runs...)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(cols))
	for t, row := range cols {
		out[t] = row[0]
	}

	return out, nil
}

// VarsByIndex returns the columns idx of the selected states: one row per
// time point, one column per entry of idx.
func (r *Results) VarsByIndex(idx []int, runs ...int) ([][]float64, error) {
	Y, err := r.Y(runs...)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, len(Y))
	for t, y := range Y {
		row := make([]float64, len(idx))
		for j, i := range idx {
			if i < 0 || i >= len(y) {
				return nil, fmt.Errorf("column %d of %d: %w", i, len(y), ErrVarOutOfRange)
			}
			row[j] = y[i]
		}
		out[t] = row
	}

	return out, nil
}

// VarsByName returns the columns of the named dynamic compounds.
func (r *Results) VarsByName(res Resolver, names []string, runs ...int) ([][]float64, error) {
	idx := make([]int, len(names))
	for i, n := range names {
		j, err := res.DynamicIndex(n)
		if err != nil {
			return nil, err
		}
		idx[i] = j
	}

	return r.VarsByIndex(idx, runs...)
}

// VarsByPattern returns the columns of every dynamic compound whose name
// matches the regular expression pattern, in state order, together with
// the matched names.
func (r *Results) VarsByPattern(res Resolver, pattern string, runs ...int) ([][]float64, []string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("%q: %w: %v", pattern, ErrBadPattern, err)
	}
	var (
		idx   []int
		names []string
	)
	for i, n := range res.CompoundNames() {
		if re.MatchString(n) {
			idx = append(idx, i)
			names = append(names, n)
		}
	}
	Y, err := r.VarsByIndex(idx, runs...)
	if err != nil {
		return nil, nil, err
	}

	return Y, names, nil
}

// Full returns the full concentration vectors of the selected states.
func (r *Results) Full(m FullEvaluator, runs ...int) ([][]float64, error) {
	Y, err := r.Y(runs...)
	if err != nil {
		return nil, err
	}

	return m.FullConcentrationBatch(Y)
}

// Rate evaluates reaction name along the selected runs, with each time
// point passed as model.TimeKey.
func (r *Results) Rate(m RateEvaluator, name string, runs ...int) ([]float64, error) {
	sel, err := r.selected(runs)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0)
	for _, res := range sel {
		for i, y := range res.Y {
			v, err := m.Rate(name, y, model.Context{model.TimeKey: res.T[i]})
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}

	return out, nil
}
