// SPDX-License-Identifier: MIT

package labelmodel

import (
	"fmt"
	"slices"

	"github.com/QTB-HHU/modelbase/algebraic"
	"github.com/QTB-HHU/modelbase/label"
	"github.com/QTB-HHU/modelbase/model"
	"github.com/QTB-HHU/modelbase/namespace"
	"github.com/QTB-HHU/modelbase/parameters"
)

// TotalSuffix is appended to a base name to name its summing module.
const TotalSuffix = "_total"

// Option configures a LabelModel.
type Option func(o *options)

type options struct {
	nonBijective bool
	model        []model.Option
}

// WithNonBijectiveMaps accepts carbon maps that are not permutations.
// The map must still have one entry per product carbon, each pointing
// into the substrate carbons.
func WithNonBijectiveMaps() Option {
	return func(o *options) { o.nonBijective = true }
}

// WithModelOptions forwards options to the embedded model.
func WithModelOptions(opts ...model.Option) Option {
	return func(o *options) { o.model = append(o.model, opts...) }
}

// LabelModel is a model.Model whose labeled compounds are tracked per
// isotopologue.
type LabelModel struct {
	*model.Model

	opts    options
	carbons map[string]int // base name → carbon count
	bases   []string       // registration order
}

// New returns an empty LabelModel evaluating against pars.
func New(pars *parameters.Set, opts ...Option) *LabelModel {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &LabelModel{
		Model:   model.New(pars, o.model...),
		opts:    o,
		carbons: make(map[string]int),
	}
}

// AddBaseCompound registers the 2^c isotopologues of base as dynamic
// compounds and the derived total base, computed by a module named
// base+TotalSuffix. It returns the isotopologue names in label order.
//
// Implementation:
//   - Stage 1: validate base and c, and reject any name the registration would reuse.
//   - Stage 2: register the isotopologues in one batch.
//   - Stage 3: attach the summing module.
//
// Errors:
//   - namespace.ErrEmptyName if base is empty.
//   - label.ErrLengthMismatch if c < 1.
//   - label.ErrCarbonLimit if c > label.MaxCarbons.
//   - namespace.ErrDuplicateName if base, its module or an isotopologue exists.
func (lm *LabelModel) AddBaseCompound(base string, c int) ([]string, error) {
	if base == "" {
		return nil, fmt.Errorf("labelmodel: base compound: %w", namespace.ErrEmptyName)
	}
	if c < 1 {
		return nil, fmt.Errorf("labelmodel: %q with %d carbons: %w", base, c, label.ErrLengthMismatch)
	}
	names, err := label.CompoundNames(base, c)
	if err != nil {
		return nil, fmt.Errorf("labelmodel: %q: %w", base, err)
	}
	if _, ok := lm.carbons[base]; ok || lm.Has(base) {
		return nil, fmt.Errorf("labelmodel: %q: %w", base, namespace.ErrDuplicateName)
	}
	if slices.Contains(lm.ModuleNames(), base+TotalSuffix) {
		return nil, fmt.Errorf("labelmodel: module %q: %w", base+TotalSuffix, namespace.ErrDuplicateName)
	}

	if _, err = lm.AddCompounds(names...); err != nil {
		return nil, err
	}
	sum, err := algebraic.New(algebraic.Sum, nil)
	if err != nil {
		return nil, err
	}
	if err = lm.AddAlgebraicModule(base+TotalSuffix, sum, names, []string{base}); err != nil {
		return nil, err
	}

	lm.carbons[base] = c
	lm.bases = append(lm.bases, base)
	lm.Logger().Debug("labeled compound registered", "base", base, "carbons", c, "isotopologues", len(names))

	return names, nil
}

// CarbonCount returns the number of carbons of a labeled base compound.
func (lm *LabelModel) CarbonCount(base string) (int, error) {
	if c, ok := lm.carbons[base]; ok {
		return c, nil
	}
	if lm.Has(base) {
		return 0, fmt.Errorf("labelmodel: %q: %w", base, ErrNotLabeled)
	}

	return 0, fmt.Errorf("labelmodel: %q: %w", base, namespace.ErrUnknownName)
}

// BaseCompounds returns labeled base names in registration order.
func (lm *LabelModel) BaseCompounds() []string {
	return append([]string(nil), lm.bases...)
}

// Isotopologues returns the isotopologue names of base in label order.
func (lm *LabelModel) Isotopologues(base string) ([]string, error) {
	c, err := lm.CarbonCount(base)
	if err != nil {
		return nil, err
	}

	return label.CompoundNames(base, c)
}

// carbonCounts looks up the carbon count of every base in names.
func (lm *LabelModel) carbonCounts(names []string) ([]int, int, error) {
	cs := make([]int, len(names))
	total := 0
	for i, n := range names {
		c, err := lm.CarbonCount(n)
		if err != nil {
			return nil, 0, err
		}
		cs[i] = c
		total += c
	}

	return cs, total, nil
}

// InitialConcentrations builds a state vector from per-compound totals.
// The total of a labeled base compound is placed on its isotopologue
// labeled exactly at labelPos[base], or on the unlabeled one when base has
// no entry. Keys of totals that are plain dynamic compounds are copied
// as-is. Every other entry of the state is zero.
//
// Errors: namespace.ErrUnknownName, model.ErrNotDynamic, ErrNotLabeled,
// label.ErrLengthMismatch for positions outside the carbon range.
func (lm *LabelModel) InitialConcentrations(totals map[string]float64, labelPos map[string][]int) ([]float64, error) {
	for base := range labelPos {
		if _, err := lm.CarbonCount(base); err != nil {
			return nil, err
		}
	}

	y := make([]float64, lm.NumCompounds())
	for name, v := range totals {
		target := name
		if c, ok := lm.carbons[name]; ok {
			p, err := label.WithLabelAt(c, labelPos[name]...)
			if err != nil {
				return nil, fmt.Errorf("labelmodel: initial label of %q: %w", name, err)
			}
			target = name + p.String()
		}
		pos, err := lm.DynamicIndex(target)
		if err != nil {
			return nil, err
		}
		y[pos] = v
	}

	return y, nil
}
