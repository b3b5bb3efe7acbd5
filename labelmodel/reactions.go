// SPDX-License-Identifier: MIT

package labelmodel

import (
	"fmt"

	"github.com/QTB-HHU/modelbase/label"
	"github.com/QTB-HHU/modelbase/model"
	"github.com/QTB-HHU/modelbase/namespace"
	"github.com/QTB-HHU/modelbase/parameters"
)

// expansion is one concrete reaction of a template.
type expansion struct {
	name  string
	args  []string
	delta map[string]float64
}

// AddCarbonMapReaction expands a reaction template into one reaction per
// label pattern l over the combined substrate carbons.
//
// Reaction name+l calls fn with the values of the substrate isotopologues
// selected by l followed by the effectors. Its stoichiometry is -1 per
// substrate isotopologue and +1 per product isotopologue, where product
// labels are MapCarbons(l, carbonMap) split by product carbon counts.
// Coefficients of repeated compounds add up.
//
// Products may be empty for a sink; its carbon map is then either empty
// or spans the substrate carbons and is not consulted.
//
// Implementation:
//   - Stage 1: look up carbon counts and validate the carbon map.
//   - Stage 2: resolve effectors and check every reaction name is free.
//   - Stage 3: build all 2^Σcs expansions.
//   - Stage 4: register them.
//
// Errors:
//   - ErrNoSubstrates; ErrNotLabeled or namespace.ErrUnknownName for a
//     substrate or product that is not a labeled base compound.
//   - label.ErrLengthMismatch, label.ErrNotBijective, label.ErrCarbonLimit
//     for an invalid carbon map or too many substrate carbons.
//   - namespace.ErrUnknownName for an unknown effector,
//     namespace.ErrDuplicateName for a taken reaction name.
//
// Complexity: O(2^Σcs · (Σcs + len(products) + len(effectors))).
func (lm *LabelModel) AddCarbonMapReaction(name string, fn model.RateFunc, carbonMap []int,
	substrates, products []string, effectors ...string) error {
	if fn == nil {
		return fmt.Errorf("labelmodel: %q: %w", name, model.ErrNilRate)
	}

	return lm.AddCarbonMapReactionContext(name, func(p *parameters.Set, x []float64, _ model.Context) float64 {
		return fn(p, x)
	}, carbonMap, substrates, products, effectors...)
}

// AddCarbonMapReactionContext is AddCarbonMapReaction for a context-aware rate.
func (lm *LabelModel) AddCarbonMapReactionContext(name string, fn model.ContextRateFunc, carbonMap []int,
	substrates, products []string, effectors ...string) error {
	if fn == nil {
		return fmt.Errorf("labelmodel: %q: %w", name, model.ErrNilRate)
	}
	exps, err := lm.expand(name, carbonMap, substrates, products, effectors)
	if err != nil {
		return err
	}
	for _, e := range exps {
		if err = lm.AddReactionContext(e.name, fn, e.delta, e.args...); err != nil {
			return err
		}
	}
	lm.Logger().Debug("carbon map reaction expanded", "name", name, "reactions", len(exps))

	return nil
}

func (lm *LabelModel) expand(name string, carbonMap []int, substrates, products, effectors []string) ([]expansion, error) {
	if len(substrates) == 0 {
		return nil, fmt.Errorf("labelmodel: %q: %w", name, ErrNoSubstrates)
	}
	cs, sumS, err := lm.carbonCounts(substrates)
	if err != nil {
		return nil, fmt.Errorf("labelmodel: %q substrates: %w", name, err)
	}
	cp, sumP, err := lm.carbonCounts(products)
	if err != nil {
		return nil, fmt.Errorf("labelmodel: %q products: %w", name, err)
	}
	if err = lm.checkCarbonMap(carbonMap, sumS, sumP, len(products) == 0); err != nil {
		return nil, fmt.Errorf("labelmodel: %q: %w", name, err)
	}
	patterns, err := label.Patterns(sumS)
	if err != nil {
		return nil, fmt.Errorf("labelmodel: %q: %w", name, err)
	}
	if _, err = lm.Resolve(effectors...); err != nil {
		return nil, fmt.Errorf("labelmodel: %q effectors: %w", name, err)
	}

	exps := make([]expansion, len(patterns))
	for i, p := range patterns {
		l := p.String()
		e := expansion{
			name:  name + l,
			args:  make([]string, 0, len(substrates)+len(effectors)),
			delta: make(map[string]float64, len(substrates)+len(products)),
		}
		if lm.HasReaction(e.name) {
			return nil, fmt.Errorf("labelmodel: reaction %q: %w", e.name, namespace.ErrDuplicateName)
		}
		subLabels, err := label.Split(l, cs)
		if err != nil {
			return nil, err
		}
		for j, s := range substrates {
			iso := s + subLabels[j]
			e.args = append(e.args, iso)
			e.delta[iso]--
		}
		e.args = append(e.args, effectors...)

		if len(products) > 0 {
			pl, err := label.MapCarbons(l, carbonMap)
			if err != nil {
				return nil, err
			}
			prodLabels, err := label.Split(pl, cp)
			if err != nil {
				return nil, err
			}
			for j, pr := range products {
				e.delta[pr+prodLabels[j]]++
			}
		}
		exps[i] = e
	}

	return exps, nil
}

// checkCarbonMap validates carbonMap for substrate and product totals.
func (lm *LabelModel) checkCarbonMap(carbonMap []int, sumS, sumP int, sink bool) error {
	if sink {
		if len(carbonMap) != 0 && len(carbonMap) != sumS {
			return fmt.Errorf("sink carbon map has %d entries for %d substrate carbons: %w", len(carbonMap), sumS, label.ErrLengthMismatch)
		}
		return nil
	}
	if len(carbonMap) != sumP {
		return fmt.Errorf("carbon map has %d entries for %d product carbons: %w", len(carbonMap), sumP, label.ErrLengthMismatch)
	}
	for i, from := range carbonMap {
		if from < 0 || from >= sumS {
			return fmt.Errorf("carbon map[%d]=%d for %d substrate carbons: %w", i, from, sumS, label.ErrLengthMismatch)
		}
	}
	if lm.opts.nonBijective {
		return nil
	}
	if sumS != sumP {
		return fmt.Errorf("%d substrate carbons, %d product carbons: %w", sumS, sumP, label.ErrLengthMismatch)
	}
	if !label.IsBijection(carbonMap, sumS) {
		return fmt.Errorf("carbon map %v: %w", carbonMap, label.ErrNotBijective)
	}

	return nil
}

// SetBaseRate registers the same rate for every label pattern of the
// first numSubstrates args, which must be labeled base compounds. The
// remaining args are passed through. No stoichiometry is set.
//
// Errors: label.ErrLengthMismatch if numSubstrates is outside
// [0, len(args)], plus those of AddCarbonMapReaction for names.
func (lm *LabelModel) SetBaseRate(name string, fn model.RateFunc, numSubstrates int, args ...string) error {
	if fn == nil {
		return fmt.Errorf("labelmodel: %q: %w", name, model.ErrNilRate)
	}
	if numSubstrates < 0 || numSubstrates > len(args) {
		return fmt.Errorf("labelmodel: %q: %d substrates of %d args: %w", name, numSubstrates, len(args), label.ErrLengthMismatch)
	}
	subs, rest := args[:numSubstrates], args[numSubstrates:]
	cs, sumS, err := lm.carbonCounts(subs)
	if err != nil {
		return fmt.Errorf("labelmodel: %q substrates: %w", name, err)
	}
	labels, err := label.Labels(sumS)
	if err != nil {
		return fmt.Errorf("labelmodel: %q: %w", name, err)
	}
	if _, err = lm.Resolve(rest...); err != nil {
		return fmt.Errorf("labelmodel: %q args: %w", name, err)
	}
	for _, l := range labels {
		if lm.HasReaction(name + l) {
			return fmt.Errorf("labelmodel: reaction %q: %w", name+l, namespace.ErrDuplicateName)
		}
	}

	for _, l := range labels {
		parts, err := label.Split(l, cs)
		if err != nil {
			return err
		}
		concrete := make([]string, 0, len(args))
		for j, s := range subs {
			concrete = append(concrete, s+parts[j])
		}
		concrete = append(concrete, rest...)
		if err = lm.SetRate(name+l, fn, concrete...); err != nil {
			return err
		}
	}

	return nil
}
