// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"maps"
	"math"
	"sort"

	"github.com/QTB-HHU/modelbase/namespace"
	"github.com/QTB-HHU/modelbase/parameters"
)

// SetRate registers reaction name with rate fn over args.
// Arguments may name dynamic compounds or derived quantities.
//
// Errors: ErrNilRate, namespace.ErrEmptyName,
// namespace.ErrDuplicateName, namespace.ErrUnknownName.
func (m *Model) SetRate(name string, fn RateFunc, args ...string) error {
	if fn == nil {
		return fmt.Errorf("model: rate %q: %w", name, ErrNilRate)
	}

	return m.setRate(name, func(p *parameters.Set, x []float64, _ Context) float64 {
		return fn(p, x)
	}, args)
}

// SetRateContext registers a context-aware rate. fn receives the context
// passed to Rates or Derivative; under RHS it carries TimeKey.
func (m *Model) SetRateContext(name string, fn ContextRateFunc, args ...string) error {
	if fn == nil {
		return fmt.Errorf("model: rate %q: %w", name, ErrNilRate)
	}

	return m.setRate(name, fn, args)
}

// HasReaction reports whether a rate named name is registered.
func (m *Model) HasReaction(name string) bool {
	_, ok := m.rateIdx[name]

	return ok
}

func (m *Model) checkRateName(name string) error {
	if name == "" {
		return fmt.Errorf("model: rate: %w", namespace.ErrEmptyName)
	}
	if m.HasReaction(name) {
		return fmt.Errorf("model: rate %q: %w", name, namespace.ErrDuplicateName)
	}

	return nil
}

func (m *Model) setRate(name string, fn ContextRateFunc, args []string) error {
	if err := m.checkRateName(name); err != nil {
		return err
	}
	idx, err := m.ns.Resolve(args...)
	if err != nil {
		return fmt.Errorf("model: rate %q: %w", name, err)
	}

	m.rateIdx[name] = len(m.rates)
	m.rates = append(m.rates, &rate{
		name: name,
		args: append([]string(nil), args...),
		idx:  idx,
		eval: fn,
	})
	m.logger.Debug("rate registered", "name", name, "args", args)

	return nil
}

// compile validates delta and returns its entries ordered by state
// position.
func (m *Model) compile(delta map[string]float64) ([]term, error) {
	terms := make([]term, 0, len(delta))
	for c, d := range delta {
		pos, err := m.DynamicIndex(c)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return nil, fmt.Errorf("%q: %v: %w", c, d, ErrNonFinite)
		}
		terms = append(terms, term{pos: pos, delta: d})
	}
	sort.Slice(terms, func(i, j int) bool { return terms[i].pos < terms[j].pos })

	return terms, nil
}

// SetStoichiometry sets the change of each dynamic compound per unit
// flux of reaction. A previous stoichiometry is replaced.
//
// Errors:
//   - namespace.ErrUnknownName if the reaction or a compound is unknown.
//   - ErrNotDynamic if a key names a derived quantity.
//   - ErrNonFinite if a coefficient is NaN or ±Inf.
func (m *Model) SetStoichiometry(reaction string, delta map[string]float64) error {
	i, ok := m.rateIdx[reaction]
	if !ok {
		return fmt.Errorf("model: stoichiometry %q: %w", reaction, namespace.ErrUnknownName)
	}
	terms, err := m.compile(delta)
	if err != nil {
		return fmt.Errorf("model: stoichiometry %q: %w", reaction, err)
	}
	m.rates[i].stoch = maps.Clone(delta)
	if m.rates[i].stoch == nil {
		m.rates[i].stoch = map[string]float64{}
	}
	m.rates[i].terms = terms

	return nil
}

// SetStoichiometryByCompound sets the entry of compound in several
// reactions at once: delta maps reaction names to coefficients. Existing
// entries of other compounds are kept. All reactions are checked before
// any is changed.
func (m *Model) SetStoichiometryByCompound(compound string, delta map[string]float64) error {
	if _, err := m.DynamicIndex(compound); err != nil {
		return fmt.Errorf("model: stoichiometry of %q: %w", compound, err)
	}
	for r, d := range delta {
		if !m.HasReaction(r) {
			return fmt.Errorf("model: stoichiometry of %q: reaction %q: %w", compound, r, namespace.ErrUnknownName)
		}
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return fmt.Errorf("model: stoichiometry of %q: reaction %q: %v: %w", compound, r, d, ErrNonFinite)
		}
	}
	for r, d := range delta {
		st := maps.Clone(m.rates[m.rateIdx[r]].stoch)
		if st == nil {
			st = make(map[string]float64, 1)
		}
		st[compound] = d
		if err := m.SetStoichiometry(r, st); err != nil {
			return err
		}
	}

	return nil
}

// AddReaction registers a rate together with its stoichiometry. Nothing
// is stored if either part is invalid.
func (m *Model) AddReaction(name string, fn RateFunc, delta map[string]float64, args ...string) error {
	if fn == nil {
		return fmt.Errorf("model: rate %q: %w", name, ErrNilRate)
	}

	return m.AddReactionContext(name, func(p *parameters.Set, x []float64, _ Context) float64 {
		return fn(p, x)
	}, delta, args...)
}

// AddReactionContext is AddReaction for a context-aware rate.
func (m *Model) AddReactionContext(name string, fn ContextRateFunc, delta map[string]float64, args ...string) error {
	if fn == nil {
		return fmt.Errorf("model: rate %q: %w", name, ErrNilRate)
	}
	if _, err := m.compile(delta); err != nil {
		return fmt.Errorf("model: stoichiometry %q: %w", name, err)
	}
	if err := m.setRate(name, fn, args); err != nil {
		return err
	}

	return m.SetStoichiometry(name, delta)
}

// RateNames returns reaction names in registration order.
func (m *Model) RateNames() []string {
	out := make([]string, len(m.rates))
	for i, r := range m.rates {
		out[i] = r.name
	}

	return out
}

// NumReactions reports the number of registered rates.
func (m *Model) NumReactions() int { return len(m.rates) }

// Reactions returns a copy of every registered reaction in registration
// order.
func (m *Model) Reactions() []Reaction {
	out := make([]Reaction, len(m.rates))
	for i, r := range m.rates {
		out[i] = Reaction{
			Name:          r.name,
			Args:          append([]string(nil), r.args...),
			Stoichiometry: maps.Clone(r.stoch),
		}
	}

	return out
}

// Reaction returns the view of a single reaction.
func (m *Model) Reaction(name string) (Reaction, error) {
	i, ok := m.rateIdx[name]
	if !ok {
		return Reaction{}, fmt.Errorf("model: reaction %q: %w", name, namespace.ErrUnknownName)
	}
	r := m.rates[i]

	return Reaction{Name: r.name, Args: append([]string(nil), r.args...), Stoichiometry: maps.Clone(r.stoch)}, nil
}

// ratesFull evaluates every rate on the full vector z.
func (m *Model) ratesFull(z []float64, ctx Context) []float64 {
	v := make([]float64, len(m.rates))
	for i, r := range m.rates {
		v[i] = r.eval(m.par, r.values(z), ctx)
	}

	return v
}

// RatesArray evaluates all rates at state y, in RateNames order.
// ctx may be nil.
func (m *Model) RatesArray(y []float64, ctx Context) ([]float64, error) {
	z, err := m.FullConcentrationVector(y)
	if err != nil {
		return nil, err
	}

	return m.ratesFull(z, ctx), nil
}

// Rates evaluates all rates at state y keyed by reaction name.
func (m *Model) Rates(y []float64, ctx Context) (map[string]float64, error) {
	v, err := m.RatesArray(y, ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(v))
	for i, r := range m.rates {
		out[r.name] = v[i]
	}

	return out, nil
}

// Rate evaluates a single reaction at state y.
func (m *Model) Rate(name string, y []float64, ctx Context) (float64, error) {
	i, ok := m.rateIdx[name]
	if !ok {
		return 0, fmt.Errorf("model: rate %q: %w", name, namespace.ErrUnknownName)
	}
	z, err := m.FullConcentrationVector(y)
	if err != nil {
		return 0, err
	}
	r := m.rates[i]

	return r.eval(m.par, r.values(z), ctx), nil
}
