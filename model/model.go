// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"log/slog"

	"github.com/QTB-HHU/modelbase/namespace"
	"github.com/QTB-HHU/modelbase/parameters"
)

// Model is a kinetic model: compounds, algebraic modules and reactions
// over a shared namespace and parameter set.
type Model struct {
	par    *parameters.Set
	ns     *namespace.Registry
	logger *slog.Logger

	dyn    []int          // dynamic position → namespace index
	dynPos map[string]int // dynamic compound → dynamic position

	modules     []moduleBinding
	moduleNames map[string]struct{}

	rates   []*rate
	rateIdx map[string]int // reaction name → position in rates
}

// New returns an empty Model evaluating against pars.
// A nil pars is replaced by an empty set.
func New(pars *parameters.Set, opts ...Option) *Model {
	if pars == nil {
		pars = parameters.New(nil, nil)
	}
	m := &Model{
		par:         pars,
		ns:          namespace.New(),
		logger:      slog.Default(),
		dynPos:      make(map[string]int),
		moduleNames: make(map[string]struct{}),
		rateIdx:     make(map[string]int),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Params returns the parameter set rates and evaluation read from.
func (m *Model) Params() *parameters.Set { return m.par }

// Logger returns the logger used for registration records.
func (m *Model) Logger() *slog.Logger { return m.logger }

// AddCompound registers a dynamic compound and returns its position in
// the state vector.
func (m *Model) AddCompound(name string) (int, error) {
	pos, err := m.AddCompounds(name)
	if err != nil {
		return 0, err
	}

	return pos[0], nil
}

// AddCompounds registers dynamic compounds in order and returns their
// state positions. Either all names are registered or none.
//
// Errors: namespace.ErrEmptyName, namespace.ErrDuplicateName.
func (m *Model) AddCompounds(names ...string) ([]int, error) {
	idx, err := m.ns.Extend(names)
	if err != nil {
		return nil, fmt.Errorf("model: add compounds: %w", err)
	}
	pos := make([]int, len(names))
	for i, name := range names {
		pos[i] = len(m.dyn)
		m.dynPos[name] = pos[i]
		m.dyn = append(m.dyn, idx[i])
		m.logger.Debug("compound registered", "name", name, "position", pos[i], "index", idx[i])
	}

	return pos, nil
}

// NumCompounds reports the number of dynamic compounds, i.e. len(y).
func (m *Model) NumCompounds() int { return len(m.dyn) }

// CompoundNames returns the dynamic compound names in state order.
func (m *Model) CompoundNames() []string {
	names := m.ns.Names()
	out := make([]string, len(m.dyn))
	for i, j := range m.dyn {
		out[i] = names[j]
	}

	return out
}

// AllCompoundNames returns every registered name, dynamic and derived, in
// namespace order. It is the layout of FullConcentrationVector.
func (m *Model) AllCompoundNames() []string { return m.ns.Names() }

// Namespace returns a copy of the name registry.
func (m *Model) Namespace() *namespace.Registry { return m.ns.Clone() }

// Has reports whether name is registered, dynamic or derived.
func (m *Model) Has(name string) bool { return m.ns.Has(name) }

// Resolve maps names to indices of the full concentration vector.
func (m *Model) Resolve(names ...string) ([]int, error) {
	return m.ns.Resolve(names...)
}

// ResolveMatching returns full-vector indices of names matching pattern.
func (m *Model) ResolveMatching(pattern string) ([]int, error) {
	return m.ns.ResolveMatching(pattern)
}

// DynamicIndex returns the state position of a dynamic compound.
//
// Errors:
//   - namespace.ErrUnknownName if name is not registered.
//   - ErrNotDynamic if name is a derived quantity.
func (m *Model) DynamicIndex(name string) (int, error) {
	if pos, ok := m.dynPos[name]; ok {
		return pos, nil
	}
	if m.Has(name) {
		return 0, fmt.Errorf("model: %q: %w", name, ErrNotDynamic)
	}

	return 0, fmt.Errorf("model: %q: %w", name, namespace.ErrUnknownName)
}

// IsDynamic reports whether name is a dynamic compound.
func (m *Model) IsDynamic(name string) bool {
	_, ok := m.dynPos[name]

	return ok
}
