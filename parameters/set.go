// SPDX-License-Identifier: MIT

package parameters

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
)

var (
	// ErrUnknownParameter is returned when a parameter name is absent.
	ErrUnknownParameter = errors.New("parameters: unknown parameter")

	// ErrInvalidValue is returned when a loaded value is NaN or ±Inf.
	ErrInvalidValue = errors.New("parameters: invalid value")
)

// Set maps parameter names to values.
//
// Reads during evaluation are not synchronized; callers update a Set only
// between evaluations.
type Set struct {
	values map[string]float64
	logger *slog.Logger
}

// New returns a Set holding pars, with defaults filled in for every key
// pars does not define. Either map may be nil.
// Complexity: O(len(pars)+len(defaults)).
func New(pars, defaults map[string]float64) *Set {
	s := &Set{
		values: make(map[string]float64, len(pars)+len(defaults)),
		logger: slog.Default(),
	}
	for k, v := range defaults {
		s.values[k] = v
	}
	for k, v := range pars {
		s.values[k] = v
	}

	return s
}

// WithLogger sets the logger used for overwrite warnings and returns s.
func (s *Set) WithLogger(l *slog.Logger) *Set {
	if l != nil {
		s.logger = l
	}

	return s
}

// Get returns the value of name or ErrUnknownParameter.
func (s *Set) Get(name string) (float64, error) {
	v, ok := s.values[name]
	if !ok {
		return 0, fmt.Errorf("get %q: %w", name, ErrUnknownParameter)
	}

	return v, nil
}

// MustGet returns the value of name and panics if it is absent.
// Intended for rate closures, where a missing parameter is a
// construction bug rather than a runtime condition.
func (s *Set) MustGet(name string) float64 {
	v, err := s.Get(name)
	if err != nil {
		panic(err)
	}

	return v
}

// Has reports whether name is defined.
func (s *Set) Has(name string) bool {
	_, ok := s.values[name]
	return ok
}

// Len returns the number of parameters.
func (s *Set) Len() int { return len(s.values) }

// Names returns all parameter names sorted ascending.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.values))
	for k := range s.values {
		names = append(names, k)
	}
	sort.Strings(names)

	return names
}

// Map returns a copy of the underlying values.
func (s *Set) Map() map[string]float64 {
	out := make(map[string]float64, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}

	return out
}

// Update adds or overwrites parameters and returns the overwritten names
// (sorted). A warning is logged when anything was replaced.
func (s *Set) Update(pars map[string]float64) []string {
	replaced := make([]string, 0)
	for k, v := range pars {
		if _, ok := s.values[k]; ok {
			replaced = append(replaced, k)
		}
		s.values[k] = v
	}
	sort.Strings(replaced)
	if len(replaced) > 0 {
		s.logger.Warn("overwriting parameters", slog.Any("keys", replaced))
	}

	return replaced
}

// Merge applies Update with the values of other.
func (s *Set) Merge(other *Set) []string {
	if other == nil {
		return nil
	}

	return s.Update(other.values)
}

// Clone returns an independent copy sharing the logger.
func (s *Set) Clone() *Set {
	return &Set{values: s.Map(), logger: s.logger}
}

// validateFinite rejects NaN and ±Inf values.
func validateFinite(values map[string]float64) error {
	for k, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%q=%v: %w", k, v, ErrInvalidValue)
		}
	}

	return nil
}
