// SPDX-License-Identifier: MIT

package model

import (
	"log/slog"

	"github.com/QTB-HHU/modelbase/algebraic"
	"github.com/QTB-HHU/modelbase/parameters"
)

// TimeKey is the reserved Context key carrying the integration time.
const TimeKey = "t"

// Context carries named side information into context-aware rates.
// RHS fills TimeKey; callers may add further keys.
type Context map[string]float64

// RateFunc computes a reaction rate. x holds the values of the rate's
// declared arguments in declaration order.
type RateFunc func(p *parameters.Set, x []float64) float64

// ContextRateFunc is a RateFunc that also receives the evaluation context.
type ContextRateFunc func(p *parameters.Set, x []float64, ctx Context) float64

// Reaction is a read-only view of a registered rate.
// Stoichiometry is nil for rates without stoichiometry.
type Reaction struct {
	Name          string
	Args          []string
	Stoichiometry map[string]float64
}

// Option configures a Model at construction.
type Option func(m *Model)

// WithLogger sets the logger for registration records.
// A nil logger leaves the default in place.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// moduleBinding attaches a module to resolved input and output indices.
type moduleBinding struct {
	name   string
	module *algebraic.Module
	inputs []int // namespace indices read
	outs   []int // namespace indices written
}

// term is one compiled stoichiometry entry.
type term struct {
	pos   int // position in the dynamic state
	delta float64
}

// rate is a registered reaction rate with its arguments resolved.
type rate struct {
	name  string
	args  []string
	idx   []int // namespace indices of args
	eval  func(p *parameters.Set, x []float64, ctx Context) float64
	stoch map[string]float64 // nil until stoichiometry is set
	terms []term             // stoch compiled, ordered by position
}

// values gathers the rate arguments from the full vector z.
func (r *rate) values(z []float64) []float64 {
	x := make([]float64, len(r.idx))
	for i, j := range r.idx {
		x[i] = z[j]
	}

	return x
}
