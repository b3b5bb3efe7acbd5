// SPDX-License-Identifier: MIT

// Package model assembles kinetic models of biochemical reaction networks.
//
// A Model owns an append-only namespace of compound names. Dynamic
// compounds form the state vector y integrated over time; algebraic modules
// add derived quantities (rapid-equilibrium pools, conserved moieties,
// label totals) computed from names registered before them.
//
// Construction phase:
//
//	m := model.New(parameters.New(map[string]float64{"k": 2}, nil))
//	_, _ = m.AddCompounds("X", "Y")
//	_ = m.AddReaction("v1", func(p *parameters.Set, x []float64) float64 {
//		return p.MustGet("k") * x[0]
//	}, map[string]float64{"X": -1, "Y": 1}, "X")
//
// All names a rate or module refers to are resolved at registration time
// and cached as index slices; an invalid reference fails before anything
// is stored.
//
// Evaluation phase:
//
//	dy, err := m.Derivative([]float64{1, 1}, nil) // [-2 2]
//
// Evaluation is a pure function of y, the context and the current
// parameter values, so integrators may call it at arbitrary time points.
//
// Layout of the full concentration vector:
//
// FullConcentrationVector returns one value per registered name in
// namespace order. Dynamic compounds and module outputs interleave in the
// order they were registered, so an index never changes once assigned.
//
// Concurrency:
//
// A Model is not synchronized. Mutate it from one goroutine, then share
// it freely for evaluation.
package model
