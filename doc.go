// SPDX-License-Identifier: MIT

// Package modelbase builds kinetic models of biochemical reaction networks
// and expands them into isotope-label networks.
//
// The library is organized in layers; each depends only on those above it:
//
//	namespace/   append-only name → index registry
//	parameters/  named parameter sets, YAML loading
//	matrix/      dense matrices for stoichiometry
//	label/       label patterns, carbon maps, isotopologue names
//	algebraic/   pure modules deriving concentrations (equilibria, conservation)
//	model/       compounds, modules, rates, stoichiometry; Derivative and RHS
//	labelmodel/  labeled compounds and carbon-map reaction expansion
//	trajectory/  recorded time courses and label aggregation
//	simulate/    step-retry driver around a caller-supplied ODE integrator
//	ratelaw/     common rate expressions
//
// Quick example, the chain X -> Y with rate k·X:
//
//	m := model.New(parameters.New(map[string]float64{"k": 2}, nil))
//	_, _ = m.AddCompounds("X", "Y")
//	_ = m.AddReaction("v", func(p *parameters.Set, x []float64) float64 {
//		return ratelaw.MassAction(p.MustGet("k"), x[0])
//	}, map[string]float64{"X": -1, "Y": 1}, "X")
//	dy, _ := m.Derivative([]float64{1, 1}, nil) // [-2 2]
//
// A labeled compound with c carbons becomes 2^c dynamic isotopologues
// plus a derived total under its plain name:
//
//	lm := labelmodel.New(pars)
//	_, _ = lm.AddBaseCompound("GAP", 3)  // GAP000 … GAP111, GAP
//	_, _ = lm.AddBaseCompound("DHAP", 3)
//	_ = lm.AddCarbonMapReaction("TPI", rate, []int{2, 1, 0},
//		[]string{"GAP"}, []string{"DHAP"})    // TPI000 … TPI111
//
// Models are built single-threaded; once built, evaluation is a pure
// function of the state and parameters.
package modelbase
