// SPDX-License-Identifier: MIT

// Package labelmodel expands kinetic models into isotope-label networks.
//
// A base compound with c carbon atoms is tracked as 2^c isotopologues,
// one dynamic compound per label pattern ("GAP000" … "GAP111"). The plain
// base name stays available as a derived total computed by an algebraic
// module, so rates and queries may refer to the aggregate species.
//
// A carbon-map reaction template is expanded into one concrete reaction
// per label pattern over the combined substrate carbons. The carbon map
// routes substrate atoms to product positions:
//
//	TPI: GAP[0 1 2] -> DHAP[2 1 0]        carbonMap = [2 1 0]
//	ALD: DHAP[0 1 2] + GAP[3 4 5] -> FBP  carbonMap = [0 1 2 3 4 5]
//
// After expansion the concrete reactions are ordinary model reactions;
// Derivative, Rates and StoichiometryMatrix need no special handling.
//
// Validation is strict by default: the map length must equal both the
// substrate and the product carbon totals and the map must be a
// permutation. WithNonBijectiveMaps accepts gather maps that copy or drop
// atoms. Repeated substrates or products (A + A -> B) accumulate their
// coefficients per isotopologue.
package labelmodel
