// SPDX-License-Identifier: MIT

// Package trajectory stores recorded time courses and extracts variables,
// derived quantities, rates and label aggregates from them.
//
// A Result is one integration run: time points T and the state Y at each
// point (one row per time point, one column per dynamic compound).
// Results collects runs in order; every accessor takes an optional list of
// run indices and concatenates the selected runs along time. No run
// indices selects all runs.
//
// LabelQuery aggregates isotopologue columns of labeled compounds by label
// predicates on label.Pattern:
//
//	Total(base)            all isotopologues
//	LabelAtPos(base, pos)  label present at every position in pos
//	NumLabel(base, k)      exactly k labeled positions
//	TotalLabel(base)       Σ_k k·NumLabel(base, k)
package trajectory
