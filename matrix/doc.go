// SPDX-License-Identifier: MIT

// Package matrix provides the dense row-major matrix used for structural
// views of a reaction network.
//
// The stoichiometry matrix N (compounds × reactions) is the main consumer:
// N[i][j] holds the signed amount of compound i produced by reaction j, so
// MatVec(N, v) for a rate vector v yields the time derivative of the state.
//
// Public accessors never panic on user input: At/Set return ErrOutOfRange,
// Set rejects NaN/±Inf with ErrNaNInf, and kernels validate shapes up
// front (ErrDimensionMismatch).
//
// Complexity:
//
//	NewDense: O(r*c)   At/Set: O(1)   Clone: O(r*c)
//	Row/Col:  O(r+c)   MatVec: O(r*c)
package matrix
