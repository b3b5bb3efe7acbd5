// SPDX-License-Identifier: MIT

// Package parameters holds the named numeric constants that rate laws and
// algebraic modules read at evaluation time.
//
// A Set starts from explicit values overlaid on defaults, can be updated
// between evaluations, and can be loaded from a YAML document:
//
//	defaults:
//	  k1: 0.5
//	parameters:
//	  v0: 1
//	  k2: 0.1
//
// A flat mapping (no sections) is read as parameters.
package parameters
