// SPDX-License-Identifier: MIT

// Package label implements the isotope-label algebra behind labeled models.
//
// A label pattern marks which carbon positions of a compound carry a
// labeled atom. Patterns are written as fixed-length strings over {0,1}
// ("101": positions 0 and 2 labeled) and held in memory as bit vectors
// (Pattern), so aggregation predicates such as "position i is labeled" or
// "exactly k labels" are bit tests rather than string matching.
//
// Enumeration order is the Cartesian-product order of the strings:
//
//	Labels(2) == ["00", "01", "10", "11"]
//
// A carbon map routes atoms through a reaction: element i names the
// position in the concatenated substrate label that supplies product
// position i. MapCarbons applies it; Split cuts a concatenated label back
// into per-compound pieces.
package label
