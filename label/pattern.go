// SPDX-License-Identifier: MIT

package label

import (
	"fmt"
	"math/bits"
	"strings"
)

// MaxCarbons bounds the carbon count of a compound, and of the combined
// substrate space of a templated reaction (2^MaxCarbons patterns).
const MaxCarbons = 24

// Label characters.
const (
	Unlabeled = '0'
	Labeled   = '1'
)

// Pattern is a label over Len carbon positions. Position 0 is the leftmost
// character of the string form and the most significant of the Len low bits.
type Pattern struct {
	Bits uint64
	Len  int
}

// bit returns the mask for position pos.
func (p Pattern) bit(pos int) uint64 { return 1 << uint(p.Len-1-pos) }

// Has reports whether position pos is labeled. Out-of-range positions are unlabeled.
func (p Pattern) Has(pos int) bool {
	if pos < 0 || pos >= p.Len {
		return false
	}

	return p.Bits&p.bit(pos) != 0
}

// HasAll reports whether every position in positions is labeled.
func (p Pattern) HasAll(positions ...int) bool {
	for _, pos := range positions {
		if !p.Has(pos) {
			return false
		}
	}

	return true
}

// Count returns the number of labeled positions.
func (p Pattern) Count() int { return bits.OnesCount64(p.Bits) }

// String renders the pattern as a string of '0' and '1'.
func (p Pattern) String() string {
	var b strings.Builder
	b.Grow(p.Len)
	for pos := 0; pos < p.Len; pos++ {
		if p.Has(pos) {
			b.WriteByte(Labeled)
		} else {
			b.WriteByte(Unlabeled)
		}
	}

	return b.String()
}

// checkCarbons validates a carbon count against [0, MaxCarbons].
func checkCarbons(c int) error {
	if c < 0 || c > MaxCarbons {
		return fmt.Errorf("c=%d (max %d): %w", c, MaxCarbons, ErrCarbonLimit)
	}

	return nil
}

// ParsePattern parses a label string.
func ParsePattern(s string) (Pattern, error) {
	if err := checkCarbons(len(s)); err != nil {
		return Pattern{}, err
	}
	p := Pattern{Len: len(s)}
	for pos := 0; pos < len(s); pos++ {
		switch s[pos] {
		case Labeled:
			p.Bits |= p.bit(pos)
		case Unlabeled:
		default:
			return Pattern{}, fmt.Errorf("%q at %d: %w", s, pos, ErrBadLabel)
		}
	}

	return p, nil
}

// Patterns returns all 2^c patterns over c positions in enumeration order.
// Complexity: O(2^c).
func Patterns(c int) ([]Pattern, error) {
	if err := checkCarbons(c); err != nil {
		return nil, err
	}
	n := uint64(1) << uint(c)
	out := make([]Pattern, n)
	for v := uint64(0); v < n; v++ {
		out[v] = Pattern{Bits: v, Len: c}
	}

	return out, nil
}

// Labels returns the string forms of Patterns(c).
func Labels(c int) ([]string, error) {
	ps, err := Patterns(c)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}

	return out, nil
}

// CompoundNames returns the isotopologue names of base with c carbons:
// base followed by every label of length c, in enumeration order.
func CompoundNames(base string, c int) ([]string, error) {
	ls, err := Labels(c)
	if err != nil {
		return nil, err
	}
	for i, l := range ls {
		ls[i] = base + l
	}

	return ls, nil
}

// WithLabelAt returns the pattern over c positions labeled exactly at positions.
func WithLabelAt(c int, positions ...int) (Pattern, error) {
	if err := checkCarbons(c); err != nil {
		return Pattern{}, err
	}
	p := Pattern{Len: c}
	for _, pos := range positions {
		if pos < 0 || pos >= c {
			return Pattern{}, fmt.Errorf("position %d of %d: %w", pos, c, ErrLengthMismatch)
		}
		p.Bits |= p.bit(pos)
	}

	return p, nil
}

// Combinations returns every pattern over c positions with exactly k labels,
// ordered like the position subsets of a lexicographic k-combination of 0..c-1.
// k outside [0, c] yields an empty slice.
func Combinations(c, k int) ([]Pattern, error) {
	if err := checkCarbons(c); err != nil {
		return nil, err
	}
	out := make([]Pattern, 0)
	if k < 0 || k > c {
		return out, nil
	}

	var walk func(start, left int, acc Pattern)
	walk = func(start, left int, acc Pattern) {
		if left == 0 {
			out = append(out, acc)
			return
		}
		for pos := start; pos <= c-left; pos++ {
			next := acc
			next.Bits |= next.bit(pos)
			walk(pos+1, left-1, next)
		}
	}
	walk(0, k, Pattern{Len: c})

	return out, nil
}
