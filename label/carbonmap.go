// SPDX-License-Identifier: MIT

package label

import "fmt"

// Split partitions label into consecutive pieces of the given lengths,
// left to right, with no gaps or overlaps.
//
// Errors:
//   - ErrLengthMismatch if any length is negative or Σ lengths != len(label).
//
// Complexity: O(len(lengths)).
func Split(label string, lengths []int) ([]string, error) {
	total := 0
	for _, n := range lengths {
		if n < 0 {
			return nil, fmt.Errorf("split %q: negative length %d: %w", label, n, ErrLengthMismatch)
		}
		total += n
	}
	if total != len(label) {
		return nil, fmt.Errorf("split %q: lengths sum to %d: %w", label, total, ErrLengthMismatch)
	}

	out := make([]string, len(lengths))
	cnt := 0
	for i, n := range lengths {
		out[i] = label[cnt : cnt+n]
		cnt += n
	}

	return out, nil
}

// MapCarbons gathers src through carbonMap: out[i] = src[carbonMap[i]].
// The result has len(carbonMap) characters. The map is not required to be
// a permutation.
//
// Errors:
//   - ErrLengthMismatch if an entry falls outside [0, len(src)).
//
// Complexity: O(len(carbonMap)).
func MapCarbons(src string, carbonMap []int) (string, error) {
	out := make([]byte, len(carbonMap))
	for i, from := range carbonMap {
		if from < 0 || from >= len(src) {
			return "", fmt.Errorf("carbon map[%d]=%d for %d source atoms: %w", i, from, len(src), ErrLengthMismatch)
		}
		out[i] = src[from]
	}

	return string(out), nil
}

// IsBijection reports whether carbonMap is a permutation of 0..n-1.
func IsBijection(carbonMap []int, n int) bool {
	if len(carbonMap) != n {
		return false
	}
	seen := make([]bool, n)
	for _, from := range carbonMap {
		if from < 0 || from >= n || seen[from] {
			return false
		}
		seen[from] = true
	}

	return true
}

// Invert returns the positional inverse of a bijective carbon map, so that
// MapCarbons(MapCarbons(l, m), Invert(m)) == l.
func Invert(carbonMap []int) ([]int, error) {
	if !IsBijection(carbonMap, len(carbonMap)) {
		return nil, fmt.Errorf("invert %v: %w", carbonMap, ErrNotBijective)
	}
	inv := make([]int, len(carbonMap))
	for i, from := range carbonMap {
		inv[from] = i
	}

	return inv, nil
}
