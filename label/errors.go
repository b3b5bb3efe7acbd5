// SPDX-License-Identifier: MIT

package label

import "errors"

var (
	// ErrLengthMismatch is returned when a label, a partition or a carbon map
	// disagrees with the declared carbon counts.
	ErrLengthMismatch = errors.New("label: length mismatch")

	// ErrBadLabel is returned when a label string contains characters other than '0' and '1'.
	ErrBadLabel = errors.New("label: invalid label character")

	// ErrCarbonLimit is returned when a carbon count is negative or exceeds MaxCarbons.
	ErrCarbonLimit = errors.New("label: carbon count out of range")

	// ErrNotBijective is returned when a carbon map is required to be a permutation but is not.
	ErrNotBijective = errors.New("label: carbon map is not a bijection")
)
