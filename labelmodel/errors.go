// SPDX-License-Identifier: MIT

package labelmodel

import "errors"

var (
	// ErrNotLabeled indicates a name that exists but was not registered
	// as a labeled base compound.
	ErrNotLabeled = errors.New("labelmodel: not a labeled base compound")

	// ErrNoSubstrates is returned for a reaction template without substrates.
	ErrNoSubstrates = errors.New("labelmodel: reaction template has no substrates")
)
