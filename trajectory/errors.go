// SPDX-License-Identifier: MIT

package trajectory

import "errors"

var (
	// ErrRunOutOfRange is returned for a run index that was never recorded.
	ErrRunOutOfRange = errors.New("trajectory: run index out of range")

	// ErrVarOutOfRange is returned for a state column that does not exist.
	ErrVarOutOfRange = errors.New("trajectory: variable index out of range")

	// ErrRaggedRun is returned when a run has a different number of time points and states.
	ErrRaggedRun = errors.New("trajectory: time points and states differ in length")

	// ErrBadPattern is returned when a name pattern does not compile.
	ErrBadPattern = errors.New("trajectory: invalid pattern")
)
