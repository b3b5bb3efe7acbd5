// SPDX-License-Identifier: MIT

package namespace

import "errors"

// Sentinel errors for registry operations.
var (
	// ErrDuplicateName is returned when a name is registered twice.
	ErrDuplicateName = errors.New("namespace: duplicate name")

	// ErrUnknownName is returned when a name does not resolve.
	ErrUnknownName = errors.New("namespace: unknown name")

	// ErrEmptyName is returned when the empty string is registered.
	ErrEmptyName = errors.New("namespace: empty name")

	// ErrOutOfRange is returned by Name for an index that was never assigned.
	ErrOutOfRange = errors.New("namespace: index out of range")

	// ErrBadPattern is returned by ResolveMatching when the expression does not compile.
	ErrBadPattern = errors.New("namespace: invalid pattern")
)
