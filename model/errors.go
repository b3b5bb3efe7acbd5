// SPDX-License-Identifier: MIT

package model

import "errors"

// Sentinel errors returned by Model. Name errors from the underlying
// registry (namespace.ErrDuplicateName, namespace.ErrUnknownName) are
// passed through wrapped and remain matchable with errors.Is.
var (
	// ErrLengthMismatch indicates a vector whose length does not match the
	// model layout, or a module returning the wrong number of outputs.
	ErrLengthMismatch = errors.New("model: length mismatch")

	// ErrNotDynamic indicates a stoichiometry entry naming a derived quantity.
	ErrNotDynamic = errors.New("model: not a dynamic compound")

	// ErrNonFinite indicates a NaN or ±Inf stoichiometric coefficient.
	ErrNonFinite = errors.New("model: non-finite stoichiometric coefficient")

	// ErrNilRate is returned when a nil rate function is registered.
	ErrNilRate = errors.New("model: nil rate function")

	// ErrNilModule is returned when a nil algebraic module is attached.
	ErrNilModule = errors.New("model: nil algebraic module")
)
