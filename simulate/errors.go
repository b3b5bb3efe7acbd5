// SPDX-License-Identifier: MIT

package simulate

import "errors"

var (
	// ErrNilSystem is returned by New when the system is nil.
	ErrNilSystem = errors.New("simulate: nil system")

	// ErrNilIntegrator is returned by New when the integrator is nil.
	ErrNilIntegrator = errors.New("simulate: nil integrator")

	// ErrInvalidConfig wraps configuration validation failures.
	ErrInvalidConfig = errors.New("simulate: invalid config")

	// ErrLengthMismatch is returned for an initial state of the wrong length.
	ErrLengthMismatch = errors.New("simulate: length mismatch")

	// ErrNoTimePoints is returned by TimeCourse for an empty time vector.
	ErrNoTimePoints = errors.New("simulate: no time points")

	// ErrIntegrationFailed is returned when every step size down to the
	// minimum failed.
	ErrIntegrationFailed = errors.New("simulate: integration failed")
)
