// SPDX-License-Identifier: MIT

// Package simulate drives an ODE integrator over a model's right-hand side
// and records time courses.
//
// The numerical integrator is supplied by the caller through the
// Integrator interface. Simulator adds the control loop around it: a
// failed integration is retried with the maximum step reduced tenfold and
// the step budget raised tenfold, down to Config.MinStep. TimeCourse
// integrates between consecutive output times and, when monitoring is on,
// stores each successful run as a trajectory.Result with a fresh UUID.
//
// Metrics (optional, Prometheus):
//
//	modelbase_simulate_rhs_evaluations_total
//	modelbase_simulate_retries_total
//	modelbase_simulate_failures_total
//	modelbase_simulate_runs_total
//	modelbase_simulate_time_course_duration_seconds
package simulate
