// SPDX-License-Identifier: MIT

package simulate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/QTB-HHU/modelbase/trajectory"
	"github.com/google/uuid"
)

// Option configures a Simulator.
type Option func(s *Simulator)

// WithLogger sets the logger for retries and failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics enables metric collection.
func WithMetrics(m *Metrics) Option {
	return func(s *Simulator) { s.metrics = m }
}

// WithMonitor sets whether TimeCourse records results (default true).
func WithMonitor(on bool) Option {
	return func(s *Simulator) { s.monitor = on }
}

// Simulator integrates a System and keeps the recorded runs.
// It is not safe for concurrent use.
type Simulator struct {
	sys     System
	integ   Integrator
	cfg     Config
	logger  *slog.Logger
	metrics *Metrics

	monitor    bool
	successful bool
	results    trajectory.Results
}

// New returns a Simulator for sys using integ.
//
// Errors: ErrNilSystem, ErrNilIntegrator, ErrInvalidConfig.
func New(sys System, integ Integrator, cfg Config, opts ...Option) (*Simulator, error) {
	if sys == nil {
		return nil, ErrNilSystem
	}
	if integ == nil {
		return nil, ErrNilIntegrator
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Simulator{
		sys:        sys,
		integ:      integ,
		cfg:        cfg,
		logger:     slog.Default(),
		monitor:    true,
		successful: true,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// rhs wraps the system RHS with evaluation counting.
func (s *Simulator) rhs(t float64, y []float64) ([]float64, error) {
	s.metrics.rhs()
	return s.sys.RHS(t, y)
}

// Integrate returns the state at t1 starting from y0 at t0.
//
// Implementation:
//   - Stage 1: start with Step{Max: MaxStep, N: max(NSteps, 10·⌊(t1-t0)/MaxStep⌋)}.
//   - Stage 2: call the integrator; on failure divide Max by 10, multiply N
//     by 10 and retry while Max >= MinStep.
//   - Stage 3: record success or failure for Successful.
//
// A cancelled ctx stops the loop and returns ctx.Err().
//
// Errors: ErrLengthMismatch, ErrIntegrationFailed wrapping the last
// integrator error.
func (s *Simulator) Integrate(ctx context.Context, t0, t1 float64, y0 []float64) ([]float64, error) {
	if len(y0) != s.sys.NumCompounds() {
		return nil, fmt.Errorf("simulate: state has %d values, want %d: %w", len(y0), s.sys.NumCompounds(), ErrLengthMismatch)
	}
	step := Step{Max: s.cfg.MaxStep, N: s.cfg.NSteps}
	if n := 10 * int(math.Floor((t1-t0)/step.Max)); n > step.N {
		step.N = n
	}

	var lastErr error
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		y, err := s.integ.Integrate(ctx, s.rhs, t0, t1, y0, step)
		if err == nil {
			s.successful = true
			return y, nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		lastErr = err
		step.Max /= 10
		step.N *= 10
		if step.Max < s.cfg.MinStep {
			break
		}
		s.logger.Warn("integration failed, reducing step size",
			"t0", t0, "t1", t1, "max_step", step.Max, "n_steps", step.N, "error", err)
		s.metrics.retry()
	}

	s.successful = false
	s.metrics.failure()
	s.logger.Error("integration failed at minimum step size", "t0", t0, "t1", t1, "min_step", s.cfg.MinStep, "error", lastErr)

	return nil, fmt.Errorf("%w on [%g, %g]: %w", ErrIntegrationFailed, t0, t1, lastErr)
}

// TimeCourse integrates through the time points T starting from y0 at
// T[0] and returns the state at every point. On failure it returns the
// points reached so far together with the error; only complete runs are
// recorded.
func (s *Simulator) TimeCourse(ctx context.Context, T []float64, y0 []float64) (trajectory.Result, error) {
	if len(T) == 0 {
		return trajectory.Result{}, ErrNoTimePoints
	}
	if len(y0) != s.sys.NumCompounds() {
		return trajectory.Result{}, fmt.Errorf("simulate: state has %d values, want %d: %w", len(y0), s.sys.NumCompounds(), ErrLengthMismatch)
	}
	start := time.Now()
	s.successful = true

	res := trajectory.Result{
		ID: uuid.NewString(),
		T:  append([]float64(nil), T...),
		Y:  make([][]float64, 1, len(T)),
	}
	res.Y[0] = append([]float64(nil), y0...)
	for i := 1; i < len(T); i++ {
		y, err := s.Integrate(ctx, T[i-1], T[i], res.Y[i-1])
		if err != nil {
			res.T = res.T[:i]
			return res, err
		}
		res.Y = append(res.Y, y)
	}

	if s.monitor {
		if err := s.results.Append(res); err != nil {
			return res, err
		}
		s.metrics.run(time.Since(start))
		s.logger.Debug("time course recorded", "id", res.ID, "points", len(T))
	}

	return res, nil
}

// Successful reports whether the last integration succeeded.
func (s *Simulator) Successful() bool { return s.successful }

// Monitor reports whether time courses are recorded.
func (s *Simulator) Monitor() bool { return s.monitor }

// SetMonitor turns recording of time courses on or off.
func (s *Simulator) SetMonitor(on bool) { s.monitor = on }

// Results returns the recorded runs.
func (s *Simulator) Results() *trajectory.Results { return &s.results }

// ClearResults drops all recorded runs.
func (s *Simulator) ClearResults() { s.results.Clear() }
