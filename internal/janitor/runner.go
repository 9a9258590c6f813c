package janitor

import (
	"context"
	"fmt"
	"time"

	"github.com/BVKSH0/baked-bounty-backend/pkg/logger"
	"github.com/BVKSH0/baked-bounty-backend/pkg/metrics"
)

const defaultInterval = 24 * time.Hour

// RunnerParams configure the janitor runner.
type RunnerParams struct {
	Logger   *logger.Logger
	Registry *Registry
	Lock     Lock
	Metrics  *metrics.JanitorMetrics
	Interval time.Duration
}

// Runner executes registered sweeps on a fixed cadence. Only one instance
// runs a cycle at a time; the lock settles races between replicas.
type Runner struct {
	logg     *logger.Logger
	registry *Registry
	lock     Lock
	metrics  *metrics.JanitorMetrics
	interval time.Duration
}

// NewRunner builds a janitor runner.
func NewRunner(params RunnerParams) (*Runner, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Lock == nil {
		return nil, fmt.Errorf("lock required")
	}
	registry := params.Registry
	if registry == nil {
		registry = NewRegistry()
	}
	interval := params.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Runner{
		logg:     params.Logger,
		registry: registry,
		lock:     params.Lock,
		metrics:  params.Metrics,
		interval: interval,
	}, nil
}

// Run starts the sweep loop until the context is canceled.
func (r *Runner) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := r.runCycle(ctx); err != nil {
		r.logg.Error(ctx, "sweep cycle failed", err)
	}
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logg.Info(ctx, "janitor context canceled")
			return ctx.Err()
		case <-ticker.C:
			if err := r.runCycle(ctx); err != nil {
				r.logg.Error(ctx, "sweep cycle failed", err)
			}
		}
	}
}

func (r *Runner) runCycle(ctx context.Context) error {
	locked, err := r.lock.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("lock acquire: %w", err)
	}
	if !locked {
		r.logg.Info(ctx, "another janitor instance is running; skipping this cycle")
		return nil
	}
	defer func() {
		if relErr := r.lock.Release(ctx); relErr != nil {
			r.logg.Error(ctx, "failed to release janitor lock", relErr)
		}
	}()

	r.logg.Info(ctx, "sweep cycle starting")
	for _, sweep := range r.registry.Sweeps() {
		r.runSweep(ctx, sweep)
	}
	r.logg.Info(ctx, "sweep cycle complete")
	return nil
}

func (r *Runner) runSweep(ctx context.Context, sweep Sweep) {
	sweepCtx := r.logg.WithField(ctx, "sweep", sweep.Name())
	r.logg.Info(sweepCtx, "sweep start")
	start := time.Now()
	err := sweep.Run(sweepCtx)
	duration := time.Since(start)
	r.metrics.ObserveDuration(sweep.Name(), duration)
	sweepCtx = r.logg.WithField(sweepCtx, "duration_ms", duration.Milliseconds())
	if err != nil {
		r.logg.Error(sweepCtx, "sweep failed", err)
		r.metrics.IncFailure(sweep.Name())
		return
	}
	r.logg.Info(sweepCtx, "sweep completed")
	r.metrics.IncSuccess(sweep.Name())
}
