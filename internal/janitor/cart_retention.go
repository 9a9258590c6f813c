package janitor

import (
	"context"
	"fmt"
	"time"

	"github.com/BVKSH0/baked-bounty-backend/pkg/logger"
	"github.com/BVKSH0/baked-bounty-backend/pkg/metrics"
)

const defaultCartRetention = 30 * 24 * time.Hour

// CartRetentionSweepParams configure the stale cart sweep.
type CartRetentionSweepParams struct {
	Logger    *logger.Logger
	Store     staleCartStore
	Metrics   *metrics.JanitorMetrics
	Retention time.Duration
}

type staleCartStore interface {
	DeleteStale(ctx context.Context, cutoff time.Time) (int64, error)
}

// NewCartRetentionSweep builds the sweep that drops carts whose visitors
// never came back.
func NewCartRetentionSweep(params CartRetentionSweepParams) (Sweep, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	retention := params.Retention
	if retention <= 0 {
		retention = defaultCartRetention
	}
	return &cartRetentionSweep{
		logg:      params.Logger,
		store:     params.Store,
		metrics:   params.Metrics,
		retention: retention,
		now:       time.Now,
	}, nil
}

type cartRetentionSweep struct {
	logg      *logger.Logger
	store     staleCartStore
	metrics   *metrics.JanitorMetrics
	retention time.Duration
	now       func() time.Time
}

func (s *cartRetentionSweep) Name() string { return "cart-retention" }

func (s *cartRetentionSweep) Run(ctx context.Context) error {
	cutoff := s.now().UTC().Add(-s.retention)
	deleted, err := s.store.DeleteStale(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("cart retention: %w", err)
	}
	s.metrics.AddPurged(s.Name(), deleted)
	logCtx := s.logg.WithFields(ctx, map[string]any{
		"cutoff":       cutoff,
		"retention":    s.retention.String(),
		"rows_deleted": deleted,
	})
	s.logg.Info(logCtx, "cart retention sweep complete")
	return nil
}
