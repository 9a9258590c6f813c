package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// JanitorMetrics records sweep outcomes for the background janitor.
type JanitorMetrics struct {
	duration  *prometheus.HistogramVec
	successes *prometheus.CounterVec
	failures  *prometheus.CounterVec
	purged    *prometheus.CounterVec
}

// NewJanitorMetrics registers the janitor instruments on the provided registerer.
func NewJanitorMetrics(reg prometheus.Registerer) *JanitorMetrics {
	if reg == nil {
		return &JanitorMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "janitor_sweep_duration_seconds",
		Help:    "Duration of janitor sweeps in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"sweep"})
	successes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "janitor_sweep_successes",
		Help: "Janitor sweeps that completed without error.",
	}, []string{"sweep"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "janitor_sweep_failures",
		Help: "Janitor sweeps that ended in an error.",
	}, []string{"sweep"})
	purged := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "janitor_records_purged",
		Help: "Records removed by janitor sweeps.",
	}, []string{"sweep"})
	reg.MustRegister(duration, successes, failures, purged)
	return &JanitorMetrics{
		duration:  duration,
		successes: successes,
		failures:  failures,
		purged:    purged,
	}
}

// ObserveDuration records how long the named sweep took.
func (j *JanitorMetrics) ObserveDuration(sweep string, duration time.Duration) {
	if j == nil || j.duration == nil {
		return
	}
	j.duration.WithLabelValues(normalizeLabel(sweep)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named sweep.
func (j *JanitorMetrics) IncSuccess(sweep string) {
	if j == nil || j.successes == nil {
		return
	}
	j.successes.WithLabelValues(normalizeLabel(sweep)).Inc()
}

// IncFailure increments the failure counter for the named sweep.
func (j *JanitorMetrics) IncFailure(sweep string) {
	if j == nil || j.failures == nil {
		return
	}
	j.failures.WithLabelValues(normalizeLabel(sweep)).Inc()
}

// AddPurged adds the number of records a sweep removed.
func (j *JanitorMetrics) AddPurged(sweep string, count int64) {
	if j == nil || j.purged == nil || count <= 0 {
		return
	}
	j.purged.WithLabelValues(normalizeLabel(sweep)).Add(float64(count))
}
