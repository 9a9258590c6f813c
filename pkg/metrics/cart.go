package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CartMetrics records cart command outcomes and persistence latency.
type CartMetrics struct {
	persistDuration *prometheus.HistogramVec
	commands        *prometheus.CounterVec
	failures        *prometheus.CounterVec
}

// NewCartMetrics registers the cart instruments on the provided registerer.
func NewCartMetrics(reg prometheus.Registerer) *CartMetrics {
	if reg == nil {
		return &CartMetrics{}
	}
	persistDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cart_persist_duration_seconds",
		Help:    "Duration of cart record writes in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"command"})
	commands := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_commands",
		Help: "Cart commands processed, by command name.",
	}, []string{"command"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_command_failures",
		Help: "Cart commands that ended in an error.",
	}, []string{"command"})
	reg.MustRegister(persistDuration, commands, failures)
	return &CartMetrics{
		persistDuration: persistDuration,
		commands:        commands,
		failures:        failures,
	}
}

// ObservePersist records the persistence latency for the named command.
func (c *CartMetrics) ObservePersist(command string, duration time.Duration) {
	if c == nil || c.persistDuration == nil {
		return
	}
	c.persistDuration.WithLabelValues(normalizeLabel(command)).Observe(duration.Seconds())
}

// IncCommand increments the processed counter for the named command.
func (c *CartMetrics) IncCommand(command string) {
	if c == nil || c.commands == nil {
		return
	}
	c.commands.WithLabelValues(normalizeLabel(command)).Inc()
}

// IncFailure increments the failure counter for the named command.
func (c *CartMetrics) IncFailure(command string) {
	if c == nil || c.failures == nil {
		return
	}
	c.failures.WithLabelValues(normalizeLabel(command)).Inc()
}

func normalizeLabel(command string) string {
	if command == "" {
		return "unknown"
	}
	return command
}
