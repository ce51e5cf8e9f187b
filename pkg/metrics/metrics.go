// Package metrics exposes prometheus counters for source checks, cycles and deliveries
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/umputun/newsbot/pkg/domain"
)

// Collector records engine activity. It satisfies scheduler.Metrics and notify.Metrics.
type Collector struct {
	checks        *prometheus.CounterVec
	checkDuration *prometheus.HistogramVec
	newItems      prometheus.Counter
	deactivated   prometheus.Counter
	cycles        prometheus.Counter
	cycleSources  prometheus.Gauge
	cycleDuration prometheus.Histogram
	deliveries    *prometheus.CounterVec
}

// NewCollector makes a collector and registers its metrics with reg
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "newsbot_source_checks_total",
			Help: "source checks by kind and result",
		}, []string{"kind", "result"}),
		checkDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "newsbot_source_check_duration_seconds",
			Help:    "duration of a single source check, including retries and delivery",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind"}),
		newItems: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "newsbot_new_items_total",
			Help: "new items found by source checks",
		}),
		deactivated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "newsbot_sources_deactivated_total",
			Help: "sources deactivated after repeated failures",
		}),
		cycles: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "newsbot_cycles_total",
			Help: "completed check cycles",
		}),
		cycleSources: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "newsbot_cycle_sources",
			Help: "active sources checked by the last cycle",
		}),
		cycleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "newsbot_cycle_duration_seconds",
			Help:    "duration of a check cycle",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		}),
		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "newsbot_deliveries_total",
			Help: "message deliveries by status",
		}, []string{"status"}),
	}

	reg.MustRegister(
		c.checks,
		c.checkDuration,
		c.newItems,
		c.deactivated,
		c.cycles,
		c.cycleSources,
		c.cycleDuration,
		c.deliveries,
	)
	return c
}

// RecordCheck records the outcome of one source check
func (c *Collector) RecordCheck(kind domain.SourceKind, outcome domain.CheckOutcome, duration time.Duration) {
	result := "success"
	if !outcome.Success {
		result = "failure"
	}
	c.checks.WithLabelValues(string(kind), result).Inc()
	c.checkDuration.WithLabelValues(string(kind)).Observe(duration.Seconds())
	c.newItems.Add(float64(outcome.NewItems))
	if outcome.Deactivated {
		c.deactivated.Inc()
	}
}

// RecordCycle records a completed cycle over the given number of sources
func (c *Collector) RecordCycle(sources int, duration time.Duration) {
	c.cycles.Inc()
	c.cycleSources.Set(float64(sources))
	c.cycleDuration.Observe(duration.Seconds())
}

// RecordDelivery counts a single delivery attempt result
func (c *Collector) RecordDelivery(status string) {
	c.deliveries.WithLabelValues(status).Inc()
}

// Handler returns the scrape handler for gatherer
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
