// Package metrics exposes Prometheus metrics for the kiosk
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Fetch results
const (
	FetchOK          = "ok"
	FetchNotModified = "not_modified"
	FetchError       = "error"
	FetchInvalid     = "invalid"
)

// Metrics holds the collectors of one kiosk instance.
// All methods are safe to call on a nil *Metrics.
type Metrics struct {
	registry *prometheus.Registry

	fetches        *prometheus.CounterVec
	changes        prometheus.Counter
	skippedTalks   prometheus.Counter
	rotations      prometheus.Counter
	storeFailures  *prometheus.CounterVec
	lastSync       prometheus.Gauge
	displayedRooms prometheus.Gauge
}

// New creates the collectors on a fresh registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ztalks_schedule_fetches_total",
			Help: "Schedule fetches by result.",
		}, []string{"result"}),
		changes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ztalks_schedule_changes_total",
			Help: "Fetched schedules that differed from the stored one.",
		}),
		skippedTalks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ztalks_skipped_talks_total",
			Help: "Talks left out because they could not be normalized.",
		}),
		rotations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ztalks_rotation_advances_total",
			Help: "Rooms shown by the overview rotation.",
		}),
		storeFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ztalks_store_failures_total",
			Help: "Failed store operations by operation and key.",
		}, []string{"op", "key"}),
		lastSync: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ztalks_last_successful_sync_timestamp_seconds",
			Help: "Unix time of the last successful schedule fetch.",
		}),
		displayedRooms: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ztalks_rooms",
			Help: "Rooms available for display.",
		}),
	}

	m.registry.MustRegister(
		m.fetches,
		m.changes,
		m.skippedTalks,
		m.rotations,
		m.storeFailures,
		m.lastSync,
		m.displayedRooms,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry returns the registry holding the collectors
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the metrics in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// FetchDone counts a fetch with the given result
func (m *Metrics) FetchDone(result string, at time.Time) {
	if m == nil {
		return
	}
	m.fetches.WithLabelValues(result).Inc()
	if result == FetchOK || result == FetchNotModified {
		m.lastSync.Set(float64(at.Unix()))
	}
}

// ScheduleChanged counts a changed schedule and records its room count
func (m *Metrics) ScheduleChanged(rooms int) {
	if m == nil {
		return
	}
	m.changes.Inc()
	m.displayedRooms.Set(float64(rooms))
}

// TalksSkipped counts talks dropped during normalization
func (m *Metrics) TalksSkipped(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.skippedTalks.Add(float64(n))
}

// RotationAdvanced counts a room shown by the overview rotation
func (m *Metrics) RotationAdvanced() {
	if m == nil {
		return
	}
	m.rotations.Inc()
}

// StoreFailed counts a failed store read or write
func (m *Metrics) StoreFailed(op, key string) {
	if m == nil {
		return
	}
	m.storeFailures.WithLabelValues(op, key).Inc()
}

// ObserveClients exports the number of connected display browsers as read by
// count at scrape time. Call it once per instance.
func (m *Metrics) ObserveClients(count func() int) {
	if m == nil {
		return
	}
	m.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "ztalks_display_clients",
		Help: "Browsers connected to the board event stream.",
	}, func() float64 {
		return float64(count())
	}))
}
