package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the calendar toolkit. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	// Critical section entries and time spent waiting for the lock
	SectionEntries *prometheus.CounterVec
	SectionWait    prometheus.Histogram

	// Zones the host refused to activate
	Rejections prometheus.Counter

	// Normalizations by path: "utc" or "zone"
	Normalizations *prometheus.CounterVec

	// Wall-clock registry occupancy and exhaustion events
	RegistryEntries   prometheus.Gauge
	RegistryExhausted prometheus.Counter

	// Zone cache flushes and the number of zones dropped
	ZoneCacheFlushes prometheus.Counter
	ZoneCacheDropped prometheus.Counter
}

// New creates a Metrics instance registered with reg. Passing nil uses the
// default Prometheus registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		SectionEntries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "calendar_tz_section_entries_total",
			Help: "Total entries into the TZ environment critical section by target kind",
		}, []string{"target"}), // target: "system", "named"

		SectionWait: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "calendar_tz_section_wait_seconds",
			Help:    "Time spent waiting to enter the TZ environment critical section",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),

		Rejections: factory.NewCounter(prometheus.CounterOpts{
			Name: "calendar_tz_rejections_total",
			Help: "Total timezone names rejected by the host calendar service",
		}),

		Normalizations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "calendar_normalizations_total",
			Help: "Total date-time normalizations by path",
		}, []string{"path"}),

		RegistryEntries: factory.NewGauge(prometheus.GaugeOpts{
			Name: "calendar_wallclock_registry_entries",
			Help: "Number of named wall-clocks currently registered",
		}),

		RegistryExhausted: factory.NewCounter(prometheus.CounterOpts{
			Name: "calendar_wallclock_registry_exhausted_total",
			Help: "Total wall-clock registrations refused because the registry was full",
		}),

		ZoneCacheFlushes: factory.NewCounter(prometheus.CounterOpts{
			Name: "calendar_zone_cache_flushes_total",
			Help: "Total flushes of the host zone cache",
		}),

		ZoneCacheDropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "calendar_zone_cache_dropped_total",
			Help: "Total zones dropped from the host zone cache",
		}),
	}
}

// IncrementSection records an entry into the critical section.
func (m *Metrics) IncrementSection(target string, wait time.Duration) {
	if m != nil {
		m.SectionEntries.WithLabelValues(target).Inc()
		m.SectionWait.Observe(wait.Seconds())
	}
}

// IncrementRejection records a timezone rejected by the host.
func (m *Metrics) IncrementRejection() {
	if m != nil {
		m.Rejections.Inc()
	}
}

// IncrementNormalization records one normalization along path.
func (m *Metrics) IncrementNormalization(path string) {
	if m != nil {
		m.Normalizations.WithLabelValues(path).Inc()
	}
}

// SetRegistryEntries updates the registry occupancy gauge.
func (m *Metrics) SetRegistryEntries(n int) {
	if m != nil {
		m.RegistryEntries.Set(float64(n))
	}
}

// IncrementRegistryExhausted records a refused registration.
func (m *Metrics) IncrementRegistryExhausted() {
	if m != nil {
		m.RegistryExhausted.Inc()
	}
}

// ObserveZoneCacheFlush records a cache flush that dropped n zones.
func (m *Metrics) ObserveZoneCacheFlush(n int) {
	if m != nil {
		m.ZoneCacheFlushes.Inc()
		m.ZoneCacheDropped.Add(float64(n))
	}
}
