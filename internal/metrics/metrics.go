package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"glyphwatch/internal/jid"
)

// Metrics provides observability for the detector cache and batch scans.
// Collectors live on a private registry so several instances (one per
// test, one per run) never collide.
type Metrics struct {
	reg *prometheus.Registry

	CacheHits          prometheus.Counter
	CacheMisses        prometheus.Counter
	CacheEvictions     prometheus.Counter
	CacheEntries       prometheus.Gauge
	IdentifiersScanned prometheus.Counter
	IdentifiersFlagged prometheus.Counter
	ParseErrors        prometheus.Counter
	FileDuration       prometheus.Histogram
}

// New creates a Metrics instance with all collectors registered.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		reg: reg,
		CacheHits: f.NewCounter(prometheus.CounterOpts{
			Name: "glyphwatch_cache_hits_total",
			Help: "Matcher lookups served from the cache",
		}),
		CacheMisses: f.NewCounter(prometheus.CounterOpts{
			Name: "glyphwatch_cache_misses_total",
			Help: "Matcher lookups that partitioned and compiled",
		}),
		CacheEvictions: f.NewCounter(prometheus.CounterOpts{
			Name: "glyphwatch_cache_evictions_total",
			Help: "Matchers dropped by LRU eviction",
		}),
		CacheEntries: f.NewGauge(prometheus.GaugeOpts{
			Name: "glyphwatch_cache_entries",
			Help: "Matchers currently resident",
		}),
		IdentifiersScanned: f.NewCounter(prometheus.CounterOpts{
			Name: "glyphwatch_identifiers_scanned_total",
			Help: "Identifiers analyzed by scan",
		}),
		IdentifiersFlagged: f.NewCounter(prometheus.CounterOpts{
			Name: "glyphwatch_identifiers_flagged_total",
			Help: "Identifiers with at least one flagged code point",
		}),
		ParseErrors: f.NewCounter(prometheus.CounterOpts{
			Name: "glyphwatch_parse_errors_total",
			Help: "Input lines that did not parse as identifiers",
		}),
		FileDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "glyphwatch_scan_file_duration_seconds",
			Help:    "Time spent scanning one input file",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
	}
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// CacheHit implements detect.Observer.
func (m *Metrics) CacheHit(jid.JID) { m.CacheHits.Inc() }

// CacheMiss implements detect.Observer. Every miss inserts an entry.
func (m *Metrics) CacheMiss(jid.JID) {
	m.CacheMisses.Inc()
	m.CacheEntries.Inc()
}

// CacheEvict implements detect.Observer.
func (m *Metrics) CacheEvict(jid.JID) {
	m.CacheEvictions.Inc()
	m.CacheEntries.Dec()
}

// ObserveEntry records one analyzed identifier.
func (m *Metrics) ObserveEntry(flagged bool) {
	m.IdentifiersScanned.Inc()
	if flagged {
		m.IdentifiersFlagged.Inc()
	}
}

// ObserveParseError records one rejected input line.
func (m *Metrics) ObserveParseError() { m.ParseErrors.Inc() }

// ObserveFile records how long one input took.
func (m *Metrics) ObserveFile(d time.Duration) {
	m.FileDuration.Observe(d.Seconds())
}

// WriteFile writes the text exposition format to path atomically.
func (m *Metrics) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}
