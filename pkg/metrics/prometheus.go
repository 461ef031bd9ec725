package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	scansTotal   *prometheus.CounterVec
	errorsTotal  *prometheus.CounterVec
	lastSignal   *prometheus.GaugeVec
	scanDuration *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		scansTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cyclescan_scans_total",
				Help: "Total number of spectrum computations by source",
			},
			[]string{"source", "symbol"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cyclescan_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		lastSignal: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "cyclescan_last_signal",
				Help: "Last signal per symbol (1 bullish, -1 bearish, 0 neutral)",
			},
			[]string{"symbol"},
		),
		scanDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cyclescan_scan_duration_seconds",
				Help:    "Duration of spectrum computations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"source"},
		),
	}
}

// RecordScan records one completed spectrum computation.
func (r *Recorder) RecordScan(source, symbol string) {
	r.scansTotal.WithLabelValues(source, symbol).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordSignal records the last signal for a symbol.
func (r *Recorder) RecordSignal(symbol string, value float64) {
	r.lastSignal.WithLabelValues(symbol).Set(value)
}

// RecordDuration records computation latency in seconds.
func (r *Recorder) RecordDuration(source string, seconds float64) {
	r.scanDuration.WithLabelValues(source).Observe(seconds)
}
