package rand

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	prometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

const (
	// MetricsSubsystem is a subsystem shared by all metrics exposed by this
	// package.
	MetricsSubsystem = "rand"
)

// Metrics contains metrics exposed by this package.
type Metrics struct {
	// Width of the seed the generator was initialized with, in bits.
	SeedBits metrics.Gauge

	// Total bytes drawn from the entropy source.
	EntropyBytes metrics.Counter

	// 32-bit words produced by the generator.
	Words metrics.Counter

	// Ranged samples returned to callers.
	Samples metrics.Counter

	// Candidates discarded by the rejection loop.
	SampleRejections metrics.Counter
}

// PrometheusMetrics returns Metrics built using Prometheus client library.
// Optionally, labels can be provided along with their values ("foo",
// "fooValue").
func PrometheusMetrics(namespace string, labelsAndValues ...string) *Metrics {
	labels := []string{}
	for i := 0; i < len(labelsAndValues); i += 2 {
		labels = append(labels, labelsAndValues[i])
	}
	return &Metrics{
		SeedBits: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "seed_bits",
			Help:      "Width of the seed the generator was initialized with, in bits.",
		}, labels).With(labelsAndValues...),
		EntropyBytes: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "entropy_bytes",
			Help:      "Total bytes drawn from the entropy source.",
		}, labels).With(labelsAndValues...),
		Words: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "words",
			Help:      "32-bit words produced by the generator.",
		}, labels).With(labelsAndValues...),
		Samples: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "samples",
			Help:      "Ranged samples returned to callers.",
		}, labels).With(labelsAndValues...),
		SampleRejections: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "sample_rejections",
			Help:      "Candidates discarded by the rejection loop.",
		}, labels).With(labelsAndValues...),
	}
}

// NopMetrics returns no-op Metrics.
func NopMetrics() *Metrics {
	return &Metrics{
		SeedBits:         discard.NewGauge(),
		EntropyBytes:     discard.NewCounter(),
		Words:            discard.NewCounter(),
		Samples:          discard.NewCounter(),
		SampleRejections: discard.NewCounter(),
	}
}
