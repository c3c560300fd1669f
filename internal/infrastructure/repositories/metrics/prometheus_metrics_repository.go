package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rios0rios0/depstatus/internal/domain/entities"
)

const (
	variantSuccess = "success"
	variantFailure = "failure"
)

// PrometheusMetricsRepository collects render metrics in a private registry so
// they can be exported to a node-exporter textfile after a run.
type PrometheusMetricsRepository struct {
	registry  *prometheus.Registry
	rendered  *prometheus.CounterVec
	duration  prometheus.Histogram
	outdated  prometheus.Gauge
	totalDeps prometheus.Gauge
}

// NewPrometheusMetricsRepository creates and registers the depstatus collectors.
func NewPrometheusMetricsRepository() *PrometheusMetricsRepository {
	it := &PrometheusMetricsRepository{
		registry: prometheus.NewRegistry(),
		rendered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "depstatus_pages_rendered_total",
				Help: "Number of status pages rendered by variant.",
			},
			[]string{"variant"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "depstatus_render_duration_seconds",
				Help:    "Time taken to analyze and render a status page.",
				Buckets: prometheus.DefBuckets,
			},
		),
		outdated: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "depstatus_outdated_dependencies",
				Help: "Number of outdated dependencies on the last successfully rendered page.",
			},
		),
		totalDeps: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "depstatus_dependencies",
				Help: "Number of dependencies on the last successfully rendered page.",
			},
		),
	}

	it.registry.MustRegister(it.rendered, it.duration, it.outdated, it.totalDeps)
	return it
}

// ObserveRender records one rendered page. A nil outcome counts as a failure page.
func (it *PrometheusMetricsRepository) ObserveRender(
	outcome *entities.AnalyzeDependenciesOutcome,
	elapsed time.Duration,
) {
	it.duration.Observe(elapsed.Seconds())

	if outcome == nil {
		it.rendered.WithLabelValues(variantFailure).Inc()
		return
	}

	it.rendered.WithLabelValues(variantSuccess).Inc()
	it.outdated.Set(float64(outcome.CountOutdated()))
	it.totalDeps.Set(float64(outcome.CountTotal()))
}

// Flush writes all collected metrics to path in the text exposition format.
func (it *PrometheusMetricsRepository) Flush(path string) error {
	if err := prometheus.WriteToTextfile(path, it.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %q: %w", path, err)
	}
	return nil
}

// Registry exposes the underlying registry.
func (it *PrometheusMetricsRepository) Registry() *prometheus.Registry {
	return it.registry
}
