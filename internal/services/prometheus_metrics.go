package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics
const (
	MetricReportGenerated     = "report.generated"
	MetricReportDuration      = "report.generation"
	MetricSourceLoad          = "source.load"
	MetricSourceLoadDuration  = "source.load.duration"
	MetricDatasetRows         = "dataset.rows"
	MetricChartRequested      = "chart.requested"
	MetricCircuitBreakerState = "circuit_breaker.state"
)

type PrometheusMetrics struct {
	reportsGenerated    *prometheus.CounterVec
	reportDuration      prometheus.Histogram
	sourceLoads         *prometheus.CounterVec
	sourceLoadDuration  prometheus.Histogram
	datasetRows         *prometheus.GaugeVec
	chartRequests       *prometheus.CounterVec
	circuitBreakerState *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the pipeline collectors on reg. A nil reg
// uses the default registerer.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		reportsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_generated_total",
				Help: "Total number of report generations",
			},
			[]string{"status"},
		),
		reportDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "report_generation_duration_milliseconds",
				Help:    "Report generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		sourceLoads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "source_loads_total",
				Help: "Total number of input table loads",
			},
			[]string{"kind", "status"},
		),
		sourceLoadDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "source_load_duration_seconds",
				Help:    "Input table load duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		datasetRows: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "dataset_rows",
				Help: "Number of rows in the cached input tables",
			},
			[]string{"table"},
		),
		chartRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chart_requests_total",
				Help: "Total number of chart dataset requests",
			},
			[]string{"kind"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case MetricReportGenerated:
		if status != "" {
			m.reportsGenerated.WithLabelValues(status).Inc()
		}
	case MetricSourceLoad:
		if status != "" {
			m.sourceLoads.WithLabelValues(tags["kind"], status).Inc()
		}
	case MetricChartRequested:
		if kind := tags["kind"]; kind != "" {
			m.chartRequests.WithLabelValues(kind).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricReportDuration:
		m.reportDuration.Observe(float64(duration.Milliseconds()))
	case MetricSourceLoadDuration:
		m.sourceLoadDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricDatasetRows:
		if table := tags["table"]; table != "" {
			m.datasetRows.WithLabelValues(table).Set(value)
		}
	case MetricCircuitBreakerState:
		if service := tags["service"]; service != "" {
			m.circuitBreakerState.WithLabelValues(service).Set(value)
		}
	}
}

// NoopMetrics discards every measurement
type NoopMetrics struct{}

func (NoopMetrics) IncrementCounter(string, map[string]string) {}
func (NoopMetrics) RecordProcessingTime(string, time.Duration) {}
func (NoopMetrics) RecordGauge(string, float64, map[string]string) {}
