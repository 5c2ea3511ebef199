package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	metricsCalculated   *prometheus.CounterVec
	reportsGenerated    *prometheus.CounterVec
	anomaliesDetected   *prometheus.CounterVec
	savingsMutations    *prometheus.CounterVec
	projectedSavings    prometheus.Histogram
	scoringRequests     *prometheus.CounterVec
	scoringDuration     prometheus.Histogram
	circuitBreakerState prometheus.Gauge
	healthScore         prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		metricsCalculated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_metrics_calculated_total",
				Help: "Total number of metric calculations by granularity",
			},
			[]string{"granularity"},
		),
		reportsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_reports_generated_total",
				Help: "Total number of reports generated by granularity",
			},
			[]string{"granularity"},
		),
		anomaliesDetected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "anomalies_detected_total",
				Help: "Total number of anomalies detected by type and severity",
			},
			[]string{"type", "severity"},
		),
		savingsMutations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "savings_mutations_total",
				Help: "Total number of savings goal and rule mutations",
			},
			[]string{"operation"},
		),
		projectedSavings: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "projected_savings_amount",
				Help:    "Projected savings amounts in base currency units",
				Buckets: prometheus.ExponentialBuckets(100, 10, 6),
			},
		),
		scoringRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scoring_requests_total",
				Help: "Total number of scoring requests by outcome",
			},
			[]string{"outcome"},
		),
		scoringDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "scoring_request_duration_seconds",
				Help:    "Scoring request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		circuitBreakerState: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "scoring_circuit_breaker_state",
				Help: "Scoring circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
		),
		healthScore: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "financial_health_score",
				Help: "Last computed financial health score",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "metrics.calculated":
		m.metricsCalculated.WithLabelValues(tags["granularity"]).Inc()
	case "report.generated":
		m.reportsGenerated.WithLabelValues(tags["granularity"]).Inc()
	case "anomaly.detected":
		m.anomaliesDetected.WithLabelValues(tags["type"], tags["severity"]).Inc()
	case "savings.mutation":
		if op := tags["operation"]; op != "" {
			m.savingsMutations.WithLabelValues(op).Inc()
		}
	case "scoring.request":
		if outcome := tags["outcome"]; outcome != "" {
			m.scoringRequests.WithLabelValues(outcome).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "scoring.request":
		m.scoringDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "circuit_breaker.state":
		m.circuitBreakerState.Set(value)
	case "health.score":
		m.healthScore.Set(value)
	case "savings.projected":
		m.projectedSavings.Observe(value)
	}
}
