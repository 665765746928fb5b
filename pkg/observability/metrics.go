package observability

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/mamdani/pkg/domain"
)

const namespace = "mamdani"

// Metrics records engine activity as Prometheus collectors.
type Metrics struct {
	registry      *prometheus.Registry
	Fuzzifies     *prometheus.CounterVec
	Inferences    *prometheus.CounterVec
	EmptyResults  *prometheus.CounterVec
	StageDuration *prometheus.HistogramVec
	StageErrors   *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on a dedicated registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Fuzzifies: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fuzzify_total",
				Help:      "Total number of fuzzifications by variable and outcome",
			},
			[]string{"variable", "outcome"},
		),
		Inferences: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "inferences_total",
				Help:      "Total number of controller inferences by outcome",
			},
			[]string{"controller", "outcome"},
		),
		EmptyResults: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "inferences_empty_total",
				Help:      "Inferences where no rule fired",
			},
			[]string{"controller"},
		),
		StageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "stage_duration_seconds",
				Help:      "Duration of pipeline stage evaluations",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
			[]string{"stage"},
		),
		StageErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "stage_errors_total",
				Help:      "Pipeline stages that failed",
			},
			[]string{"stage"},
		),
	}
	m.registry.MustRegister(m.Fuzzifies, m.Inferences, m.EmptyResults, m.StageDuration, m.StageErrors)
	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the collected metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnFuzzify: func(_ context.Context, e *domain.FuzzifyEvent) {
			m.Fuzzifies.WithLabelValues(e.Variable, outcome(e.Err)).Inc()
		},
		OnInfer: func(_ context.Context, e *domain.InferEvent) {
			m.Inferences.WithLabelValues(e.Controller, outcome(e.Err)).Inc()
			if e.Err == nil && len(e.Result) == 0 {
				m.EmptyResults.WithLabelValues(e.Controller).Inc()
			}
		},
		OnStageLeave: func(_ context.Context, e *domain.StageEvent) {
			m.StageDuration.WithLabelValues(e.Stage).Observe(e.Duration.Seconds())
			if e.Err != nil {
				m.StageErrors.WithLabelValues(e.Stage).Inc()
			}
		},
	}
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
