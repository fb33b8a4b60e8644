package metrics

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mercator-hq/ganymede/pkg/benchmark"
)

// Config contains metrics recorder configuration.
type Config struct {
	// Enabled controls whether metrics are recorded at all.
	Enabled bool

	// Namespace is the metric name namespace. Default: "ganymede".
	Namespace string

	// Subsystem is the metric name subsystem. Default: "benchmark".
	Subsystem string
}

// Recorder records benchmark summaries into a Prometheus registry.
// It implements benchmark.Sink.
type Recorder struct {
	config   Config
	registry *prometheus.Registry

	runsTotal      prometheus.Counter
	latencyMS      *prometheus.HistogramVec
	tokensEstimate *prometheus.HistogramVec
	costTotal      *prometheus.CounterVec
	failuresTotal  *prometheus.CounterVec
	winsTotal      *prometheus.CounterVec
}

// NewRecorder creates and registers the benchmark metrics. If registry is
// nil a fresh registry is created.
func NewRecorder(cfg Config, registry *prometheus.Registry) *Recorder {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "ganymede"
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = "benchmark"
	}

	labels := []string{"model_id", "provider"}

	r := &Recorder{
		config:   cfg,
		registry: registry,

		runsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "runs_total",
			Help:      "Benchmark runs recorded",
		}),

		latencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "latency_ms",
			Help:      "Per-model call latency in milliseconds",
			// LLM calls land anywhere from sub-second to tens of seconds.
			Buckets: []float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000},
		}, labels),

		tokensEstimate: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "tokens_estimate",
			Help:      "Per-model estimated token usage",
			Buckets:   []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
		}, labels),

		costTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "cost_usd_total",
			Help:      "Accumulated estimated cost in USD",
		}, labels),

		failuresTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "failures_total",
			Help:      "Failed model calls",
		}, labels),

		winsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "wins_total",
			Help:      "Winner selections by model",
		}, labels),
	}

	registry.MustRegister(
		r.runsTotal,
		r.latencyMS,
		r.tokensEstimate,
		r.costTotal,
		r.failuresTotal,
		r.winsTotal,
	)

	return r
}

// Record implements benchmark.Sink.
func (r *Recorder) Record(summary benchmark.Summary) {
	if !r.config.Enabled {
		return
	}

	r.runsTotal.Inc()

	for _, res := range summary.Results {
		modelID := sanitizeLabel(res.ModelID)
		provider := res.Provider

		if !res.Succeeded {
			r.failuresTotal.WithLabelValues(modelID, provider).Inc()
			continue
		}

		r.latencyMS.WithLabelValues(modelID, provider).Observe(res.LatencyMS)
		r.tokensEstimate.WithLabelValues(modelID, provider).Observe(float64(res.TokensEstimate))
		r.costTotal.WithLabelValues(modelID, provider).Add(res.EstimatedCostUSD)

		if res.ModelID == summary.Winner {
			r.winsTotal.WithLabelValues(modelID, provider).Inc()
		}
	}
}

// Handler returns the HTTP handler for the metrics endpoint.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	})
}

// sanitizeLabel normalizes model ids for stable metric labels.
func sanitizeLabel(id string) string {
	return strings.ReplaceAll(id, "/", "_")
}
