package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"breast-cancer-predictor/internal/core/domain"
	"breast-cancer-predictor/internal/core/ports/output"
)

// Recorder exports prediction outcomes as Prometheus metrics on its own registry.
type Recorder struct {
	registry    *prometheus.Registry
	predictions *prometheus.CounterVec
	failures    *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	modelLoaded *prometheus.GaugeVec
}

var _ ports.PredictionRecorder = (*Recorder)(nil)

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		predictions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "predictor_predictions_total",
				Help: "Completed predictions by variant and diagnosis",
			},
			[]string{"variant", "diagnosis"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "predictor_prediction_failures_total",
				Help: "Prediction attempts that produced no result",
			},
			[]string{"variant", "reason"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "predictor_inference_duration_seconds",
				Help:    "Classifier predict latency",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
			[]string{"variant"},
		),
		modelLoaded: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "predictor_model_loaded",
				Help: "1 when the variant's model bundle is loaded, 0 otherwise",
			},
			[]string{"variant"},
		),
	}

	r.registry.MustRegister(r.predictions, r.failures, r.latency, r.modelLoaded)
	r.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return r
}

func (r *Recorder) ModelState(variant string, state domain.ModelState) {
	v := 0.0
	if state == domain.ModelStateLoaded {
		v = 1
	}
	r.modelLoaded.WithLabelValues(variant).Set(v)
}

func (r *Recorder) PredictionSucceeded(variant string, diagnosis domain.Diagnosis, elapsed time.Duration) {
	r.predictions.WithLabelValues(variant, string(diagnosis)).Inc()
	r.latency.WithLabelValues(variant).Observe(elapsed.Seconds())
}

func (r *Recorder) PredictionFailed(variant string, reason string) {
	r.failures.WithLabelValues(variant, reason).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
