// Package metrics exposes qrkit's Prometheus instruments.
//
// Every Metrics owns its registry, so tests and embedded servers never collide
// on the global default registry. A nil *Metrics is valid and records nothing,
// which lets the CLI share code paths with the server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Latency buckets in seconds.
var (
	HTTPLatencyBuckets   = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
	RenderLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}
)

// Render outcomes.
const (
	RenderOK       = "ok"
	RenderCacheHit = "cache_hit"
	RenderError    = "error"
)

type Metrics struct {
	registry *prometheus.Registry

	httpDuration   *prometheus.HistogramVec
	inFlight       prometheus.Gauge
	validations    *prometheus.CounterVec
	encodes        *prometheus.CounterVec
	renders        *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
}

// New registers every instrument under namespace, plus the Go runtime and process collectors.
func New(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds.",
				Buckets:   HTTPLatencyBuckets,
			},
			[]string{"method", "route", "status_code"},
		),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_in_flight_requests",
			Help:      "Requests currently being served.",
		}),
		validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validations_total",
				Help:      "Payload validations by content type and result.",
			},
			[]string{"type", "result"},
		),
		encodes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "encodes_total",
				Help:      "Encoded payloads by content type.",
			},
			[]string{"type"},
		),
		renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "renders_total",
				Help:      "Rendered symbols by export format and outcome.",
			},
			[]string{"format", "outcome"},
		),
		renderDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "render_duration_seconds",
				Help:      "Symbol rendering duration in seconds, cache hits included.",
				Buckets:   RenderLatencyBuckets,
			},
			[]string{"format"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpDuration,
		m.inFlight,
		m.validations,
		m.encodes,
		m.renders,
		m.renderDuration,
	)
	return m
}

// Registry returns the registry the instruments are registered with.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		Registry:          m.registry,
		EnableOpenMetrics: true,
	})
}

func (m *Metrics) ObserveValidation(contentType, result string) {
	if m == nil {
		return
	}
	m.validations.WithLabelValues(contentType, result).Inc()
}

func (m *Metrics) ObserveEncode(contentType string) {
	if m == nil {
		return
	}
	m.encodes.WithLabelValues(contentType).Inc()
}

// ObserveRender records one render attempt with outcome RenderOK, RenderCacheHit or RenderError.
func (m *Metrics) ObserveRender(format, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.renders.WithLabelValues(format, outcome).Inc()
	if outcome != RenderError {
		m.renderDuration.WithLabelValues(format).Observe(d.Seconds())
	}
}

// Middleware records the duration of every request. route maps a served request
// to a low-cardinality label such as the router pattern; it runs after the handler.
func (m *Metrics) Middleware(route func(*http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			m.inFlight.Inc()
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			defer func() {
				m.inFlight.Dec()
				label := "unmatched"
				if route != nil {
					if p := route(r); p != "" {
						label = p
					}
				}
				m.httpDuration.WithLabelValues(r.Method, label, strconv.Itoa(wrapped.statusCode)).
					Observe(time.Since(start).Seconds())
			}()

			next.ServeHTTP(wrapped, r)
		})
	}
}

// responseWriter captures the status code written by the handler.
type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
