package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/pkg/metrics"
)

// sample returns the value of the counter or histogram count named name whose
// labels include all of labels.
func sample(t *testing.T, m *metrics.Metrics, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)

	var total float64
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
	metric:
		for _, metric := range f.GetMetric() {
			got := map[string]string{}
			for _, lp := range metric.GetLabel() {
				got[lp.GetName()] = lp.GetValue()
			}
			for k, v := range labels {
				if got[k] != v {
					continue metric
				}
			}
			switch {
			case metric.GetCounter() != nil:
				total += metric.GetCounter().GetValue()
			case metric.GetHistogram() != nil:
				total += float64(metric.GetHistogram().GetSampleCount())
			case metric.GetGauge() != nil:
				total += metric.GetGauge().GetValue()
			}
		}
	}
	return total
}

func TestCounters(t *testing.T) {
	t.Parallel()
	m := metrics.New("qrkit")

	m.ObserveValidation("URL", "valid")
	m.ObserveValidation("URL", "valid")
	m.ObserveValidation("PHONE", "invalidPhoneLength")
	m.ObserveEncode("WIFI")
	m.ObserveRender("png", metrics.RenderOK, 20*time.Millisecond)
	m.ObserveRender("png", metrics.RenderCacheHit, time.Millisecond)
	m.ObserveRender("pdf", metrics.RenderError, 0)

	assert.Equal(t, 2.0, sample(t, m, "qrkit_validations_total", map[string]string{"type": "URL", "result": "valid"}))
	assert.Equal(t, 1.0, sample(t, m, "qrkit_validations_total", map[string]string{"type": "PHONE"}))
	assert.Equal(t, 1.0, sample(t, m, "qrkit_encodes_total", map[string]string{"type": "WIFI"}))
	assert.Equal(t, 1.0, sample(t, m, "qrkit_renders_total", map[string]string{"format": "png", "outcome": "cache_hit"}))
	assert.Equal(t, 1.0, sample(t, m, "qrkit_renders_total", map[string]string{"format": "pdf", "outcome": "error"}))
	assert.Equal(t, 2.0, sample(t, m, "qrkit_render_duration_seconds", map[string]string{"format": "png"}))
	assert.Equal(t, 0.0, sample(t, m, "qrkit_render_duration_seconds", map[string]string{"format": "pdf"}))
}

func TestMiddleware(t *testing.T) {
	t.Parallel()
	m := metrics.New("qrkit")

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/types", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/v1/render", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.WriteHeader(http.StatusInternalServerError)
	})
	h := m.Middleware(func(r *http.Request) string {
		if r.Pattern == "" {
			return ""
		}
		return r.URL.Path
	})(mux)

	for _, path := range []string{"/v1/types", "/v1/types", "/v1/render"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, 2.0, sample(t, m, "qrkit_http_request_duration_seconds",
		map[string]string{"route": "/v1/types", "status_code": "200", "method": "GET"}))
	assert.Equal(t, 1.0, sample(t, m, "qrkit_http_request_duration_seconds",
		map[string]string{"route": "/v1/render", "status_code": "422"}))
	assert.Equal(t, 0.0, sample(t, m, "qrkit_http_in_flight_requests", nil))
}

func TestHandler(t *testing.T) {
	t.Parallel()
	m := metrics.New("qrkit")
	m.ObserveEncode("URL")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `qrkit_encodes_total{type="URL"} 1`))
	assert.Contains(t, string(body), "go_goroutines")
}

func TestNilMetrics(t *testing.T) {
	t.Parallel()
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.ObserveValidation("URL", "valid")
		m.ObserveEncode("URL")
		m.ObserveRender("png", metrics.RenderOK, time.Second)
	})

	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })
	m.Middleware(nil)(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, called)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
