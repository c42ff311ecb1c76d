package clientip_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/qrkit/pkg/clientip"
)

func TestResolverIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		opts       []clientip.Option
		want       string
	}{
		{name: "remote addr with port", remoteAddr: "203.0.113.7:51234", want: "203.0.113.7"},
		{name: "remote addr without port", remoteAddr: "203.0.113.7", want: "203.0.113.7"},
		{name: "ipv6 remote addr", remoteAddr: "[2001:db8::1]:443", want: "2001:db8::1"},
		{name: "forwarded first entry", headers: map[string]string{"X-Forwarded-For": "198.51.100.1, 10.0.0.1"}, remoteAddr: "10.0.0.2:1", want: "198.51.100.1"},
		{name: "forwarded skips garbage", headers: map[string]string{"X-Forwarded-For": "unknown, 198.51.100.2"}, remoteAddr: "10.0.0.2:1", want: "198.51.100.2"},
		{name: "real ip after forwarded", headers: map[string]string{"X-Real-IP": "198.51.100.3"}, remoteAddr: "10.0.0.2:1", want: "198.51.100.3"},
		{name: "invalid header falls back", headers: map[string]string{"X-Real-IP": "not-an-ip"}, remoteAddr: "10.0.0.2:1", want: "10.0.0.2"},
		{name: "headers disabled", headers: map[string]string{"X-Forwarded-For": "198.51.100.1"}, remoteAddr: "10.0.0.2:1", opts: []clientip.Option{clientip.WithHeaders()}, want: "10.0.0.2"},
		{name: "custom header", headers: map[string]string{"CF-Connecting-IP": "192.0.2.9", "X-Forwarded-For": "198.51.100.1"}, remoteAddr: "10.0.0.2:1", opts: []clientip.Option{clientip.WithHeaders("CF-Connecting-IP")}, want: "192.0.2.9"},
		{name: "nothing parses", remoteAddr: "pipe", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientip.New(tt.opts...).IP(req))
		})
	}
}

func TestGetIP(t *testing.T) {
	t.Parallel()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.10")
	assert.Equal(t, "198.51.100.10", clientip.GetIP(req))
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	h := clientip.Middleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = clientip.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.44:8080"
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "192.0.2.44", got)
	assert.Empty(t, clientip.FromContext(req.Context()))
}
