package ratelimiter

import (
	"hash/fnv"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrymomot/qrkit/pkg/clientip"
)

// maxKeyLength bounds stored keys; longer composite keys are hashed.
const maxKeyLength = 64

// KeyFunc extracts a rate limit key from the request.
type KeyFunc func(r *http.Request) string

// ByIP keys requests by client address, preferring the one stored by
// clientip.Middleware and resolving with res otherwise.
func ByIP(res *clientip.Resolver) KeyFunc {
	if res == nil {
		res = clientip.New()
	}
	return func(r *http.Request) string {
		if ip := clientip.FromContext(r.Context()); ip != "" {
			return ip
		}
		return res.IP(r)
	}
}

// Composite joins the non-empty keys of keyFuncs. Keys over 64 characters are
// replaced by their FNV-1a hash.
func Composite(keyFuncs ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(keyFuncs))
		for _, fn := range keyFuncs {
			if key := fn(r); key != "" {
				parts = append(parts, key)
			}
		}
		combined := strings.Join(parts, ":")
		if len(combined) > maxKeyLength {
			h := fnv.New64a()
			h.Write([]byte(combined))
			return strconv.FormatUint(h.Sum64(), 36)
		}
		return combined
	}
}

type middlewareConfig struct {
	keyFunc KeyFunc
	denied  func(w http.ResponseWriter, r *http.Request, res *Result)
	failed  func(w http.ResponseWriter, r *http.Request, err error)
}

type MiddlewareOption func(*middlewareConfig)

// WithKeyFunc sets the request key. Default ByIP(nil).
func WithKeyFunc(fn KeyFunc) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.keyFunc = fn
		}
	}
}

// WithDeniedHandler writes the response of a limited request. Headers are already set.
func WithDeniedHandler(fn func(w http.ResponseWriter, r *http.Request, res *Result)) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.denied = fn
		}
	}
}

// WithErrorHandler writes the response when the limiter itself fails.
func WithErrorHandler(fn func(w http.ResponseWriter, r *http.Request, err error)) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.failed = fn
		}
	}
}

// Middleware takes one token per request from limiter.
func Middleware(limiter RateLimiter, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		keyFunc: ByIP(nil),
		denied: func(w http.ResponseWriter, _ *http.Request, _ *Result) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		},
		failed: func(w http.ResponseWriter, _ *http.Request, _ error) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			result, err := limiter.Allow(r.Context(), cfg.keyFunc(r))
			if err != nil {
				cfg.failed(w, r, err)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, result.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed() {
				if secs := int(result.RetryAfter().Seconds() + 0.999); secs > 0 {
					h.Set("Retry-After", strconv.Itoa(secs))
				}
				cfg.denied(w, r, result)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
