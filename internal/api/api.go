// Package api serves qrkit over HTTP.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/qrkit/internal/service"
	"github.com/dmitrymomot/qrkit/pkg/binder"
	"github.com/dmitrymomot/qrkit/pkg/clientip"
	"github.com/dmitrymomot/qrkit/pkg/httpserver"
	"github.com/dmitrymomot/qrkit/pkg/i18n"
	"github.com/dmitrymomot/qrkit/pkg/metrics"
	"github.com/dmitrymomot/qrkit/pkg/ratelimiter"
	"github.com/dmitrymomot/qrkit/pkg/requestid"
)

// API holds the handlers and their dependencies. Build it with New and serve Handler.
type API struct {
	svc      *service.Service
	tr       *i18n.Translator
	matcher  *i18n.Matcher
	metrics  *metrics.Metrics
	logger   *slog.Logger
	checks   []httpserver.Check
	ip       *clientip.Resolver
	limiter  ratelimiter.RateLimiter
	maxBody  int64
	bindJSON func(*http.Request, any) error
}

type Option func(*API)

// WithMetrics instruments every request and exposes GET /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(a *API) {
		a.metrics = m
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithHealthChecks adds readiness checks to GET /healthz.
func WithHealthChecks(checks ...httpserver.Check) Option {
	return func(a *API) {
		a.checks = append(a.checks, checks...)
	}
}

// WithClientIPResolver sets how client addresses are resolved. Default: RemoteAddr only.
func WithClientIPResolver(res *clientip.Resolver) Option {
	return func(a *API) {
		if res != nil {
			a.ip = res
		}
	}
}

// WithRenderLimiter throttles POST /v1/render per client address.
func WithRenderLimiter(l ratelimiter.RateLimiter) Option {
	return func(a *API) {
		a.limiter = l
	}
}

// WithMaxBodyBytes caps JSON request bodies. Default binder.DefaultMaxJSONSize.
func WithMaxBodyBytes(n int64) Option {
	return func(a *API) {
		if n > 0 {
			a.maxBody = n
		}
	}
}

func New(svc *service.Service, tr *i18n.Translator, opts ...Option) *API {
	a := &API{
		svc:     svc,
		tr:      tr,
		logger:  slog.New(slog.DiscardHandler),
		ip:      clientip.New(clientip.WithHeaders()),
		maxBody: binder.DefaultMaxJSONSize,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.matcher = i18n.NewMatcher(tr.SupportedLanguages()...)
	a.bindJSON = binder.JSON(binder.WithMaxSize(a.maxBody))
	return a
}

// Handler returns the router with the full middleware stack.
func (a *API) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware(a.ip))
	r.Use(a.metrics.Middleware(routePattern))
	r.Use(a.accessLog)
	r.Use(middleware.Recoverer)
	r.Use(i18n.Middleware(i18n.DefaultLangExtractor(a.matcher)))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		a.fail(w, r, ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		a.fail(w, r, ErrMethodNotAllowed)
	})

	r.Get("/livez", httpserver.HealthCheckHandler(a.logger))
	r.Get("/healthz", httpserver.HealthCheckHandler(a.logger, a.checks...))
	if a.metrics != nil {
		r.Method(http.MethodGet, "/metrics", a.metrics.Handler())
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/types", a.types)
		r.Get("/templates", a.templates)
		r.Post("/validate", a.validate)
		r.Post("/encode", a.encode)
		r.Post("/mask", a.mask)

		var limit []func(http.Handler) http.Handler
		if a.limiter != nil {
			limit = append(limit, ratelimiter.Middleware(a.limiter,
				ratelimiter.WithKeyFunc(ratelimiter.ByIP(a.ip)),
				ratelimiter.WithDeniedHandler(func(w http.ResponseWriter, r *http.Request, _ *ratelimiter.Result) {
					a.fail(w, r, ErrTooManyRequests)
				}),
				ratelimiter.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
					a.fail(w, r, err)
				}),
			))
		}
		r.With(limit...).Post("/render", a.render)
	})

	return r
}
