package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/qrkit/internal/api"
	"github.com/dmitrymomot/qrkit/internal/config"
	"github.com/dmitrymomot/qrkit/pkg/clientip"
	"github.com/dmitrymomot/qrkit/pkg/httpserver"
	"github.com/dmitrymomot/qrkit/pkg/logger"
	"github.com/dmitrymomot/qrkit/pkg/metrics"
	"github.com/dmitrymomot/qrkit/pkg/ratelimiter"
	"github.com/dmitrymomot/qrkit/pkg/requestid"
)

const metricsNamespace = "qrkit"

// RunServer starts the HTTP API and blocks until ctx is done or the process
// receives SIGINT/SIGTERM.
func RunServer(ctx context.Context, cfg config.Config, version string) error {
	log := cfg.Logger(logger.WithContextExtractors(requestid.LogExtractor()))
	logger.SetAsDefault(log)
	log.Info("starting server",
		slog.String("version", version),
		slog.String("env", cfg.App.Env),
		slog.String("cache", cfg.Cache.Backend),
	)

	m := metrics.New(metricsNamespace)
	rt, err := newRuntime(ctx, cfg, cfg.I18n.DefaultLanguage, withLogger(log), withMetrics(m), withCache())
	if err != nil {
		return err
	}
	defer rt.close()

	opts := []api.Option{
		api.WithLogger(log),
		api.WithMetrics(m),
		api.WithHealthChecks(rt.checks...),
		api.WithMaxBodyBytes(cfg.API.MaxBodyBytes),
	}
	if cfg.API.TrustProxy {
		opts = append(opts, api.WithClientIPResolver(clientip.New()))
	}
	if cfg.API.RateLimit {
		store := ratelimiter.NewMemoryStore()
		defer store.Close()
		limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
			Capacity:       cfg.API.RateLimitBurst,
			RefillRate:     cfg.API.RateLimitRefill,
			RefillInterval: cfg.API.RateLimitInterval,
		})
		if err != nil {
			return fmt.Errorf("failed to create rate limiter: %w", err)
		}
		opts = append(opts, api.WithRenderLimiter(limiter))
	}

	handler := api.New(rt.svc, rt.tr, opts...).Handler()
	return httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, handler)
}
