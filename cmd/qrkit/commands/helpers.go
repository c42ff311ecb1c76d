// Package commands contains the qrkit CLI command implementations.
package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/qrkit/internal/config"
	"github.com/dmitrymomot/qrkit/internal/locales"
	"github.com/dmitrymomot/qrkit/internal/service"
	"github.com/dmitrymomot/qrkit/pkg/cache"
	"github.com/dmitrymomot/qrkit/pkg/httpserver"
	"github.com/dmitrymomot/qrkit/pkg/i18n"
	"github.com/dmitrymomot/qrkit/pkg/metrics"
	"github.com/dmitrymomot/qrkit/pkg/qrcode"
)

// Output formats of the non-server commands.
const (
	OutputText = "text"
	OutputJSON = "json"
)

var (
	ErrInvalidOutput = errors.New("invalid output format (valid options: text, json)")
	ErrInvalidField  = errors.New("invalid field, expected key=value")
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// Globals are the flags shared by every command.
type Globals struct {
	Lang   string
	Output string
}

func (g Globals) validate() error {
	switch g.Output {
	case "", OutputText, OutputJSON:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidOutput, g.Output)
}

func (g Globals) json() bool {
	return g.Output == OutputJSON
}

// runtime is what every command builds from the configuration.
type runtime struct {
	cfg     config.Config
	logger  *slog.Logger
	tr      *i18n.Translator
	lang    string
	svc     *service.Service
	checks  []httpserver.Check
	closers []func() error
}

type runtimeOption func(*runtimeOptions)

type runtimeOptions struct {
	metrics *metrics.Metrics
	logger  *slog.Logger
	cache   bool
}

func withMetrics(m *metrics.Metrics) runtimeOption {
	return func(o *runtimeOptions) { o.metrics = m }
}

func withLogger(l *slog.Logger) runtimeOption {
	return func(o *runtimeOptions) { o.logger = l }
}

// withCache opens the configured render cache; one-shot commands render uncached.
func withCache() runtimeOption {
	return func(o *runtimeOptions) { o.cache = true }
}

func newRuntime(ctx context.Context, cfg config.Config, lang string, opts ...runtimeOption) (*runtime, error) {
	o := runtimeOptions{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	rt := &runtime{cfg: cfg, logger: o.logger}

	tr, err := i18n.NewTranslator(ctx,
		i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, "."),
		i18n.WithDefaultLanguage(cfg.I18n.DefaultLanguage),
		i18n.WithLogger(o.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}
	rt.tr = tr
	rt.lang, _ = i18n.NewMatcher(tr.SupportedLanguages()...).Match(lang)

	renderOpts := []qrcode.Option{
		qrcode.WithLogger(o.logger),
		qrcode.WithLogoLoader(qrcode.NewLogoLoader(
			qrcode.WithRemoteLogos(cfg.Render.RemoteLogos),
			qrcode.WithLogoTimeout(cfg.Render.LogoTimeout),
			qrcode.WithMaxLogoBytes(cfg.Render.MaxLogoBytes),
		)),
	}
	if o.cache {
		store, err := rt.openCache(ctx)
		if err != nil {
			rt.close()
			return nil, err
		}
		if store != nil {
			renderOpts = append(renderOpts, qrcode.WithCache(store, cfg.Cache.TTL))
		}
	}

	rt.svc = service.New(
		service.WithRenderer(qrcode.NewRenderer(renderOpts...)),
		service.WithMetrics(o.metrics),
		service.WithLogger(o.logger),
		service.WithDefaultResolution(cfg.Render.DefaultSize),
	)
	return rt, nil
}

func (rt *runtime) openCache(ctx context.Context) (cache.Store, error) {
	switch rt.cfg.Cache.Backend {
	case config.CacheMemory:
		return cache.NewMemoryStore(rt.cfg.Cache.Size), nil
	case config.CacheRedis:
		client, err := cache.Connect(ctx, rt.cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		rt.closers = append(rt.closers, client.Close)
		rt.checks = append(rt.checks, httpserver.Check{Name: "redis", Fn: cache.Healthcheck(client)})
		return cache.NewRedisStore(client, rt.cfg.Cache.Prefix), nil
	}
	return nil, nil
}

// close releases the resources opened by newRuntime and logs failures.
func (rt *runtime) close() {
	for _, fn := range rt.closers {
		if err := fn(); err != nil {
			rt.logger.Error("failed to close resource", slog.Any("error", err))
		}
	}
}

// localize wraps err with the translated message of key.
func (rt *runtime) localize(key string, err error) error {
	return fmt.Errorf("%s: %w", rt.tr.T(rt.lang, key), err)
}

// parseFields turns repeated key=value flags into a field bag.
func parseFields(pairs []string) (map[string]string, error) {
	fields := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidField, pair)
		}
		fields[key] = value
	}
	return fields, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
