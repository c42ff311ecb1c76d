package qrcode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/qrkit/pkg/cache"
	"github.com/dmitrymomot/qrkit/pkg/style"
)

// cachePrefix namespaces rendered symbols in a shared cache.
const cachePrefix = "qr"

// Output is a rendered symbol.
type Output struct {
	Data   []byte
	Format style.Format
	Size   int
	// Cached is true when Data came from the cache.
	Cached bool
}

func (o *Output) MIMEType() string {
	return o.Format.MIMEType()
}

func (o *Output) Filename() string {
	return o.Format.Filename()
}

// Renderer draws styled symbols. It is safe for concurrent use.
type Renderer struct {
	logos    *LogoLoader
	cache    cache.Store
	cacheTTL time.Duration
	logger   *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithCache stores rendered output in store for ttl (zero keeps entries until evicted).
func WithCache(store cache.Store, ttl time.Duration) Option {
	return func(r *Renderer) {
		r.cache = store
		r.cacheTTL = ttl
	}
}

// WithLogoLoader replaces the default loader, which only accepts data URIs.
func WithLogoLoader(l *LogoLoader) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logos = l
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		logos:  NewLogoLoader(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws content with s as format f. A non-positive size uses s.Resolution;
// every size is clamped to the accepted resolution range.
func (r *Renderer) Render(ctx context.Context, content string, s style.Style, f style.Format, size int) (*Output, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if err := s.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidStyle, err)
	}
	if !slices.Contains(style.Formats(), f) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if err := s.CheckExport(f); err != nil {
		return nil, err
	}
	size = style.ClampSize(size, s.Resolution)

	key := r.cacheKey(content, s, f, size)
	if data, ok := r.lookup(ctx, key); ok {
		return &Output{Data: data, Format: f, Size: size, Cached: true}, nil
	}

	data, err := r.draw(ctx, content, s, f, size)
	if err != nil {
		return nil, err
	}

	r.store(ctx, key, data)
	return &Output{Data: data, Format: f, Size: size}, nil
}

func (r *Renderer) draw(ctx context.Context, content string, s style.Style, f style.Format, size int) ([]byte, error) {
	bitmap, err := Matrix(content)
	if err != nil {
		return nil, err
	}

	var logo *Logo
	if s.HasLogo() {
		if logo, err = r.logos.Load(ctx, s.Logo); err != nil {
			return nil, err
		}
		if !logo.Raster() && f != style.FormatSVG {
			// Nothing to draw, so keep every module.
			r.logger.DebugContext(ctx, "vector logo skipped for raster-based format",
				slog.String("format", string(f)), slog.String("mime", logo.MIME))
			logo = nil
		}
	}

	aspect := 0.0
	if logo != nil {
		aspect = logo.Aspect()
	}
	l := buildLayout(bitmap, s, size, aspect)

	pal, err := newPalette(s)
	if err != nil {
		return nil, errors.Join(ErrInvalidStyle, err)
	}

	switch f {
	case style.FormatPNG:
		return encodePNG(l, pal, logo)
	case style.FormatSVG:
		return encodeSVG(l, pal, logo), nil
	case style.FormatPDF:
		return encodePDF(l, pal, logo)
	case style.FormatEPS:
		return encodeEPS(l, pal, logo), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

func (r *Renderer) cacheKey(content string, s style.Style, f style.Format, size int) string {
	if r.cache == nil {
		return ""
	}
	styleJSON, err := json.Marshal(s)
	if err != nil {
		return ""
	}
	return cache.Key(cachePrefix, content, string(styleJSON), string(f), strconv.Itoa(size))
}

func (r *Renderer) lookup(ctx context.Context, key string) ([]byte, bool) {
	if key == "" {
		return nil, false
	}
	data, err := r.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			r.logger.WarnContext(ctx, "render cache lookup failed", slog.String("error", err.Error()))
		}
		return nil, false
	}
	return data, true
}

func (r *Renderer) store(ctx context.Context, key string, data []byte) {
	if key == "" {
		return
	}
	if err := r.cache.Set(ctx, key, data, r.cacheTTL); err != nil {
		r.logger.WarnContext(ctx, "render cache store failed", slog.String("error", err.Error()))
	}
}
