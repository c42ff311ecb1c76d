package qrcode

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dmitrymomot/qrkit/pkg/style"
)

const (
	defaultLogoTimeout  = 10 * time.Second
	defaultMaxLogoBytes = 2 << 20
	// MaxLogoPixels caps width×height of a raster logo before its pixels are decoded.
	MaxLogoPixels = 4096 * 4096
	mimeSVG       = "image/svg+xml"
)

// Logo is a decoded logo. Image is nil for SVG logos, which only the SVG
// backend can embed.
type Logo struct {
	MIME  string
	Data  []byte
	Image image.Image
}

// Aspect returns height/width, 1 when the dimensions are unknown.
func (l *Logo) Aspect() float64 {
	if l == nil || l.Image == nil {
		return 1
	}
	b := l.Image.Bounds()
	if b.Dx() == 0 {
		return 1
	}
	return float64(b.Dy()) / float64(b.Dx())
}

// Raster reports whether the logo can be drawn by the raster-based backends.
func (l *Logo) Raster() bool {
	return l != nil && l.Image != nil
}

// DataURI returns the logo re-encoded as a base64 data URI.
func (l *Logo) DataURI() string {
	return "data:" + l.MIME + ";base64," + base64.StdEncoding.EncodeToString(l.Data)
}

// LogoLoader resolves a style logo reference into a Logo.
// Data URIs are decoded locally; http(s) URLs are fetched only when remote logos are enabled.
type LogoLoader struct {
	client   *resty.Client
	remote   bool
	maxBytes int
}

// LogoOption configures a LogoLoader.
type LogoOption func(*LogoLoader)

// WithRemoteLogos allows fetching http(s) logos.
func WithRemoteLogos(enabled bool) LogoOption {
	return func(l *LogoLoader) {
		l.remote = enabled
	}
}

// WithHTTPClient replaces the resty client used for remote logos.
func WithHTTPClient(client *resty.Client) LogoOption {
	return func(l *LogoLoader) {
		if client != nil {
			l.client = client
		}
	}
}

// WithLogoTimeout bounds each remote fetch.
func WithLogoTimeout(d time.Duration) LogoOption {
	return func(l *LogoLoader) {
		if d > 0 {
			l.client.SetTimeout(d)
		}
	}
}

// WithMaxLogoBytes limits the size of a logo, decoded or fetched.
func WithMaxLogoBytes(n int) LogoOption {
	return func(l *LogoLoader) {
		if n > 0 {
			l.maxBytes = n
		}
	}
}

func NewLogoLoader(opts ...LogoOption) *LogoLoader {
	l := &LogoLoader{
		client: resty.New().
			SetTimeout(defaultLogoTimeout).
			SetHeader("Accept", "image/png, image/jpeg, image/gif, image/svg+xml"),
		maxBytes: defaultMaxLogoBytes,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load resolves ref, a data URI, an http(s) URL or a preset ID.
// Presets are fetched like any other remote logo.
func (l *LogoLoader) Load(ctx context.Context, ref string) (*Logo, error) {
	ref = style.ResolveLogo(strings.TrimSpace(ref))
	switch {
	case style.IsDataURI(ref):
		mime, data, err := DecodeDataURI(ref)
		if err != nil {
			return nil, err
		}
		if len(data) > l.maxBytes {
			return nil, ErrLogoTooLarge
		}
		return decodeLogo(mime, data)
	case style.IsRemote(ref):
		if !l.remote {
			return nil, ErrRemoteLogoDisabled
		}
		return l.fetch(ctx, ref)
	}
	return nil, fmt.Errorf("%w: unsupported reference", ErrInvalidLogo)
}

func (l *LogoLoader) fetch(ctx context.Context, ref string) (*Logo, error) {
	resp, err := l.client.R().
		SetContext(ctx).
		SetResponseBodyLimit(l.maxBytes).
		Get(ref)
	if errors.Is(err, resty.ErrResponseBodyTooLarge) {
		return nil, ErrLogoTooLarge
	}
	if err != nil {
		return nil, errors.Join(ErrLogoFetch, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: http %d", ErrLogoFetch, resp.StatusCode())
	}

	data := resp.Body()
	if len(data) > l.maxBytes {
		return nil, ErrLogoTooLarge
	}

	mime := resp.Header().Get("Content-Type")
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	return decodeLogo(strings.TrimSpace(mime), data)
}

// DecodeDataURI splits "data:<mime>[;base64],<payload>" into its MIME type and bytes.
func DecodeDataURI(uri string) (string, []byte, error) {
	if len(uri) < 5 || !strings.EqualFold(uri[:5], "data:") {
		return "", nil, fmt.Errorf("%w: not a data URI", ErrInvalidLogo)
	}
	meta, payload, ok := strings.Cut(uri[5:], ",")
	if !ok {
		return "", nil, fmt.Errorf("%w: malformed data URI", ErrInvalidLogo)
	}

	params := strings.Split(meta, ";")
	mime := strings.ToLower(strings.TrimSpace(params[0]))
	isBase64 := false
	for _, p := range params[1:] {
		if strings.EqualFold(strings.TrimSpace(p), "base64") {
			isBase64 = true
		}
	}

	if isBase64 {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return "", nil, errors.Join(ErrInvalidLogo, err)
		}
		return mime, data, nil
	}

	text, err := url.PathUnescape(payload)
	if err != nil {
		return "", nil, errors.Join(ErrInvalidLogo, err)
	}
	return mime, []byte(text), nil
}

func isSVG(mime string, data []byte) bool {
	if strings.Contains(mime, "svg") {
		return true
	}
	head := bytes.ToLower(data[:min(len(data), 512)])
	return bytes.Contains(head, []byte("<svg"))
}

func decodeLogo(mime string, data []byte) (*Logo, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrInvalidLogo)
	}
	if isSVG(mime, data) {
		return &Logo{MIME: mimeSVG, Data: data}, nil
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Join(ErrInvalidLogo, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: empty image", ErrInvalidLogo)
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxLogoPixels {
		return nil, fmt.Errorf("%w: %dx%d pixels", ErrLogoTooLarge, cfg.Width, cfg.Height)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Join(ErrInvalidLogo, err)
	}
	return &Logo{MIME: "image/" + format, Data: data, Image: img}, nil
}

// scaleNearest resamples src to w×h with nearest-neighbor sampling.
func scaleNearest(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	b := src.Bounds()
	if w <= 0 || h <= 0 || b.Empty() {
		return dst
	}
	for y := range h {
		sy := b.Min.Y + (2*y+1)*b.Dy()/(2*h)
		for x := range w {
			sx := b.Min.X + (2*x+1)*b.Dx()/(2*w)
			dst.Set(x, y, src.At(sx, sy))
		}
	}
	return dst
}

// flatten composites img over an opaque background, for formats without alpha.
func flatten(img *image.RGBA, bg color.RGBA) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	for i := 0; i < len(img.Pix); i += 4 {
		a := uint32(img.Pix[i+3])
		for c := range 3 {
			// Pix is alpha-premultiplied.
			out.Pix[i+c] = uint8(uint32(img.Pix[i+c]) + uint32(bgComponent(bg, c))*(255-a)/255)
		}
		out.Pix[i+3] = 0xff
	}
	return out
}

func bgComponent(c color.RGBA, i int) uint8 {
	switch i {
	case 0:
		return c.R
	case 1:
		return c.G
	}
	return c.B
}
