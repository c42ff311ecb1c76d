// Package service composes payload validation, encoding and rendering into the
// use cases shared by the HTTP API and the CLI.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/qrkit/pkg/logger"
	"github.com/dmitrymomot/qrkit/pkg/metrics"
	"github.com/dmitrymomot/qrkit/pkg/payload"
	"github.com/dmitrymomot/qrkit/pkg/phone"
	"github.com/dmitrymomot/qrkit/pkg/qrcode"
	"github.com/dmitrymomot/qrkit/pkg/style"
)

var ErrUnknownTemplate = errors.New("service: unknown template")

// Validation results recorded besides the error kinds.
const (
	resultValid      = "valid"
	resultIncomplete = "incomplete"
)

// Input is the user-facing description of one payload.
type Input struct {
	Type         payload.ContentType
	PhoneSubtype phone.Subtype
	Fields       payload.Fields
}

// ParseInput resolves the textual type and subtype. An empty subtype is the default one.
func ParseInput(typ, subtype string, fields map[string]string) (Input, error) {
	t, err := payload.ParseContentType(typ)
	if err != nil {
		return Input{}, err
	}
	st, err := phone.ParseSubtype(subtype)
	if err != nil {
		return Input{}, err
	}
	return Input{Type: t, PhoneSubtype: st, Fields: payload.Fields(fields)}, nil
}

// Content projects the field bag onto the typed content of in.Type.
func (in Input) Content() payload.Content {
	return payload.FromFields(in.Type, in.PhoneSubtype, in.Fields)
}

// Encoded is a payload accepted by the validator.
type Encoded struct {
	Payload string         `json:"payload"`
	Result  payload.Result `json:"result"`
}

// Masked is the display form of a phone number.
type Masked struct {
	Masked   string `json:"masked"`
	Digits   string `json:"digits"`
	Complete bool   `json:"complete"`
}

// RenderRequest describes one export.
type RenderRequest struct {
	Input Input
	// Style starts from DefaultStyle when built by callers.
	Style style.Style
	// Template, when set, is applied over Style. With an empty Input.Type
	// the template content becomes the URL to encode.
	Template string
	Format   style.Format
	// Size in pixels; zero uses the style resolution.
	Size   int
	Legacy bool
}

// Rendered is an exported symbol with the payload it encodes.
type Rendered struct {
	*qrcode.Output
	Payload string
}

// TypeInfo lists the fields a content type reads.
type TypeInfo struct {
	Type     payload.ContentType `json:"type"`
	Fields   []string            `json:"fields"`
	URLAlias bool                `json:"urlAlias,omitempty"`
}

type Service struct {
	renderer   *qrcode.Renderer
	metrics    *metrics.Metrics
	logger     *slog.Logger
	resolution int
}

type Option func(*Service)

func WithRenderer(r *qrcode.Renderer) Option {
	return func(s *Service) {
		if r != nil {
			s.renderer = r
		}
	}
}

// WithMetrics records validations, encodes and renders in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDefaultResolution sets the export size of DefaultStyle.
func WithDefaultResolution(px int) Option {
	return func(s *Service) {
		if px > 0 {
			s.resolution = style.ClampSize(px, style.Default().Resolution)
		}
	}
}

func New(opts ...Option) *Service {
	s := &Service{
		renderer:   qrcode.NewRenderer(),
		logger:     slog.New(slog.DiscardHandler),
		resolution: style.Default().Resolution,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultStyle is the style requests start from.
func (s *Service) DefaultStyle() style.Style {
	st := style.Default()
	st.Resolution = s.resolution
	return st
}

// Validate checks in without failing: the result carries the outcome.
func (s *Service) Validate(ctx context.Context, in Input) payload.Result {
	res := payload.Validate(in.Content())
	s.observeValidation(ctx, in.Type, res)
	return res
}

// Encode validates in and returns its payload. Invalid input is refused with
// the sentinel error of the result (payload.ErrIncomplete for missing fields).
func (s *Service) Encode(ctx context.Context, in Input, opts ...payload.EncodeOption) (Encoded, error) {
	c := in.Content()
	res := payload.Validate(c)
	s.observeValidation(ctx, in.Type, res)
	if err := res.Err(); err != nil {
		return Encoded{Result: res}, err
	}

	s.metrics.ObserveEncode(in.Type.String())
	return Encoded{Payload: payload.Encode(c, opts...), Result: res}, nil
}

// Mask formats raw for display as a phone number of subtype st.
func (s *Service) Mask(raw string, st phone.Subtype) Masked {
	if !st.Valid() {
		st = phone.Default
	}
	masked := phone.Mask(raw, st)
	return Masked{
		Masked:   masked,
		Digits:   phone.Digits(masked),
		Complete: phone.Complete(masked, st),
	}
}

// Render validates and encodes the input, then draws it through the render cache.
func (s *Service) Render(ctx context.Context, req RenderRequest) (*Rendered, error) {
	st := req.Style
	in := req.Input

	if req.Template != "" {
		tpl, ok := style.FindTemplate(req.Template)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, req.Template)
		}
		st = tpl.Apply(st)
		if in.Type == "" && tpl.Content != "" {
			form := payload.NewForm()
			form.ApplyTemplate(tpl.Content)
			in = Input{Type: form.Type(), PhoneSubtype: form.PhoneSubtype(), Fields: form.Fields()}
		}
	}

	var encodeOpts []payload.EncodeOption
	if req.Legacy {
		encodeOpts = append(encodeOpts, payload.WithLegacyEncoding())
	}
	enc, err := s.Encode(ctx, in, encodeOpts...)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	out, err := s.renderer.Render(ctx, enc.Payload, st, req.Format, req.Size)
	elapsed := time.Since(start)
	if err != nil {
		s.metrics.ObserveRender(string(req.Format), metrics.RenderError, elapsed)
		s.logger.WarnContext(ctx, "render failed",
			logger.ContentType(in.Type),
			logger.ExportFormat(string(req.Format)),
			logger.Error(err),
		)
		return nil, err
	}

	outcome := metrics.RenderOK
	if out.Cached {
		outcome = metrics.RenderCacheHit
	}
	s.metrics.ObserveRender(string(out.Format), outcome, elapsed)
	s.logger.InfoContext(ctx, "symbol rendered",
		logger.ContentType(in.Type),
		logger.ExportFormat(string(out.Format)),
		logger.Size(out.Size),
		logger.CacheHit(out.Cached),
		logger.Duration(elapsed),
	)

	return &Rendered{Output: out, Payload: enc.Payload}, nil
}

// Types lists every content type in display order.
func (s *Service) Types() []TypeInfo {
	types := payload.ContentTypes()
	out := make([]TypeInfo, 0, len(types))
	for _, t := range types {
		out = append(out, TypeInfo{Type: t, Fields: payload.FieldNames(t), URLAlias: t.IsURLAlias()})
	}
	return out
}

func (s *Service) Templates() []style.Template {
	return style.Templates()
}

func (s *Service) observeValidation(ctx context.Context, t payload.ContentType, res payload.Result) {
	result := resultValid
	switch {
	case res.Incomplete():
		result = resultIncomplete
	case !res.Valid:
		result = string(res.Error)
	}
	s.metrics.ObserveValidation(t.String(), result)
	s.logger.DebugContext(ctx, "payload validated", logger.ContentType(t), slog.String("result", result))
}
