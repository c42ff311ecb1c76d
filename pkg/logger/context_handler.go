package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor returns an attribute stored in ctx, such as the request ID
// of the HTTP request being served. ok is false when ctx carries no value.
type ContextExtractor func(ctx context.Context) (attr slog.Attr, ok bool)

// contextHandler adds the attributes found by its extractors to every record
// before passing it on.
type contextHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

// newContextHandler returns next unchanged when there is nothing to extract.
func newContextHandler(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	if len(extractors) == 0 {
		return next
	}
	return &contextHandler{next: next, extractors: extractors}
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle runs on every record, so values that change per request are read fresh.
func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{next: h.next.WithGroup(name), extractors: h.extractors}
}
