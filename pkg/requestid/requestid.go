package requestid

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/google/uuid"

	"github.com/dmitrymomot/qrkit/pkg/logger"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
)

var validIDRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type contextKey struct{}

func WithContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKey{}, requestID)
}

func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	requestID, _ := ctx.Value(contextKey{}).(string)
	return requestID
}

// Option configures the middleware built by New.
type Option func(*settings)

type settings struct {
	header   string
	generate func() string
}

// WithHeader reads and writes the identifier under name instead of X-Request-ID.
func WithHeader(name string) Option {
	return func(s *settings) {
		if name != "" {
			s.header = name
		}
	}
}

// WithGenerator replaces the UUIDv7 generator.
func WithGenerator(fn func() string) Option {
	return func(s *settings) {
		if fn != nil {
			s.generate = fn
		}
	}
}

// New returns the request id middleware.
func New(opts ...Option) func(http.Handler) http.Handler {
	s := &settings{header: Header, generate: newID}
	for _, opt := range opts {
		opt(s)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(s.header)
			if !isValidRequestID(id) {
				id = s.generate()
			}
			w.Header().Set(s.header, id)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
		})
	}
}

// Middleware is New with default options.
func Middleware(next http.Handler) http.Handler {
	return New()(next)
}

// LogExtractor adds request_id to log records written with a request context.
func LogExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := FromContext(ctx); id != "" {
			return logger.RequestID(id), true
		}
		return slog.Attr{}, false
	}
}

func newID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

func isValidRequestID(id string) bool {
	if len(id) == 0 || len(id) > maxIDLength {
		return false
	}
	return validIDRegex.MatchString(id)
}
