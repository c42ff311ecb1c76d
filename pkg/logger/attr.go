package logger

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// If id is nil, it returns an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// ContentType records the payload type under the key "content_type".
func ContentType(t fmt.Stringer) slog.Attr {
	return slog.String("content_type", t.String())
}

// ExportFormat records the export format under the key "format".
func ExportFormat(f string) slog.Attr {
	return slog.String("format", f)
}

// Size records a symbol size in pixels under the key "size".
func Size(px int) slog.Attr {
	return slog.Int("size", px)
}

// CacheHit records whether a result came from the cache.
func CacheHit(hit bool) slog.Attr {
	return slog.Bool("cache_hit", hit)
}

// Lang records the negotiated language under the key "lang".
func Lang(lang string) slog.Attr {
	return slog.String("lang", lang)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
