package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/pkg/logger"
	"github.com/dmitrymomot/qrkit/pkg/payload"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestRequestID(t *testing.T) {
	attr := logger.RequestID("abc")
	require.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.Any())

	assert.True(t, logger.RequestID(nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	assert.Equal(t, "content_type", logger.ContentType(payload.TypeWiFi).Key)
	assert.Equal(t, "WIFI", logger.ContentType(payload.TypeWiFi).Value.String())
	assert.Equal(t, int64(300), logger.Size(300).Value.Int64())
	assert.True(t, logger.CacheHit(true).Value.Bool())
	assert.Equal(t, "pdf", logger.ExportFormat("pdf").Value.String())
	assert.Equal(t, "pt", logger.Lang("pt").Value.String())
	assert.Equal(t, 2*time.Second, logger.Duration(2*time.Second).Value.Duration())
	assert.Equal(t, "component", logger.Component("api").Key)
}
