package config_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/internal/config"
	pkgconfig "github.com/dmitrymomot/qrkit/pkg/config"
	"github.com/dmitrymomot/qrkit/pkg/environment"
	"github.com/dmitrymomot/qrkit/pkg/logger"
)

func TestParseDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse(pkgconfig.WithEnvironment(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "qrkit", cfg.App.Name)
	assert.Equal(t, environment.Development, cfg.Environment())
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 60*time.Second, cfg.HTTP.WriteTimeout)
	assert.Equal(t, config.CacheMemory, cfg.Cache.Backend)
	assert.Equal(t, 256, cfg.Cache.Size)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.ConnectionURL)
	assert.True(t, cfg.Render.RemoteLogos)
	assert.Equal(t, 5*time.Second, cfg.Render.LogoTimeout)
	assert.Equal(t, 2<<20, cfg.Render.MaxLogoBytes)
	assert.Equal(t, 1000, cfg.Render.DefaultSize)
	assert.Equal(t, "pt", cfg.I18n.DefaultLanguage)
	assert.False(t, cfg.API.TrustProxy)
	assert.Equal(t, int64(1<<20), cfg.API.MaxBodyBytes)
	assert.True(t, cfg.API.RateLimit)
	assert.Equal(t, 30, cfg.API.RateLimitBurst)
	assert.Equal(t, time.Second, cfg.API.RateLimitInterval)
}

func TestParseOverrides(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse(pkgconfig.WithEnvironment(map[string]string{
		"APP_ENV":               "prod",
		"HTTP_ADDR":             "127.0.0.1:9000",
		"CACHE_BACKEND":         "redis",
		"CACHE_TTL":             "10m",
		"REDIS_URL":             "redis://cache:6379/2",
		"RENDER_REMOTE_LOGOS":   "false",
		"I18N_DEFAULT_LANGUAGE": "en",
	}))
	require.NoError(t, err)

	assert.Equal(t, environment.Production, cfg.Environment())
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTP.Addr)
	assert.Equal(t, config.CacheRedis, cfg.Cache.Backend)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "redis://cache:6379/2", cfg.Redis.ConnectionURL)
	assert.False(t, cfg.Render.RemoteLogos)
	assert.Equal(t, "en", cfg.I18n.DefaultLanguage)
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		vars map[string]string
	}{
		{"unknown environment", map[string]string{"APP_ENV": "qa"}},
		{"unknown log level", map[string]string{"APP_LOG_LEVEL": "loud"}},
		{"unknown log format", map[string]string{"APP_LOG_FORMAT": "xml"}},
		{"unknown cache backend", map[string]string{"CACHE_BACKEND": "memcached"}},
		{"zero memory cache", map[string]string{"CACHE_SIZE": "0"}},
		{"zero logo limit", map[string]string{"RENDER_MAX_LOGO_BYTES": "0"}},
		{"blank language", map[string]string{"I18N_DEFAULT_LANGUAGE": " "}},
		{"zero body limit", map[string]string{"API_MAX_BODY_BYTES": "0"}},
		{"zero burst", map[string]string{"API_RATE_LIMIT_BURST": "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := config.Parse(pkgconfig.WithEnvironment(tt.vars))
			require.Error(t, err)
			assert.True(t, errors.Is(err, config.ErrInvalidConfig))
		})
	}

	t.Run("malformed duration", func(t *testing.T) {
		t.Parallel()
		_, err := config.Parse(pkgconfig.WithEnvironment(map[string]string{"CACHE_TTL": "soon"}))
		require.Error(t, err)
		assert.True(t, errors.Is(err, pkgconfig.ErrParsingConfig))
	})
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("QRKIT_TEST_UNUSED=1\nCACHE_BACKEND=none\n"), 0o600))
	t.Setenv("CACHE_BACKEND", "")
	require.NoError(t, os.Unsetenv("CACHE_BACKEND"))
	t.Cleanup(func() { _ = os.Unsetenv("QRKIT_TEST_UNUSED") })

	cfg, err := config.Load(filepath.Join(dir, "missing.env"), path)
	require.NoError(t, err)
	assert.Equal(t, config.CacheNone, cfg.Cache.Backend)
}

func TestLogger(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse(pkgconfig.WithEnvironment(map[string]string{
		"APP_ENV":        "production",
		"APP_LOG_LEVEL":  "warn",
		"APP_LOG_FORMAT": "json",
	}))
	require.NoError(t, err)

	var buf bytes.Buffer
	log := cfg.Logger(logger.WithOutput(&buf))
	log.Info("hidden")
	log.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"service":"qrkit"`)
	assert.Contains(t, out, `"env":"production"`)
}
