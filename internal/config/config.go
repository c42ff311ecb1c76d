// Package config describes the environment of the qrkit binary.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dmitrymomot/qrkit/pkg/cache"
	pkgconfig "github.com/dmitrymomot/qrkit/pkg/config"
	"github.com/dmitrymomot/qrkit/pkg/environment"
	"github.com/dmitrymomot/qrkit/pkg/httpserver"
	"github.com/dmitrymomot/qrkit/pkg/logger"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Cache backends.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

type App struct {
	Name      string `env:"APP_NAME" envDefault:"qrkit"`
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"APP_LOG_LEVEL"`
	LogFormat string `env:"APP_LOG_FORMAT"`
}

type Cache struct {
	Backend string        `env:"CACHE_BACKEND" envDefault:"memory"`
	Size    int           `env:"CACHE_SIZE" envDefault:"256"`
	TTL     time.Duration `env:"CACHE_TTL" envDefault:"1h"`
	Prefix  string        `env:"CACHE_PREFIX" envDefault:"qrkit"`
}

type Render struct {
	RemoteLogos  bool          `env:"RENDER_REMOTE_LOGOS" envDefault:"true"`
	LogoTimeout  time.Duration `env:"RENDER_LOGO_TIMEOUT" envDefault:"5s"`
	MaxLogoBytes int           `env:"RENDER_MAX_LOGO_BYTES" envDefault:"2097152"`
	DefaultSize  int           `env:"RENDER_DEFAULT_SIZE" envDefault:"1000"`
}

type API struct {
	// TrustProxy honors X-Forwarded-For and X-Real-IP when resolving client addresses.
	TrustProxy        bool          `env:"API_TRUST_PROXY" envDefault:"false"`
	MaxBodyBytes      int64         `env:"API_MAX_BODY_BYTES" envDefault:"1048576"`
	RateLimit         bool          `env:"API_RATE_LIMIT" envDefault:"true"`
	RateLimitBurst    int           `env:"API_RATE_LIMIT_BURST" envDefault:"30"`
	RateLimitRefill   int           `env:"API_RATE_LIMIT_REFILL" envDefault:"1"`
	RateLimitInterval time.Duration `env:"API_RATE_LIMIT_INTERVAL" envDefault:"1s"`
}

type I18n struct {
	DefaultLanguage string `env:"I18N_DEFAULT_LANGUAGE" envDefault:"pt"`
}

// Config is the complete runtime configuration.
type Config struct {
	App    App
	HTTP   httpserver.Config
	API    API
	Cache  Cache
	Redis  cache.RedisConfig
	Render Render
	I18n   I18n
}

// Load reads .env files when present, then the process environment.
// Missing .env files are ignored; a malformed one is an error.
func Load(envFiles ...string) (Config, error) {
	for _, path := range envFiles {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := pkgconfig.LoadEnv(path); err != nil {
			return Config{}, err
		}
	}
	return Parse()
}

// Parse reads the configuration from the process environment, or from vars
// when given (used by tests).
func Parse(opts ...pkgconfig.Option) (Config, error) {
	cfg, err := pkgconfig.Parse[Config](opts...)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values env tags cannot express.
func (c Config) Validate() error {
	var errs []error
	if _, err := environment.Parse(c.App.Env); err != nil {
		errs = append(errs, err)
	}
	if c.App.LogLevel != "" {
		if _, err := logger.ParseLevel(c.App.LogLevel); err != nil {
			errs = append(errs, err)
		}
	}
	if c.App.LogFormat != "" {
		if _, err := logger.ParseFormat(c.App.LogFormat); err != nil {
			errs = append(errs, err)
		}
	}
	switch c.Cache.Backend {
	case CacheMemory, CacheRedis, CacheNone:
	default:
		errs = append(errs, fmt.Errorf("unknown cache backend %q", c.Cache.Backend))
	}
	if c.Cache.Backend == CacheMemory && c.Cache.Size <= 0 {
		errs = append(errs, fmt.Errorf("cache size must be positive, got %d", c.Cache.Size))
	}
	if c.Render.MaxLogoBytes <= 0 {
		errs = append(errs, fmt.Errorf("max logo bytes must be positive, got %d", c.Render.MaxLogoBytes))
	}
	if c.API.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("max body bytes must be positive, got %d", c.API.MaxBodyBytes))
	}
	if c.API.RateLimit && (c.API.RateLimitBurst <= 0 || c.API.RateLimitRefill <= 0 || c.API.RateLimitInterval <= 0) {
		errs = append(errs, errors.New("rate limit burst, refill and interval must be positive"))
	}
	if strings.TrimSpace(c.I18n.DefaultLanguage) == "" {
		errs = append(errs, errors.New("default language is empty"))
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
}

// Environment returns the parsed deployment environment.
func (c Config) Environment() environment.Environment {
	env, _ := environment.Parse(c.App.Env)
	return env
}

// Logger builds the process logger: the environment preset, then explicit overrides.
func (c Config) Logger(opts ...logger.Option) *slog.Logger {
	base := []logger.Option{logger.WithEnvironment(c.Environment(), c.App.Name)}
	if lvl, err := logger.ParseLevel(c.App.LogLevel); err == nil && c.App.LogLevel != "" {
		base = append(base, logger.WithLevel(lvl))
	}
	if f, err := logger.ParseFormat(c.App.LogFormat); err == nil && c.App.LogFormat != "" {
		base = append(base, logger.WithFormat(f))
	}
	return logger.New(append(base, opts...)...)
}
