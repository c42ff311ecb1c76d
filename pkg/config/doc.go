// Package config loads application configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and github.com/caarlos0/env/v11
// for struct parsing:
//
//	type Config struct {
//		Addr string        `env:"HTTP_ADDR" envDefault:":8080"`
//		TTL  time.Duration `env:"CACHE_TTL" envDefault:"1h"`
//	}
//
//	if err := config.LoadEnv(".env.local"); err != nil {
//		return err
//	}
//	cfg, err := config.Parse[Config]()
//
// Load caches one parsed copy per type for the life of the process, which suits
// package-level configuration read from several places; Parse always re-reads the
// environment and accepts a prefix or an explicit variable map, which suits CLIs
// and tests. ResetCache clears the Load cache.
//
// Errors are sentinels checked with errors.Is: ErrParsingConfig, ErrNilPointer,
// ErrLoadingEnvFile and ErrConfigNotLoaded.
package config
