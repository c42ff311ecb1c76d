package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/pkg/config"
)

type TestConfigDefault struct {
	TestString string `env:"TEST_STRING_DEFAULT" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_DEFAULT" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_DEFAULT" envDefault:"true"`
}

type TestConfigSuccess struct {
	TestString string `env:"TEST_STRING_SUCCESS" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_SUCCESS" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_SUCCESS" envDefault:"true"`
}

type TestConfigSingleton struct {
	TestString string `env:"TEST_STRING_SINGLETON" envDefault:"default_value"`
}

type TestConfigDifferent1 struct {
	Value string `env:"VALUE_TYPE1" envDefault:"default1"`
}

type TestConfigDifferent2 struct {
	Value string `env:"VALUE_TYPE2" envDefault:"default2"`
}

type RequiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("TEST_STRING_SUCCESS", "test_value")
	t.Setenv("TEST_INT_SUCCESS", "100")
	t.Setenv("TEST_BOOL_SUCCESS", "false")

	var cfg TestConfigSuccess
	err := config.Load(&cfg)

	require.NoError(t, err, "Load should not return an error with valid environment variables")
	assert.Equal(t, "test_value", cfg.TestString, "TestString should match environment variable")
	assert.Equal(t, 100, cfg.TestInt, "TestInt should match environment variable")
	assert.Equal(t, false, cfg.TestBool, "TestBool should match environment variable")
}

func TestLoad_DefaultValues(t *testing.T) {
	// Clean environment variables to ensure defaults are used
	os.Unsetenv("TEST_STRING_DEFAULT")
	os.Unsetenv("TEST_INT_DEFAULT")
	os.Unsetenv("TEST_BOOL_DEFAULT")

	var cfg TestConfigDefault
	err := config.Load(&cfg)

	require.NoError(t, err, "Load should not return an error when using default values")
	assert.Equal(t, "default_value", cfg.TestString, "TestString should use default value")
	assert.Equal(t, 42, cfg.TestInt, "TestInt should use default value")
	assert.Equal(t, true, cfg.TestBool, "TestBool should use default value")
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")

	var cfg RequiredConfig
	err := config.Load(&cfg)

	require.Error(t, err, "Load should return an error when a required value is missing")
	assert.True(t, errors.Is(err, config.ErrParsingConfig), "Error should be ErrParsingConfig")
}

func TestLoad_Singleton(t *testing.T) {
	t.Setenv("TEST_STRING_SINGLETON", "first_value")

	var firstConfig TestConfigSingleton
	err := config.Load(&firstConfig)
	require.NoError(t, err, "First load should not return an error")

	// Change environment variable to verify caching behavior
	t.Setenv("TEST_STRING_SINGLETON", "second_value")

	var secondConfig TestConfigSingleton
	err = config.Load(&secondConfig)
	require.NoError(t, err, "Second load should not return an error")

	// Both configs should have the same value due to singleton pattern
	assert.Equal(t, firstConfig.TestString, secondConfig.TestString,
		"Both configs should have the same value due to singleton pattern")
	assert.Equal(t, "first_value", secondConfig.TestString,
		"Second config should have the first value due to caching")
}

func TestLoad_DifferentTypes(t *testing.T) {
	t.Setenv("VALUE_TYPE1", "test_type1")
	t.Setenv("VALUE_TYPE2", "test_type2")

	var config1 TestConfigDifferent1
	err := config.Load(&config1)
	require.NoError(t, err, "Loading first config type should not error")

	var config2 TestConfigDifferent2
	err = config.Load(&config2)
	require.NoError(t, err, "Loading second config type should not error")

	assert.Equal(t, "test_type1", config1.Value, "First config should have its own value")
	assert.Equal(t, "test_type2", config2.Value, "Second config should have its own value")
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *TestConfigSuccess = nil
	err := config.Load(cfg)

	require.Error(t, err, "Load should return an error when given a nil pointer")
	assert.ErrorIs(t, err, config.ErrNilPointer, "Error should be ErrNilPointer")
}

type parseConfig struct {
	Addr    string        `env:"ADDR" envDefault:":8080"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
	Langs   []string      `env:"LANGS" envSeparator:"," envDefault:"pt,en"`
	Token   string        `env:"TOKEN,required"`
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("defaults and explicit environment", func(t *testing.T) {
		t.Parallel()
		cfg, err := config.Parse[parseConfig](config.WithEnvironment(map[string]string{
			"TOKEN":   "secret",
			"TIMEOUT": "2s",
		}))
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, 2*time.Second, cfg.Timeout)
		assert.Equal(t, []string{"pt", "en"}, cfg.Langs)
		assert.Equal(t, "secret", cfg.Token)
	})

	t.Run("prefix", func(t *testing.T) {
		t.Parallel()
		cfg, err := config.Parse[parseConfig](
			config.WithPrefix("QRKIT_"),
			config.WithEnvironment(map[string]string{"QRKIT_TOKEN": "t", "QRKIT_ADDR": ":9000", "ADDR": ":1"}),
		)
		require.NoError(t, err)
		assert.Equal(t, ":9000", cfg.Addr)
	})

	t.Run("missing required", func(t *testing.T) {
		t.Parallel()
		_, err := config.Parse[parseConfig](config.WithEnvironment(map[string]string{}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Parallel()
		_, err := config.Parse[parseConfig](config.WithEnvironment(map[string]string{"TOKEN": "t", "TIMEOUT": "soon"}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

type envFileConfig struct {
	Value string `env:"QRKIT_TEST_ENV_FILE_VALUE"`
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env.test")
	require.NoError(t, os.WriteFile(path, []byte("QRKIT_TEST_ENV_FILE_VALUE=\"from file\"\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("QRKIT_TEST_ENV_FILE_VALUE") })

	require.NoError(t, config.LoadEnv(path))
	cfg, err := config.Parse[envFileConfig]()
	require.NoError(t, err)
	assert.Equal(t, "from file", cfg.Value)

	assert.NoError(t, config.LoadEnv())
	assert.ErrorIs(t, config.LoadEnv(filepath.Join(t.TempDir(), "missing.env")), config.ErrLoadingEnvFile)
}

func TestResetCache(t *testing.T) {
	t.Setenv("TEST_STRING_RESET", "first")

	type resetConfig struct {
		Value string `env:"TEST_STRING_RESET"`
	}
	var cfg resetConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "first", cfg.Value)

	t.Setenv("TEST_STRING_RESET", "second")
	config.ResetCache()
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "second", cfg.Value)
}
