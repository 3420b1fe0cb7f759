package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupguard/pkg/config"
)

type defaultsConfig struct {
	Addr    string        `env:"CFGTEST_DEFAULT_ADDR" envDefault:":8080"`
	Timeout time.Duration `env:"CFGTEST_DEFAULT_TIMEOUT" envDefault:"5s"`
	Debug   bool          `env:"CFGTEST_DEFAULT_DEBUG" envDefault:"true"`
}

type envConfig struct {
	Addr  string `env:"CFGTEST_ENV_ADDR" envDefault:":8080"`
	Limit int    `env:"CFGTEST_ENV_LIMIT" envDefault:"1"`
}

type fileConfig struct {
	Name     string `env:"CFGTEST_FILE_NAME"`
	Priority string `env:"CFGTEST_FILE_PRIORITY"`
}

type requiredConfig struct {
	Value string `env:"CFGTEST_REQUIRED_VALUE,required"`
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load[defaultsConfig](filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.True(t, cfg.Debug)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("CFGTEST_ENV_ADDR", ":9090")
	t.Setenv("CFGTEST_ENV_LIMIT", "7")

	cfg, err := config.Load[envConfig](filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 7, cfg.Limit)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CFGTEST_FILE_NAME=from-file\nCFGTEST_FILE_PRIORITY=file\n"), 0o600))
	t.Setenv("CFGTEST_FILE_PRIORITY", "process")
	t.Cleanup(func() { _ = os.Unsetenv("CFGTEST_FILE_NAME") })

	cfg, err := config.Load[fileConfig](path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Name)
	assert.Equal(t, "process", cfg.Priority)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing required", func(t *testing.T) {
		_, err := config.Load[requiredConfig](filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("bad value", func(t *testing.T) {
		t.Setenv("CFGTEST_ENV_LIMIT", "many")
		_, err := config.Load[envConfig](filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("env path is a directory", func(t *testing.T) {
		_, err := config.Load[envConfig](t.TempDir())
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("must load panics", func(t *testing.T) {
		assert.Panics(t, func() {
			config.MustLoad[requiredConfig](filepath.Join(t.TempDir(), "missing.env"))
		})
	})
}
