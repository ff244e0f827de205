package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleConfig struct {
	API struct {
		BaseURL string        `yaml:"baseUrl" env:"SAMPLE_API_URL"`
		Timeout time.Duration `yaml:"timeout" env:"SAMPLE_API_TIMEOUT"`
	} `yaml:"api"`
	Auth struct {
		RestaurantID int64 `yaml:"restaurantId"`
	} `yaml:"auth"`
	Verbose bool   `yaml:"verbose"`
	Ignored string `yaml:"ignored" env:"-"`
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigRejectsInvalidTargets(t *testing.T) {
	require.EqualError(t, LoadConfig(nil), "config: target is nil")

	var cfg sampleConfig
	require.EqualError(t, LoadConfig(cfg), "config: target must be pointer to struct")
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
api:
  baseUrl: http://backend.local/api
  timeout: 2s
auth:
  restaurantId: 7
verbose: true
`)
	t.Setenv(defaultConfigPathEnv, path)

	var cfg sampleConfig
	require.NoError(t, LoadConfig(&cfg))

	assert.Equal(t, "http://backend.local/api", cfg.API.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.API.Timeout)
	assert.Equal(t, int64(7), cfg.Auth.RestaurantID)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigEnvOverridesYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", "api:\n  baseUrl: http://from-file/api\n")
	t.Setenv(defaultConfigPathEnv, path)
	t.Setenv("SAMPLE_API_URL", "http://from-env/api")
	t.Setenv("SAMPLE_API_TIMEOUT", "750ms")
	t.Setenv("AUTH_RESTAURANTID", "3")
	t.Setenv("IGNORED", "should not be read")

	var cfg sampleConfig
	require.NoError(t, LoadConfig(&cfg))

	assert.Equal(t, "http://from-env/api", cfg.API.BaseURL)
	assert.Equal(t, 750*time.Millisecond, cfg.API.Timeout)
	assert.Equal(t, int64(3), cfg.Auth.RestaurantID)
	assert.Empty(t, cfg.Ignored)
}

func TestLoadConfigFromEnvFile(t *testing.T) {
	path := writeFile(t, ".env", "SAMPLE_API_URL=http://dotenv/api\nSAMPLE_API_TIMEOUT=9s\n")
	t.Setenv(defaultEnvFileEnv, path)
	// godotenv never overrides variables already set in the process.
	t.Setenv("SAMPLE_API_TIMEOUT", "1s")
	t.Cleanup(func() { os.Unsetenv("SAMPLE_API_URL") })

	var cfg sampleConfig
	require.NoError(t, LoadConfig(&cfg))

	assert.Equal(t, "http://dotenv/api", cfg.API.BaseURL)
	assert.Equal(t, time.Second, cfg.API.Timeout)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("missing env file", func(t *testing.T) {
		t.Setenv(defaultEnvFileEnv, filepath.Join(t.TempDir(), "missing.env"))
		var cfg sampleConfig
		err := LoadConfig(&cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config: load env file")
	})

	t.Run("missing yaml file", func(t *testing.T) {
		t.Setenv(defaultConfigPathEnv, filepath.Join(t.TempDir(), "missing.yaml"))
		var cfg sampleConfig
		err := LoadConfig(&cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config: read file")
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("SAMPLE_API_TIMEOUT", "five seconds")
		var cfg sampleConfig
		err := LoadConfig(&cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config: parse SAMPLE_API_TIMEOUT")
	})

	t.Run("bad int", func(t *testing.T) {
		t.Setenv("AUTH_RESTAURANTID", "one")
		var cfg sampleConfig
		err := LoadConfig(&cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config: parse AUTH_RESTAURANTID")
	})
}
