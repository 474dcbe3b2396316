package config_test

import (
	"testing"
	"time"

	"github.com/Flaque/filet"
	"github.com/morrisrob/mke-flavors/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := config.MustLoad()

		assert.Equal(t, "production", cfg.Env)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "here", cfg.ProviderType)
		assert.Empty(t, cfg.GeocoderAppID)
		assert.Equal(t, 5, cfg.GeocoderRateLimit)
		assert.Equal(t, "https://mkeflavors.com", cfg.DirectoryBaseURL)
		assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("FLAVORS_ENV", "local")
		t.Setenv("FLAVORS_PORT", "9090")
		t.Setenv("FLAVORS_GEOCODER_PROVIDER", "google")
		t.Setenv("FLAVORS_GEOCODER_API_KEY", "maps-key")
		t.Setenv("FLAVORS_GEOCODER_RATE_LIMIT", "20")
		t.Setenv("FLAVORS_DIRECTORY_BASE_URL", "http://localhost:3000")
		t.Setenv("FLAVORS_UPSTREAM_TIMEOUT", "3s")

		cfg := config.MustLoad()

		assert.Equal(t, "local", cfg.Env)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, "google", cfg.ProviderType)
		assert.Equal(t, "maps-key", cfg.GeocoderAPIKey)
		assert.Equal(t, 20, cfg.GeocoderRateLimit)
		assert.Equal(t, "http://localhost:3000", cfg.DirectoryBaseURL)
		assert.Equal(t, 3*time.Second, cfg.UpstreamTimeout)
	})

	t.Run("config file with environment precedence", func(t *testing.T) {
		defer filet.CleanUp(t)

		configPath := filet.TmpDir(t, "") + "/config.yaml"
		configFile := filet.File(t, configPath, `
env: development
port: 8181
geocoder:
  provider: nominatim
  rate_limit: 2
`)
		require.NotNil(t, configFile)

		t.Setenv("FLAVORS_CONFIG", configPath)
		t.Setenv("FLAVORS_PORT", "9191")

		cfg := config.MustLoad()

		assert.Equal(t, "development", cfg.Env)
		assert.Equal(t, 9191, cfg.Port, "environment must win over the file")
		assert.Equal(t, "nominatim", cfg.ProviderType)
		assert.Equal(t, 2, cfg.GeocoderRateLimit)
	})

	t.Run("missing config file panics", func(t *testing.T) {
		t.Setenv("FLAVORS_CONFIG", "/nonexistent/config.yaml")

		assert.PanicsWithValue(
			t,
			"failed to read configuration file: /nonexistent/config.yaml",
			func() { config.MustLoad() },
		)
	})

	t.Run("non-positive timeout panics", func(t *testing.T) {
		t.Setenv("FLAVORS_UPSTREAM_TIMEOUT", "0s")

		assert.PanicsWithValue(
			t,
			"failed to parse upstream timeout from configuration",
			func() { config.MustLoad() },
		)
	})

	t.Run("invalid port panics", func(t *testing.T) {
		t.Setenv("FLAVORS_PORT", "-1")

		assert.PanicsWithValue(
			t,
			"failed to parse port for skill server from configuration",
			func() { config.MustLoad() },
		)
	})
}
