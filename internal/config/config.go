package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/morrisrob/mke-flavors/internal/directory"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the skill service.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Port: The port for the skill HTTP server (skill endpoint plus monitoring routes).
// - ProviderType: The geocoding provider to use (here, google, nominatim).
// - GeocoderAppID / GeocoderAppCode: HERE credentials (required for the here provider).
// - GeocoderAPIKey: Google Maps API key (required for the google provider).
// - GeocoderRateLimit: Requests per second allowed against the geocoder.
// - DirectoryBaseURL: Base URL of the flavor directory service.
// - UpstreamTimeout: Bounded timeout applied to every upstream call.
type Config struct {
	Env               string        `yaml:"env"`
	Port              int           `yaml:"port"`
	ProviderType      string        `yaml:"geocoder.provider"`
	GeocoderAppID     string        `yaml:"geocoder.app_id"`
	GeocoderAppCode   string        `yaml:"geocoder.app_code"`
	GeocoderAPIKey    string        `yaml:"geocoder.api_key"`
	GeocoderRateLimit int           `yaml:"geocoder.rate_limit"`
	DirectoryBaseURL  string        `yaml:"directory.base_url"`
	UpstreamTimeout   time.Duration `yaml:"upstream_timeout"`
}

// MustLoad loads the configuration from the environment (FLAVORS_ prefix)
// and, when FLAVORS_CONFIG points at a file, from that YAML file with the
// environment taking precedence. It panics on malformed values.
func MustLoad() *Config {
	_ = godotenv.Load()

	vpr := viper.New()
	vpr.SetEnvPrefix("FLAVORS")
	vpr.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vpr.AutomaticEnv()

	vpr.SetDefault("env", "production")
	vpr.SetDefault("port", 8080)
	vpr.SetDefault("geocoder.provider", "here")
	vpr.SetDefault("geocoder.app_id", "")
	vpr.SetDefault("geocoder.app_code", "")
	vpr.SetDefault("geocoder.api_key", "")
	vpr.SetDefault("geocoder.rate_limit", 5)
	vpr.SetDefault("directory.base_url", directory.DefaultBaseURL)
	vpr.SetDefault("upstream_timeout", "10s")

	if configFile := os.Getenv("FLAVORS_CONFIG"); configFile != "" {
		vpr.SetConfigFile(configFile)
		if err := vpr.ReadInConfig(); err != nil {
			panic("failed to read configuration file: " + configFile)
		}
	}

	timeout := vpr.GetDuration("upstream_timeout")
	if timeout <= 0 {
		panic("failed to parse upstream timeout from configuration")
	}

	port := vpr.GetInt("port")
	if port <= 0 {
		panic("failed to parse port for skill server from configuration")
	}

	return &Config{
		Env:               vpr.GetString("env"),
		Port:              port,
		ProviderType:      vpr.GetString("geocoder.provider"),
		GeocoderAppID:     vpr.GetString("geocoder.app_id"),
		GeocoderAppCode:   vpr.GetString("geocoder.app_code"),
		GeocoderAPIKey:    vpr.GetString("geocoder.api_key"),
		GeocoderRateLimit: vpr.GetInt("geocoder.rate_limit"),
		DirectoryBaseURL:  vpr.GetString("directory.base_url"),
		UpstreamTimeout:   timeout,
	}
}
