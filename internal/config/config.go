// Package config defines the global configuration structure for the
// strollcast service. Configuration is loaded once at process start and is
// immutable thereafter. It follows 12-Factor App principles by strictly
// separating code from configuration.
//
// Values are resolved from the OS environment, with a .env file loaded first
// for local development. Any missing required value or invalid format causes
// startup to fail immediately.
package config

import (
	"time"
)

// Config is the top-level configuration struct for the strollcast service.
// It is populated once during process initialization and never modified.
// Sub-components receive only the specific config subsets they require.
type Config struct {
	// System Metadata
	Environment string `envconfig:"APP_ENV" default:"local" validate:"required,oneof=local dev staging prod"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	// Domain Configurations
	Server   ServerConfig
	Upstream UpstreamConfig
}

// ServerConfig holds HTTP server tuning parameters.
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"29s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	// CORS origins; "*" allows all (local development only).
	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// UpstreamConfig holds the base URLs and transport tuning for the external
// weather, geocoding, and sunset collaborators. Defaults point at the public
// Open-Meteo endpoints; tests and local stubs override them.
type UpstreamConfig struct {
	GeocodingBaseURL string `envconfig:"GEOCODING_BASE_URL" default:"https://geocoding-api.open-meteo.com" validate:"required,url"`
	WeatherBaseURL   string `envconfig:"WEATHER_BASE_URL" default:"https://api.open-meteo.com" validate:"required,url"`

	UserAgent  string        `envconfig:"UPSTREAM_USER_AGENT" default:"strollcast/1.0"`
	Timeout    time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s"`
	MaxRetries int           `envconfig:"UPSTREAM_MAX_RETRIES" default:"3" validate:"gte=0,lte=10"`
}
