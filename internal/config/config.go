package config

import (
	"fmt"
	"time"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App     AppConfig
	Logger  LoggerConfig
	Auth    AuthConfig
	Metrics MetricsConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                   string
	Env                    string
	Host                   string
	Port                   string
	Version                string
	RequestTimeoutSeconds  int
	ShutdownTimeoutSeconds int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig holds the signing material and the static credential pair.
// Every field is required; the process must not start without them.
type AuthConfig struct {
	SigningKey       string
	ExpectedAudience string
	ExpectedIssuer   string
	Username         string
	Password         string
}

// MetricsConfig toggles the prometheus endpoint.
type MetricsConfig struct {
	Enabled   bool
	Namespace string
}

// Load reads configuration from environment variables, applying defaults where possible.
// It returns an error when a required auth value is missing.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:                   env.GetString("APP_NAME", "token-service"),
			Env:                    env.GetString("APP_ENV", "development"),
			Host:                   env.GetString("APP_HOST", "0.0.0.0"),
			Port:                   env.GetString("APP_PORT", "8080"),
			Version:                env.GetString("APP_VERSION", "dev"),
			RequestTimeoutSeconds:  env.GetInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
			ShutdownTimeoutSeconds: env.GetInt("HTTP_SHUTDOWN_TIMEOUT_SECONDS", 10),
		},
		Logger: LoggerConfig{
			Level: env.GetString("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			SigningKey:       env.GetString("JWT_SIGNING_KEY", ""),
			ExpectedAudience: env.GetString("JWT_EXPECTED_AUDIENCE", ""),
			ExpectedIssuer:   env.GetString("JWT_EXPECTED_ISSUER", ""),
			Username:         env.GetString("JWT_USERNAME", ""),
			Password:         env.GetString("JWT_PASSWORD", ""),
		},
		Metrics: MetricsConfig{
			Enabled:   env.GetBool("METRICS_ENABLED", true),
			Namespace: env.GetString("METRICS_NAMESPACE", "token_service"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the values that have no usable default.
func (c *Config) Validate() error {
	return c.Auth.Validate()
}

// Validate reports every missing auth value at once.
func (a AuthConfig) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.SigningKey, validation.Required.Error("JWT_SIGNING_KEY is not set or is empty")),
		validation.Field(&a.ExpectedAudience, validation.Required.Error("JWT_EXPECTED_AUDIENCE is not set or is empty")),
		validation.Field(&a.ExpectedIssuer, validation.Required.Error("JWT_EXPECTED_ISSUER is not set or is empty")),
		validation.Field(&a.Username, validation.Required.Error("JWT_USERNAME is not set or is empty")),
		validation.Field(&a.Password, validation.Required.Error("JWT_PASSWORD is not set or is empty")),
	)
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// ShutdownTimeout bounds graceful shutdown.
func (a AppConfig) ShutdownTimeout() time.Duration {
	if a.ShutdownTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(a.ShutdownTimeoutSeconds) * time.Second
}
