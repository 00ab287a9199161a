package config

import (
	"log/slog"
	"time"

	"github.com/ijalalfrz/airportgap-client/internal/pkg/restclient"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the configuration of both the check runner and the sandbox.
type Config struct {
	LogLevel   LogLeveler `mapstructure:"LOG_LEVEL"`
	LogFormat  string     `mapstructure:"LOG_FORMAT"`
	AirportGap AirportGap `mapstructure:",squash"`
	HTTP       HTTP       `mapstructure:",squash"`
	Sandbox    Sandbox    `mapstructure:",squash"`
	Redis      Redis      `mapstructure:",squash"`
}

// AirportGap configures the client side: where the API lives, who to log
// in as and how to retry.
type AirportGap struct {
	BaseURL           string        `mapstructure:"AIRGAP_BASE_URL"`
	Email             string        `mapstructure:"AIRGAP_EMAIL"`
	Password          string        `mapstructure:"AIRGAP_PASSWORD"`
	Token             string        `mapstructure:"AIRGAP_TOKEN"`
	RequestTimeout    time.Duration `mapstructure:"AIRGAP_REQUEST_TIMEOUT"`
	MaxAttempts       int           `mapstructure:"AIRGAP_MAX_ATTEMPTS"`
	BackoffMultiplier time.Duration `mapstructure:"AIRGAP_BACKOFF_MULTIPLIER"`
	BackoffMin        time.Duration `mapstructure:"AIRGAP_BACKOFF_MIN"`
	BackoffMax        time.Duration `mapstructure:"AIRGAP_BACKOFF_MAX"`
	ExpectedDistance  float64       `mapstructure:"AIRGAP_EXPECTED_DISTANCE_KM"`
	CheckAllPages     bool          `mapstructure:"AIRGAP_CHECK_ALL_PAGES"`
}

// RetryPolicy builds the client retry policy from the configured limits.
func (a AirportGap) RetryPolicy(logger *slog.Logger) restclient.RetryPolicy {
	policy := restclient.DefaultRetryPolicy()
	policy.Logger = logger

	if a.MaxAttempts > 0 {
		policy.MaxAttempts = a.MaxAttempts
	}

	multiplier := durationOr(a.BackoffMultiplier, restclient.DefaultBackoffMultiplier)
	floor := durationOr(a.BackoffMin, restclient.DefaultBackoffMin)
	ceiling := durationOr(a.BackoffMax, restclient.DefaultBackoffMax)
	policy.Backoff = restclient.ExponentialBackoff(multiplier, floor, ceiling)

	return policy
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}

	return fallback
}

type HTTP struct {
	Port    int           `mapstructure:"HTTP_PORT"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

// Sandbox configures the local AirportGap-compatible server.
type Sandbox struct {
	Email          string   `mapstructure:"SANDBOX_EMAIL"`
	Password       string   `mapstructure:"SANDBOX_PASSWORD"`
	Token          string   `mapstructure:"SANDBOX_TOKEN"`
	PageSize       int      `mapstructure:"SANDBOX_PAGE_SIZE"`
	RateLimit      int      `mapstructure:"SANDBOX_RATE_LIMIT"`
	LinkPrefix     string   `mapstructure:"SANDBOX_LINK_PREFIX"`
	AllowedOrigins []string `mapstructure:"SANDBOX_ALLOWED_ORIGINS"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}
