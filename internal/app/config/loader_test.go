package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv hides values from the caller's environment, empty variables
// count as unset.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"LOG_LEVEL", "AIRGAP_BASE_URL", "AIRGAP_MAX_ATTEMPTS", "AIRGAP_BACKOFF_MIN",
		"AIRGAP_BACKOFF_MAX", "AIRGAP_REQUEST_TIMEOUT", "AIRGAP_TOKEN", "AIRGAP_EMAIL", "HTTP_PORT",
		"SANDBOX_PAGE_SIZE", "SANDBOX_RATE_LIMIT", "SANDBOX_ALLOWED_ORIGINS", "REDIS_ADDR",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, slog.LevelInfo, cfg.LogLevel.Level())
	assert.Equal(t, "https://airportgap.com/api/", cfg.AirportGap.BaseURL)
	assert.Equal(t, 10, cfg.AirportGap.MaxAttempts)
	assert.Equal(t, 5*time.Second, cfg.AirportGap.BackoffMin)
	assert.Equal(t, 20*time.Second, cfg.AirportGap.BackoffMax)
	assert.Equal(t, 30*time.Second, cfg.AirportGap.RequestTimeout)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 30, cfg.Sandbox.PageSize)
	assert.Equal(t, 100, cfg.Sandbox.RateLimit)
	assert.Equal(t, []string{"*"}, cfg.Sandbox.AllowedOrigins)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("AIRGAP_BASE_URL", "http://localhost:8080/api/")
	t.Setenv("AIRGAP_EMAIL", "user@example.com")
	t.Setenv("AIRGAP_MAX_ATTEMPTS", "3")
	t.Setenv("AIRGAP_BACKOFF_MIN", "10ms")
	t.Setenv("SANDBOX_ALLOWED_ORIGINS", "https://a.test,https://b.test")
	t.Setenv("REDIS_DB", "2")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.LogLevel.Level())
	assert.Equal(t, "http://localhost:8080/api/", cfg.AirportGap.BaseURL)
	assert.Equal(t, "user@example.com", cfg.AirportGap.Email)
	assert.Equal(t, 3, cfg.AirportGap.MaxAttempts)
	assert.Equal(t, 10*time.Millisecond, cfg.AirportGap.BackoffMin)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.Sandbox.AllowedOrigins)
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	clearEnv(t)

	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("AIRGAP_TOKEN=from-file\nHTTP_PORT=9090\n"), 0o600))

	cfg, err := LoadConfig(file)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.AirportGap.Token)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestLoadConfig_MissingEnvFile(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}

func TestLoadConfig_Flags(t *testing.T) {
	t.Setenv("AIRGAP_BASE_URL", "http://env.test/api/")
	t.Setenv("AIRGAP_EMAIL", "env@example.com")

	fs := pflag.NewFlagSet("check", pflag.ContinueOnError)
	fs.String("base-url", "", "")
	fs.String("email", "", "")
	require.NoError(t, fs.Parse([]string{"--base-url", "http://flag.test/api/"}))

	cfg, err := LoadConfig("", WithFlags(fs, map[string]string{
		"base-url": "AIRGAP_BASE_URL",
		"email":    "AIRGAP_EMAIL",
	}))
	require.NoError(t, err)

	assert.Equal(t, "http://flag.test/api/", cfg.AirportGap.BaseURL)
	// unset flags leave the environment value alone
	assert.Equal(t, "env@example.com", cfg.AirportGap.Email)
}

func TestLoadConfig_UnknownFlag(t *testing.T) {
	fs := pflag.NewFlagSet("check", pflag.ContinueOnError)

	_, err := LoadConfig("", WithFlags(fs, map[string]string{"nope": "AIRGAP_EMAIL"}))
	assert.ErrorContains(t, err, `unknown flag "nope"`)
}

func TestAirportGap_RetryPolicy(t *testing.T) {
	policy := AirportGap{
		MaxAttempts:       4,
		BackoffMultiplier: time.Millisecond,
		BackoffMin:        2 * time.Millisecond,
		BackoffMax:        5 * time.Millisecond,
	}.RetryPolicy(nil)

	assert.Equal(t, 4, policy.MaxAttempts)
	assert.Equal(t, 2*time.Millisecond, policy.Backoff(1))
	assert.Equal(t, 4*time.Millisecond, policy.Backoff(3))
	assert.Equal(t, 5*time.Millisecond, policy.Backoff(4))

	defaults := AirportGap{}.RetryPolicy(nil)
	assert.Equal(t, 10, defaults.MaxAttempts)
	assert.Equal(t, 5*time.Second, defaults.Backoff(1))
	assert.Equal(t, 16*time.Second, defaults.Backoff(5))
	assert.Equal(t, 20*time.Second, defaults.Backoff(6))
}
