//go:build e2e

package e2e_test

import (
	"log/slog"
	"net/http"
	"os"
	"testing"

	"github.com/ijalalfrz/airportgap-client/internal/app/airportgap"
	"github.com/ijalalfrz/airportgap-client/internal/app/config"
	"github.com/ijalalfrz/airportgap-client/internal/app/dto"
	"github.com/ijalalfrz/airportgap-client/internal/pkg/logger"
	"github.com/ijalalfrz/airportgap-client/internal/pkg/restclient"
	"github.com/stretchr/testify/require"
)

const maxItemsPerPage = 30

func loadConfig(t *testing.T) config.Config {
	t.Helper()

	cfg, err := config.LoadConfig(os.Getenv("AIRGAP_ENV_FILE"))
	require.NoError(t, err)

	return cfg
}

func newClient(t *testing.T) *airportgap.Client {
	t.Helper()

	require.NoError(t, dto.InitValidator())

	cfg := loadConfig(t)
	log := logger.NewStructuredLogger(os.Stderr, cfg.LogLevel, "text")

	rc, err := restclient.New(restclient.Config{
		BaseURL:    cfg.AirportGap.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.AirportGap.RequestTimeout},
		Retry:      cfg.AirportGap.RetryPolicy(log),
		Logger:     log,
	})
	require.NoError(t, err)

	slog.Debug("e2e target", slog.String("base_url", rc.BaseURL()))

	return airportgap.New(rc)
}

func airgapToken(t *testing.T) string {
	t.Helper()

	token := loadConfig(t).AirportGap.Token
	if token == "" {
		t.Skip("AIRGAP_TOKEN is not set")
	}

	return token
}

func requireNotFound(t *testing.T, body []byte) {
	t.Helper()

	errs, err := dto.DecodeErrors(body)
	require.NoError(t, err)
	require.NotEmpty(t, errs.Errors)

	require.Equal(t, dto.Error{
		Status: "404",
		Title:  "Not Found",
		Detail: "The page you requested could not be found",
	}, errs.Errors[0])
}
