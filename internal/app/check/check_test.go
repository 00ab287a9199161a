package check

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ijalalfrz/airportgap-client/internal/app/airportgap"
	"github.com/ijalalfrz/airportgap-client/internal/app/config"
	"github.com/ijalalfrz/airportgap-client/internal/app/transport"
	"github.com/ijalalfrz/airportgap-client/internal/pkg/favorite/favoritetest"
	"github.com/ijalalfrz/airportgap-client/internal/pkg/restclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sandboxAccount = config.Sandbox{
	Email:          "tester@airportgap.test",
	Password:       "airportgap",
	Token:          "sandbox-token",
	PageSize:       MaxItemsPerPage,
	LinkPrefix:     "/api",
	AllowedOrigins: []string{"*"},
}

func newClient(t *testing.T, handler http.Handler) *airportgap.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	rc, err := restclient.New(restclient.Config{
		BaseURL:    srv.URL + "/api/",
		HTTPClient: srv.Client(),
	})
	require.NoError(t, err)

	return airportgap.New(rc)
}

func newSandboxClient(t *testing.T) *airportgap.Client {
	t.Helper()

	router, err := transport.MakeSandboxRouter(
		&config.Config{Sandbox: sandboxAccount},
		favoritetest.NewMemoryClient(),
		nil,
	)
	require.NoError(t, err)

	return newClient(t, router)
}

func statuses(report Report) map[string]Status {
	out := make(map[string]Status, len(report.Results))
	for _, res := range report.Results {
		out[res.Name] = res.Status
	}

	return out
}

func TestRunner_AllChecksPassAgainstSandbox(t *testing.T) {
	runner := NewRunner(newSandboxClient(t), Settings{
		Email:            sandboxAccount.Email,
		Password:         sandboxAccount.Password,
		Token:            sandboxAccount.Token,
		ExpectedDistance: 3451.0132605573453,
		AllPages:         true,
	}, nil)

	report, err := runner.Run(context.Background())
	require.NoError(t, err)

	for _, res := range report.Results {
		assert.Equal(t, StatusPassed, res.Status, "%s: %v", res.Name, res.Err)
	}

	assert.True(t, report.OK())
	assert.Equal(t, len(Names()), report.Passed)
	assert.Zero(t, report.Skipped)
	assert.Len(t, Names(), 13)
}

func TestRunner_ChecksAreRepeatable(t *testing.T) {
	runner := NewRunner(newSandboxClient(t), Settings{Token: sandboxAccount.Token}, nil)

	for range 2 {
		report, err := runner.Run(context.Background(), "favorites_update_note", "favorites_update_note", "favorites_remove_single")
		require.NoError(t, err)
		assert.Equal(t, 3, report.Passed, "%+v", report.Results)
	}
}

func TestRunner_SkipsWithoutCredentials(t *testing.T) {
	report, err := NewRunner(newSandboxClient(t), Settings{}, nil).Run(context.Background())
	require.NoError(t, err)

	got := statuses(report)
	for _, name := range []string{
		"tokens_valid_credentials",
		"favorites_initial_page",
		"favorites_update_note",
		"favorites_remove_single",
		"favorites_remove_all",
		"airports_all_pages",
	} {
		assert.Equal(t, StatusSkipped, got[name], name)
	}

	assert.Equal(t, 6, report.Skipped)
	assert.Equal(t, 7, report.Passed)
	assert.True(t, report.OK())
}

func TestRunner_ReportsFailures(t *testing.T) {
	broken := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"errors": [{"status": "500", "title": "Internal Server Error", "detail": "boom"}]}`))
	})

	report, err := NewRunner(newClient(t, broken), Settings{}, nil).Run(context.Background(),
		"airports_initial_page", "airports_invalid_id", "tokens_invalid_credentials")
	require.NoError(t, err)

	assert.False(t, report.OK())
	assert.Equal(t, 3, report.Failed)
	for _, res := range report.Results {
		assert.ErrorContains(t, res.Err, "status 500")
	}
}

func TestRunner_DistanceMismatch(t *testing.T) {
	report, err := NewRunner(newSandboxClient(t), Settings{ExpectedDistance: 3500}, nil).
		Run(context.Background(), "airports_distance")
	require.NoError(t, err)

	require.Len(t, report.Results, 1)
	assert.Equal(t, StatusFailed, report.Results[0].Status)
	assert.ErrorContains(t, report.Results[0].Err, "want 3500")
}

func TestRunner_UnknownCheck(t *testing.T) {
	_, err := NewRunner(newSandboxClient(t), Settings{}, nil).Run(context.Background(), "airports_nope")
	assert.ErrorContains(t, err, `unknown check "airports_nope"`)
}

func TestRunner_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := NewRunner(newSandboxClient(t), Settings{}, nil).Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, report.Results)
}
