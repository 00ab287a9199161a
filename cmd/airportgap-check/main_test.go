package main

import (
	"bytes"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ijalalfrz/airportgap-client/internal/app/config"
	"github.com/ijalalfrz/airportgap-client/internal/app/transport"
	"github.com/ijalalfrz/airportgap-client/internal/pkg/favorite/favoritetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	sandbox := config.Sandbox{
		Email:      "tester@airportgap.test",
		Password:   "airportgap",
		Token:      "sandbox-token",
		PageSize:   30,
		LinkPrefix: "/api",
	}

	router, err := transport.MakeSandboxRouter(&config.Config{Sandbox: sandbox}, favoritetest.NewMemoryClient(), nil)
	require.NoError(t, err)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	cfg := config.Config{AirportGap: config.AirportGap{
		BaseURL:        srv.URL + "/api",
		RequestTimeout: 5 * time.Second,
	}}

	t.Run("anonymous", func(t *testing.T) {
		var out bytes.Buffer

		code := run(cfg, nil, &out)

		assert.Equal(t, 0, code)
		assert.Contains(t, out.String(), "7 passed, 0 failed, 6 skipped")
		assert.Contains(t, out.String(), "no token configured")
	})

	t.Run("with_account", func(t *testing.T) {
		withAccount := cfg
		withAccount.AirportGap.Email = sandbox.Email
		withAccount.AirportGap.Password = sandbox.Password
		withAccount.AirportGap.Token = sandbox.Token

		var out bytes.Buffer

		code := run(withAccount, []string{"tokens_valid_credentials", "favorites_update_note"}, &out)

		assert.Equal(t, 0, code)
		assert.Contains(t, out.String(), "2 passed, 0 failed, 0 skipped")
	})

	t.Run("wrong_token_fails", func(t *testing.T) {
		wrong := cfg
		wrong.AirportGap.Token = "nope"

		var out bytes.Buffer

		code := run(wrong, []string{"favorites_initial_page"}, &out)

		assert.Equal(t, 1, code)
		assert.Contains(t, out.String(), "status 401")
	})

	t.Run("bad_base_url", func(t *testing.T) {
		bad := cfg
		bad.AirportGap.BaseURL = "not a url"

		assert.Equal(t, 2, run(bad, nil, &bytes.Buffer{}))
	})
}
