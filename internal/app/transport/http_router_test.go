package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/airportgap-client/internal/app/config"
	"github.com/ijalalfrz/airportgap-client/internal/app/dto"
	"github.com/ijalalfrz/airportgap-client/internal/pkg/exception"
	"github.com/ijalalfrz/airportgap-client/internal/pkg/favorite/favoritetest"
	httptransport "github.com/ijalalfrz/airportgap-client/internal/pkg/transport/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sandboxToken = "secret-token"

type stubLimiter struct {
	res *redis_rate.Result
	err error
}

func (s stubLimiter) Allow(_ context.Context, _ string, _ redis_rate.Limit) (*redis_rate.Result, error) {
	return s.res, s.err
}

func sandboxConfig() *config.Config {
	return &config.Config{
		Sandbox: config.Sandbox{
			Email:          "tester@airportgap.test",
			Password:       "airportgap",
			Token:          sandboxToken,
			PageSize:       30,
			RateLimit:      100,
			LinkPrefix:     "/api",
			AllowedOrigins: []string{"*"},
		},
	}
}

func newSandbox(t *testing.T, limiter httptransport.Limiter) *httptest.Server {
	t.Helper()

	router, err := MakeSandboxRouter(sandboxConfig(), favoritetest.NewMemoryClient(), limiter)
	require.NoError(t, err)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv
}

type result struct {
	status int
	header http.Header
	body   []byte
}

func call(t *testing.T, srv *httptest.Server, method, path, token string, body any) result {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer token="+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return result{status: resp.StatusCode, header: resp.Header, body: raw}
}

func errorEnvelope(t *testing.T, body []byte) exception.ErrorEnvelope {
	t.Helper()

	var env exception.ErrorEnvelope
	require.NoError(t, json.Unmarshal(body, &env))
	require.NotEmpty(t, env.Errors)

	return env
}

func TestRouter_Health(t *testing.T) {
	srv := newSandbox(t, nil)

	res := call(t, srv, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusNoContent, res.status)
}

func TestRouter_UnknownRoute(t *testing.T) {
	srv := newSandbox(t, nil)

	res := call(t, srv, http.MethodGet, "/api/nowhere", "", nil)

	assert.Equal(t, http.StatusNotFound, res.status)
	assert.Equal(t, exception.ErrorObject{
		Status: "404",
		Title:  "Not Found",
		Detail: "The page you requested could not be found",
	}, errorEnvelope(t, res.body).Errors[0])
}

func TestRouter_Airports(t *testing.T) {
	srv := newSandbox(t, nil)

	page := func(path string, wantItems int, wantNext string) func(t *testing.T) {
		return func(t *testing.T) {
			res := call(t, srv, http.MethodGet, path, "", nil)
			require.Equal(t, http.StatusOK, res.status)

			var got dto.CollectionResponse[dto.Airport]
			require.NoError(t, json.Unmarshal(res.body, &got))

			assert.Len(t, got.Data, wantItems)
			require.NotNil(t, got.Links)
			assert.Equal(t, wantNext, got.Links.Next)
			assert.Equal(t, "/api/airports?page=1", got.Links.First)

			items, err := dto.DecodeDataList[dto.Airport](res.body)
			require.NoError(t, err)
			assert.Len(t, items, wantItems)
		}
	}

	t.Run("first_page", page("/api/airports", 30, "/api/airports?page=2"))
	t.Run("second_page", page("/api/airports?page=2", 30, "/api/airports?page=3"))
	t.Run("last_page", page("/api/airports?page=3", 9, ""))
	t.Run("past_last_page", page("/api/airports?page=2000", 0, ""))
	t.Run("garbage_page_is_first", page("/api/airports?page=abc", 30, "/api/airports?page=2"))

	t.Run("get_by_id", func(t *testing.T) {
		res := call(t, srv, http.MethodGet, "/api/airports/mag", "", nil)
		require.Equal(t, http.StatusOK, res.status)

		got, err := dto.DecodeData[dto.Airport](res.body)
		require.NoError(t, err)
		assert.Equal(t, dto.KnownAirports.MAG, got)
	})

	t.Run("get_unknown_id", func(t *testing.T) {
		res := call(t, srv, http.MethodGet, "/api/airports/INVALID", "", nil)
		require.Equal(t, http.StatusNotFound, res.status)
		assert.Equal(t, "The page you requested could not be found", errorEnvelope(t, res.body).Errors[0].Detail)
	})
}

func TestRouter_Distance(t *testing.T) {
	srv := newSandbox(t, nil)

	t.Run("known_airports", func(t *testing.T) {
		res := call(t, srv, http.MethodPost, "/api/airports/distance", "", map[string]string{"from": "MAG", "to": "CYG"})
		require.Equal(t, http.StatusOK, res.status)

		got, err := dto.DecodeData[dto.AirportDistance](res.body)
		require.NoError(t, err)
		assert.Equal(t, "MAG-CYG", got.ID)
		assert.InDelta(t, 3451.013, got.Attributes.Kilometers, 1e-9)
	})

	t.Run("unknown_airport", func(t *testing.T) {
		res := call(t, srv, http.MethodPost, "/api/airports/distance", "", map[string]string{"from": "MAG", "to": "ZZZ"})
		assert.Equal(t, http.StatusUnprocessableEntity, res.status)
	})

	t.Run("schema_violations", func(t *testing.T) {
		res := call(t, srv, http.MethodPost, "/api/airports/distance", "", `{"from": 1}`)
		require.Equal(t, http.StatusBadRequest, res.status)

		env := errorEnvelope(t, res.body)
		assert.Len(t, env.Errors, 2)
		for _, e := range env.Errors {
			assert.Equal(t, "400", e.Status)
		}
	})

	t.Run("not_json", func(t *testing.T) {
		res := call(t, srv, http.MethodPost, "/api/airports/distance", "", `from=MAG`)
		assert.Equal(t, http.StatusBadRequest, res.status)
	})
}

func TestRouter_Tokens(t *testing.T) {
	srv := newSandbox(t, nil)

	t.Run("valid_credentials", func(t *testing.T) {
		res := call(t, srv, http.MethodPost, "/api/tokens", "", map[string]string{
			"email": "tester@airportgap.test", "password": "airportgap",
		})
		require.Equal(t, http.StatusOK, res.status)

		got, err := dto.Decode[dto.Token](res.body)
		require.NoError(t, err)
		assert.Equal(t, sandboxToken, got.Token)
	})

	t.Run("invalid_credentials", func(t *testing.T) {
		res := call(t, srv, http.MethodPost, "/api/tokens", "", map[string]string{
			"email": "Invalid", "password": "Invalid",
		})
		require.Equal(t, http.StatusUnauthorized, res.status)
		assert.Equal(t, exception.ErrorObject{
			Status: "401",
			Title:  "Unauthorised",
			Detail: "You are not authorized to perform the requested action.",
		}, errorEnvelope(t, res.body).Errors[0])
	})
}

func TestRouter_Favorites(t *testing.T) {
	srv := newSandbox(t, nil)

	t.Run("requires_token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, call(t, srv, http.MethodGet, "/api/favorites", "", nil).status)
		assert.Equal(t, http.StatusUnauthorized, call(t, srv, http.MethodGet, "/api/favorites", "wrong", nil).status)
	})

	t.Run("lifecycle", func(t *testing.T) {
		res := call(t, srv, http.MethodPost, "/api/favorites", sandboxToken, map[string]string{"airport_id": "MAG", "note": "home"})
		require.Equal(t, http.StatusCreated, res.status)

		added, err := dto.DecodeData[dto.Favorite](res.body)
		require.NoError(t, err)
		assert.Equal(t, "home", added.Attributes.Note)
		assert.Equal(t, dto.KnownAirports.MAG.Attributes, added.Attributes.Airport.AirportAttributes)

		res = call(t, srv, http.MethodPost, "/api/favorites", sandboxToken, map[string]string{"airport_id": "mag"})
		assert.Equal(t, http.StatusUnprocessableEntity, res.status)

		res = call(t, srv, http.MethodPatch, "/api/favorites/"+added.ID, sandboxToken, map[string]string{"note": "One of the best"})
		require.Equal(t, http.StatusOK, res.status)

		res = call(t, srv, http.MethodGet, "/api/favorites/"+added.ID, sandboxToken, nil)
		require.Equal(t, http.StatusOK, res.status)
		got, err := dto.DecodeData[dto.Favorite](res.body)
		require.NoError(t, err)
		assert.Equal(t, "One of the best", got.Attributes.Note)

		res = call(t, srv, http.MethodGet, "/api/favorites", sandboxToken, nil)
		require.Equal(t, http.StatusOK, res.status)
		list, err := dto.DecodeDataList[dto.Favorite](res.body)
		require.NoError(t, err)
		assert.Len(t, list, 1)

		res = call(t, srv, http.MethodDelete, "/api/favorites/"+added.ID, sandboxToken, nil)
		assert.Equal(t, http.StatusNoContent, res.status)

		res = call(t, srv, http.MethodGet, "/api/favorites/"+added.ID, sandboxToken, nil)
		assert.Equal(t, http.StatusNotFound, res.status)
	})

	t.Run("clear_all", func(t *testing.T) {
		res := call(t, srv, http.MethodPost, "/api/favorites", sandboxToken, map[string]string{"airport_id": "CYG"})
		require.Equal(t, http.StatusCreated, res.status)
		added, err := dto.DecodeData[dto.Favorite](res.body)
		require.NoError(t, err)

		res = call(t, srv, http.MethodDelete, "/api/favorites/clear_all", sandboxToken, nil)
		assert.Equal(t, http.StatusNoContent, res.status)

		res = call(t, srv, http.MethodGet, "/api/favorites/"+added.ID, sandboxToken, nil)
		assert.Equal(t, http.StatusNotFound, res.status)
	})

	t.Run("unknown_airport", func(t *testing.T) {
		res := call(t, srv, http.MethodPost, "/api/favorites", sandboxToken, map[string]string{"airport_id": "ZZZ"})
		assert.Equal(t, http.StatusUnprocessableEntity, res.status)
	})

	t.Run("non_numeric_id", func(t *testing.T) {
		res := call(t, srv, http.MethodGet, "/api/favorites/abc", sandboxToken, nil)
		assert.Equal(t, http.StatusNotFound, res.status)
	})

	t.Run("update_without_note", func(t *testing.T) {
		res := call(t, srv, http.MethodPatch, "/api/favorites/1", sandboxToken, `{}`)
		assert.Equal(t, http.StatusBadRequest, res.status)
	})
}

func TestRouter_RateLimit(t *testing.T) {
	t.Run("exceeded", func(t *testing.T) {
		srv := newSandbox(t, stubLimiter{res: &redis_rate.Result{
			Allowed:    0,
			Remaining:  0,
			RetryAfter: 1500 * time.Millisecond,
		}})

		res := call(t, srv, http.MethodGet, "/api/airports", "", nil)

		assert.Equal(t, http.StatusTooManyRequests, res.status)
		assert.Equal(t, "2", res.header.Get("Retry-After"))
		assert.Equal(t, "429", errorEnvelope(t, res.body).Errors[0].Status)
	})

	t.Run("limiter_down_lets_requests_through", func(t *testing.T) {
		srv := newSandbox(t, stubLimiter{err: errors.New("connection refused")})

		res := call(t, srv, http.MethodGet, "/api/airports", "", nil)
		assert.Equal(t, http.StatusOK, res.status)
	})

	t.Run("health_is_not_limited", func(t *testing.T) {
		srv := newSandbox(t, stubLimiter{res: &redis_rate.Result{Allowed: 0, RetryAfter: time.Second}})

		res := call(t, srv, http.MethodGet, "/health", "", nil)
		assert.Equal(t, http.StatusNoContent, res.status)
	})
}
