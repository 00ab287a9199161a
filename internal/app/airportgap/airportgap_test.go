//go:build unit

package airportgap

import (
	"context"
	"encoding/json"
	"errors"
	"iter"
	"net/http"
	"testing"

	"github.com/ijalalfrz/airportgap-client/internal/pkg/restclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClient_Calls(t *testing.T) {
	ctx := context.Background()
	auth := http.Header{"Authorization": {"Bearer token=secret"}}
	okResp := &restclient.Response{StatusCode: http.StatusOK}

	callFacade := func(
		call func(c *Client) (*restclient.Response, error),
		method, endpoint string,
		opts restclient.RequestOptions,
	) func(t *testing.T) {
		return func(t *testing.T) {
			m := NewMockRequester(t)
			m.On(method, ctx, endpoint, opts).Return(okResp, nil).Once()

			got, err := call(New(m))

			require.NoError(t, err)
			assert.Same(t, okResp, got)
		}
	}

	t.Run("airports_list_first_page", callFacade(func(c *Client) (*restclient.Response, error) {
		return c.Airports().List(ctx, 0)
	}, "Get", "airports", restclient.RequestOptions{}))

	t.Run("airports_list_page", callFacade(func(c *Client) (*restclient.Response, error) {
		return c.Airports().List(ctx, 2000)
	}, "Get", "airports", restclient.RequestOptions{Page: 2000}))

	t.Run("airports_get", callFacade(func(c *Client) (*restclient.Response, error) {
		return c.Airports().Get(ctx, "MAG")
	}, "Get", "airports/MAG", restclient.RequestOptions{}))

	t.Run("airports_get_escapes_id", callFacade(func(c *Client) (*restclient.Response, error) {
		return c.Airports().Get(ctx, "a/b c")
	}, "Get", "airports/a%2Fb%20c", restclient.RequestOptions{}))

	t.Run("airports_distance", callFacade(func(c *Client) (*restclient.Response, error) {
		return c.Airports().Distance(ctx, "MAG", "CYG")
	}, "Post", "airports/distance", restclient.RequestOptions{
		JSON: map[string]string{"from": "MAG", "to": "CYG"},
	}))

	t.Run("tokens_issue", callFacade(func(c *Client) (*restclient.Response, error) {
		return c.Tokens().Issue(ctx, "user@example.com", "pw")
	}, "Post", "tokens", restclient.RequestOptions{
		JSON: map[string]string{"email": "user@example.com", "password": "pw"},
	}))

	t.Run("favorites_list", callFacade(func(c *Client) (*restclient.Response, error) {
		return c.Favorites().List(ctx, "secret")
	}, "Get", "favorites", restclient.RequestOptions{Headers: auth}))

	t.Run("favorites_get", callFacade(func(c *Client) (*restclient.Response, error) {
		return c.Favorites().Get(ctx, "secret", "12")
	}, "Get", "favorites/12", restclient.RequestOptions{Headers: auth}))

	t.Run("favorites_add", callFacade(func(c *Client) (*restclient.Response, error) {
		return c.Favorites().Add(ctx, "secret", "MAG", "home")
	}, "Post", "favorites", restclient.RequestOptions{
		Headers: auth,
		JSON:    map[string]string{"airport_id": "MAG", "note": "home"},
	}))

	t.Run("favorites_update_note", callFacade(func(c *Client) (*restclient.Response, error) {
		return c.Favorites().UpdateNote(ctx, "secret", "12", "new note")
	}, "Patch", "favorites/12", restclient.RequestOptions{
		Headers: auth,
		JSON:    map[string]string{"note": "new note"},
	}))

	t.Run("favorites_remove", callFacade(func(c *Client) (*restclient.Response, error) {
		return c.Favorites().Remove(ctx, "secret", "12")
	}, "Delete", "favorites/12", restclient.RequestOptions{Headers: auth}))

	t.Run("favorites_remove_all", callFacade(func(c *Client) (*restclient.Response, error) {
		return c.Favorites().RemoveAll(ctx, "secret")
	}, "Delete", "favorites/clear_all", restclient.RequestOptions{Headers: auth}))
}

func TestClient_PropagatesErrors(t *testing.T) {
	ctx := context.Background()
	m := NewMockRequester(t)
	m.On("Get", ctx, "airports", mock.Anything).Return(nil, restclient.ErrRateLimitReached).Once()

	resp, err := New(m).Airports().List(ctx, 0)

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, restclient.ErrRateLimitReached))
}

func TestAirports_ListAll(t *testing.T) {
	ctx := context.Background()

	var pages iter.Seq2[[]json.RawMessage, error] = func(yield func([]json.RawMessage, error) bool) {
		if !yield([]json.RawMessage{json.RawMessage(`{"id":"GKA"}`)}, nil) {
			return
		}
		yield([]json.RawMessage{json.RawMessage(`{"id":"MAG"}`)}, nil)
	}

	m := NewMockRequester(t)
	m.On("GetAllPages", ctx, "airports", restclient.RequestOptions{}).Return(pages).Once()

	count := 0
	for items, err := range New(m).Airports().ListAll(ctx) {
		require.NoError(t, err)
		count += len(items)
	}

	assert.Equal(t, 2, count)
}

func TestAuthHeader(t *testing.T) {
	assert.Equal(t, "Bearer token=abc", AuthHeader("abc").Get("Authorization"))
}
