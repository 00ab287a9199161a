// Package airportgap exposes the AirportGap resources over a retrying
// REST client.
package airportgap

import (
	"context"
	"encoding/json"
	"iter"
	"net/http"
	"net/url"

	"github.com/ijalalfrz/airportgap-client/internal/pkg/restclient"
)

// Requester is the verb set of restclient.Client.
type Requester interface {
	Get(ctx context.Context, endpoint string, opts restclient.RequestOptions) (*restclient.Response, error)
	Post(ctx context.Context, endpoint string, opts restclient.RequestOptions) (*restclient.Response, error)
	Patch(ctx context.Context, endpoint string, opts restclient.RequestOptions) (*restclient.Response, error)
	Delete(ctx context.Context, endpoint string, opts restclient.RequestOptions) (*restclient.Response, error)
	GetAllPages(ctx context.Context, endpoint string, opts restclient.RequestOptions) iter.Seq2[[]json.RawMessage, error]
}

type Client struct {
	airports  *Airports
	tokens    *Tokens
	favorites *Favorites
}

func New(r Requester) *Client {
	return &Client{
		airports:  &Airports{requester: r},
		tokens:    &Tokens{requester: r},
		favorites: &Favorites{requester: r},
	}
}

func (c *Client) Airports() *Airports {
	return c.airports
}

func (c *Client) Tokens() *Tokens {
	return c.tokens
}

func (c *Client) Favorites() *Favorites {
	return c.favorites
}

const (
	airportsEndpoint  = "airports"
	distanceEndpoint  = "airports/distance"
	tokensEndpoint    = "tokens"
	favoritesEndpoint = "favorites"
	clearAllEndpoint  = "favorites/clear_all"
)

type Airports struct {
	requester Requester
}

// List fetches one page of airports, page <= 0 leaves the page to the server.
func (a *Airports) List(ctx context.Context, page int) (*restclient.Response, error) {
	return a.requester.Get(ctx, airportsEndpoint, restclient.RequestOptions{Page: page})
}

func (a *Airports) Get(ctx context.Context, id string) (*restclient.Response, error) {
	return a.requester.Get(ctx, airportsEndpoint+"/"+url.PathEscape(id), restclient.RequestOptions{})
}

func (a *Airports) Distance(ctx context.Context, from, to string) (*restclient.Response, error) {
	return a.requester.Post(ctx, distanceEndpoint, restclient.RequestOptions{
		JSON: map[string]string{"from": from, "to": to},
	})
}

// ListAll walks every page of the catalog.
func (a *Airports) ListAll(ctx context.Context) iter.Seq2[[]json.RawMessage, error] {
	return a.requester.GetAllPages(ctx, airportsEndpoint, restclient.RequestOptions{})
}

type Tokens struct {
	requester Requester
}

func (t *Tokens) Issue(ctx context.Context, email, password string) (*restclient.Response, error) {
	return t.requester.Post(ctx, tokensEndpoint, restclient.RequestOptions{
		JSON: map[string]string{"email": email, "password": password},
	})
}

// Favorites are per user, every call authenticates with the user's token.
type Favorites struct {
	requester Requester
}

// AuthHeader builds the AirportGap bearer header for token.
func AuthHeader(token string) http.Header {
	return http.Header{"Authorization": {"Bearer token=" + token}}
}

func favoritePath(id string) string {
	return favoritesEndpoint + "/" + url.PathEscape(id)
}

func (f *Favorites) List(ctx context.Context, token string) (*restclient.Response, error) {
	return f.requester.Get(ctx, favoritesEndpoint, restclient.RequestOptions{Headers: AuthHeader(token)})
}

func (f *Favorites) Get(ctx context.Context, token, id string) (*restclient.Response, error) {
	return f.requester.Get(ctx, favoritePath(id), restclient.RequestOptions{Headers: AuthHeader(token)})
}

func (f *Favorites) Add(ctx context.Context, token, airportID, note string) (*restclient.Response, error) {
	return f.requester.Post(ctx, favoritesEndpoint, restclient.RequestOptions{
		Headers: AuthHeader(token),
		JSON:    map[string]string{"airport_id": airportID, "note": note},
	})
}

func (f *Favorites) UpdateNote(ctx context.Context, token, id, note string) (*restclient.Response, error) {
	return f.requester.Patch(ctx, favoritePath(id), restclient.RequestOptions{
		Headers: AuthHeader(token),
		JSON:    map[string]string{"note": note},
	})
}

func (f *Favorites) Remove(ctx context.Context, token, id string) (*restclient.Response, error) {
	return f.requester.Delete(ctx, favoritePath(id), restclient.RequestOptions{Headers: AuthHeader(token)})
}

func (f *Favorites) RemoveAll(ctx context.Context, token string) (*restclient.Response, error) {
	return f.requester.Delete(ctx, clearAllEndpoint, restclient.RequestOptions{Headers: AuthHeader(token)})
}
