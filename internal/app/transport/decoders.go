package transport

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ijalalfrz/airportgap-client/internal/app/dto"
	"github.com/ijalalfrz/airportgap-client/internal/app/service"
	httptransport "github.com/ijalalfrz/airportgap-client/internal/pkg/transport/http"
)

// decodeListAirportsRequest reads ?page=N. A page that is not a positive
// integer means the first page.
func decodeListAirportsRequest(_ context.Context, r *http.Request) (interface{}, error) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	return &dto.ListAirportsRequest{Page: page}, nil
}

func decodeGetAirportRequest(_ context.Context, r *http.Request) (interface{}, error) {
	return &dto.GetAirportRequest{ID: chi.URLParam(r, "id")}, nil
}

func decodeFavoritesRequest(ctx context.Context, _ *http.Request) (interface{}, error) {
	return &dto.FavoritesRequest{Owner: httptransport.TokenFromContext(ctx)}, nil
}

func decodeFavoriteRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	id, err := favoriteID(r)
	if err != nil {
		return nil, err
	}

	return &dto.FavoriteRequest{Owner: httptransport.TokenFromContext(ctx), ID: id}, nil
}

func decodeAddFavoriteRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	req, err := httptransport.DecodeRequest[dto.AddFavoriteRequest](ctx, r)
	if err != nil {
		return nil, err
	}

	add, _ := req.(*dto.AddFavoriteRequest)
	add.Owner = httptransport.TokenFromContext(ctx)

	return add, nil
}

func decodeUpdateFavoriteRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	id, err := favoriteID(r)
	if err != nil {
		return nil, err
	}

	req, err := httptransport.DecodeRequest[dto.UpdateFavoriteRequest](ctx, r)
	if err != nil {
		return nil, err
	}

	update, _ := req.(*dto.UpdateFavoriteRequest)
	update.Owner = httptransport.TokenFromContext(ctx)
	update.ID = id

	return update, nil
}

// favoriteID parses the {id} segment. Ids that cannot exist are reported as
// not found, the same as ids that do not.
func favoriteID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, service.ErrNotFound
	}

	return id, nil
}
