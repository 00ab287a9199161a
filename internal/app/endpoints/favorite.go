package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/airportgap-client/internal/app/dto"
)

type FavoriteService interface {
	ListFavorites(ctx context.Context, req dto.FavoritesRequest) (dto.CollectionResponse[dto.Favorite], error)
	GetFavorite(ctx context.Context, req dto.FavoriteRequest) (dto.DataResponse[dto.Favorite], error)
	AddFavorite(ctx context.Context, req dto.AddFavoriteRequest) (dto.DataResponse[dto.Favorite], error)
	UpdateFavorite(ctx context.Context, req dto.UpdateFavoriteRequest) (dto.DataResponse[dto.Favorite], error)
	RemoveFavorite(ctx context.Context, req dto.FavoriteRequest) error
	ClearFavorites(ctx context.Context, req dto.FavoritesRequest) error
}

type FavoriteEndpoint struct {
	ListFavorites  endpoint.Endpoint
	GetFavorite    endpoint.Endpoint
	AddFavorite    endpoint.Endpoint
	UpdateFavorite endpoint.Endpoint
	RemoveFavorite endpoint.Endpoint
	ClearFavorites endpoint.Endpoint
}

func MakeFavoriteEndpoint(service FavoriteService) FavoriteEndpoint {
	return FavoriteEndpoint{
		ListFavorites:  makeListFavoritesEndpoint(service),
		GetFavorite:    makeGetFavoriteEndpoint(service),
		AddFavorite:    makeAddFavoriteEndpoint(service),
		UpdateFavorite: makeUpdateFavoriteEndpoint(service),
		RemoveFavorite: makeRemoveFavoriteEndpoint(service),
		ClearFavorites: makeClearFavoritesEndpoint(service),
	}
}

func makeListFavoritesEndpoint(service FavoriteService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.FavoritesRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		favorites, err := service.ListFavorites(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("favorite service: %w", err)
		}

		return favorites, nil
	}
}

func makeGetFavoriteEndpoint(service FavoriteService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.FavoriteRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		fav, err := service.GetFavorite(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("favorite service: %w", err)
		}

		return fav, nil
	}
}

func makeAddFavoriteEndpoint(service FavoriteService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.AddFavoriteRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		fav, err := service.AddFavorite(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("favorite service: %w", err)
		}

		return fav, nil
	}
}

func makeUpdateFavoriteEndpoint(service FavoriteService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.UpdateFavoriteRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		fav, err := service.UpdateFavorite(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("favorite service: %w", err)
		}

		return fav, nil
	}
}

func makeRemoveFavoriteEndpoint(service FavoriteService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.FavoriteRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		if err := service.RemoveFavorite(ctx, *request); err != nil {
			return nil, fmt.Errorf("favorite service: %w", err)
		}

		return nil, nil
	}
}

func makeClearFavoritesEndpoint(service FavoriteService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.FavoritesRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		if err := service.ClearFavorites(ctx, *request); err != nil {
			return nil, fmt.Errorf("favorite service: %w", err)
		}

		return nil, nil
	}
}
