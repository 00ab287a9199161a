package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/ijalalfrz/airportgap-client/internal/app/dto"
	"github.com/ijalalfrz/airportgap-client/internal/pkg/airport"
	"github.com/ijalalfrz/airportgap-client/internal/pkg/favorite"
)

type FavoriteStore interface {
	Add(ctx context.Context, owner, airportID, note string) (favorite.Record, error)
	Get(ctx context.Context, owner string, id int64) (favorite.Record, error)
	List(ctx context.Context, owner string) ([]favorite.Record, error)
	UpdateNote(ctx context.Context, owner string, id int64, note string) (favorite.Record, error)
	Remove(ctx context.Context, owner string, id int64) error
	Clear(ctx context.Context, owner string) error
}

type FavoriteService struct {
	Catalog    *airport.Catalog
	Store      FavoriteStore
	LinkPrefix string
}

func NewFavoriteService(catalog *airport.Catalog, store FavoriteStore, linkPrefix string) *FavoriteService {
	return &FavoriteService{
		Catalog:    catalog,
		Store:      store,
		LinkPrefix: linkPrefix,
	}
}

// ListFavorites godoc
// @Summary      List the caller's favorite airports
// @Tags         Favorites
// @Security     BearerToken
// @Success      200  {object}  dto.CollectionResponse[dto.Favorite]
// @Failure      401  {object}  exception.ErrorEnvelope
// @Router       /api/favorites [get]
func (s *FavoriteService) ListFavorites(
	ctx context.Context,
	req dto.FavoritesRequest,
) (dto.CollectionResponse[dto.Favorite], error) {
	records, err := s.Store.List(ctx, req.Owner)
	if err != nil {
		return dto.CollectionResponse[dto.Favorite]{}, fmt.Errorf("favorite store: %w", err)
	}

	data := make([]dto.Favorite, 0, len(records))
	for _, rec := range records {
		fav, err := s.render(rec)
		if err != nil {
			slog.WarnContext(ctx, "skipping favorite", slog.Int64("id", rec.ID), slog.Any("error", err))
			continue
		}
		data = append(data, fav)
	}

	self := s.LinkPrefix + "/favorites"

	return dto.CollectionResponse[dto.Favorite]{
		Data:  data,
		Links: &dto.Links{First: self, Self: self, Last: self},
	}, nil
}

// GetFavorite godoc
// @Summary      Get one favorite
// @Tags         Favorites
// @Security     BearerToken
// @Success      200  {object}  dto.DataResponse[dto.Favorite]
// @Failure      404  {object}  exception.ErrorEnvelope
// @Router       /api/favorites/{id} [get]
func (s *FavoriteService) GetFavorite(
	ctx context.Context,
	req dto.FavoriteRequest,
) (dto.DataResponse[dto.Favorite], error) {
	rec, err := s.Store.Get(ctx, req.Owner, req.ID)
	if err != nil {
		return dto.DataResponse[dto.Favorite]{}, fmt.Errorf("favorite store: %w", err)
	}

	return s.respond(rec)
}

// AddFavorite godoc
// @Summary      Save an airport as favorite
// @Tags         Favorites
// @Security     BearerToken
// @Param        request  body      dto.AddFavoriteRequest  true  "Favorite"
// @Success      201      {object}  dto.DataResponse[dto.Favorite]
// @Failure      422      {object}  exception.ErrorEnvelope
// @Router       /api/favorites [post]
func (s *FavoriteService) AddFavorite(
	ctx context.Context,
	req dto.AddFavoriteRequest,
) (dto.DataResponse[dto.Favorite], error) {
	entry, ok := s.Catalog.Find(req.AirportID)
	if !ok {
		return dto.DataResponse[dto.Favorite]{}, ErrUnknownFavoriteAirport
	}

	rec, err := s.Store.Add(ctx, req.Owner, string(entry.IATA), req.Note)
	if err != nil {
		return dto.DataResponse[dto.Favorite]{}, fmt.Errorf("favorite store: %w", err)
	}

	slog.InfoContext(ctx, "favorite added", slog.Int64("id", rec.ID), slog.String("airport", rec.AirportID))

	return s.respond(rec)
}

// UpdateFavorite godoc
// @Summary      Update the note of a favorite
// @Tags         Favorites
// @Security     BearerToken
// @Param        request  body      dto.UpdateFavoriteRequest  true  "Note"
// @Success      200      {object}  dto.DataResponse[dto.Favorite]
// @Failure      404      {object}  exception.ErrorEnvelope
// @Router       /api/favorites/{id} [patch]
func (s *FavoriteService) UpdateFavorite(
	ctx context.Context,
	req dto.UpdateFavoriteRequest,
) (dto.DataResponse[dto.Favorite], error) {
	rec, err := s.Store.UpdateNote(ctx, req.Owner, req.ID, req.Note)
	if err != nil {
		return dto.DataResponse[dto.Favorite]{}, fmt.Errorf("favorite store: %w", err)
	}

	return s.respond(rec)
}

// RemoveFavorite godoc
// @Summary      Remove one favorite
// @Tags         Favorites
// @Security     BearerToken
// @Success      204
// @Failure      404  {object}  exception.ErrorEnvelope
// @Router       /api/favorites/{id} [delete]
func (s *FavoriteService) RemoveFavorite(ctx context.Context, req dto.FavoriteRequest) error {
	if err := s.Store.Remove(ctx, req.Owner, req.ID); err != nil {
		return fmt.Errorf("favorite store: %w", err)
	}

	return nil
}

// ClearFavorites godoc
// @Summary      Remove every favorite of the caller
// @Tags         Favorites
// @Security     BearerToken
// @Success      204
// @Router       /api/favorites/clear_all [delete]
func (s *FavoriteService) ClearFavorites(ctx context.Context, req dto.FavoritesRequest) error {
	if err := s.Store.Clear(ctx, req.Owner); err != nil {
		return fmt.Errorf("favorite store: %w", err)
	}

	return nil
}

func (s *FavoriteService) respond(rec favorite.Record) (dto.DataResponse[dto.Favorite], error) {
	fav, err := s.render(rec)
	if err != nil {
		return dto.DataResponse[dto.Favorite]{}, err
	}

	return dto.DataResponse[dto.Favorite]{Data: fav}, nil
}

func (s *FavoriteService) render(rec favorite.Record) (dto.Favorite, error) {
	entry, ok := s.Catalog.Find(rec.AirportID)
	if !ok {
		return dto.Favorite{}, fmt.Errorf("favorite %d: airport %s not in catalog", rec.ID, rec.AirportID)
	}

	return dto.Favorite{
		ID:   strconv.FormatInt(rec.ID, 10),
		Type: dto.DataTypeFavorite,
		Attributes: dto.FavoriteAttributes{
			Airport: dto.FavoriteAirport(entry),
			Note:    rec.Note,
		},
	}, nil
}
