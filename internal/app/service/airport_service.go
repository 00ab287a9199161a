package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ijalalfrz/airportgap-client/internal/app/dto"
	"github.com/ijalalfrz/airportgap-client/internal/pkg/airport"
	"github.com/ijalalfrz/airportgap-client/internal/pkg/utils"
)

const DefaultPageSize = 30

type AirportService struct {
	Catalog  *airport.Catalog
	PageSize int
	// LinkPrefix is prepended to the collection path in pagination links.
	LinkPrefix string
}

func NewAirportService(catalog *airport.Catalog, pageSize int, linkPrefix string) *AirportService {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &AirportService{
		Catalog:    catalog,
		PageSize:   pageSize,
		LinkPrefix: strings.TrimRight(linkPrefix, "/"),
	}
}

// ListAirports godoc
// @Summary      List airports
// @Tags         Airports
// @Param        page  query     int  false  "Page number"
// @Success      200   {object}  dto.CollectionResponse[dto.Airport]
// @Router       /api/airports [get]
func (s *AirportService) ListAirports(
	ctx context.Context,
	req dto.ListAirportsRequest,
) (dto.CollectionResponse[dto.Airport], error) {
	page := max(req.Page, 1)

	entries := s.Catalog.Page(page, s.PageSize)
	data := make([]dto.Airport, 0, len(entries))
	for _, entry := range entries {
		data = append(data, entry.Airport())
	}

	slog.DebugContext(ctx, "list airports", slog.Int("page", page), slog.Int("count", len(data)))

	return dto.CollectionResponse[dto.Airport]{
		Data:  data,
		Links: s.pageLinks(page),
	}, nil
}

func (s *AirportService) pageLinks(page int) *dto.Links {
	last := s.Catalog.PageCount(s.PageSize)

	links := &dto.Links{
		First: s.pageURL(1),
		Self:  s.pageURL(page),
		Last:  s.pageURL(last),
	}

	if page > 1 {
		links.Prev = s.pageURL(min(page-1, last))
	}

	if page < last {
		links.Next = s.pageURL(page + 1)
	}

	return links
}

func (s *AirportService) pageURL(page int) string {
	return fmt.Sprintf("%s/airports?page=%d", s.LinkPrefix, page)
}

// GetAirport godoc
// @Summary      Get an airport by IATA code
// @Tags         Airports
// @Success      200  {object}  dto.DataResponse[dto.Airport]
// @Failure      404  {object}  exception.ErrorEnvelope
// @Router       /api/airports/{id} [get]
func (s *AirportService) GetAirport(
	_ context.Context,
	req dto.GetAirportRequest,
) (dto.DataResponse[dto.Airport], error) {
	entry, ok := s.Catalog.Find(req.ID)
	if !ok {
		return dto.DataResponse[dto.Airport]{}, ErrNotFound
	}

	return dto.DataResponse[dto.Airport]{Data: entry.Airport()}, nil
}

// Distance godoc
// @Summary      Distance between two airports
// @Tags         Airports
// @Param        request  body      dto.DistanceRequest  true  "Airports"
// @Success      200      {object}  dto.DataResponse[dto.AirportDistance]
// @Failure      422      {object}  exception.ErrorEnvelope
// @Router       /api/airports/distance [post]
func (s *AirportService) Distance(
	ctx context.Context,
	req dto.DistanceRequest,
) (dto.DataResponse[dto.AirportDistance], error) {
	from, okFrom := s.Catalog.Find(req.From)
	to, okTo := s.Catalog.Find(req.To)
	if !okFrom || !okTo {
		return dto.DataResponse[dto.AirportDistance]{}, ErrInvalidDistanceAirports
	}

	km, err := airport.Distance(from, to)
	if err != nil {
		return dto.DataResponse[dto.AirportDistance]{}, fmt.Errorf("calculate distance: %w", err)
	}

	slog.DebugContext(ctx, "airport distance",
		slog.String("from", string(from.IATA)), slog.String("to", string(to.IATA)), slog.Float64("km", km))

	return dto.DataResponse[dto.AirportDistance]{
		Data: dto.AirportDistance{
			ID:   fmt.Sprintf("%s-%s", from.IATA, to.IATA),
			Type: dto.DataTypeAirportDistance,
			Attributes: dto.DistanceAttributes{
				FromAirport:   dto.DistanceAirport(from),
				ToAirport:     dto.DistanceAirport(to),
				Kilometers:    utils.Round(km, 3),
				Miles:         utils.Round(utils.KilometersToMiles(km), 3),
				NauticalMiles: utils.Round(utils.KilometersToNauticalMiles(km), 3),
			},
		},
	}, nil
}
