package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/airportgap-client/internal/app/dto"
)

type AirportService interface {
	ListAirports(ctx context.Context, req dto.ListAirportsRequest) (dto.CollectionResponse[dto.Airport], error)
	GetAirport(ctx context.Context, req dto.GetAirportRequest) (dto.DataResponse[dto.Airport], error)
	Distance(ctx context.Context, req dto.DistanceRequest) (dto.DataResponse[dto.AirportDistance], error)
}

type AirportEndpoint struct {
	ListAirports endpoint.Endpoint
	GetAirport   endpoint.Endpoint
	Distance     endpoint.Endpoint
}

func MakeAirportEndpoint(service AirportService) AirportEndpoint {
	return AirportEndpoint{
		ListAirports: makeListAirportsEndpoint(service),
		GetAirport:   makeGetAirportEndpoint(service),
		Distance:     makeDistanceEndpoint(service),
	}
}

func makeListAirportsEndpoint(service AirportService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.ListAirportsRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		airports, err := service.ListAirports(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("airport service: %w", err)
		}

		return airports, nil
	}
}

func makeGetAirportEndpoint(service AirportService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.GetAirportRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		airport, err := service.GetAirport(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("airport service: %w", err)
		}

		return airport, nil
	}
}

func makeDistanceEndpoint(service AirportService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.DistanceRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		distance, err := service.Distance(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("airport service: %w", err)
		}

		return distance, nil
	}
}
