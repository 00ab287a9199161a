package transport

import (
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/ijalalfrz/airportgap-client/internal/app/config"
	"github.com/ijalalfrz/airportgap-client/internal/app/dto"
	"github.com/ijalalfrz/airportgap-client/internal/app/endpoints"
	"github.com/ijalalfrz/airportgap-client/internal/app/service"
	"github.com/ijalalfrz/airportgap-client/internal/pkg/favorite"
	httptransport "github.com/ijalalfrz/airportgap-client/internal/pkg/transport/http"
)

// MakeSandboxRouter wires the catalog, services and endpoints behind the
// sandbox router. limiter may be nil.
func MakeSandboxRouter(
	cfg *config.Config,
	redisClient favorite.RedisClient,
	limiter httptransport.Limiter,
) (*chi.Mux, error) {
	if err := dto.InitValidator(); err != nil {
		return nil, fmt.Errorf("init validator: %w", err)
	}

	catalog, err := service.LoadCatalog()
	if err != nil {
		return nil, err
	}

	tokenService := service.NewTokenService(service.Credentials{
		Email:    cfg.Sandbox.Email,
		Password: cfg.Sandbox.Password,
		Token:    cfg.Sandbox.Token,
	})

	endpts := endpoints.Endpoints{
		AirportEndpoint: endpoints.MakeAirportEndpoint(
			service.NewAirportService(catalog, cfg.Sandbox.PageSize, cfg.Sandbox.LinkPrefix),
		),
		TokenEndpoint: endpoints.MakeTokenEndpoint(tokenService),
		FavoriteEndpoint: endpoints.MakeFavoriteEndpoint(
			service.NewFavoriteService(catalog, favorite.NewStore(redisClient), cfg.Sandbox.LinkPrefix),
		),
	}

	return MakeHTTPRouter(cfg, endpts, RouterDeps{
		Authenticate: tokenService.Authenticate,
		Limiter:      limiter,
	}), nil
}
