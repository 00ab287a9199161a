package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/airportgap-client/internal/app/config"
	"github.com/ijalalfrz/airportgap-client/internal/app/dto"
	"github.com/ijalalfrz/airportgap-client/internal/app/endpoints"
	"github.com/ijalalfrz/airportgap-client/internal/app/service"
	"github.com/ijalalfrz/airportgap-client/internal/pkg/exception"
	httptransport "github.com/ijalalfrz/airportgap-client/internal/pkg/transport/http"
)

// RouterDeps are the collaborators the router needs besides endpoints.
type RouterDeps struct {
	Authenticate func(token string) bool
	// Limiter may be nil to disable rate limiting.
	Limiter httptransport.Limiter
}

// MakeHTTPRouter builds the HTTP router with all the sandbox endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
	deps RouterDeps,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httptransport.WriteError(w, http.StatusNotFound, service.ErrNotFound.Envelope())
	})

	router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httptransport.WriteError(w, http.StatusMethodNotAllowed, exception.ApplicationError{
			StatusCode: http.StatusMethodNotAllowed,
			Message:    "The requested method is not allowed on this resource",
		}.Envelope())
	})

	router.Route("/api", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(cfg.Sandbox.AllowedOrigins),
			httptransport.Recoverer(slog.Default()),
			httptransport.RateLimit(deps.Limiter, redis_rate.PerMinute(cfg.Sandbox.RateLimit)),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Route("/airports", func(router chi.Router) {
			router.Get("/", httptransport.MakeHandlerFunc(
				endpts.AirportEndpoint.ListAirports,
				decodeListAirportsRequest,
				httptransport.ResponseWithBody,
			))

			router.Post("/distance", httptransport.MakeHandlerFunc(
				endpts.AirportEndpoint.Distance,
				httptransport.DecodeRequest[dto.DistanceRequest],
				httptransport.ResponseWithBody,
			))

			router.Get("/{id}", httptransport.MakeHandlerFunc(
				endpts.AirportEndpoint.GetAirport,
				decodeGetAirportRequest,
				httptransport.ResponseWithBody,
			))
		})

		router.Post("/tokens", httptransport.MakeHandlerFunc(
			endpts.TokenEndpoint.IssueToken,
			httptransport.DecodeRequest[dto.TokenRequest],
			httptransport.ResponseWithBody,
		))

		router.Route("/favorites", func(router chi.Router) {
			router.Use(httptransport.BearerAuth(deps.Authenticate))

			router.Get("/", httptransport.MakeHandlerFunc(
				endpts.FavoriteEndpoint.ListFavorites,
				decodeFavoritesRequest,
				httptransport.ResponseWithBody,
			))

			router.Post("/", httptransport.MakeHandlerFunc(
				endpts.FavoriteEndpoint.AddFavorite,
				decodeAddFavoriteRequest,
				httptransport.CreatedResponse,
			))

			router.Delete("/clear_all", httptransport.MakeHandlerFunc(
				endpts.FavoriteEndpoint.ClearFavorites,
				decodeFavoritesRequest,
				httptransport.NoContentResponse,
			))

			router.Get("/{id}", httptransport.MakeHandlerFunc(
				endpts.FavoriteEndpoint.GetFavorite,
				decodeFavoriteRequest,
				httptransport.ResponseWithBody,
			))

			router.Patch("/{id}", httptransport.MakeHandlerFunc(
				endpts.FavoriteEndpoint.UpdateFavorite,
				decodeUpdateFavoriteRequest,
				httptransport.ResponseWithBody,
			))

			router.Delete("/{id}", httptransport.MakeHandlerFunc(
				endpts.FavoriteEndpoint.RemoveFavorite,
				decodeFavoriteRequest,
				httptransport.NoContentResponse,
			))
		})
	})

	return router
}
