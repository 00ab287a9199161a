package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/go-chi/cors"
	"github.com/go-redis/redis_rate/v10"
	"github.com/google/uuid"
	"github.com/ijalalfrz/airportgap-client/internal/pkg/exception"
	"github.com/ijalalfrz/airportgap-client/internal/pkg/logger"
)

type MiddlewareFunc func(http.Handler) http.Handler

type contextKey string

const tokenKey contextKey = "bearer_token"

var errUnauthorized = exception.ApplicationError{
	StatusCode: http.StatusUnauthorized,
	Title:      "Unauthorised",
	Message:    "You are not authorized to perform the requested action.",
}

var errTooManyRequests = exception.ApplicationError{
	StatusCode: http.StatusTooManyRequests,
	Message:    "You have exceeded the number of requests allowed, try again later.",
}

func Recoverer(logger *slog.Logger) MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					if err, _ := rvr.(error); errors.Is(err, http.ErrAbortHandler) {
						// we don't recover http.ErrAbortHandler so the response
						// to the client is aborted, this should not be logged
						panic(rvr)
					}

					logger.ErrorContext(req.Context(), "panic occurred", slog.Any("message", rvr), slog.String("stack_trace", string(debug.Stack())))
					WriteError(respWriter, http.StatusInternalServerError, exception.ApplicationError{
						StatusCode: http.StatusInternalServerError,
						Message:    "Something went wrong",
					}.Envelope())
				}
			}()

			next.ServeHTTP(respWriter, req)
		})
	}
}

// CORSMiddleware set CORS related headers.
func CORSMiddleware(allowedOrigins []string) func(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "PUT", "OPTIONS", "DELETE"},
		AllowedHeaders: []string{"Authorization", "Origin", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id", "Retry-After"},
	})
}

// RequestID add request id to context and response header.
func RequestID() MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-Id")
			if requestID == "" {
				requestID = uuid.New().String()
			}

			ctx := logger.WithRequestID(r.Context(), requestID)
			w.Header().Set("X-Request-Id", requestID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ParseBearerToken extracts the token from "Bearer token=<t>", "Token token=<t>"
// or "Bearer <t>".
func ParseBearerToken(header string) string {
	scheme, credentials, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !(strings.EqualFold(scheme, "Bearer") || strings.EqualFold(scheme, "Token")) {
		return ""
	}

	credentials = strings.TrimSpace(credentials)
	credentials = strings.TrimPrefix(credentials, "token=")

	return strings.Trim(credentials, `"`)
}

// BearerAuth rejects requests whose token does not pass authenticate and
// stores the accepted token in the request context.
func BearerAuth(authenticate func(token string) bool) MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ParseBearerToken(r.Header.Get("Authorization"))
			if token == "" || !authenticate(token) {
				WriteError(w, http.StatusUnauthorized, errUnauthorized.Envelope())
				return
			}

			ctx := context.WithValue(r.Context(), tokenKey, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TokenFromContext returns the token accepted by BearerAuth.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)

	return token
}

type Limiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RateLimit answers 429 with Retry-After once a client exceeds limit. Clients
// are keyed by bearer token, or by remote address when there is none. Limiter
// failures let the request through.
func RateLimit(limiter Limiter, limit redis_rate.Limit) MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := "sandbox:ratelimit:" + clientKey(r)

			res, err := limiter.Allow(r.Context(), key, limit)
			if err != nil {
				slog.WarnContext(r.Context(), "rate limiter unavailable", slog.Any("error", err))
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit.Rate))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))

			if res.Allowed == 0 {
				retryAfter := int(math.Ceil(res.RetryAfter.Seconds()))
				w.Header().Set("Retry-After", strconv.Itoa(max(retryAfter, 1)))

				slog.InfoContext(r.Context(), "rate limit exceeded",
					slog.String("key", key), slog.Duration("retry_after", res.RetryAfter))

				WriteError(w, http.StatusTooManyRequests, errTooManyRequests.Envelope())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	if token := ParseBearerToken(r.Header.Get("Authorization")); token != "" {
		return "token:" + token
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	return fmt.Sprintf("ip:%s", host)
}
