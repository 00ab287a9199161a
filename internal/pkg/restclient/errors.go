package restclient

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ijalalfrz/airportgap-client/internal/pkg/exception"
)

// ErrRateLimitReached is matched by every *RateLimitError.
var ErrRateLimitReached = exception.ApplicationError{
	StatusCode: http.StatusTooManyRequests,
	Message:    "api rate limit reached",
}

// RateLimitError is produced when the server answers 429. It never leaves
// the client unless every attempt was rate limited.
type RateLimitError struct {
	Method  string
	URL     string
	Attempt int
	Elapsed time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("[%s]%s: %s on attempt %d", e.Method, e.URL, ErrRateLimitReached.Message, e.Attempt)
}

func (e *RateLimitError) Unwrap() error {
	return ErrRateLimitReached
}
