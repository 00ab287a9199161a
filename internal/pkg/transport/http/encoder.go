package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ijalalfrz/airportgap-client/internal/pkg/exception"
)

const contentTypeJSON = "application/json; charset=utf-8"

// ResponseWithBody is the common method to encode all response types to the client.
func ResponseWithBody(_ context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", contentTypeJSON)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("encode response body: %w", err)
	}

	return nil
}

func NoContentResponse(_ context.Context, w http.ResponseWriter, _ interface{}) error {
	w.WriteHeader(http.StatusNoContent)

	return nil
}

func CreatedResponse(_ context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("encode response body: %w", err)
	}

	return nil
}

// ErrorResponse encodes the error response to the client as a JSON:API
// error envelope. it will check if it's a sentinel error or unknown error.
func ErrorResponse(ctx context.Context, err error, respWriter http.ResponseWriter) {
	var (
		appErrs  exception.ErrorList
		appErr   exception.ApplicationError
		status   int
		envelope exception.ErrorEnvelope
	)

	switch {
	case errors.As(err, &appErrs):
		status = appErrs.ErrorCode()
		envelope = appErrs.Envelope()
	case errors.As(err, &appErr):
		status = appErr.StatusCode
		envelope = appErr.Envelope()
	default:
		slog.ErrorContext(ctx, err.Error(), slog.Any("error", err))

		status = http.StatusInternalServerError
		envelope = exception.ApplicationError{
			StatusCode: status,
			Message:    "Something went wrong",
		}.Envelope()
	}

	WriteError(respWriter, status, envelope)
}

// WriteError writes envelope with the given status.
func WriteError(w http.ResponseWriter, status int, envelope exception.ErrorEnvelope) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)

	//nolint:errcheck,errchkjson
	json.NewEncoder(w).Encode(envelope)
}
