//go:build unit

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/airportgap-client/internal/pkg/exception"
	"github.com/stretchr/testify/assert"
)

func TestErrorResponse(t *testing.T) {
	errorResponse := func(err error, wantStatus int, want exception.ErrorEnvelope) func(t *testing.T) {
		return func(t *testing.T) {
			rec := httptest.NewRecorder()

			ErrorResponse(context.Background(), err, rec)

			assert.Equal(t, wantStatus, rec.Code)
			assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

			if diff := cmp.Diff(want, decodeEnvelope(t, rec)); diff != "" {
				t.Fatalf("envelope mismatch (-want +got):\n%s", diff)
			}
		}
	}

	notFound := exception.ApplicationError{
		StatusCode: http.StatusNotFound,
		Message:    "The page you requested could not be found",
	}

	t.Run("application_error", errorResponse(notFound, http.StatusNotFound, exception.ErrorEnvelope{
		Errors: []exception.ErrorObject{{Status: "404", Title: "Not Found", Detail: "The page you requested could not be found"}},
	}))

	t.Run("wrapped_application_error", errorResponse(fmt.Errorf("service: %w", notFound), http.StatusNotFound, exception.ErrorEnvelope{
		Errors: []exception.ErrorObject{{Status: "404", Title: "Not Found", Detail: "The page you requested could not be found"}},
	}))

	t.Run("error_list", errorResponse(exception.ErrorList{
		{StatusCode: http.StatusBadRequest, Message: "from: required"},
		{StatusCode: http.StatusBadRequest, Message: "to: required"},
	}, http.StatusBadRequest, exception.ErrorEnvelope{
		Errors: []exception.ErrorObject{
			{Status: "400", Title: "Bad Request", Detail: "from: required"},
			{Status: "400", Title: "Bad Request", Detail: "to: required"},
		},
	}))

	t.Run("unknown_error", errorResponse(errors.New("db exploded"), http.StatusInternalServerError, exception.ErrorEnvelope{
		Errors: []exception.ErrorObject{{Status: "500", Title: "Internal Server Error", Detail: "Something went wrong"}},
	}))
}

func TestCreatedResponse(t *testing.T) {
	rec := httptest.NewRecorder()

	assert.NoError(t, CreatedResponse(context.Background(), rec, map[string]string{"id": "1"}))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":"1"}`, rec.Body.String())
}

func TestNoContentResponse(t *testing.T) {
	rec := httptest.NewRecorder()

	assert.NoError(t, NoContentResponse(context.Background(), rec, nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
