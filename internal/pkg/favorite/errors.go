package favorite

import (
	"net/http"

	"github.com/ijalalfrz/airportgap-client/internal/pkg/exception"
)

var ErrFavoriteNotFound = exception.ApplicationError{
	StatusCode: http.StatusNotFound,
	Message:    "The page you requested could not be found",
}

var ErrAlreadyFavorite = exception.ApplicationError{
	StatusCode: http.StatusUnprocessableEntity,
	Title:      "Unable to save favorite",
	Message:    "Airport has already been taken",
}
