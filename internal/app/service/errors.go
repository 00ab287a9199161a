package service

import (
	"net/http"

	"github.com/ijalalfrz/airportgap-client/internal/pkg/exception"
)

var ErrNotFound = exception.ApplicationError{
	StatusCode: http.StatusNotFound,
	Message:    "The page you requested could not be found",
}

var ErrUnauthorized = exception.ApplicationError{
	StatusCode: http.StatusUnauthorized,
	Title:      "Unauthorised",
	Message:    "You are not authorized to perform the requested action.",
}

var ErrInvalidDistanceAirports = exception.ApplicationError{
	StatusCode: http.StatusUnprocessableEntity,
	Title:      "Unable to calculate distance",
	Message:    "Please enter valid 'from' and 'to' airports.",
}

var ErrUnknownFavoriteAirport = exception.ApplicationError{
	StatusCode: http.StatusUnprocessableEntity,
	Title:      "Unable to save favorite",
	Message:    "Airport must exist",
}
