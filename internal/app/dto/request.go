package dto

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/ijalalfrz/airportgap-client/internal/pkg/exception"
)

// ListAirportsRequest selects one page of the airport catalog.
type ListAirportsRequest struct {
	Page int `json:"page" validate:"gte=0"`
}

type GetAirportRequest struct {
	ID string `json:"id" validate:"required"`
}

type DistanceRequest struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
}

func (d *DistanceRequest) Bind(r *http.Request) error {
	d.From = strings.TrimSpace(d.From)
	d.To = strings.TrimSpace(d.To)

	if err := validateRequest(d); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (DistanceRequest) JSONSchema() string {
	return `{
		"type": "object",
		"required": ["from", "to"],
		"properties": {
			"from": {"type": "string"},
			"to": {"type": "string"}
		}
	}`
}

type TokenRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (t *TokenRequest) Bind(r *http.Request) error {
	if err := validateRequest(t); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (TokenRequest) JSONSchema() string {
	return `{
		"type": "object",
		"required": ["email", "password"],
		"properties": {
			"email": {"type": "string"},
			"password": {"type": "string"}
		}
	}`
}

// FavoritesRequest is the authenticated owner of a favorites list.
type FavoritesRequest struct {
	Owner string `json:"-" validate:"required"`
}

type FavoriteRequest struct {
	Owner string `json:"-" validate:"required"`
	ID    int64  `json:"id" validate:"gt=0"`
}

type AddFavoriteRequest struct {
	Owner     string `json:"-"`
	AirportID string `json:"airport_id" validate:"required"`
	Note      string `json:"note"`
}

func (a *AddFavoriteRequest) Bind(r *http.Request) error {
	a.AirportID = strings.TrimSpace(a.AirportID)

	if err := validateRequest(a); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (AddFavoriteRequest) JSONSchema() string {
	return `{
		"type": "object",
		"required": ["airport_id"],
		"properties": {
			"airport_id": {"type": "string"},
			"note": {"type": "string"}
		}
	}`
}

type UpdateFavoriteRequest struct {
	Owner string `json:"-"`
	ID    int64  `json:"-"`
	Note  string `json:"note"`
}

func (u *UpdateFavoriteRequest) Bind(r *http.Request) error {
	return nil
}

func (UpdateFavoriteRequest) JSONSchema() string {
	return `{
		"type": "object",
		"required": ["note"],
		"properties": {"note": {"type": "string"}}
	}`
}

func validateRequest(req interface{}) error {
	if err := ValidateSingleError(req); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}
