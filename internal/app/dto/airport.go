package dto

// AirportAttributes are the attributes shared by every airport shape.
// City and Timezone are nullable upstream.
type AirportAttributes struct {
	Name      string   `json:"name"`
	City      *string  `json:"city"`
	Country   string   `json:"country"`
	IATA      IATACode `json:"iata"`
	ICAO      ICAOCode `json:"icao"`
	Latitude  string   `json:"latitude" validate:"numeric"`
	Longitude string   `json:"longitude" validate:"numeric"`
	Altitude  int      `json:"altitude"`
	Timezone  *string  `json:"timezone"`
}

type Airport struct {
	ID         string            `json:"id" validate:"required"`
	Type       DataType          `json:"type" validate:"required"`
	Attributes AirportAttributes `json:"attributes"`
}

// CatalogAirport is an airport with its numeric database id, the shape
// nested in distance and favorite results.
type CatalogAirport struct {
	ID int `json:"id"`
	AirportAttributes
}

// Airport renders the entry as a top level airport resource.
func (c CatalogAirport) Airport() Airport {
	return Airport{
		ID:         string(c.IATA),
		Type:       DataTypeAirport,
		Attributes: c.AirportAttributes,
	}
}

type DistanceAirport CatalogAirport

type DistanceAttributes struct {
	FromAirport   DistanceAirport `json:"from_airport"`
	ToAirport     DistanceAirport `json:"to_airport"`
	Kilometers    float64         `json:"kilometers" validate:"gte=0"`
	Miles         float64         `json:"miles" validate:"gte=0"`
	NauticalMiles float64         `json:"nautical_miles" validate:"gte=0"`
}

type AirportDistance struct {
	ID         string             `json:"id" validate:"required"`
	Type       DataType           `json:"type" validate:"required"`
	Attributes DistanceAttributes `json:"attributes"`
}

type FavoriteAirport CatalogAirport

type FavoriteAttributes struct {
	Airport FavoriteAirport `json:"airport"`
	Note    string          `json:"note"`
}

type Favorite struct {
	ID         string             `json:"id" validate:"required"`
	Type       DataType           `json:"type" validate:"required"`
	Attributes FavoriteAttributes `json:"attributes"`
}

type Error struct {
	Status string `json:"status" validate:"numeric"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type ErrorList struct {
	Errors []Error `json:"errors" validate:"dive"`
}

type Token struct {
	Token string `json:"token" validate:"required"`
}

// Links are the pagination links of a collection response.
type Links struct {
	First string `json:"first,omitempty"`
	Self  string `json:"self,omitempty"`
	Prev  string `json:"prev,omitempty"`
	Next  string `json:"next,omitempty"`
	Last  string `json:"last,omitempty"`
}

// DataResponse is the {"data": ...} envelope of a single resource.
type DataResponse[T any] struct {
	Data T `json:"data"`
}

// CollectionResponse is a page of resources with its links.
type CollectionResponse[T any] struct {
	Data  []T    `json:"data"`
	Links *Links `json:"links,omitempty"`
}
