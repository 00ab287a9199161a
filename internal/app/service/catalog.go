package service

import (
	_ "embed"
	"fmt"

	"github.com/ijalalfrz/airportgap-client/internal/pkg/airport"
)

//go:embed data/airports.json
var airportsJSON []byte

// LoadCatalog parses the embedded airport list.
func LoadCatalog() (*airport.Catalog, error) {
	catalog, err := airport.NewCatalog(airportsJSON)
	if err != nil {
		return nil, fmt.Errorf("load embedded catalog: %w", err)
	}

	return catalog, nil
}
