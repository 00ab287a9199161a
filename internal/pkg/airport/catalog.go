package airport

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ijalalfrz/airportgap-client/internal/app/dto"
	"github.com/ijalalfrz/airportgap-client/internal/pkg/utils"
)

// Catalog is a read-only, ordered airport list indexed by IATA code.
type Catalog struct {
	airports []dto.CatalogAirport
	byIATA   map[string]int
}

// NewCatalog loads a JSON array of catalog airports.
func NewCatalog(raw []byte) (*Catalog, error) {
	var airports []dto.CatalogAirport
	if err := json.Unmarshal(raw, &airports); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}

	c := &Catalog{
		airports: airports,
		byIATA:   make(map[string]int, len(airports)),
	}

	for i, a := range airports {
		code := strings.ToUpper(string(a.IATA))
		if code == "" {
			return nil, fmt.Errorf("catalog entry %d: missing iata code", a.ID)
		}

		if _, dup := c.byIATA[code]; dup {
			return nil, fmt.Errorf("catalog entry %d: duplicate iata code %s", a.ID, code)
		}

		if _, err := utils.ParseCoordinate(a.Latitude); err != nil {
			return nil, fmt.Errorf("catalog entry %s: %w", code, err)
		}

		if _, err := utils.ParseCoordinate(a.Longitude); err != nil {
			return nil, fmt.Errorf("catalog entry %s: %w", code, err)
		}

		c.byIATA[code] = i
	}

	return c, nil
}

func (c *Catalog) Len() int {
	return len(c.airports)
}

// Find looks an airport up by IATA code, ignoring case.
func (c *Catalog) Find(iata string) (dto.CatalogAirport, bool) {
	i, ok := c.byIATA[strings.ToUpper(strings.TrimSpace(iata))]
	if !ok {
		return dto.CatalogAirport{}, false
	}

	return c.airports[i], true
}

// PageCount is the number of pages of the given size, at least 1.
func (c *Catalog) PageCount(size int) int {
	if size <= 0 || len(c.airports) == 0 {
		return 1
	}

	return (len(c.airports) + size - 1) / size
}

// Page returns the 1-based page. Pages past the end are empty.
func (c *Catalog) Page(page, size int) []dto.CatalogAirport {
	if page < 1 {
		page = 1
	}

	if size <= 0 {
		return []dto.CatalogAirport{}
	}

	start := (page - 1) * size
	if start >= len(c.airports) {
		return []dto.CatalogAirport{}
	}

	end := min(start+size, len(c.airports))

	return c.airports[start:end]
}

// Distance returns the great circle distance between two catalog airports
// in kilometers.
func Distance(from, to dto.CatalogAirport) (float64, error) {
	lat1, err := utils.ParseCoordinate(from.Latitude)
	if err != nil {
		return 0, err
	}

	lon1, err := utils.ParseCoordinate(from.Longitude)
	if err != nil {
		return 0, err
	}

	lat2, err := utils.ParseCoordinate(to.Latitude)
	if err != nil {
		return 0, err
	}

	lon2, err := utils.ParseCoordinate(to.Longitude)
	if err != nil {
		return 0, err
	}

	return utils.HaversineKilometers(lat1, lon1, lat2, lon2), nil
}
