package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	earthRadiusKilometers = 6371.0
	milesPerKilometer     = 0.621371
	nauticalPerKilometer  = 0.539957
)

// ParseCoordinate parses a decimal degree string such as "-5.20708".
func ParseCoordinate(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("parse coordinate %q: %w", raw, err)
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("parse coordinate %q: not a finite number", raw)
	}

	return v, nil
}

// HaversineKilometers returns the great circle distance between two points
// given in decimal degrees.
func HaversineKilometers(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)

	return 2 * earthRadiusKilometers * math.Asin(math.Min(1, math.Sqrt(a)))
}

func KilometersToMiles(km float64) float64 {
	return km * milesPerKilometer
}

func KilometersToNauticalMiles(km float64) float64 {
	return km * nauticalPerKilometer
}

// Round rounds v to the given number of decimal places.
// Example: Round(3504.6789, 2) -> 3504.68
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))

	return math.Round(v*p) / p
}
