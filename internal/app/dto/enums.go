package dto

import (
	"encoding/json"
	"strings"
)

// IATACode is a three letter airport code. Known members are normalized to
// upper case, anything else is kept as received.
type IATACode string

const (
	IATAMAG IATACode = "MAG"
	IATACYG IATACode = "CYG"
)

var knownIATACodes = map[IATACode]struct{}{
	IATAMAG: {},
	IATACYG: {},
}

func ParseIATACode(raw string) IATACode {
	if code := IATACode(strings.ToUpper(raw)); code.Known() {
		return code
	}

	return IATACode(raw)
}

func (c IATACode) Known() bool {
	_, ok := knownIATACodes[c]
	return ok
}

func (c IATACode) String() string {
	return string(c)
}

func (c *IATACode) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*c = ParseIATACode(raw)

	return nil
}

// ICAOCode is a four letter airport code, upper case like IATACode.
type ICAOCode string

const (
	ICAOAYMD ICAOCode = "AYMD"
	ICAOYCRG ICAOCode = "YCRG"
)

var knownICAOCodes = map[ICAOCode]struct{}{
	ICAOAYMD: {},
	ICAOYCRG: {},
}

func ParseICAOCode(raw string) ICAOCode {
	if code := ICAOCode(strings.ToUpper(raw)); code.Known() {
		return code
	}

	return ICAOCode(raw)
}

func (c ICAOCode) Known() bool {
	_, ok := knownICAOCodes[c]
	return ok
}

func (c ICAOCode) String() string {
	return string(c)
}

func (c *ICAOCode) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*c = ParseICAOCode(raw)

	return nil
}

// DataType is the JSON:API resource type, lower case.
type DataType string

const (
	DataTypeAirport         DataType = "airport"
	DataTypeAirportDistance DataType = "airport_distance"
	DataTypeFavorite        DataType = "favorite"
)

var knownDataTypes = map[DataType]struct{}{
	DataTypeAirport:         {},
	DataTypeAirportDistance: {},
	DataTypeFavorite:        {},
}

func ParseDataType(raw string) DataType {
	if t := DataType(strings.ToLower(raw)); t.Known() {
		return t
	}

	return DataType(raw)
}

func (t DataType) Known() bool {
	_, ok := knownDataTypes[t]
	return ok
}

func (t DataType) String() string {
	return string(t)
}

func (t *DataType) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*t = ParseDataType(raw)

	return nil
}
