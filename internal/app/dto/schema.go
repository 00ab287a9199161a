package dto

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

const airportAttributesSchema = `{
	"type": "object",
	"required": ["name", "city", "country", "iata", "icao", "latitude", "longitude", "altitude", "timezone"],
	"properties": {
		"name": {"type": "string"},
		"city": {"type": ["string", "null"]},
		"country": {"type": "string"},
		"iata": {"type": "string"},
		"icao": {"type": "string"},
		"latitude": {"type": "string"},
		"longitude": {"type": "string"},
		"altitude": {"type": "integer"},
		"timezone": {"type": ["string", "null"]}
	}
}`

const nestedAirportSchema = `{
	"allOf": [
		{"$ref": "#/definitions/airportAttributes"},
		{"type": "object", "required": ["id"], "properties": {"id": {"type": "integer"}}}
	]
}`

var airportSchema = mustSchema(`{
	"definitions": {"airportAttributes": ` + airportAttributesSchema + `},
	"type": "object",
	"required": ["id", "type", "attributes"],
	"properties": {
		"id": {"type": "string"},
		"type": {"type": "string"},
		"attributes": {"$ref": "#/definitions/airportAttributes"}
	}
}`)

var airportDistanceSchema = mustSchema(`{
	"definitions": {
		"airportAttributes": ` + airportAttributesSchema + `,
		"nestedAirport": ` + nestedAirportSchema + `
	},
	"type": "object",
	"required": ["id", "type", "attributes"],
	"properties": {
		"id": {"type": "string"},
		"type": {"type": "string"},
		"attributes": {
			"type": "object",
			"required": ["from_airport", "to_airport", "kilometers", "miles", "nautical_miles"],
			"properties": {
				"from_airport": {"$ref": "#/definitions/nestedAirport"},
				"to_airport": {"$ref": "#/definitions/nestedAirport"},
				"kilometers": {"type": "number"},
				"miles": {"type": "number"},
				"nautical_miles": {"type": "number"}
			}
		}
	}
}`)

var favoriteSchema = mustSchema(`{
	"definitions": {
		"airportAttributes": ` + airportAttributesSchema + `,
		"nestedAirport": ` + nestedAirportSchema + `
	},
	"type": "object",
	"required": ["id", "type", "attributes"],
	"properties": {
		"id": {"type": "string"},
		"type": {"type": "string"},
		"attributes": {
			"type": "object",
			"required": ["airport", "note"],
			"properties": {
				"airport": {"$ref": "#/definitions/nestedAirport"},
				"note": {"type": "string"}
			}
		}
	}
}`)

var errorListSchema = mustSchema(`{
	"type": "object",
	"required": ["errors"],
	"properties": {
		"errors": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["status", "title", "detail"],
				"properties": {
					"status": {"type": "string"},
					"title": {"type": "string"},
					"detail": {"type": "string"}
				}
			}
		}
	}
}`)

var tokenSchema = mustSchema(`{
	"type": "object",
	"required": ["token"],
	"properties": {"token": {"type": "string"}}
}`)

func mustSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("compile schema: %v", err))
	}

	return schema
}

// checkSchema validates raw against schema and reports the first violation.
func checkSchema(record string, schema *gojsonschema.Schema, raw []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return &ValidationError{Record: record, Field: "(root)", Reason: err.Error()}
	}

	if result.Valid() {
		return nil
	}

	first := result.Errors()[0]

	return &ValidationError{
		Record: record,
		Field:  schemaField(first),
		Reason: first.Description(),
	}
}

// schemaField names the offending key; for a missing key that is the key
// itself rather than its parent object.
func schemaField(re gojsonschema.ResultError) string {
	field := re.Field()
	if re.Type() != "required" {
		return field
	}

	prop, _ := re.Details()["property"].(string)
	if prop == "" {
		return field
	}

	if field == "" || field == "(root)" {
		return prop
	}

	return field + "." + prop
}
