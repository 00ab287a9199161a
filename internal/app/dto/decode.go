package dto

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Record is any response shape Decode knows how to check.
type Record interface {
	Airport | AirportDistance | Favorite | ErrorList | Token
}

func recordSchema(v any) (string, *gojsonschema.Schema) {
	switch v.(type) {
	case Airport:
		return "Airport", airportSchema
	case AirportDistance:
		return "AirportDistance", airportDistanceSchema
	case Favorite:
		return "Favorite", favoriteSchema
	case ErrorList:
		return "ErrorList", errorListSchema
	default:
		return "Token", tokenSchema
	}
}

// Decode checks raw against the shape of T and builds the record. Keys that
// T does not declare are ignored. The first mismatch is reported as a
// *ValidationError.
func Decode[T Record](raw []byte) (T, error) {
	var rec T

	name, schema := recordSchema(rec)
	if err := checkSchema(name, schema, raw); err != nil {
		return rec, err
	}

	if err := json.Unmarshal(raw, &rec); err != nil {
		return rec, &ValidationError{Record: name, Field: "(root)", Reason: err.Error()}
	}

	if err := validateRecord(name, rec); err != nil {
		return rec, err
	}

	return rec, nil
}

// DecodeItems decodes every element, failing on the first invalid one.
func DecodeItems[T Record](items []json.RawMessage) ([]T, error) {
	out := make([]T, 0, len(items))
	for i, item := range items {
		rec, err := Decode[T](item)
		if err != nil {
			return nil, indexed(i, err)
		}
		out = append(out, rec)
	}

	return out, nil
}

// DecodeList decodes a JSON array of records.
func DecodeList[T Record](raw []byte) ([]T, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		var zero T
		name, _ := recordSchema(zero)
		return nil, &ValidationError{Record: name, Field: "(root)", Reason: "expected a list: " + err.Error()}
	}

	return DecodeItems[T](items)
}

// DecodeData decodes the record under the "data" key of a response body.
func DecodeData[T Record](body []byte) (T, error) {
	data, err := dataMember[T](body)
	if err != nil {
		var zero T
		return zero, err
	}

	return Decode[T](data)
}

// DecodeDataList decodes the list under the "data" key of a response body.
func DecodeDataList[T Record](body []byte) ([]T, error) {
	data, err := dataMember[T](body)
	if err != nil {
		return nil, err
	}

	return DecodeList[T](data)
}

// DecodeErrors decodes a JSON:API error envelope.
func DecodeErrors(body []byte) (ErrorList, error) {
	return Decode[ErrorList](body)
}

func dataMember[T Record](body []byte) (json.RawMessage, error) {
	var zero T
	name, _ := recordSchema(zero)

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &ValidationError{Record: name, Field: "(root)", Reason: err.Error()}
	}

	data, ok := envelope["data"]
	if !ok {
		return nil, &ValidationError{Record: name, Field: "data", Reason: "data is required"}
	}

	return data, nil
}

func indexed(i int, err error) error {
	ve, ok := err.(*ValidationError)
	if !ok {
		return fmt.Errorf("item %d: %w", i, err)
	}

	field := fmt.Sprintf("[%d]", i)
	if ve.Field != "" && ve.Field != "(root)" {
		field += "." + ve.Field
	}

	return &ValidationError{Record: ve.Record, Field: field, Reason: ve.Reason}
}
