package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/go-chi/render"
	"github.com/ijalalfrz/airportgap-client/internal/pkg/exception"
	"github.com/xeipuuv/gojsonschema"
)

// SchemaProvider is implemented by request bodies that carry a JSON Schema.
type SchemaProvider interface {
	JSONSchema() string
}

type bindable[T any] interface {
	*T
	render.Binder
}

var schemaCache sync.Map

// DecodeRequest reads a JSON body into a new T, checks it against the
// schema of T when it has one, then runs T's Bind.
func DecodeRequest[T any, PT bindable[T]](_ context.Context, r *http.Request) (interface{}, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("read request body: %w", err)
	}

	req := PT(new(T))

	if sp, ok := any(req).(SchemaProvider); ok {
		if err := ValidateSchema(sp.JSONSchema(), body); err != nil {
			return nil, err
		}
	}

	if err := render.DecodeJSON(bytes.NewReader(body), req); err != nil {
		return nil, exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "invalid request body",
			Cause:      err,
		}
	}

	if err := req.Bind(r); err != nil {
		return nil, err
	}

	return req, nil
}

// ValidateSchema reports every violation of body against schema as one
// 400 error each.
func ValidateSchema(schema string, body []byte) error {
	compiled, err := compileSchema(schema)
	if err != nil {
		return err
	}

	result, err := compiled.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "request body is not valid JSON",
			Cause:      err,
		}
	}

	if result.Valid() {
		return nil
	}

	errs := make(exception.ErrorList, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		errs = append(errs, exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    re.String(),
		})
	}

	return errs
}

func compileSchema(schema string) (*gojsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema); ok {
		return cached.(*gojsonschema.Schema), nil
	}

	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		return nil, fmt.Errorf("compile request schema: %w", err)
	}

	schemaCache.Store(schema, compiled)

	return compiled, nil
}
