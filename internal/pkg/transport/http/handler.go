package http

import (
	"net/http"

	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
)

// MakeHandlerFunc wires an endpoint with its request decoder and response
// encoder into a plain handler. Errors are rendered by ErrorResponse.
func MakeHandlerFunc(
	e endpoint.Endpoint,
	dec kithttp.DecodeRequestFunc,
	enc kithttp.EncodeResponseFunc,
) http.HandlerFunc {
	return kithttp.NewServer(
		e,
		dec,
		enc,
		kithttp.ServerErrorEncoder(ErrorResponse),
	).ServeHTTP
}
