package restclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Response is a fully read HTTP response.
type Response struct {
	Method     string
	URL        string
	StatusCode int
	Header     http.Header
	Elapsed    time.Duration
	Body       []byte
}

// JSON decodes the body into v.
func (r *Response) JSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode [%s]%s response body: %w", r.Method, r.URL, err)
	}

	return nil
}

// IsJSON reports whether the body is a valid JSON document.
func (r *Response) IsJSON() bool {
	return len(r.Body) > 0 && json.Valid(r.Body)
}
