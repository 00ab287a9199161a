package exception

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// ApplicationError handles application level errors. StatusCode is the HTTP
// status the error maps to, Title the short JSON:API title and Message the
// human readable detail.
type ApplicationError struct {
	Message    string
	StatusCode int
	Title      string
	Cause      error
}

// Error interface implementation.
func (e ApplicationError) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Message, e.Cause)
}

func (e ApplicationError) Unwrap() error {
	return e.Cause
}

func (e ApplicationError) Is(target error) bool {
	var targetErr ApplicationError

	if !errors.As(target, &targetErr) {
		return false
	}

	return e.StatusCode == targetErr.StatusCode &&
		e.Message == targetErr.Message
}

// ErrorCode returns error code for an application error.
func (e ApplicationError) ErrorCode() int {
	return e.StatusCode
}

// ErrorTitle returns the JSON:API title, falling back to the status text.
func (e ApplicationError) ErrorTitle() string {
	if e.Title != "" {
		return e.Title
	}

	return http.StatusText(e.StatusCode)
}

// WithCause returns a copy of e wrapping cause.
func (e ApplicationError) WithCause(cause error) ApplicationError {
	e.Cause = cause

	return e
}

// WithMessage returns a copy of e with a different detail message.
func (e ApplicationError) WithMessage(format string, args ...any) ApplicationError {
	e.Message = fmt.Sprintf(format, args...)

	return e
}

// ErrorObject is a single entry of a JSON:API error envelope.
type ErrorObject struct {
	Status string `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// ErrorEnvelope is the {"errors": [...]} body AirportGap returns on failure.
type ErrorEnvelope struct {
	Errors []ErrorObject `json:"errors"`
}

// Envelope renders the error as a single-entry JSON:API error envelope.
func (e ApplicationError) Envelope() ErrorEnvelope {
	return ErrorEnvelope{
		Errors: []ErrorObject{{
			Status: strconv.Itoa(e.StatusCode),
			Title:  e.ErrorTitle(),
			Detail: e.Message,
		}},
	}
}

// ErrorList carries several application errors rendered as one envelope,
// e.g. every schema violation of a request body.
type ErrorList []ApplicationError

func (l ErrorList) Error() string {
	msgs := make([]string, 0, len(l))
	for _, e := range l {
		msgs = append(msgs, e.Error())
	}

	return strings.Join(msgs, "; ")
}

// ErrorCode returns the status of the first error, 400 when empty.
func (l ErrorList) ErrorCode() int {
	if len(l) == 0 {
		return http.StatusBadRequest
	}

	return l[0].StatusCode
}

func (l ErrorList) Envelope() ErrorEnvelope {
	env := ErrorEnvelope{Errors: make([]ErrorObject, 0, len(l))}
	for _, e := range l {
		env.Errors = append(env.Errors, e.Envelope().Errors...)
	}

	return env
}
