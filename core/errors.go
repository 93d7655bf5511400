package core

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// ErrNotFound is returned when a record is missing from a fetched list.
var ErrNotFound = errors.New("not found")

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		if len(err.Fields) > 0 {
			return err.Fields[0].Field + ": " + err.Fields[0].Error
		}
		return ""
	}
	return err.Err.Error()
}

// APIError is a non-2xx response from the content API.
// Detail holds the optional `detail` field of the response body.
type APIError struct {
	Status int
	Detail string
	Path   string
}

func (err *APIError) Error() string {
	if err.Detail != "" {
		return fmt.Sprintf("api %s: %d %s", err.Path, err.Status, err.Detail)
	}
	return fmt.Sprintf("api %s: %d %s", err.Path, err.Status, http.StatusText(err.Status))
}

// AsAPIError unwraps err down to an *APIError, if any.
func AsAPIError(err error) (*APIError, bool) {
	apiErr, ok := errors.Cause(err).(*APIError)
	return apiErr, ok
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
