package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

// StatusError is a non-2xx server response.
type StatusError struct {
	StatusCode int
	// Body is the trimmed response body, or the status text when empty.
	Body string

	sentinel error
}

// NewStatusError builds a StatusError whose Unwrap matches code.
func NewStatusError(code int, body string) *StatusError {
	return &StatusError{StatusCode: code, Body: body, sentinel: sentinelForStatus(code)}
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Body)
}

// Unwrap returns the sentinel matching the status code, if any.
func (e *StatusError) Unwrap() error {
	return e.sentinel
}

func sentinelForStatus(code int) error {
	switch code {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusBadGateway:
		return ErrBadGateway
	case http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return nil
	}
}
