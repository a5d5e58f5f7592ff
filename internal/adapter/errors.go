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
	ErrInvalidCivilID      = errors.New("invalid civil id")
	ErrQuotaExceeded       = errors.New("no remaining searches")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusUnprocessableEntity: ErrInvalidCivilID,
	http.StatusTooManyRequests:     ErrQuotaExceeded,
	http.StatusInternalServerError: ErrInternalServerError,
}

// APIError is a non-2xx response of the server.
type APIError struct {
	// Status is the HTTP status code.
	Status int

	// Code is the machine-readable error code from the body, e.g. "too_young".
	Code string

	// Message is the human-readable error from the body.
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("http %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("http %d (%s): %s", e.Status, e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	if err, ok := statusErrors[e.Status]; ok {
		return err
	}
	return ErrUnexpectedStatus
}
