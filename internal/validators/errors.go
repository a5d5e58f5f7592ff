package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrInvalidRequest  = errors.New("invalid request")
)

// RequestError lists the fields of a request that failed validation,
// keyed by their JSON name. It unwraps to ErrInvalidRequest.
type RequestError struct {
	Fields map[string]string
}

func (e *RequestError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, e.Fields[name])
	}

	return ErrInvalidRequest.Error() + ": " + strings.Join(parts, "; ")
}

func (e *RequestError) Unwrap() error {
	return ErrInvalidRequest
}
