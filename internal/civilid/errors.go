package civilid

import (
	"errors"
	"fmt"
)

var (
	ErrLength   = errors.New("civil id must be exactly 12 characters long")
	ErrFormat   = errors.New("civil id must contain digits only")
	ErrCentury  = errors.New("civil id century digit must be 2 or 3")
	ErrMonth    = errors.New("civil id month must be between 01 and 12")
	ErrDay      = errors.New("civil id day must be between 01 and 31")
	ErrCalendar = errors.New("civil id birth date does not exist in the calendar")
	ErrTooYoung = errors.New("customer is younger than 18")
	ErrTooOld   = errors.New("customer is older than 104")
)

// ValidationError describes why an identifier was rejected.
// Kind is one of the sentinel errors above and is exposed through Unwrap,
// so callers match with errors.Is.
type ValidationError struct {
	// Value is the rejected identifier as it was supplied.
	Value string

	// Kind is the sentinel describing the failed rule.
	Kind error

	// Age is set only for ErrTooYoung and ErrTooOld.
	Age int
}

func (e *ValidationError) Error() string {
	if errors.Is(e.Kind, ErrTooYoung) || errors.Is(e.Kind, ErrTooOld) {
		return fmt.Sprintf("invalid civil id %q: %v (age %d)", e.Value, e.Kind, e.Age)
	}
	return fmt.Sprintf("invalid civil id %q: %v", e.Value, e.Kind)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// Reason returns a stable machine-readable code for the failed rule,
// e.g. "too_young". It is used as the error code in HTTP responses and as
// a metrics label.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrLength):
		return "length"
	case errors.Is(err, ErrFormat):
		return "format"
	case errors.Is(err, ErrCentury):
		return "century"
	case errors.Is(err, ErrMonth):
		return "month"
	case errors.Is(err, ErrDay):
		return "day"
	case errors.Is(err, ErrCalendar):
		return "calendar"
	case errors.Is(err, ErrTooYoung):
		return "too_young"
	case errors.Is(err, ErrTooOld):
		return "too_old"
	default:
		return "unknown"
	}
}

// IsValidationError reports whether err was produced by Parse or Validate.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
