package converter

import (
	"errors"
)

// Kind classifies why a conversion was rejected. Every kind is caused by the
// caller's input.
type Kind int

const (
	KindMissingField Kind = iota + 1
	KindInvalidDatetime
	KindUnknownTimezone
	KindConversion
)

func (k Kind) String() string {
	switch k {
	case KindMissingField:
		return "missing_field"
	case KindInvalidDatetime:
		return "invalid_datetime"
	case KindUnknownTimezone:
		return "unknown_timezone"
	case KindConversion:
		return "conversion"
	default:
		return "unknown"
	}
}

// Error is returned by Converter.Convert for any rejected input.
type Error struct {
	Kind  Kind
	Field string
	Err   error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindMissingField:
		return "All fields are required"
	case KindInvalidDatetime:
		return "Invalid datetime format: " + e.detail()
	case KindUnknownTimezone:
		return "Invalid timezone specified"
	default:
		return "Conversion error: " + e.detail()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) detail() string {
	if e.Err == nil {
		return "unknown error"
	}

	return e.Err.Error()
}

// IsInvalidInput reports whether err was caused by the conversion input.
func IsInvalidInput(err error) bool {
	var convErr *Error

	return errors.As(err, &convErr)
}

// KindOf returns the kind of a conversion error, or zero for other errors.
func KindOf(err error) Kind {
	var convErr *Error
	if errors.As(err, &convErr) {
		return convErr.Kind
	}

	return 0
}

func newError(kind Kind, field string, err error) error {
	return &Error{Kind: kind, Field: field, Err: err}
}
