package domain

import "errors"

// FieldError ties a validation failure to the request field that caused it
type FieldError struct {
	Field string
	Err   error
}

// InvalidField wraps err with the offending field name
func InvalidField(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// FieldOf returns the field name carried by err, or ""
func FieldOf(err error) string {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Field
	}
	return ""
}
