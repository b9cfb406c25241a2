package extract

import (
	"errors"
	"fmt"
)

var ErrMissingField = errors.New("missing required field")

// MissingFieldError reports a required field with no caller-supplied
// default that was absent from the record.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %q", ErrMissingField.Error(), e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}
