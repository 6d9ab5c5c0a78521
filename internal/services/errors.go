package services

import (
	"errors"
	"fmt"
)

// ValidationError rejects malformed or missing input before any state is
// touched. Field is empty when the error spans multiple fields.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ErrPriceConfig means the stored prices cannot produce a positive
// charge; a configuration error, not a client one.
var ErrPriceConfig = errors.New("invalid price configuration")
