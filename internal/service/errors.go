package service

import (
	"errors"
	"fmt"
	"strings"

	"go-inventory-genie/pkg/validator"
)

// Sentinel errors shared across services. Handlers translate these to
// HTTP statuses; anything else is an internal failure.
var (
	ErrNotFound           = errors.New("not found")
	ErrInsufficientStock  = errors.New("insufficient stock remaining")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrDuplicateEmail     = errors.New("email already registered")
)

// ValidationError marks bad request input.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// structValidationError collects every validator failure into a single
// ValidationError, or returns nil when the struct is clean.
func structValidationError(data interface{}) error {
	errs := validator.ValidateStruct(data)
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, len(errs))
	for i, fe := range errs {
		msgs[i] = fe.Message()
	}
	return validationErrorf("validation failed: %s", strings.Join(msgs, "; "))
}
