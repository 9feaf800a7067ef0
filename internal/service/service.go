// Package service implements business logic, validation, and orchestration
// between the presentation adapter and the record stores.
package service

import (
	"errors"
	"fmt"
	"time"
)

// ErrValidation is returned when a required field is missing or malformed.
// The wrapped message names the offending field.
var ErrValidation = errors.New("validation failed")

// ErrInvalidCredentials is returned when an email/password pair does not
// match a stored account exactly. Passwords are compared as plain strings,
// case-sensitively.
var ErrInvalidCredentials = errors.New("incorrect email or password")

// ErrReportGeneration is returned when composing or writing the report
// document fails.
var ErrReportGeneration = errors.New("failed to generate report")

const dateLayout = "2006-01-02"

// validationError wraps ErrValidation with a field-specific message.
func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// checkDate rejects date strings that do not parse as YYYY-MM-DD. Dates are
// stored and compared as strings; the ISO layout makes lexicographic order
// agree with chronological order.
func checkDate(field, value string) error {
	if value == "" {
		return validationError(field + " is required")
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		return validationError(field + " must be a date in YYYY-MM-DD format")
	}
	return nil
}
