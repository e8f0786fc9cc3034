package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// PackagingError is returned when an employee card archive could not be assembled.
// The archive is never returned partially.
type PackagingError struct {
	Cause error
}

func (e *PackagingError) Error() string {
	if e.Cause == nil {
		return "packaging error"
	}
	return fmt.Sprintf("packaging error: %v", e.Cause)
}

func (e *PackagingError) Unwrap() error {
	return e.Cause
}

// LookupReason classifies why a record lookup failed
type LookupReason string

const (
	LookupNotFound  LookupReason = "not_found"
	LookupMalformed LookupReason = "malformed"
	LookupTransport LookupReason = "transport"
)

// LookupError is scoped to a single slug
type LookupError struct {
	Slug   string
	Reason LookupReason
	Cause  error
}

func (e *LookupError) Error() string {
	switch e.Reason {
	case LookupNotFound:
		return fmt.Sprintf("employee %q not found", e.Slug)
	case LookupMalformed:
		return fmt.Sprintf("employee %q has a malformed record: %v", e.Slug, e.Cause)
	default:
		return fmt.Sprintf("lookup of employee %q failed: %v", e.Slug, e.Cause)
	}
}

func (e *LookupError) Unwrap() error {
	return e.Cause
}

// MissingParameterError represents a request that did not name the employee to show
type MissingParameterError struct {
	Parameter string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("no employee specified: missing %q parameter", e.Parameter)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Employee card errors
var (
	ErrHeadshotRequired = &ValidationError{Field: "headshot", Message: "a headshot image is required"}
	ErrHeadshotMissing  = errors.New("headshot blob is missing")
)

// Record lookup errors
var (
	ErrRecordTooLarge = errors.New("record exceeds the size limit")
)

// Configuration Errors
var (
	ErrRecordBaseURLMissing = &ConfigurationError{Message: "RECORD_BASE_URL must be set when RECORD_SOURCE is http"}
	ErrUnknownRecordSource  = &ConfigurationError{Message: "RECORD_SOURCE must be one of: file, http"}
)

// Helper Functions

// IsNotFound checks if an error is a not-found lookup failure
func IsNotFound(err error) bool {
	return LookupReasonOf(err) == LookupNotFound
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsPackaging checks if an error is a PackagingError
func IsPackaging(err error) bool {
	var packagingErr *PackagingError
	return errors.As(err, &packagingErr)
}

// IsLookup checks if an error is a LookupError
func IsLookup(err error) bool {
	var lookupErr *LookupError
	return errors.As(err, &lookupErr)
}

// IsMissingParameter checks if an error is a MissingParameterError
func IsMissingParameter(err error) bool {
	var missingErr *MissingParameterError
	return errors.As(err, &missingErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// LookupReasonOf returns the reason of a wrapped LookupError, or "" if err is not one
func LookupReasonOf(err error) LookupReason {
	var lookupErr *LookupError
	if errors.As(err, &lookupErr) {
		return lookupErr.Reason
	}
	return ""
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewPackagingError wraps cause in a PackagingError unless it already is one
func NewPackagingError(cause error) error {
	var packagingErr *PackagingError
	if errors.As(cause, &packagingErr) {
		return packagingErr
	}
	return &PackagingError{Cause: cause}
}

// NewLookupError creates a new LookupError for a slug
func NewLookupError(slug string, reason LookupReason, cause error) error {
	return &LookupError{Slug: slug, Reason: reason, Cause: cause}
}

// NewMissingParameterError creates a new MissingParameterError
func NewMissingParameterError(parameter string) error {
	return &MissingParameterError{Parameter: parameter}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
