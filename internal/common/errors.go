package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Error taxonomy. Catalog loading and storage I/O are the only hard failures;
// an individual field failing to match is never an error.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrPrecondition  = errors.New("precondition failed")
	ErrStorage       = errors.New("storage error")
	ErrNoUsableField = errors.New("no usable field detected")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func ConfigurationError(message string, cause error) error {
	if cause == nil {
		cause = ErrConfiguration
	} else {
		cause = fmt.Errorf("%w: %w", ErrConfiguration, cause)
	}
	return &AppError{Code: "CONFIG_ERROR", Message: message, Cause: cause}
}

func PreconditionError(message string) error {
	return &AppError{Code: "PRECONDITION", Message: message, Cause: ErrPrecondition}
}

func StorageError(message string, cause error) error {
	if cause == nil {
		cause = ErrStorage
	} else {
		cause = fmt.Errorf("%w: %w", ErrStorage, cause)
	}
	return &AppError{Code: "STORAGE_ERROR", Message: message, Cause: cause}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
