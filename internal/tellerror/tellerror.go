package tellerror

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

type ErrorCode string

const (
	ErrNotFound          ErrorCode = "NOT_FOUND"
	ErrInvalidInput      ErrorCode = "INVALID_INPUT"
	ErrInsufficientFunds ErrorCode = "INSUFFICIENT_FUNDS"
	ErrInternal          ErrorCode = "INTERNAL_ERROR"
)

// TellerError is the error type returned across the service boundary.
// The shell branches on Code to choose which message to print.
type TellerError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e TellerError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewTellerError(code ErrorCode, message string, details interface{}) TellerError {
	logrus.Error(details)
	return TellerError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// CodeOf extracts the error code from an error. Errors that did not
// come from the service boundary map to ErrInternal.
func CodeOf(err error) ErrorCode {
	var tellerErr TellerError
	if errors.As(err, &tellerErr) {
		return tellerErr.Code
	}
	return ErrInternal
}
