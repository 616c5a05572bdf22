package apperrors

import (
	"errors"
	"fmt"
)

// Messages shared across the API surface.
const (
	MsgSuccessfullyCompleted = "Transaction successfully completed."
	MsgBadRequest            = "The values sent was wrong or you are missing some value, check the error to see more detail"
	MsgSomethingWentWrong    = "Something Went Wrong."
	MsgRequiredParams        = "Either latitude/longitude or propertyId is required."
	MsgRetriesExhausted      = "Vendor API failed for all retries attempt."
)

// ValidationError is surfaced to the caller with its originating status code
// and a structured error body. It covers bad request parameters, upstream
// property-service failures and vendor retry exhaustion.
type ValidationError struct {
	StatusCode int
	Errors     map[string][]string
	Message    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (status %d): %v", e.StatusCode, e.Errors)
}

func NewValidationError(statusCode int, message string, details ...string) *ValidationError {
	return &ValidationError{
		StatusCode: statusCode,
		Errors:     map[string][]string{"Error": details},
		Message:    message,
	}
}

// AsValidationError unwraps err into a *ValidationError if one is in the chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}
	return nil, false
}
