package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation package
var (
	// ErrEmptyResponse is returned when the model call succeeded but produced no usable text
	ErrEmptyResponse = errors.New("language model returned an empty response")

	// ErrContentBlocked is returned when the model blocks the request due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrTransientFailure matches APIErrors that may succeed on retry
	ErrTransientFailure = errors.New("transient language model failure")

	// ErrPermanentFailure matches APIErrors that will not succeed on retry
	ErrPermanentFailure = errors.New("permanent language model failure")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// APIError wraps any transport or provider failure. Message carries the
// provider's description verbatim.
type APIError struct {
	// Message is the provider's error description
	Message string

	// Code is the provider's HTTP status code, or 0 when unknown
	Code int

	// Transient reports whether retrying the same request may succeed
	Transient bool

	// Err is the underlying error, if any
	Err error
}

// NewAPIError builds an APIError whose message is taken from err.
func NewAPIError(err error, code int, transient bool) *APIError {
	message := "unknown error"
	if err != nil {
		message = err.Error()
	}
	return &APIError{Message: message, Code: code, Transient: transient, Err: err}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return "API error: " + e.Message
}

// Unwrap returns the underlying error.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is classifies the error as transient or permanent for errors.Is.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrTransientFailure:
		return e.Transient
	case ErrPermanentFailure:
		return !e.Transient
	}
	return false
}

// UserMessage converts any generation failure into the single string shown to
// a user. Both the suggestion and instruction paths surface errors this way.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	switch {
	case errors.Is(err, ErrEmptyResponse):
		return "The AI returned an empty response"
	case errors.As(err, &apiErr):
		return apiErr.Error()
	default:
		return fmt.Sprintf("API error: %s", err.Error())
	}
}
