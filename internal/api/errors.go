package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/recipe-ai/internal/api/shared"
	"github.com/phrazzld/recipe-ai/internal/generation"
	"github.com/phrazzld/recipe-ai/internal/redact"
	"github.com/phrazzld/recipe-ai/internal/session"
	"github.com/phrazzld/recipe-ai/internal/task"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	case err == nil:
		return http.StatusOK

	// Bad request errors
	case errors.Is(err, shared.ErrInvalidRequest),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, session.ErrSessionNotFound),
		errors.Is(err, session.ErrUnknownSlot):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, session.ErrNotFailed),
		errors.Is(err, session.ErrNoRequest):
		return http.StatusConflict

	// Capacity errors
	case errors.Is(err, task.ErrQueueFull),
		errors.Is(err, task.ErrQueueClosed),
		errors.Is(err, session.ErrBusy):
		return http.StatusServiceUnavailable

	// Generation errors. Retries are exhausted by the time a transient
	// failure reaches the handler.
	case errors.Is(err, generation.ErrEmptyResponse):
		return http.StatusBadGateway
	case errors.Is(err, generation.ErrTransientFailure):
		return http.StatusServiceUnavailable
	case errors.Is(err, generation.ErrPermanentFailure):
		return http.StatusBadGateway

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the message shown to clients for err.
// Generation failures surface the provider description, with secrets redacted.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &validationErrs):
		return SanitizeValidationError(err)
	case errors.Is(err, shared.ErrInvalidRequest):
		return "Invalid request format"

	case errors.Is(err, session.ErrSessionNotFound):
		return "Session not found"
	case errors.Is(err, session.ErrUnknownSlot):
		return "Unknown slot"
	case errors.Is(err, session.ErrNotFailed):
		return "Only a failed request can be retried"
	case errors.Is(err, session.ErrNoRequest):
		return "Nothing to retry"

	case errors.Is(err, task.ErrQueueFull),
		errors.Is(err, task.ErrQueueClosed),
		errors.Is(err, session.ErrBusy):
		return "Too many requests in progress, please try again"

	case errors.Is(err, generation.ErrEmptyResponse),
		errors.Is(err, generation.ErrTransientFailure),
		errors.Is(err, generation.ErrPermanentFailure):
		return redact.String(generation.UserMessage(err))

	case errors.Is(err, context.DeadlineExceeded):
		return "The request timed out"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError returns a client-friendly description of the first
// validation failure in err.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "Validation error"
	}

	fe := validationErrs[0]
	field := fieldPath(fe.Namespace())
	return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(fe.Tag(), fe.Param()))
}

// fieldPath drops the struct name from a validator namespace,
// e.g. "SuggestionsRequest.ingredients[1]" becomes "ingredients[1]".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag, param string) string {
	switch tag {
	case "required":
		return "required field"
	case "nonblank":
		return "must not be blank"
	case "unique":
		return "must not contain duplicates"
	case "min":
		return "must have at least " + param + " entries"
	case "max":
		return "exceeds the maximum of " + param
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the response for err, logging the detailed error.
// fallbackMessage replaces the default message for unmapped errors when set.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallbackMessage != "" {
		message = fallbackMessage
	}

	var opts []shared.ResponseOption
	if status == http.StatusConflict {
		opts = append(opts, shared.WithElevatedLogLevel())
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}
