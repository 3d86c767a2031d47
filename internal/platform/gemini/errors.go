package gemini

import (
	"context"
	"errors"
	"net"

	"github.com/phrazzld/recipe-ai/internal/generation"
	"google.golang.org/genai"
)

// transientCodes are HTTP status codes worth retrying
var transientCodes = map[int]bool{
	408: true, // request timeout
	429: true, // rate limited
	500: true,
	502: true,
	503: true, // model overloaded
	504: true,
}

// classifyError converts an error from a single API attempt into the
// generation error taxonomy. parent is the caller's context: if it is done the
// caller gave up, and its error is returned unchanged.
func classifyError(parent context.Context, err error) error {
	if parentErr := parent.Err(); parentErr != nil {
		return parentErr
	}

	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
		return fromGenAIError(apiErr, err)
	case errors.As(err, &apiErrPtr) && apiErrPtr != nil:
		return fromGenAIError(*apiErrPtr, err)
	}

	// The per-attempt timeout expired while the caller is still waiting
	if errors.Is(err, context.DeadlineExceeded) {
		return generation.NewAPIError(err, 0, true)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return generation.NewAPIError(err, 0, true)
	}

	return generation.NewAPIError(err, 0, false)
}

func fromGenAIError(apiErr genai.APIError, cause error) *generation.APIError {
	message := apiErr.Message
	if message == "" {
		message = cause.Error()
	}
	return &generation.APIError{
		Message:   message,
		Code:      apiErr.Code,
		Transient: transientCodes[apiErr.Code],
		Err:       cause,
	}
}
