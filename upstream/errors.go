// Package upstream provides the HTTP client for the dating-app API
package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a failed operation.
type ErrorKind string

const (
	// KindValidation marks caller-side failures caught before dispatch.
	KindValidation ErrorKind = "validation"
	// KindRequest marks any failed remote operation.
	KindRequest ErrorKind = "request"
)

// UnknownErrorMessage is reported for failures without a structured HTTP
// error response.
const UnknownErrorMessage = "an unknown error occurred"

// ErrUnsupported is returned for operations the upstream does not expose for
// an entity (plans have no delete endpoint).
var ErrUnsupported = errors.New("operation not supported by upstream")

// RequestError is the closed error type for failed operations. Status is the
// HTTP status when the upstream answered, 0 otherwise. Body carries the raw
// error payload for callers that want it; Message is display-ready.
type RequestError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Body    json.RawMessage
}

func (e *RequestError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s error (HTTP %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

// NewValidationError reports a caller-side validation failure.
func NewValidationError(message string) *RequestError {
	return &RequestError{Kind: KindValidation, Message: message}
}

// newUnknownError reports a failure with no structured upstream response.
func newUnknownError() *RequestError {
	return &RequestError{Kind: KindRequest, Message: UnknownErrorMessage}
}

// newStatusError builds a RequestError from a non-2xx response body. The
// upstream's error bodies are loose; the message is pulled from the usual
// keys, falling back to the raw body text.
func newStatusError(status int, body []byte) *RequestError {
	e := &RequestError{Kind: KindRequest, Status: status, Message: UnknownErrorMessage}
	if len(body) > 0 {
		e.Body = json.RawMessage(body)
		e.Message = extractMessage(body)
	}
	return e
}

func extractMessage(body []byte) string {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err == nil {
		for _, key := range []string{"message", "error", "ResponseMsg"} {
			var msg string
			if raw, ok := envelope[key]; ok && json.Unmarshal(raw, &msg) == nil && msg != "" {
				return msg
			}
		}
	}
	var msg string
	if err := json.Unmarshal(body, &msg); err == nil && msg != "" {
		return msg
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return UnknownErrorMessage
}

// Message returns a display-ready message for any error coming back from this
// package.
func Message(err error) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
