package infra

import (
	"errors"
	"log/slog"

	"kidcare-booking/internal/pkg/errs"
)

type APIErrorKind string

// Failure kinds of an outbound booking API call
const (
	KindTransport APIErrorKind = "TRANSPORT" // no response: dial, TLS, timeout
	KindBackend   APIErrorKind = "BACKEND"   // non-2xx with a structured error body
	KindUnknown   APIErrorKind = "UNKNOWN"   // anything else, e.g. malformed body
)

// Codes used when the backend did not supply one
const (
	CodeNetworkError = "NETWORK_ERROR"
	CodeUnknownError = "UNKNOWN_ERROR"
)

// APIError is the only error shape that leaves the API client.
type APIError struct {
	Kind    APIErrorKind   `json:"-"`
	Status  int            `json:"-"`
	Code    string         `json:"error_code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	err     error          // wrapped low-level error
}

func (e *APIError) Error() string {
	if e.err != nil {
		return e.Code + ": " + e.Message + ": " + e.err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *APIError) Unwrap() error {
	return e.err
}

func NewAPIError(kind APIErrorKind, status int, code, message string, details map[string]any) *APIError {
	return &APIError{Kind: kind, Status: status, Code: code, Message: message, Details: details}
}

// WrapAPIErr logs the normalized failure and keeps the cause for %+v output.
func WrapAPIErr(slogger *slog.Logger, apiErr *APIError, op string, cause error) *APIError {
	logArgs := []any{
		slog.String("op", op),
		slog.String("kind", string(apiErr.Kind)),
		slog.String("code", apiErr.Code),
	}
	if apiErr.Status != 0 {
		logArgs = append(logArgs, slog.Int("status", apiErr.Status))
	}
	if cause != nil {
		logArgs = append(logArgs, slog.String("cause", cause.Error()))
	}

	slogger.Warn("Booking API error: "+apiErr.Message, logArgs...)

	if cause != nil {
		apiErr.err = errs.Wrap(cause, op)
	}
	return apiErr
}

// AsAPIError extracts an APIError. Errors that are not one are reported as
// KindUnknown so callers never see an unnormalized fault.
func AsAPIError(err error) *APIError {
	if err == nil {
		return nil
	}
	var e *APIError
	if errors.As(err, &e) {
		return e
	}
	return &APIError{Kind: KindUnknown, Code: CodeUnknownError, Message: err.Error(), err: err}
}

func IsKind(err error, kind APIErrorKind) bool {
	var e *APIError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func IsCode(err error, code string) bool {
	var e *APIError
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
