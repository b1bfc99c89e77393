package errs

import (
	"net/http"
	"strings"
)

// Kind tags which variant of API error an HTTPError represents.
type Kind string

const (
	// KindValidation marks bad, missing or oversized input.
	KindValidation Kind = "validation"

	// KindDuplicateKey marks a uniqueness violation reported by the store.
	KindDuplicateKey Kind = "duplicate_key"

	// KindNotFound marks an unresolvable reference or an unknown route.
	KindNotFound Kind = "not_found"

	// KindInternal marks an unexpected store or runtime failure.
	KindInternal Kind = "internal"
)

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "description", "error": "description is required" }
type FieldError struct {
	// Field is the request/model field name the error relates to (e.g. "userId").
	Field string `json:"field"`

	// Error is the human-readable error message reported to the client.
	Error string `json:"error"`
}

// HTTPError is the single error type handlers return.
//
// Fields:
//   - Kind: which variant this is (validation, duplicate key, ...).
//   - Code: machine-friendly code used in logs (e.g. "BAD_REQUEST").
//   - Message: the text sent to the client.
//   - Status: HTTP status code.
//   - Errors: ordered per-field validation errors; the first one wins.
type HTTPError struct {
	Kind    Kind   `json:"kind"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`

	// Errors holds field-level validation errors in declaration order.
	Errors []FieldError `json:"errors,omitempty"`
}

// Error makes *HTTPError satisfy the built-in error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError.
//
// It does not compare Kind/Status/Message, only the type.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Kind:    e.Kind,
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
		Errors:  e.Errors,
	}
}

// Normalize resolves the status and message a client receives for e.
//
//   - field errors present: 400 and the first field error's message
//   - otherwise the declared status (500 when unset) and message
//     ("Internal Server Error" when empty)
func (e *HTTPError) Normalize() (int, string) {
	if len(e.Errors) > 0 {
		return http.StatusBadRequest, e.Errors[0].Error
	}

	status := e.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}

	message := e.Message
	if message == "" {
		message = http.StatusText(http.StatusInternalServerError)
	}

	return status, message
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
