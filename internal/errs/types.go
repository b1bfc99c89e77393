package errs

import (
	"net/http"
)

// NewValidationError creates a 400 validation error.
//
// fieldErrors is optional; when present the first entry's message is what the
// client sees, otherwise message is used.
func NewValidationError(message string, fieldErrors []FieldError) *HTTPError {
	return &HTTPError{
		Kind:    KindValidation,
		Code:    "VALIDATION_FAILED",
		Message: message,
		Status:  http.StatusBadRequest,
		Errors:  fieldErrors,
	}
}

// NewFieldValidationError creates a 400 validation error for a single field.
func NewFieldValidationError(field, message string) *HTTPError {
	return NewValidationError(message, []FieldError{{Field: field, Error: message}})
}

// NewDuplicateKeyError creates a 400 error for a uniqueness violation.
func NewDuplicateKeyError(message string) *HTTPError {
	return &HTTPError{
		Kind:    KindDuplicateKey,
		Code:    "DUPLICATE_KEY",
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// NewUnknownReferenceError creates a 400 not-found error for a request that
// points at a record which is malformed or does not exist.
func NewUnknownReferenceError(message string) *HTTPError {
	return &HTTPError{
		Kind:    KindNotFound,
		Code:    "UNKNOWN_REFERENCE",
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// NewNotFoundError creates a 404 Not Found error, used for unknown routes.
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Kind:    KindNotFound,
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)),
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewInternalServerError creates a 500 Internal Server Error.
//
// The message is the generic status text, never the underlying cause.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Kind:    KindInternal,
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}

// NewBadRequestError creates a plain 400 error without a specific kind of its own.
func NewBadRequestError(message string) *HTTPError {
	return &HTTPError{
		Kind:    KindValidation,
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest)),
		Message: message,
		Status:  http.StatusBadRequest,
	}
}
