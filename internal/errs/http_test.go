package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFieldErrorsWin(t *testing.T) {
	err := NewValidationError("Validation failed", []FieldError{
		{Field: "description", Error: "description is required"},
		{Field: "duration", Error: "duration is required"},
	})

	status, message := err.Normalize()
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "description is required", message)
}

func TestNormalizeDefaults(t *testing.T) {
	status, message := (&HTTPError{}).Normalize()
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal Server Error", message)
}

func TestNormalizeKeepsDeclaredStatus(t *testing.T) {
	cases := []struct {
		name    string
		err     *HTTPError
		status  int
		message string
	}{
		{"duplicate", NewDuplicateKeyError("username already taken"), http.StatusBadRequest, "username already taken"},
		{"unknown reference", NewUnknownReferenceError("unknown _id"), http.StatusBadRequest, "unknown _id"},
		{"route", NewNotFoundError("not found"), http.StatusNotFound, "not found"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, message := tc.err.Normalize()
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.message, message)
		})
	}
}

func TestKindsAreTagged(t *testing.T) {
	assert.Equal(t, KindValidation, NewFieldValidationError("username", "username is required").Kind)
	assert.Equal(t, KindDuplicateKey, NewDuplicateKeyError("x").Kind)
	assert.Equal(t, KindNotFound, NewUnknownReferenceError("x").Kind)
	assert.Equal(t, KindNotFound, NewNotFoundError("x").Kind)
	assert.Equal(t, KindInternal, NewInternalServerError().Kind)
}

func TestHTTPErrorUnwrapsFromChain(t *testing.T) {
	wrapped := fmt.Errorf("create user: %w", NewDuplicateKeyError("username already taken"))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, "username already taken", httpErr.Message)
	assert.True(t, errors.Is(wrapped, &HTTPError{}))
}

func TestWithMessage(t *testing.T) {
	original := NewUnknownReferenceError("unknown _id")
	copied := original.WithMessage("unknown userId")

	assert.Equal(t, "unknown _id", original.Message)
	assert.Equal(t, "unknown userId", copied.Message)
	assert.Equal(t, original.Kind, copied.Kind)
	assert.Equal(t, original.Status, copied.Status)
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores("Not Found"))
}
