package validation

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/deppfellow/exercise-tracker/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payloads that validate themselves.
type Validatable interface {
	Validate() error
}

// CustomValidationError is a failure no struct tag can express.
type CustomValidationError struct {
	Field   string
	Message string
}

type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds the request into payload and validates it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return bindError(err)
	}

	if err := payload.Validate(); err != nil {
		return toHTTPError(err)
	}

	return nil
}

// Struct validates v against its tags and returns a 400 *errs.HTTPError
// listing every failing field in declaration order, or nil.
func Struct(v any) error {
	if err := Validator().Struct(v); err != nil {
		return toHTTPError(err)
	}
	return nil
}

// InvalidBodyMessage is what the client sees when a body cannot be decoded.
const InvalidBodyMessage = "invalid request body"

// bindError hides decoder detail from the client. The cause stays in the
// error chain for the server log.
func bindError(err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil {
			return fmt.Errorf("%w: %v", errs.NewBadRequestError(InvalidBodyMessage), he.Internal)
		}
		if message, ok := he.Message.(string); ok && he.Code != http.StatusBadRequest {
			return errs.NewBadRequestError(message)
		}
	}
	return fmt.Errorf("%w: %v", errs.NewBadRequestError(InvalidBodyMessage), err)
}

func toHTTPError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	fieldErrors := extractValidationError(err)
	if len(fieldErrors) == 0 {
		return errs.NewValidationError(err.Error(), nil)
	}
	return errs.NewValidationError("Validation failed", fieldErrors)
}

func extractValidationError(err error) []errs.FieldError {
	var fieldErrors []errs.FieldError

	var customValidationErrors CustomValidationErrors
	if errors.As(err, &customValidationErrors) {
		for _, e := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{Field: e.Field, Error: e.Message})
		}
		return fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	for _, e := range validationErrors {
		field := e.Field()
		var msg string

		switch e.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", field)

		case "max":
			if e.Kind() == reflect.String {
				msg = fmt.Sprintf("%s too long", field)
			} else {
				msg = fmt.Sprintf("%s must not exceed %s", field, e.Param())
			}

		case "min":
			if e.Kind() == reflect.String {
				msg = fmt.Sprintf("%s must be at least %s characters", field, e.Param())
			} else {
				msg = fmt.Sprintf("%s must be at least %s", field, e.Param())
			}

		case "numeric", "number":
			msg = fmt.Sprintf("%s must be a number", field)

		case "uuid", "uuid4":
			msg = fmt.Sprintf("%s must be a valid identifier", field)

		default:
			if e.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, e.Tag(), e.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, e.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{Field: field, Error: msg})
	}

	return fieldErrors
}
