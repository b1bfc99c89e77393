package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/exercise-tracker/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleErrorUniqueUsername(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23505",
		Message:        `duplicate key value violates unique constraint "users_username_key"`,
		TableName:      "users",
		ConstraintName: "users_username_key",
	}

	err := HandleError(fmt.Errorf("insert user: %w", pgErr))

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, errs.KindDuplicateKey, httpErr.Kind)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "username already taken", httpErr.Message)
	assert.Equal(t, "USER_ALREADY_EXISTS", httpErr.Code)
}

func TestHandleErrorNotNull(t *testing.T) {
	err := HandleError(&pgconn.PgError{Code: "23502", TableName: "exercise_logs", ColumnName: "description"})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	status, message := httpErr.Normalize()
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "description is required", message)
}

func TestHandleErrorPassesHTTPErrorThrough(t *testing.T) {
	original := errs.NewUnknownReferenceError("unknown _id")
	assert.Same(t, original, HandleError(original))
}

func TestHandleErrorNoRows(t *testing.T) {
	var httpErr *errs.HTTPError
	require.True(t, errors.As(HandleError(pgx.ErrNoRows), &httpErr))
	assert.Equal(t, errs.KindNotFound, httpErr.Kind)
}

func TestHandleErrorUnknownIsInternal(t *testing.T) {
	var httpErr *errs.HTTPError
	require.True(t, errors.As(HandleError(errors.New("connection reset")), &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "Internal Server Error", httpErr.Message)

	require.True(t, errors.As(HandleError(&pgconn.PgError{Code: "57014"}), &httpErr))
	assert.Equal(t, errs.KindInternal, httpErr.Kind)
}

func TestErrCode(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505"}

	assert.Equal(t, UniqueViolation, ErrCode(pgErr))
	assert.Equal(t, UniqueViolation, ErrCode(fmt.Errorf("wrapped: %w", pgErr)))
	assert.Equal(t, UniqueViolation, ErrCode(ConvertPgError(pgErr)))
	assert.Equal(t, Other, ErrCode(errors.New("boom")))
}

func TestConvertPgErrorUnwraps(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", Severity: "FATAL", Message: "fk"}
	converted := ConvertPgError(pgErr)

	assert.Equal(t, ForeignKeyViolation, converted.Code)
	assert.Equal(t, SeverityFatal, converted.Severity)
	assert.ErrorIs(t, converted, pgErr)
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "username", extractColumnForUniqueViolation("users_username_key"))
	assert.Equal(t, "username", extractColumnForUniqueViolation("unique_users_username"))
	assert.Equal(t, "", extractColumnForUniqueViolation("pk"))
	assert.Equal(t, "", extractColumnForUniqueViolation(""))
}

func TestHumanizeText(t *testing.T) {
	assert.Equal(t, "Exercise Logs", humanizeText("exercise_logs"))
}
