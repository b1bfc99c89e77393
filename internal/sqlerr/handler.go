package sqlerr

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/exercise-tracker/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var uniqueKeyPattern = regexp.MustCompile(`^[^_]+_([^_]+)_(?:key|ukey)$`)

// ErrCode reports the Code for err.
//
// Both an already converted *Error and a raw *pgconn.PgError anywhere in the
// chain are recognised; anything else is Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return MapCode(pgerr.Code)
	}

	return Other
}

// ConvertPgError converts a raw Postgres error into *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// generateErrorCode builds a <DOMAIN>_<ACTION> code, e.g. users + UniqueViolation
// gives USER_ALREADY_EXISTS.
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage produces the client-facing message for sqlErr.
func formatUserFriendlyMessage(sqlErr *Error) string {
	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("unknown %s", getEntityName(sqlErr.TableName, sqlErr.ColumnName))

	case UniqueViolation:
		if column := extractColumnForUniqueViolation(sqlErr.ConstraintName); column != "" {
			return fmt.Sprintf("%s already taken", column)
		}
		return fmt.Sprintf("%s already exists", humanizeText(getEntityName(sqlErr.TableName, "")))

	case NotNullViolation:
		fieldName := sqlErr.ColumnName
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("%s is required", fieldName)

	case CheckViolation:
		if sqlErr.ColumnName != "" {
			return fmt.Sprintf("%s is invalid", sqlErr.ColumnName)
		}
		return "one or more values are invalid"

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName infers an entity name, preferring a "<x>_id" column over the table.
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		return strings.TrimSuffix(strings.ToLower(columnName), "_id")
	}

	if tableName != "" {
		entity := tableName
		if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		return strings.ReplaceAll(entity, "_", " ")
	}

	return "record"
}

// humanizeText converts snake_case into Title Case ("exercise_logs" -> "Exercise Logs").
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForUniqueViolation infers the column from a constraint name.
//
// Supported conventions:
//
//	unique_users_username -> username
//	users_username_key    -> username
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	if matches := uniqueKeyPattern.FindStringSubmatch(constraintName); len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// HandleError converts a low-level database error into an *errs.HTTPError.
//
//   - *errs.HTTPError: returned unchanged
//   - *pgconn.PgError: mapped by SQLSTATE class
//   - pgx.ErrNoRows: unknown reference
//   - anything else: internal error
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)
		message := formatUserFriendlyMessage(sqlErr)

		var mapped *errs.HTTPError
		switch sqlErr.Code {
		case UniqueViolation:
			mapped = errs.NewDuplicateKeyError(message)

		case ForeignKeyViolation:
			mapped = errs.NewUnknownReferenceError(message)

		case NotNullViolation:
			mapped = errs.NewFieldValidationError(strings.ToLower(sqlErr.ColumnName), message)

		case CheckViolation:
			mapped = errs.NewValidationError(message, nil)

		default:
			return errs.NewInternalServerError()
		}

		mapped.Code = generateErrorCode(sqlErr.TableName, sqlErr.Code)
		return mapped
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NewUnknownReferenceError("record not found")
	}

	return errs.NewInternalServerError()
}
