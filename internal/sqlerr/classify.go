package sqlerr

import (
	"context"
	"database/sql"
	"strings"

	"github.com/deppfellow/employee-api/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Classify converts a database driver error into one of the service's
// typed failures.
//
// Mapping:
//
//	unique violation          -> ConflictError
//	fk / not-null / check     -> ValidationError (field-level where known)
//	no rows                   -> passed through (the repository maps it,
//	                             since it knows resource and id)
//	connection/unknown        -> StorageError tagged with op
//
// op names the repository operation, e.g. "employees.create".
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}

	// Already classified higher up; don't re-wrap.
	var validationErr *errs.ValidationError
	var conflictErr *errs.ConflictError
	if errors.As(err, &validationErr) || errors.As(err, &conflictErr) {
		return err
	}

	// Cancellation is the caller's doing, not a storage fault.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)

		switch sqlErr.Code {
		case UniqueViolation:
			resource := entityName(sqlErr.TableName)
			message := "A " + resource + " with this identifier already exists"
			if column := columnForUniqueViolation(sqlErr.ConstraintName); column != "" {
				message = "A " + resource + " with this " + humanizeText(column) + " already exists"
			}
			return errs.NewConflictError(resource, message)

		case ForeignKeyViolation:
			return errs.NewValidationError("The referenced " + entityName(sqlErr.TableName) + " does not exist")

		case NotNullViolation:
			field := strings.ToLower(sqlErr.ColumnName)
			return errs.NewValidationError("Validation failed", errs.FieldError{
				Field: field,
				Error: "is required",
			})

		case CheckViolation:
			field := humanizeText(sqlErr.ColumnName)
			if field == "" {
				return errs.NewValidationError("One or more values do not meet required conditions")
			}
			return errs.NewValidationError("The " + field + " value does not meet required conditions")
		}
	}

	return errs.NewStorageError(op, err)
}

// entityName derives a singular entity name from a table name:
// "employees" -> "employee". Falls back to "record" when unknown.
func entityName(tableName string) string {
	if tableName == "" {
		return "record"
	}

	entity := strings.ToLower(tableName)
	if strings.HasSuffix(entity, "s") && len(entity) > 1 {
		entity = entity[:len(entity)-1]
	}
	return entity
}

// humanizeText converts snake_case identifiers into Title Case:
// "first_name" -> "First Name".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// columnForUniqueViolation infers the column name from a unique constraint
// name. Two common conventions are supported:
//
//	unique_<table>_<column>       e.g. unique_employees_email -> "email"
//	<table>_<column>_(key|ukey)   e.g. employees_email_key    -> "email"
func columnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	for _, suffix := range []string{"_key", "_ukey"} {
		if strings.HasSuffix(constraintName, suffix) {
			trimmed := strings.TrimSuffix(constraintName, suffix)
			parts := strings.Split(trimmed, "_")
			if len(parts) >= 2 {
				return parts[len(parts)-1]
			}
		}
	}

	return ""
}
