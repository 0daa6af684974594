package sqlerr

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Code is a friendly category for a Postgres SQLSTATE.
type Code int

const (
	Other Code = iota
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
	CheckViolation
	ConnectionFailure
)

// MapCode maps a raw SQLSTATE to a Code.
//
// SQLSTATE classes used here:
//
//	23505 unique_violation
//	23503 foreign_key_violation
//	23502 not_null_violation
//	23514 check_violation
//	08xxx connection exceptions
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23505":
		return UniqueViolation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	}

	if strings.HasPrefix(sqlstate, "08") {
		return ConnectionFailure
	}

	return Other
}

// Error is the normalized form of a pgconn.PgError, keeping the metadata
// needed to build friendly messages while preserving the original for
// Unwrap.
type Error struct {
	Code           Code
	DatabaseCode   string
	Message        string
	TableName      string
	ColumnName     string
	ConstraintName string

	driverErr error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// ConvertPgError normalizes a raw Postgres error into *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}
