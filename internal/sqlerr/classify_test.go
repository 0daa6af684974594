package sqlerr

import (
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/employee-api/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapCode(t *testing.T) {
	tests := []struct {
		sqlstate string
		want     Code
	}{
		{"23505", UniqueViolation},
		{"23503", ForeignKeyViolation},
		{"23502", NotNullViolation},
		{"23514", CheckViolation},
		{"08006", ConnectionFailure},
		{"08001", ConnectionFailure},
		{"42P01", Other},
		{"", Other},
	}

	for _, tt := range tests {
		t.Run(tt.sqlstate, func(t *testing.T) {
			assert.Equal(t, tt.want, MapCode(tt.sqlstate))
		})
	}
}

func TestClassify_UniqueViolationBecomesConflict(t *testing.T) {
	pgerr := &pgconn.PgError{
		Code:           "23505",
		TableName:      "employees",
		ConstraintName: "employees_email_key",
	}

	err := Classify("employees.create", pgerr)

	var conflict *errs.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "employee", conflict.Resource)
	assert.Contains(t, conflict.Message, "Email")
}

func TestClassify_NotNullViolationBecomesValidation(t *testing.T) {
	pgerr := &pgconn.PgError{
		Code:       "23502",
		TableName:  "employees",
		ColumnName: "name",
	}

	err := Classify("employees.create", pgerr)

	var validation *errs.ValidationError
	require.ErrorAs(t, err, &validation)
	require.Len(t, validation.Fields, 1)
	assert.Equal(t, "name", validation.Fields[0].Field)
}

func TestClassify_ForeignKeyViolationBecomesValidation(t *testing.T) {
	pgerr := &pgconn.PgError{Code: "23503", TableName: "departments"}

	var validation *errs.ValidationError
	assert.ErrorAs(t, Classify("employees.create", pgerr), &validation)
}

func TestClassify_UnknownDriverErrorBecomesStorage(t *testing.T) {
	err := Classify("employees.find_all", errors.New("write: broken pipe"))

	var storage *errs.StorageError
	require.ErrorAs(t, err, &storage)
	assert.Equal(t, "employees.find_all", storage.Op)
}

func TestClassify_PassesThroughNoRows(t *testing.T) {
	// The repository maps no-rows itself; Classify must not swallow it.
	err := Classify("employees.find_by_id", pgx.ErrNoRows)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestClassify_PassesThroughCancellation(t *testing.T) {
	assert.ErrorIs(t, Classify("employees.find_all", context.Canceled), context.Canceled)
	assert.ErrorIs(t, Classify("employees.find_all", context.DeadlineExceeded), context.DeadlineExceeded)
}

func TestClassify_DoesNotRewrapClassifiedErrors(t *testing.T) {
	original := errs.NewConflictError("employee", "already exists")
	assert.Same(t, original, Classify("employees.create", original))
}

func TestColumnForUniqueViolation(t *testing.T) {
	tests := []struct {
		constraint string
		want       string
	}{
		{"unique_employees_email", "email"},
		{"employees_email_key", "email"},
		{"employees_email_ukey", "email"},
		{"pk_employees", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			assert.Equal(t, tt.want, columnForUniqueViolation(tt.constraint))
		})
	}
}
