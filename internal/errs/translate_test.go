package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTTP_MappingTable(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", NewValidationError("Validation failed"), http.StatusBadRequest, "BAD_REQUEST"},
		{"decode", NewDecodeError("Request body could not be decoded", nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"not found", NewNotFoundError("employee", 7), http.StatusNotFound, "NOT_FOUND"},
		{"route not found", &RouteNotFoundError{Method: "GET", Path: "/nope"}, http.StatusNotFound, "ROUTE_NOT_FOUND"},
		{"conflict", NewConflictError("employee", "already exists"), http.StatusConflict, "CONFLICT"},
		{"storage", NewStorageError("employees.create", errors.New("connection refused")), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
		{"unclassified", errors.New("something odd"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantCode, got.Code)
		})
	}
}

func TestToHTTP_WrappedErrorsStillClassify(t *testing.T) {
	err := fmt.Errorf("save employee: %w", NewNotFoundError("employee", 3))

	got := ToHTTP(err)
	assert.Equal(t, http.StatusNotFound, got.Status)
}

func TestToHTTP_AlreadyTranslatedPassesThrough(t *testing.T) {
	original := NewUnauthorizedError("Unauthorized", false)

	got := ToHTTP(original)
	assert.Same(t, original, got)
}

func TestToHTTP_ValidationCarriesFieldErrors(t *testing.T) {
	err := NewValidationError("Validation failed",
		FieldError{Field: "name", Error: "is required"},
		FieldError{Field: "department", Error: "is required"},
	)

	got := ToHTTP(err)
	require.Len(t, got.Errors, 2)
	assert.Equal(t, "name", got.Errors[0].Field)
	assert.True(t, got.Override)
}

func TestToHTTP_InternalDetailNeverLeaks(t *testing.T) {
	got := ToHTTP(NewStorageError("employees.find_all", errors.New("password authentication failed for user postgres")))

	assert.NotContains(t, got.Message, "postgres")
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), got.Message)
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)))
}
