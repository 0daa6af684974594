package errs

import (
	"net/http"

	"github.com/pkg/errors"
)

// NewUnauthorizedError creates a 401 envelope.
//
// override lets middleware decide whether to replace the message before
// it reaches the client (useful to sanitize messages in production).
func NewUnauthorizedError(message string, override bool) *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusUnauthorized)),
		Message:  message,
		Status:   http.StatusUnauthorized,
		Override: override,
	}
}

// NewTooManyRequestsError creates a 429 envelope for rate-limited clients.
func NewTooManyRequestsError(message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusTooManyRequests)),
		Message: message,
		Status:  http.StatusTooManyRequests,
	}
}

// NewInternalServerError creates a 500 envelope.
//
// The message is the generic status text, never the underlying error:
// internal detail belongs in logs, not in responses.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}

// ToHTTP translates any error flowing out of a handler into the external
// envelope. This is the single mapping table for the whole service:
//
//	ValidationError        -> 400
//	DecodeError            -> 400
//	NotFoundError          -> 404
//	RouteNotFoundError     -> 404
//	ConflictError          -> 409
//	StorageError / unknown -> 500
//
// An error that is already an *HTTPError passes through unchanged, so
// translation cannot stack.
func ToHTTP(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var (
		validationErr *ValidationError
		decodeErr     *DecodeError
		notFoundErr   *NotFoundError
		routeErr      *RouteNotFoundError
		conflictErr   *ConflictError
	)

	switch {
	case errors.As(err, &validationErr):
		return &HTTPError{
			Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest)),
			Message:  validationErr.Message,
			Status:   http.StatusBadRequest,
			Override: true,
			Errors:   validationErr.Fields,
		}

	case errors.As(err, &decodeErr):
		return &HTTPError{
			Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest)),
			Message: decodeErr.Reason,
			Status:  http.StatusBadRequest,
		}

	case errors.As(err, &notFoundErr):
		return &HTTPError{
			Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)),
			Message: "The requested " + notFoundErr.Resource + " does not exist",
			Status:  http.StatusNotFound,
		}

	case errors.As(err, &routeErr):
		return &HTTPError{
			Code:    "ROUTE_NOT_FOUND",
			Message: "Route not found",
			Status:  http.StatusNotFound,
		}

	case errors.As(err, &conflictErr):
		return &HTTPError{
			Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusConflict)),
			Message: conflictErr.Message,
			Status:  http.StatusConflict,
		}

	default:
		// StorageError and anything unclassified: safe 500.
		return NewInternalServerError()
	}
}
