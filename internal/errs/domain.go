package errs

import "fmt"

// ValidationError reports input that violates a business invariant
// (e.g. a required field is empty). It is recoverable by the caller.
type ValidationError struct {
	// Message is a short summary, e.g. "Validation failed".
	Message string

	// Fields lists the individual offending fields, if known.
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with optional field details.
func NewValidationError(message string, fields ...FieldError) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

// NotFoundError reports a missing resource.
type NotFoundError struct {
	// Resource names the entity kind, e.g. "employee".
	Resource string

	// ID is the identifier that was looked up.
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// NewNotFoundError builds a NotFoundError for the given resource and id.
func NewNotFoundError(resource string, id int64) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// RouteNotFoundError reports a request that matched no registered route.
// It is produced by the translator, never by handlers.
type RouteNotFoundError struct {
	Method string
	Path   string
}

func (e *RouteNotFoundError) Error() string {
	return fmt.Sprintf("no route for %s %s", e.Method, e.Path)
}

// DecodeError reports a request body that could not be parsed into the
// expected shape. The service layer is never invoked for these.
type DecodeError struct {
	// Reason is safe to show to clients ("invalid JSON", type mismatch...).
	Reason string

	cause error
}

func (e *DecodeError) Error() string {
	return "decode request: " + e.Reason
}

func (e *DecodeError) Unwrap() error {
	return e.cause
}

// NewDecodeError builds a DecodeError wrapping the underlying bind failure.
func NewDecodeError(reason string, cause error) *DecodeError {
	return &DecodeError{Reason: reason, cause: cause}
}

// ConflictError reports a write rejected by a uniqueness rule
// (typically surfaced from a database unique violation).
type ConflictError struct {
	Resource string
	Message  string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NewConflictError builds a ConflictError for the given resource.
func NewConflictError(resource, message string) *ConflictError {
	return &ConflictError{Resource: resource, Message: message}
}

// StorageError reports a backing-store failure. It is the only kind a
// caller may reasonably retry; everything else is terminal for the request.
type StorageError struct {
	// Op is the repository operation that failed, e.g. "employees.create".
	Op string

	cause error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.cause)
}

func (e *StorageError) Unwrap() error {
	return e.cause
}

// NewStorageError wraps a backing-store failure with the operation name.
func NewStorageError(op string, cause error) *StorageError {
	return &StorageError{Op: op, cause: cause}
}
