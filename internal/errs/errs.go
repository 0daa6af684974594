// Package errs defines the error types used across the service.
//
// It has two halves:
//
//   - domain failures (ValidationError, NotFoundError, DecodeError,
//     ConflictError, StorageError, RouteNotFoundError) returned by the
//     repository, service, and handler layers. These carry no HTTP
//     knowledge beyond their kind.
//   - HTTPError, the external response envelope produced exactly once at
//     the boundary by the global error handler.
//
// Inner layers never format user-facing messages; they return one of the
// typed failures and let the translator decide status, code, and body.
package errs
