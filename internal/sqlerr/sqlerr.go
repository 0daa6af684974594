// Package sqlerr classifies database driver errors.
//
// It parses cryptic SQLSTATE codes from the PostgreSQL driver and converts
// them into the service's typed failures (e.g. a unique violation becomes
// a ConflictError, an unreachable server becomes a StorageError), so the
// repository layer never leaks pgconn detail upward.
package sqlerr
