// Package repository handles all interactions with the backing store.
//
// It is the only layer permitted to read or write stored employees,
// abstracting storage logic away from the service layer. Two backends
// implement the same contract: a mutex-serialized in-memory store and a
// PostgreSQL store, with an optional redis read-through cache layered on
// top at composition time.
package repository

import (
	"context"

	"github.com/deppfellow/employee-api/internal/model"
)

// EmployeeRepository is the CRUD contract for stored employees.
//
// Guarantees shared by all implementations:
//   - Create assigns a fresh identifier; identifiers are monotonic and
//     never reused, even after Delete.
//   - FindAll returns employees in insertion order; an empty store yields
//     an empty slice, not an error.
//   - FindByID/Update/Delete fail with *errs.NotFoundError for unknown ids.
//   - Backing-store failures surface as *errs.StorageError.
//
// Every call takes a context; networked backends honor cancellation.
type EmployeeRepository interface {
	Create(ctx context.Context, employee model.Employee) (model.Employee, error)
	FindAll(ctx context.Context) ([]model.Employee, error)
	FindByID(ctx context.Context, id int64) (model.Employee, error)
	Update(ctx context.Context, id int64, employee model.Employee) (model.Employee, error)
	Delete(ctx context.Context, id int64) error
}
