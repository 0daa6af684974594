package repository

import (
	"context"
	"sync"

	"github.com/deppfellow/employee-api/internal/errs"
	"github.com/deppfellow/employee-api/internal/model"
)

// MemoryEmployeeRepository is the process-local backing store.
//
// All access is serialized by a single mutex so identifier assignment is
// atomic: no two concurrent Creates can receive the same id. The store is
// created empty and discarded at shutdown; there is no persistence across
// restarts.
type MemoryEmployeeRepository struct {
	mu sync.Mutex

	// nextID only ever increments, so ids are monotonic and never reused.
	nextID    int64
	employees map[int64]model.Employee

	// order records insertion order for FindAll.
	order []int64
}

// NewMemoryEmployeeRepository creates an empty in-memory store.
func NewMemoryEmployeeRepository() *MemoryEmployeeRepository {
	return &MemoryEmployeeRepository{
		employees: make(map[int64]model.Employee),
	}
}

// Create assigns the next identifier and stores the employee.
func (r *MemoryEmployeeRepository) Create(ctx context.Context, employee model.Employee) (model.Employee, error) {
	if err := ctx.Err(); err != nil {
		return model.Employee{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	employee.ID = r.nextID

	r.employees[employee.ID] = employee
	r.order = append(r.order, employee.ID)

	return employee, nil
}

// FindAll returns all stored employees in insertion order.
func (r *MemoryEmployeeRepository) FindAll(ctx context.Context) ([]model.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]model.Employee, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.employees[id])
	}

	return result, nil
}

// FindByID returns the employee with the given id.
func (r *MemoryEmployeeRepository) FindByID(ctx context.Context, id int64) (model.Employee, error) {
	if err := ctx.Err(); err != nil {
		return model.Employee{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	employee, ok := r.employees[id]
	if !ok {
		return model.Employee{}, errs.NewNotFoundError("employee", id)
	}

	return employee, nil
}

// Update replaces the stored record for id. The identifier itself is
// immutable; whatever id the draft carries is overwritten. Last write
// wins for concurrent updates.
func (r *MemoryEmployeeRepository) Update(ctx context.Context, id int64, employee model.Employee) (model.Employee, error) {
	if err := ctx.Err(); err != nil {
		return model.Employee{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[id]; !ok {
		return model.Employee{}, errs.NewNotFoundError("employee", id)
	}

	employee.ID = id
	r.employees[id] = employee

	return employee, nil
}

// Delete removes the record for id. The id is retired, not recycled.
func (r *MemoryEmployeeRepository) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[id]; !ok {
		return errs.NewNotFoundError("employee", id)
	}

	delete(r.employees, id)

	for i, storedID := range r.order {
		if storedID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}
