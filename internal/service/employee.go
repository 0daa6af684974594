package service

import (
	"context"
	"strings"

	"github.com/deppfellow/employee-api/internal/errs"
	"github.com/deppfellow/employee-api/internal/model"
	"github.com/deppfellow/employee-api/internal/repository"
	"github.com/deppfellow/employee-api/internal/server"
)

// EmployeeService enforces business invariants on employee records before
// delegating to the repository.
//
// The invariant is simple but lives here, not in the handler: name and
// department must be present and non-blank. Repository failures
// (StorageError, NotFoundError) propagate unchanged.
type EmployeeService struct {
	server *server.Server
	repo   repository.EmployeeRepository
}

// NewEmployeeService constructs an EmployeeService.
func NewEmployeeService(s *server.Server, repo repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		server: s,
		repo:   repo,
	}
}

// SaveEmployee validates the draft and persists it.
//
// A draft missing a required field fails with ValidationError and leaves
// the store untouched; validation always runs before the repository is
// called, so there is no partial write to roll back.
func (s *EmployeeService) SaveEmployee(ctx context.Context, draft model.Employee) (model.Employee, error) {
	if err := validateEmployee(draft); err != nil {
		return model.Employee{}, err
	}

	return s.repo.Create(ctx, draft)
}

// GetAllEmployees returns every stored employee in insertion order.
// Pure passthrough, no business rule.
func (s *EmployeeService) GetAllEmployees(ctx context.Context) ([]model.Employee, error) {
	return s.repo.FindAll(ctx)
}

// GetEmployee returns a single employee by id.
func (s *EmployeeService) GetEmployee(ctx context.Context, id int64) (model.Employee, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateEmployee validates the draft and replaces the record for id.
// Same invariants as SaveEmployee; last write wins on concurrent updates.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, id int64, draft model.Employee) (model.Employee, error) {
	if err := validateEmployee(draft); err != nil {
		return model.Employee{}, err
	}

	return s.repo.Update(ctx, id, draft)
}

// DeleteEmployee removes the record for id.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// validateEmployee checks the record-level invariants. Blank-after-trim
// counts as missing.
func validateEmployee(draft model.Employee) error {
	var fields []errs.FieldError

	if strings.TrimSpace(draft.Name) == "" {
		fields = append(fields, errs.FieldError{Field: "name", Error: "is required"})
	}
	if strings.TrimSpace(draft.Department) == "" {
		fields = append(fields, errs.FieldError{Field: "department", Error: "is required"})
	}

	if len(fields) > 0 {
		return errs.NewValidationError("Validation failed", fields...)
	}

	return nil
}
