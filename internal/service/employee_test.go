package service

import (
	"context"
	"testing"

	"github.com/deppfellow/employee-api/internal/errs"
	"github.com/deppfellow/employee-api/internal/model"
	"github.com/deppfellow/employee-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmployeeService(repo repository.EmployeeRepository) *EmployeeService {
	// The server container is only consulted for shared deps the employee
	// service does not use; nil keeps the tests free of wiring.
	return NewEmployeeService(nil, repo)
}

func TestSaveEmployee_Valid(t *testing.T) {
	repo := repository.NewMemoryEmployeeRepository()
	svc := newEmployeeService(repo)

	created, err := svc.SaveEmployee(context.Background(), model.Employee{Name: "John", Department: "IT"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "John", created.Name)
}

func TestSaveEmployee_MissingFieldsLeaveStoreUnchanged(t *testing.T) {
	tests := []struct {
		name  string
		draft model.Employee
		field string
	}{
		{"missing name", model.Employee{Department: "IT"}, "name"},
		{"blank name", model.Employee{Name: "   ", Department: "IT"}, "name"},
		{"missing department", model.Employee{Name: "John"}, "department"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repository.NewMemoryEmployeeRepository()
			svc := newEmployeeService(repo)

			_, err := svc.SaveEmployee(context.Background(), tt.draft)

			var validationErr *errs.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.NotEmpty(t, validationErr.Fields)
			assert.Equal(t, tt.field, validationErr.Fields[0].Field)

			// No partial write.
			all, err := repo.FindAll(context.Background())
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestSaveEmployee_ReportsAllMissingFields(t *testing.T) {
	svc := newEmployeeService(repository.NewMemoryEmployeeRepository())

	_, err := svc.SaveEmployee(context.Background(), model.Employee{})

	var validationErr *errs.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Fields, 2)
}

func TestGetAllEmployees_Passthrough(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryEmployeeRepository()
	svc := newEmployeeService(repo)

	for _, name := range []string{"A", "B", "C"} {
		_, err := svc.SaveEmployee(ctx, model.Employee{Name: name, Department: "Eng"})
		require.NoError(t, err)
	}

	all, err := svc.GetAllEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "A", all[0].Name)
	assert.Equal(t, "C", all[2].Name)
}

func TestUpdateEmployee_Validates(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryEmployeeRepository()
	svc := newEmployeeService(repo)

	created, err := svc.SaveEmployee(ctx, model.Employee{Name: "John", Department: "IT"})
	require.NoError(t, err)

	_, err = svc.UpdateEmployee(ctx, created.ID, model.Employee{Name: "", Department: "IT"})
	var validationErr *errs.ValidationError
	require.ErrorAs(t, err, &validationErr)

	// Record untouched after the rejected update.
	found, err := svc.GetEmployee(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "John", found.Name)
}

func TestDeleteEmployee_Unknown(t *testing.T) {
	svc := newEmployeeService(repository.NewMemoryEmployeeRepository())

	var notFound *errs.NotFoundError
	assert.ErrorAs(t, svc.DeleteEmployee(context.Background(), 99), &notFound)
}

// failingRepository simulates an unavailable backing store.
type failingRepository struct {
	repository.EmployeeRepository
}

func (f *failingRepository) Create(ctx context.Context, employee model.Employee) (model.Employee, error) {
	return model.Employee{}, errs.NewStorageError("employees.create", context.DeadlineExceeded)
}

func TestSaveEmployee_PropagatesStorageErrorUnchanged(t *testing.T) {
	svc := newEmployeeService(&failingRepository{})

	_, err := svc.SaveEmployee(context.Background(), model.Employee{Name: "John", Department: "IT"})

	var storageErr *errs.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "employees.create", storageErr.Op)
}
