package repository

import (
	"github.com/deppfellow/employee-api/internal/config"
	"github.com/deppfellow/employee-api/internal/server"
)

// Repositories is the container for all repository instances, built once
// by the composition root and injected into the service layer.
type Repositories struct {
	Employees EmployeeRepository
}

// NewRepositories constructs the repository container from the app
// container.
//
// The employee store is selected by config (memory or postgres); when a
// redis client survived startup, the store is wrapped in the read-through
// cache decorator.
func NewRepositories(s *server.Server) *Repositories {
	var employees EmployeeRepository

	switch s.Config.Storage.Backend {
	case config.StorageBackendPostgres:
		employees = NewPostgresEmployeeRepository(s.DB)
	default:
		employees = NewMemoryEmployeeRepository()
	}

	if s.Redis != nil {
		employees = NewCachedEmployeeRepository(employees, s.Redis, s.Logger)
	}

	return &Repositories{
		Employees: employees,
	}
}
