package service

import (
	"github.com/deppfellow/employee-api/internal/repository"
	"github.com/deppfellow/employee-api/internal/server"
)

// Services is the container for all business-logic services, built once
// by the composition root and injected into the handler layer.
type Services struct {
	Employees *EmployeeService
}

// NewServices constructs the service container on top of the repository
// container.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Employees: NewEmployeeService(s, repos.Employees),
	}, nil
}
