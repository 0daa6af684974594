package handler

import (
	"github.com/deppfellow/employee-api/internal/server"
	"github.com/deppfellow/employee-api/internal/service"
)

// Handlers groups all HTTP handlers so router setup receives one wired
// object instead of many.
type Handlers struct {
	Employees *EmployeeHandler // employee CRUD endpoints
	Health    *HealthHandler   // liveness/readiness endpoint
	Hello     *HelloHandler    // plain-text greeting endpoints
}

// NewHandlers constructs the handler container on top of the service
// container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Employees: NewEmployeeHandler(s, services.Employees),
		Health:    NewHealthHandler(s),
		Hello:     NewHelloHandler(s),
	}
}
