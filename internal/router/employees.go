package router

import (
	"net/http"

	"github.com/deppfellow/employee-api/internal/handler"
	"github.com/deppfellow/employee-api/internal/middleware"
	"github.com/labstack/echo/v4"
)

// registerEmployeeRoutes maps the employee CRUD surface onto the typed
// handler pipeline.
//
// Reads are open; mutating routes carry the auth middleware, which is a
// pass-through unless auth is enabled in config.
func registerEmployeeRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	employees := r.Group("/employees")

	employees.GET("", handler.Handle(h.Employees.Handler, h.Employees.List, http.StatusOK))
	employees.GET("/:id", handler.Handle(h.Employees.Handler, h.Employees.Get, http.StatusOK))

	employees.POST("", handler.Handle(h.Employees.Handler, h.Employees.Create, http.StatusCreated), m.Auth.RequireAuth)
	employees.PUT("/:id", handler.Handle(h.Employees.Handler, h.Employees.Update, http.StatusOK), m.Auth.RequireAuth)
	employees.DELETE("/:id", handler.HandleNoContent(h.Employees.Handler, h.Employees.Delete, http.StatusNoContent), m.Auth.RequireAuth)
}
