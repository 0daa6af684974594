package router

import (
	"github.com/deppfellow/employee-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of business
// logic: the health endpoint used by orchestrators/monitors and the
// plain-text greeting endpoints.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.GET("/hello", h.Hello.Hello)
	r.GET("/greet", h.Hello.Greet)
}
