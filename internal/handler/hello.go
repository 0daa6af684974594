package handler

import (
	"net/http"

	"github.com/deppfellow/employee-api/internal/server"
	"github.com/labstack/echo/v4"
)

// HelloHandler serves the plain-text greeting endpoints. These bypass the
// typed pipeline: there is nothing to bind, validate, or serialize.
type HelloHandler struct {
	Handler
}

// NewHelloHandler constructs a HelloHandler.
func NewHelloHandler(s *server.Server) *HelloHandler {
	return &HelloHandler{
		Handler: NewHandler(s),
	}
}

// Hello answers GET /hello.
func (h *HelloHandler) Hello(c echo.Context) error {
	return c.String(http.StatusOK, "Hello, World!")
}

// Greet answers GET /greet with the active profile baked in.
func (h *HelloHandler) Greet(c echo.Context) error {
	return c.String(http.StatusOK, "Greetings from the employee API ("+h.server.Config.Primary.Env+")")
}
