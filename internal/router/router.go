// Package router initializes the HTTP router (using Echo).
//
// It registers the middleware stack in a fixed order, installs the global
// error handler, and defines the API route groups, mapping specific paths
// to their corresponding handlers. The route table is built exactly once
// at startup; nothing is discovered at runtime.
package router

import (
	"github.com/deppfellow/employee-api/internal/handler"
	"github.com/deppfellow/employee-api/internal/middleware"
	"github.com/deppfellow/employee-api/internal/server"
	"github.com/labstack/echo/v4"
)

// New builds the Echo instance for the service.
//
// Middleware order matters:
//
//	Recover        first, so panics anywhere below become 500s
//	NewRelic       starts the transaction other layers attach to
//	RequestID      correlation id for everything downstream
//	Tracing        custom transaction attributes
//	ContextEnhancer request-scoped logger (needs request id + txn)
//	CORS/Secure    header handling
//	RequestLogger  one log line per request, status-aware
//	RateLimit      throttling, innermost so rejects are logged
func New(s *server.Server, h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// The single error translation chokepoint for the whole server.
	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	e.Use(m.Global.Recover())
	e.Use(m.Tracing.NewRelicMiddleware())
	e.Use(middleware.RequestID())
	e.Use(m.Tracing.EnhanceTracing())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Global.CORS())
	e.Use(m.Global.Secure())
	e.Use(m.Global.RequestLogger())
	e.Use(m.RateLimit.Limit(20))

	registerSystemRoutes(e, h)
	registerEmployeeRoutes(e, h, m)

	return e
}
