package middleware

import (
	"github.com/deppfellow/employee-api/internal/server"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Middlewares groups all middleware components used by the HTTP server,
// so routing setup receives one wired object instead of many. Dependency
// injection in its simplest form: build once, reuse everywhere.
type Middlewares struct {
	// Global holds middleware used across the whole API: CORS, request
	// logging, recovery, secure headers, and the global error handler.
	Global *GlobalMiddlewares

	// Auth enforces authentication on mutating routes (Clerk-based).
	Auth *AuthMiddleware

	// ContextEnhancer enriches each request with a request-scoped logger.
	ContextEnhancer *ContextEnhancer

	// Tracing provides the New Relic middleware and attribute helpers.
	Tracing *TracingMiddleware

	// RateLimit throttles clients by IP.
	RateLimit *RateLimitMiddleware
}

// NewMiddlewares constructs all middleware components from the app
// container, extracting the New Relic application (nil when telemetry is
// disabled, in which case tracing degrades to a no-op).
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		Auth:            NewAuthMiddleware(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
