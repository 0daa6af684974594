// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request correlation, request-scoped logging, CORS, rate limiting,
// authentication (via Clerk), panic recovery, and New Relic tracing.
//
// The global error handler (the service's single error translator) also
// lives here; it is installed on Echo by the composition root and converts
// every typed failure into the external response envelope exactly once.
package middleware
