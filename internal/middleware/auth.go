package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/clerk/clerk-sdk-go/v2"
	clerkhttp "github.com/clerk/clerk-sdk-go/v2/http"
	"github.com/deppfellow/employee-api/internal/errs"
	"github.com/deppfellow/employee-api/internal/server"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware enforces authentication on mutating routes using Clerk.
// It holds the app Server so it can reach Logger and Config.
type AuthMiddleware struct {
	server *server.Server
}

// NewAuthMiddleware constructs an AuthMiddleware. The Clerk SDK key is
// registered here, once, when auth is enabled.
func NewAuthMiddleware(s *server.Server) *AuthMiddleware {
	if s.Config.Auth.Enabled {
		clerk.SetKey(s.Config.Auth.SecretKey)
	}

	return &AuthMiddleware{
		server: s,
	}
}

// RequireAuth is an Echo middleware that enforces header authentication.
//
// Behavior:
//  1. Wraps Clerk's net/http middleware, which parses and verifies the
//     Authorization header and populates the request context with session
//     claims.
//  2. On auth failure, the failure handler writes the standard 401
//     envelope directly (the request never reaches Echo's handler chain).
//  3. On success, user identity is copied into Echo context for the
//     context enhancer and handlers.
//
// When auth is disabled by config this is a pass-through, keeping the
// route table identical across profiles.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	if !auth.server.Config.Auth.Enabled {
		return next
	}

	return echo.WrapMiddleware(
		clerkhttp.WithHeaderAuthorization(
			clerkhttp.AuthorizationFailureHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)

				response := errs.NewUnauthorizedError("Unauthorized", false)

				if err := json.NewEncoder(w).Encode(response); err != nil {
					auth.server.Logger.Error().
						Err(err).
						Str("function", "RequireAuth").
						Msg("failed to write JSON response")
				}
			}))))(
		func(c echo.Context) error {
			claims, ok := clerk.SessionClaimsFromContext(c.Request().Context())
			if !ok {
				auth.server.Logger.Error().
					Str("function", "RequireAuth").
					Str("request_id", GetRequestID(c)).
					Msg("could not get session claims from context")

				return errs.NewUnauthorizedError("Unauthorized", false)
			}

			c.Set(UserIDKey, claims.Subject)
			c.Set(UserRoleKey, claims.ActiveOrganizationRole)

			return next(c)
		})
}
