package http

import (
	"net/http"
	"strings"

	"storefront/internal/pkg/token"

	"github.com/labstack/echo/v4"
)

// claimsContextKey is the echo context key under which validated admin
// claims are stored for handlers.
const claimsContextKey = "adminClaims"

// AdminAuth returns middleware that gates a route group behind a valid
// administrative JWT. Missing, malformed, expired or non-admin tokens are
// all rejected with the same 401 before any handler body runs.
func AdminAuth(manager *token.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			raw, err := bearerToken(ctx.Request())
			if err != nil {
				return unauthorized(ctx)
			}

			claims, err := manager.ParseAndValidate(raw)
			if err != nil {
				return unauthorized(ctx)
			}

			ctx.Set(claimsContextKey, claims)
			return next(ctx)
		}
	}
}

// bearerToken reads "Authorization: Bearer <token>" from the request.
func bearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer "), nil
	}

	return "", token.ErrEmptyToken
}

// unauthorized writes the uniform rejection used for every admin route.
func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: "Unauthorized",
	})
}
