package middleware

import (
	"net/http"
	"strings"

	"courierhub/internal/identity"

	"github.com/labstack/echo/v4"
)

// CtxIdentityKey is where Auth stashes the resolved identity.Identity.
const CtxIdentityKey = "identity"

// Auth extracts the bearer token and resolves it through the identity
// provider. Any resolution failure is a 401; the handler never sees an
// unauthenticated request.
func Auth(provider identity.Provider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authz := c.Request().Header.Get("Authorization")
			if authz == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}
			token := strings.TrimSpace(parts[1])
			if token == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			ident, err := provider.Resolve(c.Request().Context(), token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			c.Set(CtxIdentityKey, ident)
			return next(c)
		}
	}
}

// IdentityFromContext retrieves what Auth stored.
func IdentityFromContext(c echo.Context) (identity.Identity, bool) {
	v := c.Get(CtxIdentityKey)
	if v == nil {
		return identity.Identity{}, false
	}
	ident, ok := v.(identity.Identity)
	return ident, ok
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}
