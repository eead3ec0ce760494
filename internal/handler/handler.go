package handler

import (
	"net/http"

	"courierhub/internal/identity"
	"courierhub/internal/middleware"
	"courierhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError maps usecase failures to JSON responses; anything that is not a
// usecase.HTTPError is masked as a 500.
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func identityFromContext(c echo.Context) (identity.Identity, bool) {
	return middleware.IdentityFromContext(c)
}
