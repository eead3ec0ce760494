package handler

import (
	"net/http"

	"courierhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ComplaintHandler struct {
	uc *usecase.ComplaintUsecase
}

func NewComplaintHandler(uc *usecase.ComplaintUsecase) *ComplaintHandler {
	return &ComplaintHandler{uc: uc}
}

type ComplaintCreateRequest struct {
	OrderID int64  `json:"order_id" validate:"required,gt=0"`
	Issue   string `json:"issue" validate:"required"`
}

func (h *ComplaintHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	g := e.Group("/complaints")
	g.Use(auth)
	g.POST("", h.create)
	g.GET("", h.listMine)
}

func (h *ComplaintHandler) create(c echo.Context) error {
	ident, ok := identityFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req ComplaintCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.File(c.Request().Context(), ident, usecase.FileComplaintInput{
		OrderID: req.OrderID,
		Issue:   req.Issue,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *ComplaintHandler) listMine(c echo.Context) error {
	ident, ok := identityFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.ListMine(c.Request().Context(), ident)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
