package handler

import (
	"net/http"
	"strconv"

	"courierhub/internal/observability"
	"courierhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type OrderCreateRequest struct {
	SourceCity string  `json:"source_city" validate:"required"`
	DestCity   string  `json:"dest_city" validate:"required"`
	WeightKg   float64 `json:"weight_kg" validate:"gt=0"`
	ItemType   string  `json:"item_type" validate:"required"`

	// advisory; overridden server-side for known cities
	SourceLat float64 `json:"source_lat"`
	SourceLon float64 `json:"source_lon"`
	DestLat   float64 `json:"dest_lat"`
	DestLon   float64 `json:"dest_lon"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	// browse is unauthenticated
	e.GET("/orders/available", h.listAvailable)

	g := e.Group("/orders")
	g.Use(auth)
	g.POST("", h.create)
	g.GET("", h.listMine)
	g.POST("/:id/accept", h.accept)
}

func (h *OrderHandler) create(c echo.Context) error {
	ident, ok := identityFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateOrder(c.Request().Context(), ident, usecase.CreateOrderInput{
		SourceCity: req.SourceCity,
		DestCity:   req.DestCity,
		WeightKg:   req.WeightKg,
		ItemType:   req.ItemType,
		SourceLat:  req.SourceLat,
		SourceLon:  req.SourceLon,
		DestLat:    req.DestLat,
		DestLon:    req.DestLon,
	})
	if err != nil {
		return writeError(c, err)
	}

	observability.OrdersCreated.Inc()
	return c.JSON(http.StatusCreated, out)
}

func (h *OrderHandler) listAvailable(c echo.Context) error {
	out, err := h.uc.ListAvailable(c.Request().Context(), usecase.ListAvailableInput{
		SourceCity: c.QueryParam("source_city"),
		DestCity:   c.QueryParam("dest_city"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) listMine(c echo.Context) error {
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

func (h *OrderHandler) accept(c echo.Context) error {
	ident, ok := identityFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.Accept(c.Request().Context(), ident, id)
	if err != nil {
		return writeError(c, err)
	}

	observability.OrdersAccepted.Inc()
	return c.JSON(http.StatusOK, out)
}
