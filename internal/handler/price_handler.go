package handler

import (
	"net/http"
	"strconv"

	"courierhub/internal/observability"
	"courierhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PriceHandler serves GET /calculate-price: a quote for a route without
// creating an order. Unauthenticated by design so clients can show estimates
// before sign-in.
type PriceHandler struct {
	uc *usecase.OrderUsecase
}

func NewPriceHandler(uc *usecase.OrderUsecase) *PriceHandler {
	return &PriceHandler{uc: uc}
}

func (h *PriceHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/calculate-price", h.calculate)
}

func (h *PriceHandler) calculate(c echo.Context) error {
	weight, err := strconv.ParseFloat(c.QueryParam("weight_kg"), 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid weight_kg"})
	}

	in := usecase.QuoteInput{
		SourceCity: c.QueryParam("source_city"),
		DestCity:   c.QueryParam("dest_city"),
		WeightKg:   weight,
		ItemType:   c.QueryParam("item_type"),
	}
	in.SourceLat = parseFloatParam(c, "source_lat")
	in.SourceLon = parseFloatParam(c, "source_lon")
	in.DestLat = parseFloatParam(c, "dest_lat")
	in.DestLon = parseFloatParam(c, "dest_lon")

	out, err := h.uc.Quote(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}

	observability.QuotesServed.Inc()
	return c.JSON(http.StatusOK, out)
}

// parseFloatParam returns 0 for missing or malformed optional coordinates;
// they only matter for cities outside the known-city table.
func parseFloatParam(c echo.Context, name string) float64 {
	v, err := strconv.ParseFloat(c.QueryParam(name), 64)
	if err != nil {
		return 0
	}
	return v
}
