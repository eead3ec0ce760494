package handler

import (
	"net/http"

	"courierhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProfileHandler serves the /senders and /travellers routes.
type ProfileHandler struct {
	uc *usecase.ProfileUsecase
}

func NewProfileHandler(uc *usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

type SenderCreateRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone"`
}

type TravellerCreateRequest struct {
	Name       string `json:"name" validate:"required"`
	Phone      string `json:"phone"`
	SourceCity string `json:"source_city" validate:"required"`
	DestCity   string `json:"dest_city" validate:"required"`
}

func (h *ProfileHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	s := e.Group("/senders")
	s.Use(auth)
	s.POST("", h.createSender)
	s.GET("", h.listSenders)

	t := e.Group("/travellers")
	t.Use(auth)
	t.POST("", h.createTraveller)
	t.GET("", h.listTravellers)
}

func (h *ProfileHandler) createSender(c echo.Context) error {
	ident, ok := identityFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req SenderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateSender(c.Request().Context(), ident, usecase.CreateSenderInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *ProfileHandler) listSenders(c echo.Context) error {
	ident, ok := identityFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.ListSenders(c.Request().Context(), ident)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProfileHandler) createTraveller(c echo.Context) error {
	ident, ok := identityFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req TravellerCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateTraveller(c.Request().Context(), ident, usecase.CreateTravellerInput{
		Name:       req.Name,
		Phone:      req.Phone,
		SourceCity: req.SourceCity,
		DestCity:   req.DestCity,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *ProfileHandler) listTravellers(c echo.Context) error {
	ident, ok := identityFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.ListTravellers(c.Request().Context(), ident)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
