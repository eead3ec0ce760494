package server

import (
	"log/slog"
	"net/http"

	"courierhub/internal/config"
	"courierhub/internal/handler"
	"courierhub/internal/identity"
	"courierhub/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server wires the Echo engine, middleware, and route groups. Constructed
// once at process start and passed its collaborators explicitly; no package
// globals.
type Server struct {
	e   *echo.Echo
	cfg config.Config
}

type requestValidator struct {
	v *validator.Validate
}

func (rv *requestValidator) Validate(i interface{}) error {
	return rv.v.Struct(i)
}

func New(
	cfg config.Config,
	logger *slog.Logger,
	provider identity.Provider,
	profileH *handler.ProfileHandler,
	orderH *handler.OrderHandler,
	complaintH *handler.ComplaintHandler,
	priceH *handler.PriceHandler,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &requestValidator{v: validator.New()}

	e.Use(echomw.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	auth := middleware.Auth(provider)
	profileH.RegisterRoutes(e, auth)
	orderH.RegisterRoutes(e, auth)
	complaintH.RegisterRoutes(e, auth)
	priceH.RegisterRoutes(e)

	return &Server{e: e, cfg: cfg}
}

func (s *Server) Start() error {
	srv := &http.Server{
		Addr:         ":" + s.cfg.Port,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}
	return s.e.StartServer(srv)
}

// Echo exposes the engine for in-process tests.
func (s *Server) Echo() *echo.Echo {
	return s.e
}
