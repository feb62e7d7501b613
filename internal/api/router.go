package api

import (
	"strings"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/stockcart/storefront/docs"
	"github.com/stockcart/storefront/internal/api/handler"
	"github.com/stockcart/storefront/internal/api/middleware"
	"github.com/stockcart/storefront/internal/core/ports"
	"github.com/stockcart/storefront/internal/infrastructure/http/handlers"
)

// Deps carries everything the router needs to serve requests.
type Deps struct {
	Auth    ports.AuthService
	Catalog ports.CatalogService
	Cart    ports.CartService

	JWTSecret    string
	SessionTTL   time.Duration
	SecureCookie bool

	// Health lists the dependencies pinged by the readiness probe.
	Health map[string]handlers.Pinger
	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// HTTP metrics register on a registry owned by this router so that more
	// than one router can live in a process.
	reg := prometheus.NewRegistry()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "storefront",
		Registerer: reg,
	}))
	// The logger renders handler errors, so metrics above it see the final status.
	e.Use(requestLogger(d.Logger))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(d.Auth, d.SessionTTL, d.SecureCookie)
	imageHandler := handler.NewImageHandler(d.Catalog)
	cartHandler := handler.NewCartHandler(d.Cart)
	requireAuth := middleware.Auth(d.JWTSecret, d.Auth)

	api := e.Group("/api")

	// --- Auth routes ---
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/logout", authHandler.Logout, requireAuth)
	api.GET("/user", authHandler.Me, requireAuth)

	// --- Catalog routes (public reads, seller-only writes) ---
	api.GET("/images", imageHandler.List)
	api.GET("/images/:type", imageHandler.ListByType)
	api.GET("/images/detail/:id", imageHandler.Get)
	api.POST("/images", imageHandler.Create, requireAuth, middleware.RequireSeller())

	// --- Cart routes ---
	cart := api.Group("/cart", requireAuth)
	cart.GET("", cartHandler.List)
	cart.GET("/summary", cartHandler.Summary)
	cart.POST("", cartHandler.Add)
	cart.DELETE("/:id", cartHandler.Remove)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(d.Health)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{prometheus.DefaultGatherer, reg},
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger emits one zerolog line per /api request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return !strings.HasPrefix(c.Request().URL.Path, "/api")
		},
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			switch {
			case v.Status >= 500:
				ev = log.Error().Err(v.Error)
			case v.Error != nil:
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
