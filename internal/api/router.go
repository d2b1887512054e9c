package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/bistroboss/bistro-api/internal/api/handler"
	"github.com/bistroboss/bistro-api/internal/api/middleware"
	"github.com/bistroboss/bistro-api/internal/core/ports"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Tokens    ports.TokenService
	Directory ports.DirectoryService
	Menu      ports.MenuService
	Reviews   ports.ReviewRepository
	Carts     ports.CartService
	Payments  ports.PaymentService
	Stats     ports.StatsService

	Redirects      handler.RedirectConfig
	ReadyChecks    map[string]handler.Check
	CORSOrigins    []string
	TokenRateLimit int

	// Registry receives the HTTP metrics and backs /metrics. Nil means the
	// default prometheus registry, where the domain counters live.
	Registry *prometheus.Registry

	Log zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: d.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "bistro",
		Registerer: registerer(d.Registry),
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	authn := middleware.Auth(d.Tokens)
	admin := middleware.RequireAdmin(d.Directory)
	self := middleware.RequireSelf("email")

	// --- Probes, metrics and docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.ReadyChecks)

	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer(d.Registry)}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Session tokens ---
	authHandler := handler.NewAuthHandler(d.Tokens)
	e.POST("/jwt", authHandler.Issue, middleware.RateLimit(d.TokenRateLimit))

	// --- Users ---
	userHandler := handler.NewUserHandler(d.Directory)
	e.POST("/users", userHandler.Create)
	e.GET("/users", userHandler.List, authn, admin)
	e.GET("/users/admin/:email", userHandler.AdminStatus, authn, self)
	e.PATCH("/users/admin/:id", userHandler.Promote, authn, admin)
	e.DELETE("/users/:id", userHandler.Delete, authn, admin)

	// --- Menu and reviews ---
	menuHandler := handler.NewMenuHandler(d.Menu, d.Reviews)
	e.GET("/menu", menuHandler.List)
	e.GET("/menu/:id", menuHandler.Get)
	e.POST("/menu", menuHandler.Create, authn, admin)
	e.PATCH("/menu/:id", menuHandler.Update, authn, admin)
	e.DELETE("/menu/:id", menuHandler.Delete, authn, admin)
	e.GET("/reviews", menuHandler.Reviews)

	// --- Carts ---
	cartHandler := handler.NewCartHandler(d.Carts)
	e.GET("/carts", cartHandler.List)
	e.POST("/carts", cartHandler.Add)
	e.DELETE("/carts/:id", cartHandler.Remove)

	// --- Payments ---
	paymentHandler := handler.NewPaymentHandler(d.Payments, d.Redirects, d.Log)
	e.POST("/create-payment-intent", paymentHandler.CreateIntent)
	e.POST("/payments", paymentHandler.Record)
	e.GET("/payments/:email", paymentHandler.History, authn, self)
	e.POST("/payments/gateway", paymentHandler.InitiateGateway)

	// Gateway callbacks are posted by the gateway, not by the signed-in user.
	gateway := e.Group("/payments/gateway")
	gateway.POST("/success", paymentHandler.GatewaySuccess)
	gateway.POST("/fail", paymentHandler.GatewayFail)
	gateway.POST("/cancel", paymentHandler.GatewayCancel)
	gateway.POST("/ipn", paymentHandler.GatewayIPN)

	// --- Analytics ---
	statsHandler := handler.NewStatsHandler(d.Stats)
	e.GET("/admin-stats", statsHandler.AdminStats, authn, admin)
	e.GET("/order-stats", statsHandler.OrderStats, authn, admin)

	return e
}

func registerer(reg *prometheus.Registry) prometheus.Registerer {
	if reg == nil {
		return prometheus.DefaultRegisterer
	}
	return reg
}

func gatherer(reg *prometheus.Registry) prometheus.Gatherer {
	if reg == nil {
		return prometheus.DefaultGatherer
	}
	return reg
}
