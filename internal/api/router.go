package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/frontdesk/visitor-registry/docs"
	"github.com/frontdesk/visitor-registry/internal/api/handler"
	"github.com/frontdesk/visitor-registry/internal/api/middleware"
	"github.com/frontdesk/visitor-registry/internal/core/ports"
	"github.com/frontdesk/visitor-registry/internal/pkg/config"
	"github.com/frontdesk/visitor-registry/internal/pkg/token"
)

// Deps carries everything the router needs. Registerer and Gatherer default
// to the Prometheus globals when nil.
type Deps struct {
	Log      zerolog.Logger
	Tokens   *token.Manager
	Auth     ports.AuthService
	Users    ports.UserService
	Visitors ports.VisitorService

	// AuthConfig decides who may create and update accounts.
	AuthConfig config.AuthConfig

	// Checks are run by the readiness probe, keyed by dependency name.
	Checks map[string]handler.CheckFunc

	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "visitor_registry",
		Registerer: d.Registerer,
	}))

	// --- Operational routes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Checks)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the store reachable?
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(d.Auth)
	userHandler := handler.NewUserHandler(d.Users)
	visitorHandler := handler.NewVisitorHandler(d.Visitors)
	authMiddleware := middleware.Auth(d.Tokens)

	manageAccounts := []echo.MiddlewareFunc{authMiddleware}
	if !d.AuthConfig.AnyAuthenticatedManages() {
		manageAccounts = append(manageAccounts, middleware.RBAC(d.AuthConfig.AccountManagerRoles...))
	}

	api := e.Group("/api")

	// --- Auth routes ---
	api.POST("/login", authHandler.Login)
	api.POST("/refresh", authHandler.Refresh)

	// --- Account routes ---
	api.GET("/get-user", userHandler.Me, authMiddleware)
	api.POST("/create-user", userHandler.Create, manageAccounts...)
	api.PUT("/update-user/:id", userHandler.Update, manageAccounts...)
	api.GET("/active-visitors", userHandler.ActiveVisitors, authMiddleware)

	// --- Visitor routes (anonymous) ---
	api.POST("/visitor", visitorHandler.Create)
	api.GET("/visitor-list", visitorHandler.List)

	return e
}
