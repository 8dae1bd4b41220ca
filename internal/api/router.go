package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/fintrack/personal-finance/internal/api/handler"
	"github.com/fintrack/personal-finance/internal/api/middleware"
	"github.com/fintrack/personal-finance/internal/core/ports"
)

// Dependencies are the services the router wires into handlers.
type Dependencies struct {
	Auth      ports.AuthService
	Ledger    ports.LedgerService
	Assistant ports.AssistantService
	Settings  ports.SettingsService

	Store        ports.Store
	StoreBackend string
	JWTSecret    string
	Logger       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	txHandler := handler.NewTransactionHandler(deps.Ledger, deps.Settings)
	summaryHandler := handler.NewSummaryHandler(deps.Ledger, deps.Settings)
	assistantHandler := handler.NewAssistantHandler(deps.Assistant)
	settingsHandler := handler.NewSettingsHandler(deps.Settings)
	categoryHandler := handler.NewCategoryHandler()

	requireSession := []echo.MiddlewareFunc{
		middleware.Auth(deps.JWTSecret),
		middleware.Session(deps.Auth),
	}

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, requireSession...)
	e.GET("/auth/session", authHandler.Session, requireSession...)

	// --- API v1 ---
	e.GET("/v1/categories", categoryHandler.List)

	v1 := e.Group("/v1", requireSession...)
	v1.GET("/transactions", txHandler.List)
	v1.POST("/transactions", txHandler.Create)
	v1.GET("/summary", summaryHandler.Summary)
	v1.GET("/challenge", summaryHandler.Challenge)
	v1.POST("/assistant", assistantHandler.Ask)
	v1.GET("/settings", settingsHandler.Get)
	v1.POST("/settings/:name/toggle", settingsHandler.Toggle)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.StoreBackend, deps.Store)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – can we reach the store?

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
