package http

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotes-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotes-service/internal/platform/config"
	"github.com/jsamuelsen/quotes-service/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// QuoteHandler handles the quote endpoints.
	QuoteHandler *handlers.QuoteHandler

	// HelloHandler handles the greeting endpoints.
	HelloHandler *handlers.HelloHandler

	// StatusHandler handles the /test diagnostic endpoint.
	StatusHandler *handlers.StatusHandler

	// HealthHandler handles the /-/ operational endpoints.
	HealthHandler *handlers.HealthHandler

	// Timeout is the default request timeout for /api routes.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - distributed tracing correlation
//  4. CORS - allow-all, matching the published API
//  5. OpenTelemetry - tracing and metrics
//  6. Logging - request logging (skips health endpoints)
//  7. Timeout - request deadline on /api routes
//
// Routes:
//   - /, /api/hello: greetings
//   - /test: database diagnostics, never fails
//   - /api/quotes, /api/quotes/random: quote operations
//   - /-/: liveness, readiness, build info, metrics
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		cors.New(allowAllCORS()),
		telemetry.TracingMiddleware(cfg.AppConfig.Name),
		telemetry.Middleware(cfg.AppConfig.Name),
		middleware.Logging(cfg.Logger),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	if cfg.HelloHandler != nil {
		cfg.HelloHandler.RegisterHelloRoutes(engine)
	}

	if cfg.StatusHandler != nil {
		engine.GET("/test", cfg.StatusHandler.Status)
	}

	api := engine.Group("/api")
	if cfg.Timeout > 0 {
		api.Use(middleware.SimpleTimeout(cfg.Timeout))
	}

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(api)
	}
}

// allowAllCORS mirrors the published API's permissive CORS policy:
// any origin, any method, any header.
func allowAllCORS() cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"*"}

	return corsCfg
}
