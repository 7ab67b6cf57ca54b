package routes

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/JeffreyEssien/cms/internal/infra/config"
	"github.com/JeffreyEssien/cms/internal/infra/telemetry"
	"github.com/JeffreyEssien/cms/internal/transport/http/handlers"
	"github.com/JeffreyEssien/cms/internal/transport/http/middleware"
	"github.com/JeffreyEssien/cms/internal/usecase"
)

// ServiceSet groups the services the HTTP layer depends on.
type ServiceSet struct {
	Inquiries *usecase.InquiryService
	Users     *usecase.UserService
	Dashboard *usecase.DashboardService
}

// DatabaseChecker exposes readiness behaviour for the document store.
type DatabaseChecker interface {
	Ping(ctx context.Context) error
}

// CacheChecker exposes readiness behaviour for cache backends.
type CacheChecker interface {
	HealthCheck(ctx context.Context) error
}

// Dependencies encapsulates the objects required to register routes.
type Dependencies struct {
	Config    *config.AppConfig
	Logger    *zap.Logger
	Telemetry *telemetry.Provider
	Services  ServiceSet
	Database  DatabaseChecker
	Cache     CacheChecker
}

// allowedMethods maps each API path to the methods it accepts, for the Allow
// header on 405 responses.
var allowedMethods = map[string]string{
	"/api/inquiries": "POST, GET",
	"/api/users":     "GET, POST",
	"/api/dashboard": "GET",
}

// Register configures the Gin engine with routes and middleware.
func Register(deps Dependencies) *gin.Engine {
	if deps.Config.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.EnrichContext())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.CORS(deps.Config.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(deps.Telemetry))

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		if allow, ok := allowedMethods[c.Request.URL.Path]; ok {
			c.Header("Allow", allow)
		}
		c.String(http.StatusMethodNotAllowed, "Method %s Not Allowed", c.Request.Method)
	})

	healthOptions := make([]handlers.HealthOption, 0, 2)
	if deps.Database != nil {
		healthOptions = append(healthOptions, handlers.WithReadinessCheck("mongo", deps.Database.Ping))
	}
	if deps.Cache != nil {
		healthOptions = append(healthOptions, handlers.WithReadinessCheck("redis", deps.Cache.HealthCheck))
	}
	healthHandler := handlers.NewHealthHandler(healthOptions...)

	r.GET("/healthz", healthHandler.Status)
	r.GET("/readyz", healthHandler.Readiness)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		inquiryHandler := handlers.NewInquiryHandler(deps.Services.Inquiries, deps.Telemetry, deps.Logger)
		inquiryHandler.RegisterRoutes(api)

		userHandler := handlers.NewUserHandler(deps.Services.Users, deps.Telemetry, deps.Logger)
		userHandler.RegisterRoutes(api)

		dashboardHandler := handlers.NewDashboardHandler(deps.Services.Dashboard, deps.Logger)
		dashboardHandler.RegisterRoutes(api)
	}

	return r
}
