package handlers

import (
	"log/slog"

	"github.com/SscSPs/trip_settlement_engine/cmd/docs"
	portssvc "github.com/SscSPs/trip_settlement_engine/internal/core/ports/services"
	"github.com/SscSPs/trip_settlement_engine/internal/middleware"
	"github.com/SscSPs/trip_settlement_engine/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerValidations()

	r.GET("/", getHome)

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Prometheus scrape endpoint
	r.GET("/metrics", middleware.MetricsHandler())

	// Setup API v1 routes, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	// Every endpoint is a pure computation over the request body, so the v1
	// group carries no auth or session state.
	v1 := r.Group("/api/v1")

	if cfg.RateLimit != "" {
		ipLimiter, err := middleware.NewIPRateLimiter(cfg.RateLimit)
		if err != nil {
			slog.Warn("Invalid RATE_LIMIT value, rate limiting disabled", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		} else {
			v1.Use(middleware.RateLimit(ipLimiter))
		}
	}

	// Delegate route registration to specific handlers, passing required services
	registerSplitRoutes(v1, service.Split, service.Allocation)
	registerSettlementRoutes(v1, service.Settlement, service.Breakdown)
	registerCurrencyRoutes(v1, service.Currency)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
