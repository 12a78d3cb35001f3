package main

import (
	"log/slog"
	"os"

	portssvc "github.com/SscSPs/trip_settlement_engine/internal/core/ports/services"
	"github.com/SscSPs/trip_settlement_engine/internal/core/services"
	"github.com/SscSPs/trip_settlement_engine/internal/handlers"
	"github.com/SscSPs/trip_settlement_engine/internal/middleware"
	"github.com/SscSPs/trip_settlement_engine/internal/platform/config"
	"github.com/SscSPs/trip_settlement_engine/pkg/logging"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Trip Settlement Engine API
// @version 1.0
// @description Stateless computation service for splitting shared expenses and settling trip balances. Every endpoint is a pure function over its request body; nothing is persisted.

// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger (tint in dev, JSON in prod)
	logger := logging.New(cfg.LogLevel, cfg.IsProduction)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, metrics)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg)))
	r.Use(middleware.MetricsMiddleware())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, buildServices())

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildServices wires the engine service graph. Itemized allocation feeds the
// split service, which settlement and breakdown both derive shares through.
func buildServices() *portssvc.ServiceContainer {
	allocationService := services.NewAllocationService()
	splitService := services.NewSplitService(allocationService)

	return &portssvc.ServiceContainer{
		Split:      splitService,
		Allocation: allocationService,
		Settlement: services.NewSettlementService(splitService),
		Breakdown:  services.NewBreakdownService(splitService),
		Currency:   services.NewCurrencyService(),
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.ExposeHeaders = append(corsCfg.ExposeHeaders, "X-Request-ID")
	if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return corsCfg
}
