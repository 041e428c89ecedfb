// Package app provides router configuration.
package app

import (
	"context"
	"time"

	"github.com/palletdesk/pallet-service/config"
	"github.com/palletdesk/pallet-service/internal/http"
	"github.com/palletdesk/pallet-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter assembles the health handler and router configuration
// from the initialized services.
func InitializeRouter(
	serviceComponents *ServiceComponents,
	dbComponents *DatabaseComponents,
	authService service.AuthService,
	cfg config.Config,
) *RouterComponents {
	healthHandler := http.NewHealthHandler()

	var loggingService service.LoggingService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService

		db := dbComponents.DB
		healthHandler.RegisterChecker("mongodb", http.HealthCheckerFunc(func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return db.HealthCheck(ctx)
		}))
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		EnableAuth:     cfg.Auth.Enabled,
		APIKeys:        cfg.Auth.APIKeys,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		LoggingService: loggingService,
		AuthService:    authService,
	}

	if serviceComponents != nil {
		routerCfg.CatalogService = serviceComponents.CatalogService
		routerCfg.StatsService = serviceComponents.StatsService
		routerCfg.ExportService = serviceComponents.ExportService
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
