// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"

	"github.com/palletdesk/pallet-service/config"
	"github.com/palletdesk/pallet-service/internal/http"
	"github.com/palletdesk/pallet-service/internal/middleware"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *gin.Engine {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize database components (MongoDB repositories and audit logging)
	dbComponents := InitializeDatabase(cfg.Database)
	if dbComponents != nil {
		middleware.InitAsyncLogger(dbComponents.LoggingService, middleware.DefaultAsyncLoggerConfig())
	}

	// Initialize business services on top of the repositories
	serviceComponents := InitializeServices(dbComponents)

	// Initialize authentication
	authService := InitializeAuth(dbComponents, cfg.Auth)

	// Initialize router components (health handler and configuration)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, authService, cfg)

	return http.NewRouter(routerComponents.HealthHandler, routerComponents.Config)
}
