// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/palletdesk/pallet-service/config"
	"github.com/palletdesk/pallet-service/internal/repository"
	"github.com/palletdesk/pallet-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB             *repository.MongoDB
	CompanyRepo    repository.CompanyRepositoryInterface
	PalletRepo     repository.PalletRepositoryInterface
	UserRepo       repository.UserRepositoryInterface
	TokenRepo      repository.TokenRepositoryInterface
	LoggingService service.LoggingService
}

// InitializeDatabase initializes the MongoDB connection and creates the
// repositories and the audit logging service.
// Returns nil if the connection fails; the server then runs degraded with
// catalog endpoints unavailable.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	// Set TTL for audit logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	logsRepo := repository.NewLogsRepository(db)
	loggingService := service.NewLoggingService(logsRepo)

	return &DatabaseComponents{
		DB:             db,
		CompanyRepo:    repository.NewCompanyRepository(db.Database),
		PalletRepo:     repository.NewPalletRepository(db.Database),
		UserRepo:       repository.NewUserRepository(db.Database),
		TokenRepo:      repository.NewTokenRepository(db.Database),
		LoggingService: loggingService,
	}
}
