// Package app provides service initialization.
package app

import (
	"github.com/palletdesk/pallet-service/internal/service"
)

// ServiceComponents holds business logic services.
type ServiceComponents struct {
	CatalogService service.CatalogService
	StatsService   service.StatsService
	ExportService  service.ExportService
}

// InitializeServices initializes the catalog, stats and export services on
// top of the database components. Returns nil when no database is available.
func InitializeServices(dbComponents *DatabaseComponents) *ServiceComponents {
	if dbComponents == nil {
		return nil
	}

	calculator := service.NewDesiCalculator()

	return &ServiceComponents{
		CatalogService: service.NewCatalogService(
			dbComponents.CompanyRepo,
			dbComponents.PalletRepo,
			calculator,
			dbComponents.DB,
		),
		StatsService: service.NewStatsService(
			dbComponents.CompanyRepo,
			dbComponents.PalletRepo,
		),
		ExportService: service.NewExportService(
			dbComponents.CompanyRepo,
			dbComponents.PalletRepo,
		),
	}
}
