package http

import (
	"github.com/gin-gonic/gin"
	"github.com/palletdesk/pallet-service/internal/service"
)

// CatalogRoutes handles catalog, statistics, and export route registration.
type CatalogRoutes struct {
	handler       *Handler
	statsHandler  *StatsHandler
	exportHandler *ExportHandler
}

// NewCatalogRoutes creates a new CatalogRoutes instance.
func NewCatalogRoutes(
	catalogService service.CatalogService,
	statsService service.StatsService,
	exportService service.ExportService,
) *CatalogRoutes {
	routes := &CatalogRoutes{
		handler: NewHandler(catalogService),
	}
	if statsService != nil {
		routes.statsHandler = NewStatsHandler(statsService)
	}
	if exportService != nil {
		routes.exportHandler = NewExportHandler(exportService)
	}
	return routes
}

// RegisterPublicRoutes registers catalog routes without authentication.
// Used in development setups where auth is disabled; handlers still require a
// user ID in the context, so a caller identity middleware must be installed.
func (r *CatalogRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	r.register(rg)
}

// RegisterProtectedRoutes registers catalog routes on an authenticated group.
func (r *CatalogRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup, cfg *RouterConfig) {
	r.register(protected)
}

func (r *CatalogRoutes) register(rg *gin.RouterGroup) {
	companies := rg.Group("/companies")
	{
		companies.POST("", r.handler.CreateCompany)
		companies.GET("", r.handler.ListCompanies)
		companies.GET("/:id", r.handler.GetCompany)
		companies.PUT("/:id", r.handler.UpdateCompany)
		companies.DELETE("/:id", r.handler.DeleteCompany)
	}

	pallets := rg.Group("/pallets")
	{
		pallets.POST("", r.handler.CreatePallet)
		pallets.GET("", r.handler.ListPallets)
		pallets.GET("/:id", r.handler.GetPallet)
		pallets.PUT("/:id", r.handler.UpdatePallet)
		pallets.DELETE("/:id", r.handler.DeletePallet)
	}

	if r.statsHandler != nil {
		stats := rg.Group("/stats")
		{
			stats.GET("/pallets", r.statsHandler.PalletDistribution)
			stats.GET("/companies", r.statsHandler.CompanySummaries)
		}
	}

	if r.exportHandler != nil {
		rg.GET("/export/pallets", r.exportHandler.ExportPallets)
	}
}

// GetHandler returns the underlying catalog handler.
func (r *CatalogRoutes) GetHandler() *Handler {
	return r.handler
}
