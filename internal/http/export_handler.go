package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/palletdesk/pallet-service/internal/domain/dto"
	"github.com/palletdesk/pallet-service/internal/i18n"
	"github.com/palletdesk/pallet-service/internal/metrics"
	"github.com/palletdesk/pallet-service/internal/service"
)

// ExportHandler provides HTTP handlers for catalog export routes.
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new export handler.
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// ExportPallets handles GET /api/export/pallets requests.
//
// @Summary      Export pallets
// @Description  Renders the caller's filtered pallet list as a downloadable file. Supported formats are csv (UTF-8 with BOM), pdf (paginated landscape table), and xlsx. Exporting an empty result set is reported as export_empty rather than producing an empty file.
// @Tags         Export
// @Produce      application/octet-stream
// @Param        format query string true "Export format" Enums(csv, pdf, xlsx)
// @Param        search query string false "Case-insensitive name substring"
// @Param        company_id query string false "Company ID"
// @Param        min_price query number false "Minimum price (inclusive)"
// @Param        max_price query number false "Maximum price (inclusive)"
// @Success      200 {file} file "Rendered export file"
// @Failure      400 {object} dto.ErrorResponse "Bad request - unknown format or malformed filter"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Not found - no pallets match the export filter"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/export/pallets [get]
func (h *ExportHandler) ExportPallets(c *gin.Context) {
	builder := NewResponseBuilder(c)

	userID, ok := currentUserID(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}

	filter, err := bindPalletFilter(c)
	if err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		}
		return
	}

	format := service.ExportFormat(c.DefaultQuery("format", string(service.FormatCSV)))

	start := time.Now()
	file, err := h.exportService.ExportPallets(c.Request.Context(), userID, filter, format)
	if err != nil {
		if errors.Is(err, service.ErrExportEmpty) {
			metrics.RecordExport(string(format), time.Since(start), 0, "empty")
		}
		respondServiceError(builder, err)
		return
	}
	metrics.RecordExport(string(format), time.Since(start), file.Rows, "success")

	audit(c, "export", "Pallet list exported", map[string]interface{}{
		"format": string(format),
		"rows":   file.Rows,
	})

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
