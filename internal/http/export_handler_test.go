//go:build !integration

package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/palletdesk/pallet-service/internal/domain/dto"
	"github.com/palletdesk/pallet-service/internal/mocks"
	"github.com/palletdesk/pallet-service/internal/service"
)

func newExportTestRouter(exportService service.ExportService, userID primitive.ObjectID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	api := router.Group("/api")
	catalogService := new(mocks.MockCatalogService)
	NewCatalogRoutes(catalogService, nil, exportService).RegisterPublicRoutes(api)
	return router
}

func TestExportHandler_ExportPallets(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("serves csv download", func(t *testing.T) {
		exportService := new(mocks.MockExportService)
		file := &service.ExportFile{
			Filename:    "paletler_20240315_143045.csv",
			ContentType: "text/csv",
			Data:        []byte("\xEF\xBB\xBFPalet Adı\n"),
			Rows:        2,
		}
		exportService.On("ExportPallets", mock.Anything, userID, mock.AnythingOfType("dto.PalletFilter"), service.FormatCSV).
			Return(file, nil)

		router := newExportTestRouter(exportService, userID)
		w := performJSON(router, http.MethodGet, "/api/export/pallets?format=csv", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "paletler_20240315_143045.csv")
		assert.Equal(t, file.Data, w.Body.Bytes())
	})

	t.Run("defaults to csv format", func(t *testing.T) {
		exportService := new(mocks.MockExportService)
		file := &service.ExportFile{Filename: "paletler_20240315_143045.csv", ContentType: "text/csv", Data: []byte("x"), Rows: 1}
		exportService.On("ExportPallets", mock.Anything, userID, mock.AnythingOfType("dto.PalletFilter"), service.FormatCSV).
			Return(file, nil)

		router := newExportTestRouter(exportService, userID)
		w := performJSON(router, http.MethodGet, "/api/export/pallets", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		exportService.AssertExpectations(t)
	})

	t.Run("reports empty result as export_empty", func(t *testing.T) {
		exportService := new(mocks.MockExportService)
		exportService.On("ExportPallets", mock.Anything, userID, mock.AnythingOfType("dto.PalletFilter"), service.FormatPDF).
			Return(nil, service.ErrExportEmpty)

		router := newExportTestRouter(exportService, userID)
		w := performJSON(router, http.MethodGet, "/api/export/pallets?format=pdf", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrCodeExportEmpty, resp.Error)
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		exportService := new(mocks.MockExportService)
		exportService.On("ExportPallets", mock.Anything, userID, mock.AnythingOfType("dto.PalletFilter"), service.ExportFormat("docx")).
			Return(nil, &dto.ValidationError{Field: "format", Message: "must be csv, pdf or xlsx"})

		router := newExportTestRouter(exportService, userID)
		w := performJSON(router, http.MethodGet, "/api/export/pallets?format=docx", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
