package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/palletdesk/pallet-service/internal/domain/dto"
	"github.com/palletdesk/pallet-service/internal/i18n"
	"github.com/palletdesk/pallet-service/internal/metrics"
	"github.com/palletdesk/pallet-service/internal/middleware"
	"github.com/palletdesk/pallet-service/internal/service"
)

// Handler provides HTTP handlers for catalog routes (companies and pallets).
type Handler struct {
	catalogService service.CatalogService
}

// NewHandler creates a new Handler instance.
func NewHandler(catalogService service.CatalogService) *Handler {
	return &Handler{
		catalogService: catalogService,
	}
}

// currentUserID extracts the authenticated user ID stored by the JWT middleware.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return primitive.NilObjectID, false
	}
	id, ok := v.(primitive.ObjectID)
	return id, ok
}

// parseIDParam parses the ":id" path parameter as an ObjectID.
func parseIDParam(c *gin.Context) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return primitive.NilObjectID, &dto.ValidationError{Field: "id", Message: "must be a valid object id"}
	}
	return id, nil
}

// respondServiceError translates service-layer errors into HTTP responses.
func respondServiceError(builder *ResponseBuilder, err error) {
	var validationErr *dto.ValidationError
	var dimensionErr *service.InvalidDimensionError

	switch {
	case errors.As(err, &validationErr):
		builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
	case errors.As(err, &dimensionErr):
		builder.ErrorWithMessage(http.StatusBadRequest, dimensionErr.Error(), err)
	case errors.Is(err, service.ErrNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
	case errors.Is(err, service.ErrCompanyConflict):
		builder.Error(http.StatusConflict, i18n.ErrKeyConflict, err)
	case errors.Is(err, service.ErrExportEmpty):
		builder.ErrorWithCode(http.StatusNotFound, dto.ErrCodeExportEmpty, i18n.ErrKeyExportEmpty, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// audit records an audit log entry when a logging service is attached to the context.
func audit(c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, actionType, message, fields)
		}
	}
}

// bindPalletFilter parses pallet filter parameters from the query string.
func bindPalletFilter(c *gin.Context) (dto.PalletFilter, error) {
	var filter dto.PalletFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		return filter, err
	}
	if raw := c.Query("company_id"); raw != "" {
		companyID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return filter, &dto.ValidationError{Field: "company_id", Message: "must be a valid object id"}
		}
		filter.CompanyID = &companyID
	}
	return filter, nil
}

// CreatePallet handles POST /api/pallets requests.
//
// @Summary      Create pallet
// @Description  Creates a pallet under one of the caller's companies. Component volumes and the total desi volume are computed from the submitted dimensions and stored with the pallet.
// @Tags         Pallets
// @Accept       json
// @Produce      json
// @Param        request body dto.CreatePalletRequest true "Pallet definition"
// @Success      201 {object} dto.SuccessResponse "Created pallet with computed volumes"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input or non-positive dimension"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Not found - company does not exist or is not owned by the caller"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/pallets [post]
func (h *Handler) CreatePallet(c *gin.Context) {
	builder := NewResponseBuilder(c)

	userID, ok := currentUserID(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}

	req, err := BuildRequestAndValidate[dto.CreatePalletRequest](c)
	if err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	start := time.Now()
	pallet, err := h.catalogService.CreatePallet(c.Request.Context(), userID, *req)
	if err != nil {
		var dimensionErr *service.InvalidDimensionError
		if errors.As(err, &dimensionErr) {
			metrics.RecordVolumeComputation(time.Since(start), "validation_error")
		}
		respondServiceError(builder, err)
		return
	}
	metrics.RecordVolumeComputation(time.Since(start), "success")

	audit(c, "pallet_create", "Pallet created", map[string]interface{}{
		"pallet_id":  pallet.ID.Hex(),
		"company_id": pallet.CompanyID.Hex(),
		"name":       pallet.Name,
	})

	builder.SuccessCreated(pallet)
}

// ListPallets handles GET /api/pallets requests.
//
// @Summary      List pallets
// @Description  Lists the caller's pallets. Optional filters narrow the result: a case-insensitive name search, a company, and an inclusive price range. All provided filters must match.
// @Tags         Pallets
// @Produce      json
// @Param        search query string false "Case-insensitive name substring"
// @Param        company_id query string false "Company ID"
// @Param        min_price query number false "Minimum price (inclusive)"
// @Param        max_price query number false "Maximum price (inclusive)"
// @Success      200 {object} dto.SuccessResponse "Matching pallets"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed filter"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/pallets [get]
func (h *Handler) ListPallets(c *gin.Context) {
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

	pallets, err := h.catalogService.ListPallets(c.Request.Context(), userID, filter)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(pallets)
}

// GetPallet handles GET /api/pallets/:id requests.
//
// @Summary      Get pallet
// @Description  Returns a single pallet by ID. Pallets belonging to other users' companies are reported as not found.
// @Tags         Pallets
// @Produce      json
// @Param        id path string true "Pallet ID"
// @Success      200 {object} dto.SuccessResponse "Pallet"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed ID"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/pallets/{id} [get]
func (h *Handler) GetPallet(c *gin.Context) {
	builder := NewResponseBuilder(c)

	userID, ok := currentUserID(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		return
	}

	pallet, err := h.catalogService.GetPallet(c.Request.Context(), userID, id)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(pallet)
}

// UpdatePallet handles PUT /api/pallets/:id requests.
//
// @Summary      Update pallet
// @Description  Partially updates a pallet. When dimensions are submitted, all component volumes and the total are recomputed before the update is stored. Unknown fields in the payload are rejected.
// @Tags         Pallets
// @Accept       json
// @Produce      json
// @Param        id path string true "Pallet ID"
// @Param        request body dto.UpdatePalletRequest true "Fields to update"
// @Success      200 {object} dto.SuccessResponse "Updated pallet"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input or non-positive dimension"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/pallets/{id} [put]
func (h *Handler) UpdatePallet(c *gin.Context) {
	builder := NewResponseBuilder(c)

	userID, ok := currentUserID(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		return
	}

	var req dto.UpdatePalletRequest
	if err := NewRequestBuilder(c).BindStrict(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		return
	}

	pallet, err := h.catalogService.UpdatePallet(c.Request.Context(), userID, id, req)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	audit(c, "pallet_update", "Pallet updated", map[string]interface{}{
		"pallet_id": pallet.ID.Hex(),
	})

	builder.SuccessOK(pallet)
}

// DeletePallet handles DELETE /api/pallets/:id requests.
//
// @Summary      Delete pallet
// @Description  Deletes a pallet. Pallets belonging to other users' companies are reported as not found.
// @Tags         Pallets
// @Produce      json
// @Param        id path string true "Pallet ID"
// @Success      204 "Pallet deleted"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed ID"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/pallets/{id} [delete]
func (h *Handler) DeletePallet(c *gin.Context) {
	builder := NewResponseBuilder(c)

	userID, ok := currentUserID(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		return
	}

	if err := h.catalogService.DeletePallet(c.Request.Context(), userID, id); err != nil {
		respondServiceError(builder, err)
		return
	}

	audit(c, "pallet_delete", "Pallet deleted", map[string]interface{}{
		"pallet_id": id.Hex(),
	})

	builder.SuccessNoContent()
}
