package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/palletdesk/pallet-service/internal/domain/dto"
	"github.com/palletdesk/pallet-service/internal/i18n"
	"github.com/palletdesk/pallet-service/internal/service"
)

// StatsHandler provides HTTP handlers for catalog statistics routes.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new statistics handler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// PalletDistribution handles GET /api/stats/pallets requests.
//
// @Summary      Pallet distribution
// @Description  Buckets the caller's pallets into five equal-width ranges over the chosen field (price or total volume). Pallet filters narrow the input set before bucketing. An empty result yields empty labels and counts.
// @Tags         Stats
// @Produce      json
// @Param        field query string true "Field to bucket: price or volume" Enums(price, volume)
// @Param        search query string false "Case-insensitive name substring"
// @Param        company_id query string false "Company ID"
// @Param        min_price query number false "Minimum price (inclusive)"
// @Param        max_price query number false "Maximum price (inclusive)"
// @Success      200 {object} dto.SuccessResponse "Bucketed distribution"
// @Failure      400 {object} dto.ErrorResponse "Bad request - unknown field or malformed filter"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/stats/pallets [get]
func (h *StatsHandler) PalletDistribution(c *gin.Context) {
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

	field := c.DefaultQuery("field", service.FieldPrice)

	distribution, err := h.statsService.PalletDistribution(c.Request.Context(), userID, filter, field)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(distribution)
}

// CompanySummaries handles GET /api/stats/companies requests.
//
// @Summary      Company summaries
// @Description  Returns per-company pallet statistics for the caller: pallet count, average price and volume, and the price range. Companies without pallets report zeros.
// @Tags         Stats
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Per-company statistics"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/stats/companies [get]
func (h *StatsHandler) CompanySummaries(c *gin.Context) {
	builder := NewResponseBuilder(c)

	userID, ok := currentUserID(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}

	summaries, err := h.statsService.CompanySummaries(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(summaries)
}
