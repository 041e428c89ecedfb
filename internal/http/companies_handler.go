package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/palletdesk/pallet-service/internal/domain/dto"
	"github.com/palletdesk/pallet-service/internal/i18n"
)

// CreateCompany handles POST /api/companies requests.
//
// @Summary      Create company
// @Description  Creates a company owned by the authenticated user. Company names must be unique within a user's account.
// @Tags         Companies
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCompanyRequest true "Company definition"
// @Success      201 {object} dto.SuccessResponse "Created company"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      409 {object} dto.ErrorResponse "Conflict - company name already in use"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/companies [post]
func (h *Handler) CreateCompany(c *gin.Context) {
	builder := NewResponseBuilder(c)

	userID, ok := currentUserID(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}

	req, err := BuildRequestAndValidate[dto.CreateCompanyRequest](c)
	if err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	company, err := h.catalogService.CreateCompany(c.Request.Context(), userID, *req)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	audit(c, "company_create", "Company created", map[string]interface{}{
		"company_id": company.ID.Hex(),
		"name":       company.Name,
	})

	builder.SuccessCreated(company)
}

// ListCompanies handles GET /api/companies requests.
//
// @Summary      List companies
// @Description  Lists the authenticated user's companies in creation order.
// @Tags         Companies
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Companies"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/companies [get]
func (h *Handler) ListCompanies(c *gin.Context) {
	builder := NewResponseBuilder(c)

	userID, ok := currentUserID(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}

	companies, err := h.catalogService.ListCompanies(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(companies)
}

// GetCompany handles GET /api/companies/:id requests.
//
// @Summary      Get company
// @Description  Returns a single company by ID. Companies owned by other users are reported as not found.
// @Tags         Companies
// @Produce      json
// @Param        id path string true "Company ID"
// @Success      200 {object} dto.SuccessResponse "Company"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed ID"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/companies/{id} [get]
func (h *Handler) GetCompany(c *gin.Context) {
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

	company, err := h.catalogService.GetCompany(c.Request.Context(), userID, id)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(company)
}

// UpdateCompany handles PUT /api/companies/:id requests.
//
// @Summary      Update company
// @Description  Partially updates a company. Renaming to another of the user's company names is rejected. Unknown fields in the payload are rejected.
// @Tags         Companies
// @Accept       json
// @Produce      json
// @Param        id path string true "Company ID"
// @Param        request body dto.UpdateCompanyRequest true "Fields to update"
// @Success      200 {object} dto.SuccessResponse "Updated company"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      409 {object} dto.ErrorResponse "Conflict - company name already in use"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/companies/{id} [put]
func (h *Handler) UpdateCompany(c *gin.Context) {
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

	var req dto.UpdateCompanyRequest
	if err := NewRequestBuilder(c).BindStrict(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		return
	}

	company, err := h.catalogService.UpdateCompany(c.Request.Context(), userID, id, req)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	audit(c, "company_update", "Company updated", map[string]interface{}{
		"company_id": company.ID.Hex(),
	})

	builder.SuccessOK(company)
}

// DeleteCompany handles DELETE /api/companies/:id requests.
//
// @Summary      Delete company
// @Description  Deletes a company and every pallet that belongs to it. The cascade runs in a transaction so the catalog never holds orphaned pallets.
// @Tags         Companies
// @Produce      json
// @Param        id path string true "Company ID"
// @Success      204 "Company and its pallets deleted"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed ID"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/companies/{id} [delete]
func (h *Handler) DeleteCompany(c *gin.Context) {
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

	if err := h.catalogService.DeleteCompany(c.Request.Context(), userID, id); err != nil {
		respondServiceError(builder, err)
		return
	}

	audit(c, "company_delete", "Company deleted with its pallets", map[string]interface{}{
		"company_id": id.Hex(),
	})

	builder.SuccessNoContent()
}
