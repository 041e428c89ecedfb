//go:build !integration

package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/palletdesk/pallet-service/internal/domain/dto"
	"github.com/palletdesk/pallet-service/internal/domain/model"
	"github.com/palletdesk/pallet-service/internal/mocks"
	"github.com/palletdesk/pallet-service/internal/service"
)

func TestHandler_CreateCompany(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("creates company", func(t *testing.T) {
		catalogService := new(mocks.MockCatalogService)
		company := &model.Company{ID: primitive.NewObjectID(), OwnerID: userID, Name: "Ahşap Palet A.Ş."}
		catalogService.On("CreateCompany", mock.Anything, userID, mock.AnythingOfType("dto.CreateCompanyRequest")).
			Return(company, nil)

		router := newCatalogTestRouter(catalogService, userID)
		w := performJSON(router, http.MethodPost, "/api/companies", map[string]interface{}{
			"name":          "Ahşap Palet A.Ş.",
			"contact_email": "info@ahsappalet.com",
		})

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp dto.SuccessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "Ahşap Palet A.Ş.", data["name"])
	})

	t.Run("maps duplicate name to conflict", func(t *testing.T) {
		catalogService := new(mocks.MockCatalogService)
		catalogService.On("CreateCompany", mock.Anything, userID, mock.AnythingOfType("dto.CreateCompanyRequest")).
			Return(nil, service.ErrCompanyConflict)

		router := newCatalogTestRouter(catalogService, userID)
		w := performJSON(router, http.MethodPost, "/api/companies", map[string]interface{}{
			"name": "Ahşap Palet A.Ş.",
		})

		assert.Equal(t, http.StatusConflict, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrCodeConflict, resp.Error)
	})

	t.Run("rejects missing name", func(t *testing.T) {
		catalogService := new(mocks.MockCatalogService)
		router := newCatalogTestRouter(catalogService, userID)
		w := performJSON(router, http.MethodPost, "/api/companies", map[string]interface{}{
			"contact_email": "info@ahsappalet.com",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		catalogService.AssertNotCalled(t, "CreateCompany")
	})
}

func TestHandler_ListCompanies(t *testing.T) {
	userID := primitive.NewObjectID()

	catalogService := new(mocks.MockCatalogService)
	companies := []model.Company{
		{ID: primitive.NewObjectID(), OwnerID: userID, Name: "Ahşap Palet A.Ş."},
		{ID: primitive.NewObjectID(), OwnerID: userID, Name: "Karadeniz Palet Ltd."},
	}
	catalogService.On("ListCompanies", mock.Anything, userID).Return(companies, nil)

	router := newCatalogTestRouter(catalogService, userID)
	w := performJSON(router, http.MethodGet, "/api/companies", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.([]interface{})
	assert.Len(t, data, 2)
}

func TestHandler_UpdateCompany(t *testing.T) {
	userID := primitive.NewObjectID()
	companyID := primitive.NewObjectID()

	t.Run("renames company", func(t *testing.T) {
		catalogService := new(mocks.MockCatalogService)
		updated := &model.Company{ID: companyID, OwnerID: userID, Name: "Yeni Palet A.Ş."}
		catalogService.On("UpdateCompany", mock.Anything, userID, companyID, mock.AnythingOfType("dto.UpdateCompanyRequest")).
			Return(updated, nil)

		router := newCatalogTestRouter(catalogService, userID)
		w := performJSON(router, http.MethodPut, "/api/companies/"+companyID.Hex(), map[string]interface{}{
			"name": "Yeni Palet A.Ş.",
		})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		catalogService := new(mocks.MockCatalogService)
		router := newCatalogTestRouter(catalogService, userID)
		w := performJSON(router, http.MethodPut, "/api/companies/"+companyID.Hex(), map[string]interface{}{
			"title": "Yeni Palet A.Ş.",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		catalogService.AssertNotCalled(t, "UpdateCompany")
	})

	t.Run("maps foreign company to not found", func(t *testing.T) {
		catalogService := new(mocks.MockCatalogService)
		catalogService.On("UpdateCompany", mock.Anything, userID, companyID, mock.AnythingOfType("dto.UpdateCompanyRequest")).
			Return(nil, service.ErrNotFound)

		router := newCatalogTestRouter(catalogService, userID)
		w := performJSON(router, http.MethodPut, "/api/companies/"+companyID.Hex(), map[string]interface{}{
			"name": "Yeni Palet A.Ş.",
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_DeleteCompany(t *testing.T) {
	userID := primitive.NewObjectID()
	companyID := primitive.NewObjectID()

	t.Run("deletes company with cascade", func(t *testing.T) {
		catalogService := new(mocks.MockCatalogService)
		catalogService.On("DeleteCompany", mock.Anything, userID, companyID).Return(nil)

		router := newCatalogTestRouter(catalogService, userID)
		w := performJSON(router, http.MethodDelete, "/api/companies/"+companyID.Hex(), nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
		catalogService.AssertExpectations(t)
	})

	t.Run("maps missing company to not found", func(t *testing.T) {
		catalogService := new(mocks.MockCatalogService)
		catalogService.On("DeleteCompany", mock.Anything, userID, companyID).Return(service.ErrNotFound)

		router := newCatalogTestRouter(catalogService, userID)
		w := performJSON(router, http.MethodDelete, "/api/companies/"+companyID.Hex(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
