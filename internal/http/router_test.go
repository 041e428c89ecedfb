//go:build !integration

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/palletdesk/pallet-service/internal/domain/dto"
	"github.com/palletdesk/pallet-service/internal/domain/model"
	"github.com/palletdesk/pallet-service/internal/mocks"
	"github.com/palletdesk/pallet-service/internal/service"
)

func TestNewRouter_InfrastructureRoutes(t *testing.T) {
	cfg := DefaultRouterConfig()
	router := NewRouter(NewHealthHandler(), cfg)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{name: "liveness", path: "/healthz", expectedStatus: http.StatusOK},
		{name: "readiness", path: "/readyz", expectedStatus: http.StatusOK},
		{name: "metrics", path: "/metrics", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestNewRouter_ProtectedCatalogRoutes(t *testing.T) {
	userID := primitive.NewObjectID()

	authService := new(mocks.MockAuthService)
	authService.On("ValidateToken", mock.Anything, "valid-token").
		Return(&dto.Claims{UserID: userID, Email: "demo@palletdesk.com"}, nil)
	authService.On("ValidateToken", mock.Anything, "bad-token").
		Return(nil, service.ErrInvalidToken)

	catalogService := new(mocks.MockCatalogService)
	catalogService.On("ListCompanies", mock.Anything, userID).Return([]model.Company{}, nil)

	cfg := DefaultRouterConfig()
	cfg.AuthService = authService
	cfg.CatalogService = catalogService
	router := NewRouter(NewHealthHandler(), cfg)

	t.Run("rejects request without token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/companies", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/companies", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("serves authenticated request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/companies", nil)
		req.Header.Set("Authorization", "Bearer valid-token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("exposes request id header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})
}
