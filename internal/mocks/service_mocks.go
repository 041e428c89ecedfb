// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/palletdesk/pallet-service/internal/domain/dto"
	"github.com/palletdesk/pallet-service/internal/domain/model"
	"github.com/palletdesk/pallet-service/internal/service"
)

// MockCatalogService mocks service.CatalogService.
type MockCatalogService struct {
	mock.Mock
}

var _ service.CatalogService = (*MockCatalogService)(nil)

func (m *MockCatalogService) CreateCompany(ctx context.Context, ownerID primitive.ObjectID, req dto.CreateCompanyRequest) (*model.Company, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Company), args.Error(1)
}

func (m *MockCatalogService) GetCompany(ctx context.Context, ownerID, id primitive.ObjectID) (*model.Company, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Company), args.Error(1)
}

func (m *MockCatalogService) ListCompanies(ctx context.Context, ownerID primitive.ObjectID) ([]model.Company, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Company), args.Error(1)
}

func (m *MockCatalogService) UpdateCompany(ctx context.Context, ownerID, id primitive.ObjectID, req dto.UpdateCompanyRequest) (*model.Company, error) {
	args := m.Called(ctx, ownerID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Company), args.Error(1)
}

func (m *MockCatalogService) DeleteCompany(ctx context.Context, ownerID, id primitive.ObjectID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *MockCatalogService) CreatePallet(ctx context.Context, ownerID primitive.ObjectID, req dto.CreatePalletRequest) (*model.Pallet, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pallet), args.Error(1)
}

func (m *MockCatalogService) GetPallet(ctx context.Context, ownerID, id primitive.ObjectID) (*model.Pallet, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pallet), args.Error(1)
}

func (m *MockCatalogService) ListPallets(ctx context.Context, ownerID primitive.ObjectID, filter dto.PalletFilter) ([]model.Pallet, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Pallet), args.Error(1)
}

func (m *MockCatalogService) UpdatePallet(ctx context.Context, ownerID, id primitive.ObjectID, req dto.UpdatePalletRequest) (*model.Pallet, error) {
	args := m.Called(ctx, ownerID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pallet), args.Error(1)
}

func (m *MockCatalogService) DeletePallet(ctx context.Context, ownerID, id primitive.ObjectID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

// MockStatsService mocks service.StatsService.
type MockStatsService struct {
	mock.Mock
}

var _ service.StatsService = (*MockStatsService)(nil)

func (m *MockStatsService) PalletDistribution(ctx context.Context, ownerID primitive.ObjectID, filter dto.PalletFilter, field string) (*model.Distribution, error) {
	args := m.Called(ctx, ownerID, filter, field)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Distribution), args.Error(1)
}

func (m *MockStatsService) CompanySummaries(ctx context.Context, ownerID primitive.ObjectID) ([]model.CompanySummary, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CompanySummary), args.Error(1)
}

// MockExportService mocks service.ExportService.
type MockExportService struct {
	mock.Mock
}

var _ service.ExportService = (*MockExportService)(nil)

func (m *MockExportService) ExportPallets(ctx context.Context, ownerID primitive.ObjectID, filter dto.PalletFilter, format service.ExportFormat) (*service.ExportFile, error) {
	args := m.Called(ctx, ownerID, filter, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportFile), args.Error(1)
}

// MockAuthService mocks service.AuthService.
type MockAuthService struct {
	mock.Mock
}

var _ service.AuthService = (*MockAuthService)(nil)

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*dto.TokenPair, *model.User, error) {
	args := m.Called(ctx, email, password)
	var pair *dto.TokenPair
	var user *model.User
	if args.Get(0) != nil {
		pair = args.Get(0).(*dto.TokenPair)
	}
	if args.Get(1) != nil {
		user = args.Get(1).(*model.User)
	}
	return pair, user, args.Error(2)
}

func (m *MockAuthService) Register(ctx context.Context, email, username, password, name string) (*dto.TokenPair, *model.User, error) {
	args := m.Called(ctx, email, username, password, name)
	var pair *dto.TokenPair
	var user *model.User
	if args.Get(0) != nil {
		pair = args.Get(0).(*dto.TokenPair)
	}
	if args.Get(1) != nil {
		user = args.Get(1).(*model.User)
	}
	return pair, user, args.Error(2)
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TokenPair), args.Error(1)
}

func (m *MockAuthService) ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Claims), args.Error(1)
}

func (m *MockAuthService) InvalidateToken(ctx context.Context, tokenString string) error {
	args := m.Called(ctx, tokenString)
	return args.Error(0)
}

func (m *MockAuthService) InvalidateUserTokens(ctx context.Context, userID primitive.ObjectID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockAuthService) Logout(ctx context.Context, accessToken, refreshToken string) error {
	args := m.Called(ctx, accessToken, refreshToken)
	return args.Error(0)
}

// MockLoggingService mocks service.LoggingService.
type MockLoggingService struct {
	mock.Mock
}

var _ service.LoggingService = (*MockLoggingService)(nil)

func (m *MockLoggingService) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLoggingService) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLoggingService) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LogEntry), args.Error(1)
}

func (m *MockLoggingService) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}
