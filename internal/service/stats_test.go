package service_test

import (
	"context"
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

func TestStatsService_PalletDistribution(t *testing.T) {
	ownerID := primitive.NewObjectID()
	companyID := primitive.NewObjectID()
	companies := []model.Company{{ID: companyID, OwnerID: ownerID, Name: "Ahşap Palet A.Ş."}}
	pallets := []model.Pallet{
		{CompanyID: companyID, Price: 100, Volumes: model.Volumes{Total: 20}},
		{CompanyID: companyID, Price: 200, Volumes: model.Volumes{Total: 30}},
		{CompanyID: companyID, Price: 600, Volumes: model.Volumes{Total: 70}},
	}

	newService := func(t *testing.T) (*mocks.MockCompanyRepository, *mocks.MockPalletRepository, service.StatsService) {
		companyRepo := new(mocks.MockCompanyRepository)
		palletRepo := new(mocks.MockPalletRepository)
		return companyRepo, palletRepo, service.NewStatsService(companyRepo, palletRepo)
	}

	t.Run("price distribution", func(t *testing.T) {
		companyRepo, palletRepo, svc := newService(t)
		companyRepo.On("ListByOwner", mock.Anything, ownerID).Return(companies, nil)
		palletRepo.On("Find", mock.Anything, dto.PalletFilter{}, []primitive.ObjectID{companyID}).Return(pallets, nil)

		dist, err := svc.PalletDistribution(context.Background(), ownerID, dto.PalletFilter{}, service.FieldPrice)
		require.NoError(t, err)

		assert.Equal(t, service.FieldPrice, dist.Field)
		assert.Len(t, dist.Labels, 5)
		assert.Equal(t, []int{1, 1, 0, 0, 1}, dist.Counts)
	})

	t.Run("volume distribution", func(t *testing.T) {
		companyRepo, palletRepo, svc := newService(t)
		companyRepo.On("ListByOwner", mock.Anything, ownerID).Return(companies, nil)
		palletRepo.On("Find", mock.Anything, dto.PalletFilter{}, []primitive.ObjectID{companyID}).Return(pallets, nil)

		dist, err := svc.PalletDistribution(context.Background(), ownerID, dto.PalletFilter{}, service.FieldVolume)
		require.NoError(t, err)

		assert.Equal(t, []int{1, 1, 0, 0, 1}, dist.Counts)
	})

	t.Run("empty catalog yields empty arrays", func(t *testing.T) {
		companyRepo, palletRepo, svc := newService(t)
		companyRepo.On("ListByOwner", mock.Anything, ownerID).Return(companies, nil)
		palletRepo.On("Find", mock.Anything, dto.PalletFilter{}, []primitive.ObjectID{companyID}).Return([]model.Pallet{}, nil)

		dist, err := svc.PalletDistribution(context.Background(), ownerID, dto.PalletFilter{}, service.FieldPrice)
		require.NoError(t, err)

		assert.Empty(t, dist.Labels)
		assert.Empty(t, dist.Counts)
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		_, _, svc := newService(t)

		_, err := svc.PalletDistribution(context.Background(), ownerID, dto.PalletFilter{}, "weight")

		var valErr *dto.ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, "field", valErr.Field)
	})
}

func TestStatsService_CompanySummaries(t *testing.T) {
	ownerID := primitive.NewObjectID()
	fullID := primitive.NewObjectID()
	emptyID := primitive.NewObjectID()
	companies := []model.Company{
		{ID: fullID, OwnerID: ownerID, Name: "Ahşap Palet A.Ş."},
		{ID: emptyID, OwnerID: ownerID, Name: "Karadeniz Palet Ltd."},
	}
	pallets := []model.Pallet{
		{CompanyID: fullID, Price: 100, Volumes: model.Volumes{Total: 30}},
		{CompanyID: fullID, Price: 300, Volumes: model.Volumes{Total: 50}},
	}

	companyRepo := new(mocks.MockCompanyRepository)
	palletRepo := new(mocks.MockPalletRepository)
	companyRepo.On("ListByOwner", mock.Anything, ownerID).Return(companies, nil)
	palletRepo.On("Find", mock.Anything, dto.PalletFilter{}, []primitive.ObjectID{fullID, emptyID}).Return(pallets, nil)

	svc := service.NewStatsService(companyRepo, palletRepo)
	summaries, err := svc.CompanySummaries(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, model.CompanySummary{
		CompanyID:   fullID,
		CompanyName: "Ahşap Palet A.Ş.",
		PalletCount: 2,
		AvgPrice:    200,
		AvgVolume:   40,
		MinPrice:    100,
		MaxPrice:    300,
	}, summaries[0])

	// Zero stats, not null and not an error.
	assert.Equal(t, model.CompanySummary{
		CompanyID:   emptyID,
		CompanyName: "Karadeniz Palet Ltd.",
	}, summaries[1])
}
