//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/palletdesk/pallet-service/internal/domain/dto"
	"github.com/palletdesk/pallet-service/internal/domain/model"
)

func seedPallet(t *testing.T, repo *PalletRepository, companyID primitive.ObjectID, name string, price float64) *model.Pallet {
	t.Helper()
	pallet := &model.Pallet{
		CompanyID: companyID,
		Name:      name,
		Price:     price,
		Dimensions: model.Dimensions{
			BoardThickness:     2.2,
			UpperBoardLength:   120,
			UpperBoardWidth:    10,
			UpperBoardQuantity: 5,
			LowerBoardLength:   120,
			LowerBoardWidth:    10,
			LowerBoardQuantity: 3,
			ClosureLength:      80,
			ClosureWidth:       10,
			ClosureQuantity:    3,
			BlockLength:        10,
			BlockWidth:         10,
			BlockHeight:        10,
		},
		Volumes: model.Volumes{
			UpperBoards: 13.2,
			LowerBoards: 7.92,
			Closures:    5.28,
			Blocks:      9,
			Total:       35.4,
		},
	}
	require.NoError(t, repo.Create(context.Background(), pallet))
	return pallet
}

func TestPalletRepository_Create(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer cleanupTestDB(t, db)

	repo := NewPalletRepository(db.Database)
	pallet := seedPallet(t, repo, primitive.NewObjectID(), "Standart Euro Palet", 250)

	assert.False(t, pallet.ID.IsZero())
	assert.NotZero(t, pallet.CreatedAt)
	assert.NotZero(t, pallet.UpdatedAt)
}

func TestPalletRepository_FindByID_CompanyScoping(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer cleanupTestDB(t, db)

	repo := NewPalletRepository(db.Database)
	ctx := context.Background()

	companyID := primitive.NewObjectID()
	pallet := seedPallet(t, repo, companyID, "Endüstriyel Palet", 320)

	t.Run("found within company set", func(t *testing.T) {
		found, err := repo.FindByID(ctx, pallet.ID, []primitive.ObjectID{companyID})
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Endüstriyel Palet", found.Name)
		assert.Equal(t, 35.4, found.Volumes.Total)
	})

	t.Run("invisible outside company set", func(t *testing.T) {
		found, err := repo.FindByID(ctx, pallet.ID, []primitive.ObjectID{primitive.NewObjectID()})
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("empty company set matches nothing", func(t *testing.T) {
		found, err := repo.FindByID(ctx, pallet.ID, []primitive.ObjectID{})
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestPalletRepository_Find_Filters(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer cleanupTestDB(t, db)

	repo := NewPalletRepository(db.Database)
	ctx := context.Background()

	companyA := primitive.NewObjectID()
	companyB := primitive.NewObjectID()
	companyIDs := []primitive.ObjectID{companyA, companyB}

	seedPallet(t, repo, companyA, "Standart Euro Palet", 250)
	seedPallet(t, repo, companyA, "Hafif Palet", 180)
	seedPallet(t, repo, companyB, "Ağır Yük Paleti", 450)

	tests := []struct {
		name      string
		filter    dto.PalletFilter
		wantNames []string
	}{
		{
			name:      "no filter returns all in insertion order",
			filter:    dto.PalletFilter{},
			wantNames: []string{"Standart Euro Palet", "Hafif Palet", "Ağır Yük Paleti"},
		},
		{
			name:      "search is case-insensitive substring",
			filter:    dto.PalletFilter{Search: "euro"},
			wantNames: []string{"Standart Euro Palet"},
		},
		{
			name:      "company filter",
			filter:    dto.PalletFilter{CompanyID: &companyB},
			wantNames: []string{"Ağır Yük Paleti"},
		},
		{
			name:      "min price is inclusive",
			filter:    dto.PalletFilter{MinPrice: floatPtr(250)},
			wantNames: []string{"Standart Euro Palet", "Ağır Yük Paleti"},
		},
		{
			name:      "max price is inclusive",
			filter:    dto.PalletFilter{MaxPrice: floatPtr(250)},
			wantNames: []string{"Standart Euro Palet", "Hafif Palet"},
		},
		{
			name:      "combined criteria",
			filter:    dto.PalletFilter{Search: "palet", MinPrice: floatPtr(200), MaxPrice: floatPtr(300)},
			wantNames: []string{"Standart Euro Palet"},
		},
		{
			name:      "no match returns empty slice",
			filter:    dto.PalletFilter{Search: "konteyner"},
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pallets, err := repo.Find(ctx, tt.filter, companyIDs)
			require.NoError(t, err)
			names := make([]string, len(pallets))
			for i, p := range pallets {
				names[i] = p.Name
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}

	t.Run("foreign company in filter leaks nothing", func(t *testing.T) {
		foreign := primitive.NewObjectID()
		seedPallet(t, repo, foreign, "Foreign Palet", 100)

		pallets, err := repo.Find(ctx, dto.PalletFilter{CompanyID: &foreign}, companyIDs)
		require.NoError(t, err)
		assert.Empty(t, pallets)
	})
}

func TestPalletRepository_Update(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer cleanupTestDB(t, db)

	repo := NewPalletRepository(db.Database)
	ctx := context.Background()

	companyID := primitive.NewObjectID()
	pallet := seedPallet(t, repo, companyID, "Old Palet", 200)

	pallet.Name = "Renamed Palet"
	pallet.Price = 275
	pallet.Volumes.Total = 42
	require.NoError(t, repo.Update(ctx, pallet))

	found, err := repo.FindByID(ctx, pallet.ID, []primitive.ObjectID{companyID})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Renamed Palet", found.Name)
	assert.Equal(t, 275.0, found.Price)
	assert.Equal(t, 42.0, found.Volumes.Total)

	t.Run("update missing pallet", func(t *testing.T) {
		missing := &model.Pallet{ID: primitive.NewObjectID(), CompanyID: companyID}
		err := repo.Update(ctx, missing)
		assert.Error(t, err)
	})
}

func TestPalletRepository_Delete(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer cleanupTestDB(t, db)

	repo := NewPalletRepository(db.Database)
	ctx := context.Background()

	companyID := primitive.NewObjectID()
	pallet := seedPallet(t, repo, companyID, "To Delete", 150)

	t.Run("delete scoped to company set", func(t *testing.T) {
		err := repo.Delete(ctx, pallet.ID, []primitive.ObjectID{primitive.NewObjectID()})
		assert.Error(t, err)
	})

	require.NoError(t, repo.Delete(ctx, pallet.ID, []primitive.ObjectID{companyID}))

	found, err := repo.FindByID(ctx, pallet.ID, []primitive.ObjectID{companyID})
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestPalletRepository_DeleteByCompany(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer cleanupTestDB(t, db)

	repo := NewPalletRepository(db.Database)
	ctx := context.Background()

	companyID := primitive.NewObjectID()
	otherCompanyID := primitive.NewObjectID()

	seedPallet(t, repo, companyID, "Palet 1", 100)
	seedPallet(t, repo, companyID, "Palet 2", 200)
	seedPallet(t, repo, otherCompanyID, "Kept Palet", 300)

	count, err := repo.CountByCompany(ctx, companyID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	deleted, err := repo.DeleteByCompany(ctx, companyID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	count, err = repo.CountByCompany(ctx, companyID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	kept, err := repo.CountByCompany(ctx, otherCompanyID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), kept)
}

func floatPtr(v float64) *float64 {
	return &v
}
