// Package repository provides pallet data access layer.
package repository

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/palletdesk/pallet-service/internal/domain/dto"
	"github.com/palletdesk/pallet-service/internal/domain/model"
)

// PalletRepository implements PalletRepositoryInterface using MongoDB.
type PalletRepository struct {
	collection *mongo.Collection
}

// NewPalletRepository creates a new pallet repository.
func NewPalletRepository(db *mongo.Database) *PalletRepository {
	return &PalletRepository{
		collection: db.Collection("pallets"),
	}
}

// Create inserts a new pallet.
func (r *PalletRepository) Create(ctx context.Context, pallet *model.Pallet) error {
	pallet.CreatedAt = time.Now()
	pallet.UpdatedAt = time.Now()
	if pallet.ID.IsZero() {
		pallet.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, pallet)
	return err
}

// FindByID finds a pallet by ID within the given company set.
func (r *PalletRepository) FindByID(ctx context.Context, id primitive.ObjectID, companyIDs []primitive.ObjectID) (*model.Pallet, error) {
	query := bson.M{"_id": id, "company_id": bson.M{"$in": companyIDs}}

	var pallet model.Pallet
	err := r.collection.FindOne(ctx, query).Decode(&pallet)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pallet, nil
}

// Find returns pallets within the given company set matching the filter,
// in insertion order.
func (r *PalletRepository) Find(ctx context.Context, filter dto.PalletFilter, companyIDs []primitive.ObjectID) ([]model.Pallet, error) {
	query := buildPalletQuery(filter, companyIDs)
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	pallets := []model.Pallet{}
	if err := cursor.All(ctx, &pallets); err != nil {
		return nil, err
	}
	return pallets, nil
}

// Update replaces mutable pallet fields, including the recomputed volumes.
func (r *PalletRepository) Update(ctx context.Context, pallet *model.Pallet) error {
	pallet.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{
		"name":       pallet.Name,
		"company_id": pallet.CompanyID,
		"price":      pallet.Price,
		"dimensions": pallet.Dimensions,
		"volumes":    pallet.Volumes,
		"updated_at": pallet.UpdatedAt,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": pallet.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a pallet within the given company set.
func (r *PalletRepository) Delete(ctx context.Context, id primitive.ObjectID, companyIDs []primitive.ObjectID) error {
	query := bson.M{"_id": id, "company_id": bson.M{"$in": companyIDs}}

	result, err := r.collection.DeleteOne(ctx, query)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteByCompany removes every pallet of a company. Used by the cascade on
// company deletion, inside the surrounding transaction.
func (r *PalletRepository) DeleteByCompany(ctx context.Context, companyID primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"company_id": companyID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// CountByCompany counts the pallets of a company.
func (r *PalletRepository) CountByCompany(ctx context.Context, companyID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"company_id": companyID})
}

// buildPalletQuery translates a filter into a MongoDB query document.
// Criteria combine with AND; the company set bound is always present.
func buildPalletQuery(filter dto.PalletFilter, companyIDs []primitive.ObjectID) bson.M {
	query := bson.M{}

	if filter.CompanyID != nil {
		// A company outside the caller's set must match nothing, never leak.
		scoped := []primitive.ObjectID{}
		for _, id := range companyIDs {
			if id == *filter.CompanyID {
				scoped = append(scoped, id)
				break
			}
		}
		query["company_id"] = bson.M{"$in": scoped}
	} else {
		query["company_id"] = bson.M{"$in": companyIDs}
	}

	if filter.Search != "" {
		query["name"] = bson.M{"$regex": primitive.Regex{
			Pattern: regexp.QuoteMeta(filter.Search),
			Options: "i",
		}}
	}

	price := bson.M{}
	if filter.MinPrice != nil {
		price["$gte"] = *filter.MinPrice
	}
	if filter.MaxPrice != nil {
		price["$lte"] = *filter.MaxPrice
	}
	if len(price) > 0 {
		query["price"] = price
	}

	return query
}
