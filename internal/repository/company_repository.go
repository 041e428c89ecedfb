// Package repository provides company data access layer.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/palletdesk/pallet-service/internal/domain/model"
)

// CompanyRepository implements CompanyRepositoryInterface using MongoDB.
type CompanyRepository struct {
	collection *mongo.Collection
}

// NewCompanyRepository creates a new company repository.
func NewCompanyRepository(db *mongo.Database) *CompanyRepository {
	return &CompanyRepository{
		collection: db.Collection("companies"),
	}
}

// Create inserts a new company.
func (r *CompanyRepository) Create(ctx context.Context, company *model.Company) error {
	company.CreatedAt = time.Now()
	company.UpdatedAt = time.Now()
	if company.ID.IsZero() {
		company.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, company)
	return err
}

// FindByID finds a company by ID, scoped to its owner.
func (r *CompanyRepository) FindByID(ctx context.Context, id, ownerID primitive.ObjectID) (*model.Company, error) {
	var company model.Company
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "owner_id": ownerID}).Decode(&company)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// FindByName finds an owner's company by exact name.
func (r *CompanyRepository) FindByName(ctx context.Context, ownerID primitive.ObjectID, name string) (*model.Company, error) {
	var company model.Company
	err := r.collection.FindOne(ctx, bson.M{"owner_id": ownerID, "name": name}).Decode(&company)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// ListByOwner returns all companies owned by a user, oldest first.
func (r *CompanyRepository) ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]model.Company, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	companies := []model.Company{}
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

// Update replaces mutable company fields. The filter keeps the write scoped
// to the owner recorded on the document.
func (r *CompanyRepository) Update(ctx context.Context, company *model.Company) error {
	company.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{
		"name":          company.Name,
		"contact_email": company.ContactEmail,
		"updated_at":    company.UpdatedAt,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": company.ID, "owner_id": company.OwnerID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a company, scoped to its owner.
func (r *CompanyRepository) Delete(ctx context.Context, id, ownerID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "owner_id": ownerID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
