// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/palletdesk/pallet-service/internal/domain/dto"
	"github.com/palletdesk/pallet-service/internal/domain/model"
)

// UserRepositoryInterface defines the interface for user repository operations.
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByEmailForAuth(ctx context.Context, email string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
}

// TokenRepositoryInterface defines the interface for token repository operations.
type TokenRepositoryInterface interface {
	Create(ctx context.Context, token *model.Token) error
	FindByToken(ctx context.Context, tokenString string) (*model.Token, error)
	DeleteByToken(ctx context.Context, tokenString string) error
	DeleteByUserID(ctx context.Context, userID primitive.ObjectID, tokenType string) error
	IsBlacklisted(ctx context.Context, tokenString string) (bool, error)
	DeleteExpired(ctx context.Context) (int64, error)
}

// CompanyRepositoryInterface defines the interface for company repository operations.
// Every read and write is scoped to the owning user; a company belonging to a
// different owner behaves as if it does not exist.
type CompanyRepositoryInterface interface {
	Create(ctx context.Context, company *model.Company) error
	FindByID(ctx context.Context, id, ownerID primitive.ObjectID) (*model.Company, error)
	FindByName(ctx context.Context, ownerID primitive.ObjectID, name string) (*model.Company, error)
	ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]model.Company, error)
	Update(ctx context.Context, company *model.Company) error
	Delete(ctx context.Context, id, ownerID primitive.ObjectID) error
}

// PalletRepositoryInterface defines the interface for pallet repository operations.
// Callers pass the set of company IDs the current user owns; queries never
// reach outside that set.
type PalletRepositoryInterface interface {
	Create(ctx context.Context, pallet *model.Pallet) error
	FindByID(ctx context.Context, id primitive.ObjectID, companyIDs []primitive.ObjectID) (*model.Pallet, error)
	Find(ctx context.Context, filter dto.PalletFilter, companyIDs []primitive.ObjectID) ([]model.Pallet, error)
	Update(ctx context.Context, pallet *model.Pallet) error
	Delete(ctx context.Context, id primitive.ObjectID, companyIDs []primitive.ObjectID) error
	DeleteByCompany(ctx context.Context, companyID primitive.ObjectID) (int64, error)
	CountByCompany(ctx context.Context, companyID primitive.ObjectID) (int64, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}

// TxRunner runs a function inside a storage transaction.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
