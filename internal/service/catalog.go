package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/palletdesk/pallet-service/internal/domain/dto"
	"github.com/palletdesk/pallet-service/internal/domain/model"
	"github.com/palletdesk/pallet-service/internal/repository"
)

var (
	// ErrNotFound is returned when an entity does not exist or belongs to
	// another user. Ownership is never disclosed; both cases are identical
	// to the caller.
	ErrNotFound = errors.New("not found")
	// ErrCompanyConflict is returned when a company name is already taken
	// by the same owner.
	ErrCompanyConflict = errors.New("company name already in use")
)

// CatalogService provides company and pallet catalog operations.
// Every operation is scoped to the calling user; entities owned by other
// users behave as if they do not exist.
type CatalogService interface {
	CreateCompany(ctx context.Context, ownerID primitive.ObjectID, req dto.CreateCompanyRequest) (*model.Company, error)
	GetCompany(ctx context.Context, ownerID, id primitive.ObjectID) (*model.Company, error)
	ListCompanies(ctx context.Context, ownerID primitive.ObjectID) ([]model.Company, error)
	UpdateCompany(ctx context.Context, ownerID, id primitive.ObjectID, req dto.UpdateCompanyRequest) (*model.Company, error)
	DeleteCompany(ctx context.Context, ownerID, id primitive.ObjectID) error

	CreatePallet(ctx context.Context, ownerID primitive.ObjectID, req dto.CreatePalletRequest) (*model.Pallet, error)
	GetPallet(ctx context.Context, ownerID, id primitive.ObjectID) (*model.Pallet, error)
	ListPallets(ctx context.Context, ownerID primitive.ObjectID, filter dto.PalletFilter) ([]model.Pallet, error)
	UpdatePallet(ctx context.Context, ownerID, id primitive.ObjectID, req dto.UpdatePalletRequest) (*model.Pallet, error)
	DeletePallet(ctx context.Context, ownerID, id primitive.ObjectID) error
}

// CatalogServiceImpl implements CatalogService.
type CatalogServiceImpl struct {
	companyRepo repository.CompanyRepositoryInterface
	palletRepo  repository.PalletRepositoryInterface
	calculator  VolumeCalculator
	tx          repository.TxRunner
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	companyRepo repository.CompanyRepositoryInterface,
	palletRepo repository.PalletRepositoryInterface,
	calculator VolumeCalculator,
	tx repository.TxRunner,
) CatalogService {
	return &CatalogServiceImpl{
		companyRepo: companyRepo,
		palletRepo:  palletRepo,
		calculator:  calculator,
		tx:          tx,
	}
}

// CreateCompany registers a new company under the owner.
func (s *CatalogServiceImpl) CreateCompany(ctx context.Context, ownerID primitive.ObjectID, req dto.CreateCompanyRequest) (*model.Company, error) {
	existing, err := s.companyRepo.FindByName(ctx, ownerID, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check company name: %w", err)
	}
	if existing != nil {
		return nil, ErrCompanyConflict
	}

	company := &model.Company{
		OwnerID:      ownerID,
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
	}
	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return company, nil
}

// GetCompany returns a company owned by the user.
func (s *CatalogServiceImpl) GetCompany(ctx context.Context, ownerID, id primitive.ObjectID) (*model.Company, error) {
	company, err := s.companyRepo.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find company: %w", err)
	}
	if company == nil {
		return nil, ErrNotFound
	}
	return company, nil
}

// ListCompanies returns all companies owned by the user.
func (s *CatalogServiceImpl) ListCompanies(ctx context.Context, ownerID primitive.ObjectID) ([]model.Company, error) {
	return s.companyRepo.ListByOwner(ctx, ownerID)
}

// UpdateCompany applies the non-nil fields of the request to a company.
func (s *CatalogServiceImpl) UpdateCompany(ctx context.Context, ownerID, id primitive.ObjectID, req dto.UpdateCompanyRequest) (*model.Company, error) {
	company, err := s.companyRepo.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find company: %w", err)
	}
	if company == nil {
		return nil, ErrNotFound
	}

	if req.Name != nil && *req.Name != company.Name {
		existing, err := s.companyRepo.FindByName(ctx, ownerID, *req.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check company name: %w", err)
		}
		if existing != nil {
			return nil, ErrCompanyConflict
		}
		company.Name = *req.Name
	}
	if req.ContactEmail != nil {
		company.ContactEmail = *req.ContactEmail
	}

	if err := s.companyRepo.Update(ctx, company); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return company, nil
}

// DeleteCompany removes a company together with all its pallets.
// The cascade runs in a transaction so no orphan pallet can survive.
func (s *CatalogServiceImpl) DeleteCompany(ctx context.Context, ownerID, id primitive.ObjectID) error {
	company, err := s.companyRepo.FindByID(ctx, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to find company: %w", err)
	}
	if company == nil {
		return ErrNotFound
	}

	return s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.palletRepo.DeleteByCompany(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete company pallets: %w", err)
		}
		if err := s.companyRepo.Delete(txCtx, id, ownerID); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to delete company: %w", err)
		}
		return nil
	})
}

// CreatePallet registers a pallet under one of the owner's companies.
// Volumes are derived before the write; a pallet row never exists without
// its computed metrics.
func (s *CatalogServiceImpl) CreatePallet(ctx context.Context, ownerID primitive.ObjectID, req dto.CreatePalletRequest) (*model.Pallet, error) {
	companyID, err := primitive.ObjectIDFromHex(req.CompanyID)
	if err != nil {
		return nil, &dto.ValidationError{Field: "company_id", Message: "must be a valid id"}
	}

	company, err := s.companyRepo.FindByID(ctx, companyID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find company: %w", err)
	}
	if company == nil {
		return nil, ErrNotFound
	}

	dims := req.Dimensions.ToModel()
	volumes, err := s.calculator.ComputeVolumes(dims)
	if err != nil {
		return nil, err
	}

	pallet := &model.Pallet{
		CompanyID:  companyID,
		Name:       req.Name,
		Price:      *req.Price,
		Dimensions: dims,
		Volumes:    volumes,
	}
	if err := s.palletRepo.Create(ctx, pallet); err != nil {
		return nil, fmt.Errorf("failed to create pallet: %w", err)
	}
	return pallet, nil
}

// GetPallet returns a pallet belonging to one of the owner's companies.
func (s *CatalogServiceImpl) GetPallet(ctx context.Context, ownerID, id primitive.ObjectID) (*model.Pallet, error) {
	companyIDs, err := s.ownedCompanyIDs(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	pallet, err := s.palletRepo.FindByID(ctx, id, companyIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to find pallet: %w", err)
	}
	if pallet == nil {
		return nil, ErrNotFound
	}
	return pallet, nil
}

// ListPallets returns the owner's pallets matching the filter.
func (s *CatalogServiceImpl) ListPallets(ctx context.Context, ownerID primitive.ObjectID, filter dto.PalletFilter) ([]model.Pallet, error) {
	companyIDs, err := s.ownedCompanyIDs(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.palletRepo.Find(ctx, filter, companyIDs)
}

// UpdatePallet applies the non-nil fields of the request to a pallet.
// A dimensions change recomputes the derived volumes in the same write.
// The read-modify-write runs in a transaction so concurrent updates cannot
// persist dimensions paired with stale volumes.
func (s *CatalogServiceImpl) UpdatePallet(ctx context.Context, ownerID, id primitive.ObjectID, req dto.UpdatePalletRequest) (*model.Pallet, error) {
	companyIDs, err := s.ownedCompanyIDs(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	var pallet *model.Pallet
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		pallet, err = s.palletRepo.FindByID(txCtx, id, companyIDs)
		if err != nil {
			return fmt.Errorf("failed to find pallet: %w", err)
		}
		if pallet == nil {
			return ErrNotFound
		}

		if req.Name != nil {
			pallet.Name = *req.Name
		}
		if req.Price != nil {
			pallet.Price = *req.Price
		}
		if req.CompanyID != nil {
			companyID, err := primitive.ObjectIDFromHex(*req.CompanyID)
			if err != nil {
				return &dto.ValidationError{Field: "company_id", Message: "must be a valid id"}
			}
			company, err := s.companyRepo.FindByID(txCtx, companyID, ownerID)
			if err != nil {
				return fmt.Errorf("failed to find company: %w", err)
			}
			if company == nil {
				return ErrNotFound
			}
			pallet.CompanyID = companyID
		}
		if req.Dimensions != nil {
			dims := req.Dimensions.ToModel()
			volumes, err := s.calculator.ComputeVolumes(dims)
			if err != nil {
				return err
			}
			pallet.Dimensions = dims
			pallet.Volumes = volumes
		}

		if err := s.palletRepo.Update(txCtx, pallet); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to update pallet: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pallet, nil
}

// DeletePallet removes a pallet belonging to one of the owner's companies.
func (s *CatalogServiceImpl) DeletePallet(ctx context.Context, ownerID, id primitive.ObjectID) error {
	companyIDs, err := s.ownedCompanyIDs(ctx, ownerID)
	if err != nil {
		return err
	}

	if err := s.palletRepo.Delete(ctx, id, companyIDs); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete pallet: %w", err)
	}
	return nil
}

// ownedCompanyIDs resolves the set of company IDs the user owns. All pallet
// queries are bounded by this set.
func (s *CatalogServiceImpl) ownedCompanyIDs(ctx context.Context, ownerID primitive.ObjectID) ([]primitive.ObjectID, error) {
	companies, err := s.companyRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	ids := make([]primitive.ObjectID, len(companies))
	for i, c := range companies {
		ids[i] = c.ID
	}
	return ids, nil
}
