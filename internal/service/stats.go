package service

import (
	"context"
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/palletdesk/pallet-service/internal/domain/dto"
	"github.com/palletdesk/pallet-service/internal/domain/model"
	"github.com/palletdesk/pallet-service/internal/repository"
)

// distributionBuckets is the fixed number of equal-width histogram buckets.
const distributionBuckets = 5

// Distribution fields accepted by PalletDistribution.
const (
	FieldPrice  = "price"
	FieldVolume = "volume"
)

// ErrUnknownField is returned for a distribution field other than price or volume.
var ErrUnknownField = &dto.ValidationError{Field: "field", Message: "must be price or volume"}

// StatsService computes dashboard statistics over the caller's catalog.
type StatsService interface {
	// PalletDistribution buckets the owner's pallets (after filtering) over
	// the chosen numeric field.
	PalletDistribution(ctx context.Context, ownerID primitive.ObjectID, filter dto.PalletFilter, field string) (*model.Distribution, error)
	// CompanySummaries returns per-company catalog statistics for every
	// company the user owns.
	CompanySummaries(ctx context.Context, ownerID primitive.ObjectID) ([]model.CompanySummary, error)
}

// StatsServiceImpl implements StatsService.
type StatsServiceImpl struct {
	companyRepo repository.CompanyRepositoryInterface
	palletRepo  repository.PalletRepositoryInterface
}

// NewStatsService creates a new stats service.
func NewStatsService(
	companyRepo repository.CompanyRepositoryInterface,
	palletRepo repository.PalletRepositoryInterface,
) StatsService {
	return &StatsServiceImpl{
		companyRepo: companyRepo,
		palletRepo:  palletRepo,
	}
}

// PalletDistribution computes a 5-bucket histogram over price or total volume.
func (s *StatsServiceImpl) PalletDistribution(ctx context.Context, ownerID primitive.ObjectID, filter dto.PalletFilter, field string) (*model.Distribution, error) {
	if field != FieldPrice && field != FieldVolume {
		return nil, ErrUnknownField
	}

	companies, err := s.companyRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	companyIDs := make([]primitive.ObjectID, len(companies))
	for i, c := range companies {
		companyIDs[i] = c.ID
	}

	pallets, err := s.palletRepo.Find(ctx, filter, companyIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list pallets: %w", err)
	}

	values := make([]float64, len(pallets))
	for i, p := range pallets {
		if field == FieldPrice {
			values[i] = p.Price
		} else {
			values[i] = p.Volumes.Total
		}
	}

	labels, counts := bucketize(values)
	return &model.Distribution{
		Field:  field,
		Labels: labels,
		Counts: counts,
	}, nil
}

// bucketize assigns values to 5 equal-width buckets over [min, max].
// An empty input produces empty slices, not five zero buckets. When all
// values are equal the width falls back to 1, so every value lands in
// bucket 0.
func bucketize(values []float64) ([]string, []int) {
	if len(values) == 0 {
		return []string{}, []int{}
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	width := (hi - lo) / distributionBuckets
	if width == 0 {
		width = 1
	}

	labels := make([]string, distributionBuckets)
	counts := make([]int, distributionBuckets)
	for i := 0; i < distributionBuckets; i++ {
		labels[i] = fmt.Sprintf("%.2f - %.2f", lo+float64(i)*width, lo+float64(i+1)*width)
	}

	for _, v := range values {
		// The clamp keeps the maximum value out of a phantom 6th bucket
		// when floating-point division lands exactly on the upper edge.
		bucket := int(math.Floor((v - lo) / width))
		if bucket > distributionBuckets-1 {
			bucket = distributionBuckets - 1
		}
		counts[bucket]++
	}

	return labels, counts
}

// CompanySummaries computes per-company pallet statistics. Companies without
// pallets report zero for every statistic.
func (s *StatsServiceImpl) CompanySummaries(ctx context.Context, ownerID primitive.ObjectID) ([]model.CompanySummary, error) {
	companies, err := s.companyRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	companyIDs := make([]primitive.ObjectID, len(companies))
	for i, c := range companies {
		companyIDs[i] = c.ID
	}

	pallets, err := s.palletRepo.Find(ctx, dto.PalletFilter{}, companyIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list pallets: %w", err)
	}

	byCompany := make(map[primitive.ObjectID][]model.Pallet, len(companies))
	for _, p := range pallets {
		byCompany[p.CompanyID] = append(byCompany[p.CompanyID], p)
	}

	summaries := make([]model.CompanySummary, len(companies))
	for i, c := range companies {
		summaries[i] = summarize(c, byCompany[c.ID])
	}
	return summaries, nil
}

func summarize(company model.Company, pallets []model.Pallet) model.CompanySummary {
	summary := model.CompanySummary{
		CompanyID:   company.ID,
		CompanyName: company.Name,
		PalletCount: len(pallets),
	}
	if len(pallets) == 0 {
		return summary
	}

	summary.MinPrice = pallets[0].Price
	summary.MaxPrice = pallets[0].Price

	var priceSum, volumeSum float64
	for _, p := range pallets {
		priceSum += p.Price
		volumeSum += p.Volumes.Total
		if p.Price < summary.MinPrice {
			summary.MinPrice = p.Price
		}
		if p.Price > summary.MaxPrice {
			summary.MaxPrice = p.Price
		}
	}

	n := float64(len(pallets))
	summary.AvgPrice = priceSum / n
	summary.AvgVolume = volumeSum / n
	return summary
}
