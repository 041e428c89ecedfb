package dto

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/palletdesk/pallet-service/internal/domain/model"
)

// PalletFilter carries the optional criteria for narrowing a pallet listing
// or export. Absent criteria impose no constraint; present criteria combine
// with logical AND. The filter never performs authorization: the repository
// scopes every query to the acting owner's companies before the filter is
// applied.
//
// @Description Optional pallet filter criteria
type PalletFilter struct {
	// Search matches case-insensitively against a substring of the pallet name.
	Search string `form:"search" json:"search,omitempty" example:"euro"`
	// CompanyID restricts results to a single company.
	CompanyID *primitive.ObjectID `form:"-" json:"company_id,omitempty"`
	// MinPrice is the inclusive lower price bound.
	MinPrice *float64 `form:"min_price" json:"min_price,omitempty" example:"100"`
	// MaxPrice is the inclusive upper price bound.
	MaxPrice *float64 `form:"max_price" json:"max_price,omitempty" example:"400"`
} // @name PalletFilter

// IsZero reports whether no criteria are set.
func (f PalletFilter) IsZero() bool {
	return f.Search == "" && f.CompanyID == nil && f.MinPrice == nil && f.MaxPrice == nil
}

// Matches reports whether the pallet satisfies every present criterion.
// This is the in-memory counterpart of the repository's query translation;
// the two must agree on semantics.
func (f PalletFilter) Matches(p model.Pallet) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
		return false
	}
	if f.CompanyID != nil && p.CompanyID != *f.CompanyID {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	return true
}
