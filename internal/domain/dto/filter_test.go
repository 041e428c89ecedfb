package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/palletdesk/pallet-service/internal/domain/model"
)

func floatPtr(v float64) *float64 { return &v }

func TestPalletFilter_Matches(t *testing.T) {
	companyA := primitive.NewObjectID()
	companyB := primitive.NewObjectID()

	pallet := model.Pallet{
		Name:      "Standart Euro Palet",
		CompanyID: companyA,
		Price:     250,
	}

	tests := []struct {
		name     string
		filter   PalletFilter
		expected bool
	}{
		{
			name:     "empty filter matches everything",
			filter:   PalletFilter{},
			expected: true,
		},
		{
			name:     "search is case-insensitive substring",
			filter:   PalletFilter{Search: "euro"},
			expected: true,
		},
		{
			name:     "search with no match",
			filter:   PalletFilter{Search: "endüstriyel"},
			expected: false,
		},
		{
			name:     "company match",
			filter:   PalletFilter{CompanyID: &companyA},
			expected: true,
		},
		{
			name:     "other company excluded",
			filter:   PalletFilter{CompanyID: &companyB},
			expected: false,
		},
		{
			name:     "price bounds are inclusive",
			filter:   PalletFilter{MinPrice: floatPtr(250), MaxPrice: floatPtr(250)},
			expected: true,
		},
		{
			name:     "below min price excluded",
			filter:   PalletFilter{MinPrice: floatPtr(300)},
			expected: false,
		},
		{
			name:     "above max price excluded",
			filter:   PalletFilter{MaxPrice: floatPtr(200)},
			expected: false,
		},
		{
			name:     "all criteria combine with AND",
			filter:   PalletFilter{Search: "palet", CompanyID: &companyA, MinPrice: floatPtr(100), MaxPrice: floatPtr(400)},
			expected: true,
		},
		{
			name:     "one failing criterion fails the whole filter",
			filter:   PalletFilter{Search: "palet", CompanyID: &companyA, MinPrice: floatPtr(300)},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.filter.Matches(pallet))
		})
	}
}

func TestPalletFilter_IsZero(t *testing.T) {
	assert.True(t, PalletFilter{}.IsZero())
	assert.False(t, PalletFilter{Search: "x"}.IsZero())
	assert.False(t, PalletFilter{MinPrice: floatPtr(0)}.IsZero())
}
