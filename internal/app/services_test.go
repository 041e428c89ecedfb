//go:build !integration

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palletdesk/pallet-service/internal/mocks"
)

func TestInitializeServices(t *testing.T) {
	tests := []struct {
		name         string
		dbComponents *DatabaseComponents
		validate     func(*testing.T, *ServiceComponents)
	}{
		{
			name: "creates services from database components",
			dbComponents: &DatabaseComponents{
				CompanyRepo: new(mocks.MockCompanyRepository),
				PalletRepo:  new(mocks.MockPalletRepository),
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				require.NotNil(t, components)
				assert.NotNil(t, components.CatalogService)
				assert.NotNil(t, components.StatsService)
				assert.NotNil(t, components.ExportService)
			},
		},
		{
			name:         "returns nil without database components",
			dbComponents: nil,
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.Nil(t, components)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components := InitializeServices(tt.dbComponents)
			if tt.validate != nil {
				tt.validate(t, components)
			}
		})
	}
}
