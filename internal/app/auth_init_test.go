//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/palletdesk/pallet-service/config"
	"github.com/palletdesk/pallet-service/internal/mocks"
)

func TestInitializeAuth(t *testing.T) {
	authConfig := config.AuthConfig{
		Enabled:          true,
		JWTSecretKey:     "test-secret",
		JWTRefreshSecret: "test-refresh-secret",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  7 * 24 * time.Hour,
	}

	t.Run("creates auth service with database components", func(t *testing.T) {
		dbComponents := &DatabaseComponents{
			UserRepo:  new(mocks.MockUserRepository),
			TokenRepo: new(mocks.MockTokenRepository),
		}

		authService := InitializeAuth(dbComponents, authConfig)
		assert.NotNil(t, authService)
	})

	t.Run("returns nil without database components", func(t *testing.T) {
		authService := InitializeAuth(nil, authConfig)
		assert.Nil(t, authService)
	})
}
