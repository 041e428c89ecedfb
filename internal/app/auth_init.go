// Package app provides authentication initialization.
package app

import (
	"github.com/palletdesk/pallet-service/config"
	"github.com/palletdesk/pallet-service/internal/service"
)

// InitializeAuth creates the JWT authentication service. Returns nil when no
// database is available; the router then falls back to API key auth if keys
// are configured.
func InitializeAuth(dbComponents *DatabaseComponents, authConfig config.AuthConfig) service.AuthService {
	if dbComponents == nil {
		return nil
	}
	return service.NewAuthService(dbComponents.UserRepo, dbComponents.TokenRepo, authConfig)
}
