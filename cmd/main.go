// Package main is the entry point for the pallet-service application.
//
// @title           Pallet Service API
// @version         1.0.0
// @description     API for managing wooden pallet catalogs across companies.
//
//	Users register companies and maintain pallet listings with dimensions,
//	pricing, computed desi volumes, statistics and document exports.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/palletdesk/pallet-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT access token. Format: "Bearer {token}"
//
// @tag.name        Companies
// @tag.description Company management operations
//
// @tag.name        Pallets
// @tag.description Pallet catalog operations
//
// @tag.name        Stats
// @tag.description Catalog statistics and distributions
//
// @tag.name        Export
// @tag.description Pallet catalog exports (CSV, PDF, XLSX)
//
// @tag.name        Auth
// @tag.description Authentication endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/palletdesk/pallet-service/config"
	"github.com/palletdesk/pallet-service/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
