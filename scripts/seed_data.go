//go:build ignore

// This script seeds a demo user with sample companies and pallets.
// Run with: go run scripts/seed_data.go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/palletdesk/pallet-service/config"
	"github.com/palletdesk/pallet-service/internal/domain/dto"
	"github.com/palletdesk/pallet-service/internal/domain/model"
	"github.com/palletdesk/pallet-service/internal/repository"
	"github.com/palletdesk/pallet-service/internal/service"
)

const (
	demoEmail    = "demo@palletdesk.com"
	demoPassword = "demo1234"
)

type seedPallet struct {
	company string
	name    string
	price   float64
	dims    dto.DimensionsPayload
}

func main() {
	cfg := config.Load()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := repository.NewMongoDB(cfg.Database.URI, cfg.Database.DatabaseName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to MongoDB: %v\n", err)
		os.Exit(1)
	}
	defer db.Close(ctx)

	userRepo := repository.NewUserRepository(db.Database)
	companyRepo := repository.NewCompanyRepository(db.Database)
	palletRepo := repository.NewPalletRepository(db.Database)
	catalog := service.NewCatalogService(companyRepo, palletRepo, service.NewDesiCalculator(), db)

	user, err := userRepo.FindByEmail(ctx, demoEmail)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error looking up demo user: %v\n", err)
		os.Exit(1)
	}
	if user == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error hashing password: %v\n", err)
			os.Exit(1)
		}
		user = &model.User{
			Email:    demoEmail,
			Username: "demo",
			Password: string(hash),
			Name:     "Demo User",
			Active:   true,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating demo user: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Created demo user %s (password: %s)\n", demoEmail, demoPassword)
	}

	companies := []dto.CreateCompanyRequest{
		{Name: "Ahşap Palet A.Ş.", ContactEmail: "info@ahsappalet.com"},
		{Name: "Eco Palet Ltd.", ContactEmail: "info@ecopalet.com"},
		{Name: "Mega Palet ve Ambalaj", ContactEmail: "info@megapalet.com"},
		{Name: "Star Palet Sistemleri", ContactEmail: "info@starpalet.com"},
	}

	companyIDs := make(map[string]string, len(companies))
	for _, req := range companies {
		company, err := catalog.CreateCompany(ctx, user.ID, req)
		if err == service.ErrCompanyConflict {
			existing, findErr := companyRepo.FindByName(ctx, user.ID, req.Name)
			if findErr != nil || existing == nil {
				fmt.Fprintf(os.Stderr, "Error resolving existing company %q: %v\n", req.Name, findErr)
				os.Exit(1)
			}
			companyIDs[req.Name] = existing.ID.Hex()
			continue
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating company %q: %v\n", req.Name, err)
			os.Exit(1)
		}
		companyIDs[req.Name] = company.ID.Hex()
		fmt.Printf("Created company %s\n", req.Name)
	}

	pallets := []seedPallet{
		{
			company: "Ahşap Palet A.Ş.", name: "Standart Euro Palet", price: 250,
			dims: dto.DimensionsPayload{
				BoardThickness: 2.2,
				UpperBoardLength: 120, UpperBoardWidth: 10, UpperBoardQuantity: 5,
				LowerBoardLength: 120, LowerBoardWidth: 10, LowerBoardQuantity: 3,
				ClosureLength: 80, ClosureWidth: 10, ClosureQuantity: 3,
				BlockLength: 10, BlockWidth: 10, BlockHeight: 10,
			},
		},
		{
			company: "Ahşap Palet A.Ş.", name: "Endüstriyel Palet", price: 320,
			dims: dto.DimensionsPayload{
				BoardThickness: 2.5,
				UpperBoardLength: 100, UpperBoardWidth: 12, UpperBoardQuantity: 6,
				LowerBoardLength: 100, LowerBoardWidth: 12, LowerBoardQuantity: 4,
				ClosureLength: 85, ClosureWidth: 12, ClosureQuantity: 4,
				BlockLength: 12, BlockWidth: 12, BlockHeight: 12,
			},
		},
		{
			company: "Eco Palet Ltd.", name: "Hafif Palet", price: 180,
			dims: dto.DimensionsPayload{
				BoardThickness: 1.8,
				UpperBoardLength: 90, UpperBoardWidth: 8, UpperBoardQuantity: 4,
				LowerBoardLength: 90, LowerBoardWidth: 8, LowerBoardQuantity: 3,
				ClosureLength: 70, ClosureWidth: 8, ClosureQuantity: 3,
				BlockLength: 8, BlockWidth: 8, BlockHeight: 8,
			},
		},
		{
			company: "Eco Palet Ltd.", name: "Geri Dönüşüm Palet", price: 150,
			dims: dto.DimensionsPayload{
				BoardThickness: 2.0,
				UpperBoardLength: 110, UpperBoardWidth: 9, UpperBoardQuantity: 5,
				LowerBoardLength: 110, LowerBoardWidth: 9, LowerBoardQuantity: 3,
				ClosureLength: 75, ClosureWidth: 9, ClosureQuantity: 3,
				BlockLength: 9, BlockWidth: 9, BlockHeight: 9,
			},
		},
		{
			company: "Mega Palet ve Ambalaj", name: "Ağır Yük Paleti", price: 450,
			dims: dto.DimensionsPayload{
				BoardThickness: 3.0,
				UpperBoardLength: 130, UpperBoardWidth: 15, UpperBoardQuantity: 7,
				LowerBoardLength: 130, LowerBoardWidth: 15, LowerBoardQuantity: 5,
				ClosureLength: 95, ClosureWidth: 15, ClosureQuantity: 4,
				BlockLength: 15, BlockWidth: 15, BlockHeight: 15,
			},
		},
		{
			company: "Mega Palet ve Ambalaj", name: "Konteyner Paleti", price: 380,
			dims: dto.DimensionsPayload{
				BoardThickness: 2.8,
				UpperBoardLength: 115, UpperBoardWidth: 14, UpperBoardQuantity: 6,
				LowerBoardLength: 115, LowerBoardWidth: 14, LowerBoardQuantity: 4,
				ClosureLength: 90, ClosureWidth: 14, ClosureQuantity: 4,
				BlockLength: 14, BlockWidth: 14, BlockHeight: 14,
			},
		},
		{
			company: "Star Palet Sistemleri", name: "İhracat Paleti", price: 280,
			dims: dto.DimensionsPayload{
				BoardThickness: 2.4,
				UpperBoardLength: 105, UpperBoardWidth: 11, UpperBoardQuantity: 5,
				LowerBoardLength: 105, LowerBoardWidth: 11, LowerBoardQuantity: 4,
				ClosureLength: 80, ClosureWidth: 11, ClosureQuantity: 3,
				BlockLength: 11, BlockWidth: 11, BlockHeight: 11,
			},
		},
		{
			company: "Star Palet Sistemleri", name: "Tek Yönlü Palet", price: 200,
			dims: dto.DimensionsPayload{
				BoardThickness: 2.0,
				UpperBoardLength: 95, UpperBoardWidth: 10, UpperBoardQuantity: 4,
				LowerBoardLength: 95, LowerBoardWidth: 10, LowerBoardQuantity: 3,
				ClosureLength: 75, ClosureWidth: 10, ClosureQuantity: 3,
				BlockLength: 10, BlockWidth: 10, BlockHeight: 10,
			},
		},
	}

	for _, p := range pallets {
		price := p.price
		pallet, err := catalog.CreatePallet(ctx, user.ID, dto.CreatePalletRequest{
			Name:       p.name,
			CompanyID:  companyIDs[p.company],
			Price:      &price,
			Dimensions: p.dims,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating pallet %q: %v\n", p.name, err)
			os.Exit(1)
		}
		fmt.Printf("Created pallet %s (%.2f desi)\n", p.name, pallet.Volumes.Total)
	}

	fmt.Println("Seed complete.")
}
