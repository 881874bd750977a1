package main

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"zerowastechef/internal/config"
	"zerowastechef/internal/db"
	"zerowastechef/internal/model"
	"zerowastechef/internal/repository"
)

const (
	demoEmail    = "demo@example.com"
	demoPassword = "Demo-pass1"
)

// seedItem is a starter pantry entry; daysToExpiry is relative to today so
// the demo account always shows all three freshness bands.
type seedItem struct {
	name         string
	quantity     float64
	unit         string
	daysToExpiry int
}

var starterPantry = []seedItem{
	{"Milk", 1, "liters", 1},
	{"Eggs", 12, "pieces", 10},
	{"Spinach", 250, "g", -1},
	{"Rice", 2, "kg", 180},
	{"Yogurt", 500, "ml", 3},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.Open(cfg.DBDriver, cfg.SQLitePath, cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Account{}, &model.InventoryItem{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	accountRepo := repository.NewAccountRepository(gormDB)
	inventoryRepo := repository.NewInventoryRepository(gormDB)

	account, err := accountRepo.FindByEmail(ctx, demoEmail)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to look up demo account: %v", err)
	}

	if account != nil {
		log.Printf("Demo account %s already exists, skipping", demoEmail)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	account = &model.Account{Email: demoEmail, PasswordHash: string(hashed)}
	if err := accountRepo.Create(ctx, account); err != nil {
		log.Fatalf("Failed to create demo account: %v", err)
	}
	log.Printf("Created demo account %s (password: %s)", demoEmail, demoPassword)

	today := time.Now()
	for _, entry := range starterPantry {
		item := &model.InventoryItem{
			AccountID:  account.ID,
			Name:       entry.name,
			Quantity:   entry.quantity,
			Unit:       entry.unit,
			ExpiryDate: today.AddDate(0, 0, entry.daysToExpiry),
		}
		if err := inventoryRepo.Create(ctx, item); err != nil {
			log.Fatalf("Failed to seed item %s: %v", entry.name, err)
		}
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Demo account: %s", demoEmail)
	log.Printf("  - Pantry items created: %d", len(starterPantry))
}
