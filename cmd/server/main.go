package main

import (
	"log"
	"net/http"
	"os"

	_ "zerowastechef/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"zerowastechef/internal/advisor"
	"zerowastechef/internal/auth"
	"zerowastechef/internal/cache"
	"zerowastechef/internal/config"
	"zerowastechef/internal/db"
	"zerowastechef/internal/handler"
	"zerowastechef/internal/model"
	"zerowastechef/internal/repository"
	"zerowastechef/internal/router"
	"zerowastechef/internal/service"
)

// @title ZeroWaste Chef API
// @version 1.0
// @description Household inventory tracker with expiry monitoring and AI recipe suggestions.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.Open(cfg.DBDriver, cfg.SQLitePath, cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.InventoryItem{},
			&model.Account{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Account{},
		&model.InventoryItem{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(gormDB)
	inventoryRepo := repository.NewInventoryRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize advisory client
	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set, recipe suggestions will fail")
	}
	geminiClient := advisor.NewClient(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.AdvisorTimeout)

	// Initialize services
	authService := service.NewAuthService(accountRepo, jwtService, tokenStore)
	inventoryService := service.NewInventoryService(inventoryRepo, service.NewExpiryClassifier(), cacheClient)
	advisorService := service.NewAdvisorService(inventoryRepo, geminiClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	advisorHandler := handler.NewAdvisorHandler(advisorService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		inventoryHandler,
		advisorHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
