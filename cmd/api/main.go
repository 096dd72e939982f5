package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"go-garment-supply/internal/config"
	"go-garment-supply/internal/handler"
	"go-garment-supply/internal/model"
	"go-garment-supply/internal/repository"
	"go-garment-supply/internal/service"
	"go-garment-supply/internal/ws"
	"go-garment-supply/pkg/database"
	"go-garment-supply/pkg/jwt"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// 2. Setup Database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database. \n", err)
	}
	if err := migrate(db); err != nil {
		log.Fatal("Failed to migrate database. \n", err)
	}

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	tokens := jwt.NewManager(cfg.JWTSecret)

	userRepo := repository.NewUserRepo(db)
	bossRepo := repository.NewBossRepo(db)
	staffRepo := repository.NewStaffRepo(db)
	clothingRepo := repository.NewClothingRepo(db)
	procurementRepo := repository.NewProcurementRepo(db)
	shipmentRepo := repository.NewShipmentRepo(db)
	productionRepo := repository.NewProductionRepo(db)

	authService := service.NewAuthService(userRepo, tokens)
	procurementService := service.NewProcurementService(procurementRepo, wsHub)
	shipmentService := service.NewShipmentService(shipmentRepo, wsHub)
	productionService := service.NewProductionService(productionRepo, staffRepo, wsHub)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:      "Garment Supply API v1.0",
		ErrorHandler: handler.ErrorHandler,
	})

	app.Use(logger.New())  // Request logging
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // Unrestricted CORS

	// 6. Routes
	handler.Register(app, handler.Deps{
		Auth:        handler.NewAuthHandler(authService),
		Boss:        handler.NewBossHandler(bossRepo),
		Staff:       handler.NewStaffHandler(staffRepo),
		Clothing:    handler.NewClothingHandler(clothingRepo),
		Procurement: handler.NewProcurementHandler(procurementService),
		Shipment:    handler.NewShipmentHandler(shipmentService),
		Production:  handler.NewProductionHandler(productionService),
		Tokens:      tokens,
		Hub:         wsHub,
	})

	// 7. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// migrate applies schema changes in dependency order before the service
// accepts traffic. Parents are created before the tables that reference
// them so the cascading foreign keys resolve.
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Boss{},
		&model.Staff{},
		&model.Clothing{},
		&model.Shipment{},
		&model.Procurement{},
		&model.ShipmentItem{},
		&model.ProcurementItem{},
		&model.Production{},
		&model.ProductionItem{},
	)
}
