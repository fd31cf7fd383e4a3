package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-inventory-genie/internal/handler"
	"go-inventory-genie/internal/middleware"
	"go-inventory-genie/internal/model"
	"go-inventory-genie/internal/repository"
	"go-inventory-genie/internal/service"
	"go-inventory-genie/internal/ws"
	"go-inventory-genie/pkg/database"
	"go-inventory-genie/pkg/jwt"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	if err := jwt.RequireSecret(); err != nil {
		log.Fatal(err)
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.User{},
		&model.BaseProduct{},
		&model.ProductBatch{},
		&model.LegacyProduct{},
		&model.Sale{},
		&model.ReportSnapshot{},
	)

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	baseRepo := repository.NewBaseProductRepo(db)
	batchRepo := repository.NewProductBatchRepo(db)
	legacyRepo := repository.NewLegacyProductRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	reportRepo := repository.NewReportSnapshotRepo(db)

	authService := service.NewAuthService(userRepo)
	catalogService := service.NewCatalogService(baseRepo, batchRepo, legacyRepo, wsHub)
	salesService := service.NewSalesService(saleRepo, batchRepo, db, wsHub)
	accountService := service.NewAccountService(userRepo, baseRepo, batchRepo, legacyRepo, saleRepo, reportRepo)
	reportService := service.NewReportService(batchRepo, saleRepo, reportRepo)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(catalogService)
	salesHandler := handler.NewSalesHandler(salesService)
	accountHandler := handler.NewAccountHandler(accountService)
	reportHandler := handler.NewReportHandler(reportService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Inventory Genie v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	api := app.Group("/api")

	// ============ PUBLIC ROUTES ============
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Get("/reports/shared/:id", reportHandler.Shared)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth())

	protected.Delete("/user/delete", accountHandler.DeleteAccount)
	protected.Delete("/delete-account", accountHandler.DeleteAccount) // older clients

	protected.Get("/products", productHandler.List)
	protected.Post("/products", productHandler.Create)
	protected.Get("/products/grouped", productHandler.Grouped)
	protected.Get("/products/alerts", productHandler.Alerts)
	protected.Get("/products/legacy", productHandler.Legacy)
	protected.Get("/products/by-name/:name", productHandler.ByName)
	protected.Put("/products/:id", productHandler.Update)
	protected.Delete("/products/:id", productHandler.Delete)

	protected.Get("/sales", salesHandler.List)
	protected.Post("/sales", salesHandler.Record)
	protected.Delete("/sales", salesHandler.Clear)

	protected.Get("/reports/monthly", reportHandler.Monthly)
	protected.Post("/reports/share", reportHandler.Share)

	// WebSocket Route (token passed as query param at upgrade)
	app.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return c.SendStatus(fiber.StatusUpgradeRequired)
		}
		claims, err := jwt.ValidateToken(c.Query("token"))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		c.Locals("ws_user_id", claims.UserID)
		return c.Next()
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		userID := c.Locals("ws_user_id").(uuid.UUID)
		wsHub.Register <- ws.Session{Conn: c, UserID: userID}
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "5000"
		}
		if err := app.Listen(":" + port); err != nil {
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
