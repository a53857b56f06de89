package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"gymshop-inventory/internal/handler"
	"gymshop-inventory/internal/ledger"
	"gymshop-inventory/internal/middleware"
	"gymshop-inventory/internal/model"
	"gymshop-inventory/internal/notify"
	"gymshop-inventory/internal/repository"
	"gymshop-inventory/internal/service"
	"gymshop-inventory/internal/watch"
	"gymshop-inventory/internal/ws"
	"gymshop-inventory/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	db := database.ConnectDB()
	db.AutoMigrate(&model.Product{}, &model.StockEntry{}, &model.User{})

	seedAdmin(repository.NewUserRepo(db))

	// Live snapshot plumbing: services publish to the feed, the ws hub and
	// the low-stock observer listen.
	feed := watch.NewFeed()
	wsHub := ws.NewHub()
	go wsHub.Run()

	feedSubs, err := ws.AttachFeed(wsHub, feed)
	if err != nil {
		log.Fatal("Failed to attach ws hub to snapshot feed: ", err)
	}

	observer := notify.NewLowStockObserver(feed, ws.NewAlertNotifier(wsHub))
	if err := observer.Start(); err != nil {
		log.Fatal("Failed to start low stock observer: ", err)
	}

	// Wiring
	productRepo := repository.NewProductRepo(db)
	entryRepo := repository.NewStockEntryRepo(db)
	userRepo := repository.NewUserRepo(db)

	engine := ledger.NewEngine(repository.NewMovementStore(db))

	invService := service.NewInventoryService(productRepo, entryRepo, engine, feed)
	revService := service.NewRevenueService(entryRepo)
	authService := service.NewAuthService(userRepo)

	invHandler := handler.NewInventoryHandler(invService)
	dashHandler := handler.NewDashboardHandler(invService, revService)
	authHandler := handler.NewAuthHandler(authService)

	app := fiber.New(fiber.Config{
		AppName: "Gym Shop Inventory v1.0",
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	api := app.Group("/api/v1")

	// Public
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)

	// Everything else sits behind the session gate.
	protected := api.Group("", middleware.RequireAuth(userRepo))
	protected.Post("/auth/heartbeat", authHandler.Heartbeat)

	protected.Get("/products", invHandler.GetProducts)
	protected.Post("/products", invHandler.CreateProduct)
	protected.Put("/products/:id", invHandler.UpdateProduct)
	protected.Delete("/products/:id", invHandler.DeleteProduct)

	protected.Post("/movements", invHandler.RecordMovement)
	protected.Get("/entries", invHandler.GetEntries)
	protected.Get("/entries/:id", invHandler.GetEntry)

	protected.Get("/dashboard/stats", dashHandler.GetStats)
	protected.Get("/revenue/summary", dashHandler.GetRevenueSummary)

	// WebSocket: live product/ledger snapshots and low-stock alerts.
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	observer.Stop()
	for _, sub := range feedSubs {
		sub.Cancel()
	}
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdmin creates the default staff account on first boot.
func seedAdmin(userRepo repository.UserRepository) {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}

	if _, err := userRepo.FindByEmail(email); err == nil {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	admin := &model.User{
		Email:    email,
		FullName: "Shop Administrator",
		IsActive: true,
	}
	if err := admin.SetPassword(password); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
		return
	}
	log.Printf("Admin user created: %s", email)
}
