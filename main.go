package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"lunaris/internal/handlers"
	"lunaris/internal/middleware"
	"lunaris/internal/models"
	"lunaris/internal/repositories"
	"lunaris/internal/services"
	"lunaris/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_DSN", "lunaris.db")
	viper.SetDefault("JWT_SECRET", "change-me")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("UPLOAD_DIR", "./uploads")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "")
	viper.AutomaticEnv()

	// --- Database ---
	db, err := openDatabase(viper.GetString("DATABASE_DRIVER"), viper.GetString("DATABASE_DSN"))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	err = db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.Order{},
		&models.OrderItem{},
		&models.BlogPost{},
		&models.ExchangeRate{},
		&models.AdminUser{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	var events services.EventPublisher
	var mqClient *rabbitmq.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: url})
		if err != nil {
			log.Printf("RabbitMQ unavailable, order events disabled: %v", err)
		} else {
			defer mqClient.Close()
			events = mqClient
		}
	}

	// --- Repositories ---
	productRepo := repositories.NewGORMProductRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	blogRepo := repositories.NewGORMBlogRepository(db)
	rateRepo := repositories.NewGORMRateRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	// --- Services ---
	catalogService := services.NewCatalogService(productRepo, categoryRepo)
	orderService := services.NewOrderService(orderRepo, events)
	blogService := services.NewBlogService(blogRepo)
	ratesService := services.NewRatesService(rateRepo)
	authService := services.NewAuthService(userRepo, viper.GetString("JWT_SECRET"))

	// --- Seed data ---
	if err := ratesService.Seed(); err != nil {
		log.Printf("Failed to seed exchange rates: %v", err)
	}
	if password := viper.GetString("ADMIN_PASSWORD"); password != "" {
		err := authService.EnsureAdmin(viper.GetString("ADMIN_USERNAME"), password, "Administrator")
		if err != nil {
			log.Printf("Failed to ensure admin user: %v", err)
		}
	}

	// --- Handlers ---
	productHandler := handlers.NewProductHandler(catalogService)
	orderHandler := handlers.NewOrderHandler(orderService)
	blogHandler := handlers.NewBlogHandler(blogService)
	ratesHandler := handlers.NewRatesHandler(ratesService)
	authHandler := handlers.NewAuthHandler(authService)
	uploadDir := viper.GetString("UPLOAD_DIR")
	uploadHandler := handlers.NewUploadHandler(uploadDir)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())
	app.Static("/uploads", uploadDir)

	apiV1 := app.Group("/api/v1")
	productHandler.RegisterRoutes(apiV1)
	orderHandler.RegisterRoutes(apiV1)
	blogHandler.RegisterRoutes(apiV1)
	ratesHandler.RegisterRoutes(apiV1)
	authHandler.RegisterRoutes(apiV1)

	admin := apiV1.Group("/admin", middleware.AuthRequired(authService))
	productHandler.RegisterAdminRoutes(admin)
	orderHandler.RegisterAdminRoutes(admin)
	blogHandler.RegisterAdminRoutes(admin)
	ratesHandler.RegisterAdminRoutes(admin)
	uploadHandler.RegisterAdminRoutes(admin)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Order event consumer ---
	// Logs order.created events; mail/SMS notification hangs off this.
	if mqClient != nil && events != nil {
		go func() {
			handler := func(msg amqp.Delivery) error {
				log.Printf("Order event (tag %d): %s", msg.DeliveryTag, msg.Body)
				return nil
			}
			if err := mqClient.ConsumeOrderEvents(handler); err != nil {
				log.Printf("Failed to start order event consumer: %v", err)
			}
		}()
	}

	// --- Start HTTP server ---
	appPort := viper.GetString("APP_PORT")
	log.Printf("Starting server on %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// openDatabase opens the configured driver. TranslateError maps driver
// duplicate-key errors onto gorm.ErrDuplicatedKey, which the order number
// retry relies on.
func openDatabase(driver, dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}
	if driver == "postgres" {
		return gorm.Open(postgres.Open(dsn), cfg)
	}
	return gorm.Open(sqlite.Open(dsn), cfg)
}
