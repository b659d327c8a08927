package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	httpadapter "github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/adapters/http"
	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/adapters/memory"
	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/adapters/payment"
	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/adapters/postgres"
	redisadapter "github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/adapters/redis"
	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/adapters/whatsapp"
	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/config"
	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/core"
	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/events"
	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/middleware"
	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/service"
	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := buildLogger(cfg.AppEnv)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	documentStore, err := buildDocumentStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize document store", zap.Error(err))
	}

	catalogStore := store.NewCatalogStore(documentStore, logger)
	cartStore := store.NewCartStore(documentStore, logger)
	ledger := store.NewSalesLedger(documentStore, logger)

	eventBus := events.NewEventBus()

	var waClient *whatsapp.Client
	if cfg.WhatsAppToken != "" && cfg.WhatsAppPhoneNumberID != "" {
		waClient = whatsapp.NewClient(cfg.WhatsAppPhoneNumberID, cfg.WhatsAppToken)
	}
	messages := whatsapp.NewGateway(cfg.ShopWhatsAppNumber, waClient)
	payments := payment.NewClient(cfg.UPIVPA, cfg.UPIPayeeName)

	cartService := service.NewCartService(catalogStore, cartStore, logger)
	checkoutService := service.NewCheckoutService(cartStore, ledger, payments, messages, eventBus, logger)
	adminService := service.NewAdminService(catalogStore, ledger, eventBus, service.AdminCredentials{
		Username:     cfg.AdminUsername,
		Password:     cfg.AdminPassword,
		PasswordHash: cfg.AdminPasswordHash,
	}, cfg.JWTSecret, logger)

	storefrontHandler := httpadapter.NewStorefrontHandler(catalogStore, cartService, checkoutService)
	adminHandler := httpadapter.NewAdminHandler(adminService, cfg.AppEnv == "production")

	app := fiber.New(fiber.Config{
		AppName: "Tales of Brownies API",
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	api.Get("/catalog", storefrontHandler.GetCatalog)

	api.Get("/cart", storefrontHandler.GetCart)
	api.Post("/cart/items", storefrontHandler.AddCartItem)
	api.Patch("/cart/items/:id", storefrontHandler.UpdateCartItem)
	api.Delete("/cart/items/:id", storefrontHandler.RemoveCartItem)
	api.Delete("/cart", storefrontHandler.ClearCart)

	api.Post("/checkout/draft", storefrontHandler.DraftCheckout)
	api.Post("/checkout/finalize", storefrontHandler.FinalizeCheckout)

	admin := api.Group("/admin")
	admin.Post("/auth/login", adminHandler.Login)

	admin.Use(middleware.RequireAdmin(adminService))
	admin.Post("/auth/logout", adminHandler.Logout)
	admin.Get("/auth/me", adminHandler.Me)
	admin.Get("/catalog", adminHandler.GetCatalog)
	admin.Put("/catalog", adminHandler.SaveCatalog)
	admin.Post("/catalog/reset", adminHandler.ResetCatalog)
	admin.Put("/catalog/sizes/:size", adminHandler.UpsertSize)
	admin.Delete("/catalog/sizes/:size", adminHandler.DeleteSize)
	admin.Put("/catalog/toppings/:name", adminHandler.UpsertTopping)
	admin.Delete("/catalog/toppings/:name", adminHandler.DeleteTopping)
	admin.Get("/sales", adminHandler.ListSales)
	admin.Get("/sales/summary", adminHandler.SalesSummary)
	admin.Get("/sales/report", adminHandler.SalesReport)
	admin.Delete("/sales/:orderId", adminHandler.DeleteSale)
	admin.Get("/events", adminHandler.StreamEvents)

	logger.Info("starting server",
		zap.String("port", cfg.AppPort),
		zap.String("backend", cfg.StoreBackend))

	if err := app.Listen(":" + cfg.AppPort); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func buildLogger(appEnv string) (*zap.Logger, error) {
	if appEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// buildDocumentStore selects the whole-document store backend. Every
// backend is pinged before use so misconfiguration fails at startup,
// not on the first request.
func buildDocumentStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (core.DocumentStore, error) {
	switch cfg.StoreBackend {
	case "redis":
		opts, err := goredis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		if cfg.RedisPassword != "" {
			opts.Password = cfg.RedisPassword
		}
		client := goredis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		logger.Info("connected to Redis", zap.String("addr", opts.Addr))
		return redisadapter.NewStore(client), nil

	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.DBURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create database pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		pool.Close()
		logger.Info("connected to Postgres")

		pgStore, err := postgres.NewStore(cfg.DBURL)
		if err != nil {
			return nil, err
		}
		if err := pgStore.Migrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return pgStore, nil

	case "memory":
		logger.Warn("using in-memory document store, data will not survive restarts")
		return memory.NewStore(), nil

	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}
}
