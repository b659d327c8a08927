package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/adapters/postgres"
	redisadapter "github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/adapters/redis"
	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/config"
	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/core"
	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/store"
)

// Seeds the menu document with the default catalog. Without -force an
// existing document is left alone, so running the seeder against a live
// store is safe.
func main() {
	force := flag.Bool("force", false, "overwrite an existing menu document")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	documentStore, err := buildDocumentStore(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize document store", zap.Error(err))
	}

	if !*force {
		if _, err := documentStore.Get(ctx, store.CatalogKey); err == nil {
			logger.Info("menu document already exists, use -force to overwrite")
			return
		}
	}

	data, err := json.Marshal(store.DefaultCatalog())
	if err != nil {
		logger.Fatal("failed to marshal default catalog", zap.Error(err))
	}
	if err := documentStore.Put(ctx, store.CatalogKey, data); err != nil {
		logger.Fatal("failed to seed menu document", zap.Error(err))
	}

	logger.Info("menu document seeded",
		zap.String("key", store.CatalogKey),
		zap.String("backend", cfg.StoreBackend))
}

func buildDocumentStore(ctx context.Context, cfg *config.Config) (core.DocumentStore, error) {
	switch cfg.StoreBackend {
	case "postgres":
		pgStore, err := postgres.NewStore(cfg.DBURL)
		if err != nil {
			return nil, err
		}
		if err := pgStore.Migrate(); err != nil {
			return nil, err
		}
		return pgStore, nil

	default:
		opts, err := goredis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		if cfg.RedisPassword != "" {
			opts.Password = cfg.RedisPassword
		}
		client := goredis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, err
		}
		return redisadapter.NewStore(client), nil
	}
}
