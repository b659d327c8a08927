package main

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/adapters/postgres"
	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/config"
)

// Creates the documents table for the Postgres backend. Run once before
// starting the server with STORE_BACKEND=postgres.
func main() {
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

	pool, err := pgxpool.New(ctx, cfg.DBURL)
	if err != nil {
		logger.Fatal("failed to create database pool", zap.Error(err))
	}
	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	pool.Close()

	pgStore, err := postgres.NewStore(cfg.DBURL)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	if err := pgStore.Migrate(); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	logger.Info("documents table is up to date")
}
