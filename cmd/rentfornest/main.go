package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/rentfornest/rentfornest/internal/config"
	"github.com/rentfornest/rentfornest/internal/logger"
	"github.com/rentfornest/rentfornest/internal/model"
	"github.com/rentfornest/rentfornest/internal/repository"
	"github.com/rentfornest/rentfornest/internal/seed"
	"github.com/rentfornest/rentfornest/internal/storage"
)

// main wires the core for a single client session: config, logging,
// the durable store and the two repositories. The presentation layer
// drives the repositories from here.
func main() {
	_ = godotenv.Load() // .env is optional
	cfg := config.Load()

	zlog, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	store, err := storage.OpenSQLite(cfg.StorePath, zlog)
	if err != nil {
		zlog.Fatal("open store", zap.Error(err))
	}
	defer store.Close()

	var demo []model.PropertyListing
	if cfg.SeedDemo {
		if demo, err = seed.Listings(); err != nil {
			zlog.Fatal("load seed", zap.Error(err))
		}
	}

	accounts, err := repository.NewAccountRepo(store, zlog)
	if err != nil {
		zlog.Fatal("open accounts", zap.Error(err))
	}
	listings, err := repository.NewListingRepo(store, demo, zlog)
	if err != nil {
		zlog.Fatal("open listings", zap.Error(err))
	}

	zlog.Info("directory ready",
		zap.String("env", cfg.Env),
		zap.String("store", store.Path()),
		zap.Int("accounts", accounts.Count()),
		zap.Int("listings", listings.Count()))
}
