package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/avidaldev/authgate/internal/auth"
	"github.com/avidaldev/authgate/internal/config"
	"github.com/avidaldev/authgate/internal/directory"
	"github.com/avidaldev/authgate/internal/httpapi"
	"github.com/avidaldev/authgate/internal/logging"
)

func main() {
	// A missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logger := logging.New(cfg.LogLevel)

	store, err := directory.Open(cfg.DatabaseDSN, logger)
	if err != nil {
		log.Fatalf("directory error: %v", err)
	}
	defer store.Close()

	if err := store.Seed(context.Background()); err != nil {
		log.Fatalf("directory seed error: %v", err)
	}

	tokens := auth.NewTokenService([]byte(cfg.SigningKey), cfg.TokenExpiration, logger)
	auther := auth.NewAuthenticator(store, tokens, logger)

	app := httpapi.New(auther, tokens, logger)

	logger.Info("listening", "addr", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
