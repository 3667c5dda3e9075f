package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"recyclehub-server/internal/config"
	"recyclehub-server/internal/db"
	"recyclehub-server/internal/logger"
	"recyclehub-server/internal/router"
	"recyclehub-server/internal/services"
)

func main() {
	cfg := config.LoadConfig()

	log := logger.InitLogger()
	log.Info().Msg("Starting RecycleHub server")

	ctx := context.Background()

	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("Store unreachable, refusing to start")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("Error disconnecting from store")
		}
	}()

	database := client.Database(cfg.DBName)

	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure indexes")
	}
	if err := db.SeedCategories(ctx, database); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed categories")
	}
	log.Info().Str("db", cfg.DBName).Msg("Connected to store")

	authService, err := services.NewAuthService(cfg.TokenSecret, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Refusing to start without a token signing secret")
	}

	r := router.SetupRouter(database, authService, log)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info().Msg("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}

	log.Info().Msg("Server stopped")
}
