package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/clientescrm/api-clientes/docs"
	"github.com/clientescrm/api-clientes/internal/api"
	"github.com/clientescrm/api-clientes/internal/infrastructure/config"
	"github.com/clientescrm/api-clientes/internal/infrastructure/db/postgres"
	"github.com/clientescrm/api-clientes/pkg/logger"
)

// @title           API de Clientes
// @version         1.0.0
// @description     API HTTP para la gestión de clientes con login JWT y escrituras restringidas al rol admin.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	log := logger.Init(logger.Options{
		Level:  os.Getenv("LOG_LEVEL"),
		Pretty: os.Getenv("ENV") != "production",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.Connect(ctx, cfg.DB.URL())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer db.Close()

	if err := postgres.RunMigrations(cfg.DB.URL()); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	e, err := api.NewRouter(db, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
