package main

// @title           Shelfshare Catalog API
// @version         1.0
// @description     Library catalog: books with ISBN validation, search, filtering and bulk update by author.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/snnyvrz/shelfshare-catalog/internal/config"
	"github.com/snnyvrz/shelfshare-catalog/internal/db"
	"github.com/snnyvrz/shelfshare-catalog/internal/logger"
	"github.com/snnyvrz/shelfshare-catalog/internal/metrics"
	"github.com/snnyvrz/shelfshare-catalog/internal/repository"
	"github.com/snnyvrz/shelfshare-catalog/internal/server"
	"github.com/snnyvrz/shelfshare-catalog/internal/service"
	"github.com/snnyvrz/shelfshare-catalog/internal/validation"
)

const (
	appVersion      = "0.1.0"
	shutdownTimeout = 10 * time.Second
)

func main() {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New().Make()
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.New().
		WithLevel(cfg.LogLevel).
		WithFormat(cfg.LogFormat).
		Make()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	database, err := db.ConnectWithRetry(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("database unavailable")
	}

	if cfg.AutoMigrate {
		if err := db.AutoMigrate(database); err != nil {
			log.Fatal().Err(err).Msg("auto-migrate failed")
		}
	}

	sqlDB, err := database.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get underlying DB")
	}
	defer sqlDB.Close()

	validation.RegisterValidators()

	bulkFields := service.DefaultBulkFields()
	if len(cfg.BulkUpdateFields) > 0 {
		bulkFields = service.NewBulkFields(bulkFields.Version+1, cfg.BulkUpdateFields...)
	}

	books := service.NewBookService(repository.NewGormBookRepository(database), bulkFields)

	router := server.NewRouter(server.Deps{
		Books:     books,
		DB:        sqlDB,
		Metrics:   metrics.New(),
		Log:       log,
		StartTime: startTime,
		Version:   appVersion,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("db_driver", cfg.DBDriver).
			Strs("bulk_fields", bulkFields.Fields).
			Msg("books catalog listening")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
