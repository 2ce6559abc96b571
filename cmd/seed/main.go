package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/snnyvrz/shelfshare-catalog/internal/config"
	"github.com/snnyvrz/shelfshare-catalog/internal/db"
	"github.com/snnyvrz/shelfshare-catalog/internal/logger"
	"github.com/snnyvrz/shelfshare-catalog/internal/repository"
	"github.com/snnyvrz/shelfshare-catalog/internal/seed"
	"github.com/snnyvrz/shelfshare-catalog/internal/service"
)

func main() {
	reset := flag.Bool("reset", true, "delete existing books before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New().Make()
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.New().
		WithLevel(cfg.LogLevel).
		WithFormat(cfg.LogFormat).
		Make()

	database, err := db.ConnectWithRetry(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("database unavailable")
	}

	if cfg.AutoMigrate {
		if err := db.AutoMigrate(database); err != nil {
			log.Fatal().Err(err).Msg("auto-migrate failed")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	svc := service.NewBookService(repository.NewGormBookRepository(database), service.DefaultBulkFields())

	res, err := seed.Populate(ctx, svc, log, seed.FamousBooks(), *reset)
	if err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	log.Info().Msgf("successfully created %d books", res.Created)
}
