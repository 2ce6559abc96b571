package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/snnyvrz/shelfshare-catalog/internal/config"
	"github.com/snnyvrz/shelfshare-catalog/internal/db"
	"github.com/snnyvrz/shelfshare-catalog/internal/logger"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [up|down|reset|status|version]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

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

	if err := db.Migrate(context.Background(), database, command); err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("migration failed")
	}

	log.Info().Str("command", command).Msg("migration finished")
}
