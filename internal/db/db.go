package db

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/snnyvrz/shelfshare-catalog/internal/config"
	"github.com/snnyvrz/shelfshare-catalog/internal/model"
)

func dialector(cfg *config.Config) gorm.Dialector {
	if cfg.DBDriver == config.DriverSQLite {
		return sqlite.Open(cfg.SQLitePath)
	}
	return postgres.Open(cfg.DSN())
}

func gormConfig(cfg *config.Config) *gorm.Config {
	level := gormlogger.Silent
	if cfg.GinMode == "debug" {
		level = gormlogger.Warn
	}

	return &gorm.Config{
		Logger:         gormlogger.Default.LogMode(level),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func Open(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(dialector(cfg), gormConfig(cfg))
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if cfg.DBDriver == config.DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func ConnectWithRetry(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	var err error

	for attempt := 1; attempt <= cfg.DBAttempts; attempt++ {
		var db *gorm.DB
		db, err = Open(cfg)
		if err == nil {
			log.Info().Str("driver", cfg.DBDriver).Int("attempt", attempt).Msg("db connected")
			return db, nil
		}

		log.Warn().Err(err).
			Int("attempt", attempt).
			Int("max_attempts", cfg.DBAttempts).
			Msg("db not ready")

		if attempt < cfg.DBAttempts {
			time.Sleep(cfg.DBRetryDelay)
		}
	}

	return nil, fmt.Errorf("could not connect to db after %d attempts: %w", cfg.DBAttempts, err)
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Book{})
}
