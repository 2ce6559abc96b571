package db

import (
	"context"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

func Migrate(ctx context.Context, db *gorm.DB, command string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}

	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)

	// The SQL files are written for postgres; sqlite databases use AutoMigrate.
	if name := db.Dialector.Name(); name != "postgres" {
		return fmt.Errorf("migrations require postgres, got %s", name)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	switch command {
	case "up":
		return goose.UpContext(ctx, sqlDB, migrationsDir)
	case "down":
		return goose.DownContext(ctx, sqlDB, migrationsDir)
	case "reset":
		return goose.ResetContext(ctx, sqlDB, migrationsDir)
	case "status":
		return goose.StatusContext(ctx, sqlDB, migrationsDir)
	case "version":
		return goose.VersionContext(ctx, sqlDB, migrationsDir)
	default:
		return fmt.Errorf("unknown migrate command %q (want up, down, reset, status, version)", command)
	}
}
