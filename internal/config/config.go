package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	GinMode string
	Port    int
	TZ      string

	DBDriver     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPass       string
	DBName       string
	DBSSLMode    string
	SQLitePath   string
	AutoMigrate  bool
	DBAttempts   int
	DBRetryDelay time.Duration

	LogLevel  string
	LogFormat string

	BulkUpdateFields []string
}

var envFiles = []string{".env", ".env.dev"}

// findEnvFile walks up from the working directory looking for name.
func findEnvFile(name string) (string, bool) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}

	for {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func loadEnvFiles(ginMode string) []string {
	if ginMode == "release" {
		return nil
	}

	var loaded []string
	for _, name := range envFiles {
		path, ok := findEnvFile(name)
		if !ok {
			continue
		}
		if err := godotenv.Load(path); err == nil {
			loaded = append(loaded, path)
		}
	}
	return loaded
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("PORT", 8080)
	v.SetDefault("TZ", "UTC")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASS", "")
	v.SetDefault("DB_NAME", "postgres")
	v.SetDefault("DB_SSLMODE", "")
	v.SetDefault("DB_SQLITE_PATH", "catalog.db")
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("DB_MAX_ATTEMPTS", 10)
	v.SetDefault("DB_RETRY_DELAY", 2*time.Second)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("BULK_UPDATE_FIELDS", "")

	return v
}

func Load() (*Config, error) {
	loadEnvFiles(os.Getenv("GIN_MODE"))

	v := newViper()

	cfg := &Config{
		GinMode:      v.GetString("GIN_MODE"),
		Port:         v.GetInt("PORT"),
		TZ:           v.GetString("TZ"),
		DBDriver:     strings.ToLower(v.GetString("DB_DRIVER")),
		DBHost:       v.GetString("DB_HOST"),
		DBPort:       v.GetString("DB_PORT"),
		DBUser:       v.GetString("DB_USER"),
		DBPass:       v.GetString("DB_PASS"),
		DBName:       v.GetString("DB_NAME"),
		DBSSLMode:    v.GetString("DB_SSLMODE"),
		SQLitePath:   v.GetString("DB_SQLITE_PATH"),
		AutoMigrate:  v.GetBool("DB_AUTO_MIGRATE"),
		DBAttempts:   v.GetInt("DB_MAX_ATTEMPTS"),
		DBRetryDelay: v.GetDuration("DB_RETRY_DELAY"),
		LogLevel:     v.GetString("LOG_LEVEL"),
		LogFormat:    v.GetString("LOG_FORMAT"),
	}

	cfg.BulkUpdateFields = splitList(v.GetString("BULK_UPDATE_FIELDS"))

	if cfg.DBSSLMode == "" {
		if cfg.GinMode == "release" {
			cfg.DBSSLMode = "require"
		} else {
			cfg.DBSSLMode = "disable"
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT: %d", c.Port)
	}

	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want %s or %s)", c.DBDriver, DriverPostgres, DriverSQLite)
	}

	if c.DBAttempts < 1 {
		c.DBAttempts = 1
	}

	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost,
		c.DBUser,
		c.DBPass,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
		c.TZ,
	)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
