package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Archive  ArchiveConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	// Path to the SQLite database file. Backup and restore operate on
	// this file as a whole.
	Path string
}

type JWTConfig struct {
	Secret          string
	ExpireHours     int
	RefreshExpHours int
}

// ArchiveConfig configures the optional MinIO archive for database
// backups and generated certificates. Disabled when no endpoint is set.
type ArchiveConfig struct {
	Endpoint string
	User     string
	Password string
	Bucket   string
	UseSSL   bool
}

func (c ArchiveConfig) Enabled() bool {
	return c.Endpoint != ""
}

func Load() *Config {
	// Load .env if present (development); production uses real env vars.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment variables")
	}

	jwtExpire, _ := strconv.Atoi(getEnv("JWT_EXPIRE_HOURS", "24"))
	jwtRefreshExpire, _ := strconv.Atoi(getEnv("JWT_REFRESH_EXPIRE_HOURS", "168"))
	archiveSSL, _ := strconv.ParseBool(getEnv("ARCHIVE_USE_SSL", "false"))

	return &Config{
		App: AppConfig{
			Port: getEnv("APP_PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "school_management.db"),
		},
		JWT: JWTConfig{
			Secret:          getEnv("JWT_SECRET", "change-this-secret"),
			ExpireHours:     jwtExpire,
			RefreshExpHours: jwtRefreshExpire,
		},
		Archive: ArchiveConfig{
			Endpoint: getEnv("ARCHIVE_ENDPOINT", ""),
			User:     getEnv("ARCHIVE_USER", "minioadmin"),
			Password: getEnv("ARCHIVE_PASSWORD", "minioadmin123"),
			Bucket:   getEnv("ARCHIVE_BUCKET", "school-artifacts"),
			UseSSL:   archiveSSL,
		},
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
