package database

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver for database/sql

	"github.com/ahmadqo/school-management-system/internal/config"
)

func init() {
	// modernc registers as "sqlite", which sqlx does not know; bind it
	// to ? placeholders so named queries rebind correctly.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

func Connect(cfg *config.DatabaseConfig) *sqlx.DB {
	db, err := sqlx.Connect("sqlite", cfg.Path)
	if err != nil {
		log.Fatalf("Failed to open database %s: %v", cfg.Path, err)
	}

	// A single connection keeps SQLite writes serialized and matches
	// the single-active-session traffic profile.
	db.SetMaxOpenConns(1)

	log.Printf("Database opened: %s", cfg.Path)
	return db
}
