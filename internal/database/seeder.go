package database

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
)

type Seeder struct {
	db *sqlx.DB
}

func NewSeeder(db *sqlx.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedDefaults inserts the default admin credential and the initial
// fee schedule rows. Idempotent: existing rows are left untouched.
// Passwords are stored in plaintext throughout the system, including
// this one.
func (s *Seeder) SeedDefaults(ctx context.Context) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO users (username, password, role) VALUES (?, ?, ?)",
		"admin", "admin", "admin",
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		log.Println("Default admin user created (admin/admin) - change the password after first login")
	}

	fees := map[string]float64{
		"Class 10": 5000.0,
		"Class 11": 6000.0,
	}
	for class, amount := range fees {
		if _, err := s.db.ExecContext(ctx,
			"INSERT OR IGNORE INTO fees (class, amount) VALUES (?, ?)",
			class, amount,
		); err != nil {
			return err
		}
	}

	return nil
}
