package database

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrationsIsIdempotent(t *testing.T) {
	db, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	require.NoError(t, RunMigrations(db, "../../migrations"))
	require.NoError(t, RunMigrations(db, "../../migrations"))

	var applied int
	require.NoError(t, db.Get(&applied, `SELECT COUNT(*) FROM schema_migrations`))
	assert.Equal(t, 1, applied)
}

func TestSeedDefaults(t *testing.T) {
	ctx := context.Background()
	db, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	require.NoError(t, RunMigrations(db, "../../migrations"))

	seeder := NewSeeder(db)
	require.NoError(t, seeder.SeedDefaults(ctx))
	// Reseeding never duplicates rows.
	require.NoError(t, seeder.SeedDefaults(ctx))

	var role string
	require.NoError(t, db.GetContext(ctx, &role, `SELECT role FROM users WHERE username = ?`, "admin"))
	assert.Equal(t, "admin", role)

	var amount float64
	require.NoError(t, db.GetContext(ctx, &amount, `SELECT amount FROM fees WHERE class = ?`, "Class 10"))
	assert.Equal(t, 5000.0, amount)

	var fees int
	require.NoError(t, db.GetContext(ctx, &fees, `SELECT COUNT(*) FROM fees`))
	assert.Equal(t, 2, fees)
}
