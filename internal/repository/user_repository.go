package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/ahmadqo/school-management-system/internal/model"
)

type UserRepository interface {
	FindByCredentials(ctx context.Context, username, password string, role model.Role) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	UpdatePassword(ctx context.Context, username, newPassword string) error
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

// FindByCredentials is an exact match on all three columns; passwords
// are compared as stored, in plaintext.
func (r *userRepository) FindByCredentials(ctx context.Context, username, password string, role model.Role) (*model.User, error) {
	var user model.User
	query := `
		SELECT username, password, role
		FROM users
		WHERE username = ? AND password = ? AND role = ?
		LIMIT 1
	`
	err := r.db.GetContext(ctx, &user, query, username, password, role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // not found, not an error
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user,
		"SELECT username, password, role FROM users WHERE username = ? LIMIT 1", username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (username, password, role)
		VALUES (:username, :password, :role)
	`
	_, err := r.db.NamedExecContext(ctx, query, user)
	return err
}

func (r *userRepository) UpdatePassword(ctx context.Context, username, newPassword string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE users SET password = ? WHERE username = ?", newPassword, username)
	return err
}
