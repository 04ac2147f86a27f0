package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/ahmadqo/school-management-system/internal/model"
)

type HostelerRepository interface {
	Create(ctx context.Context, hosteler *model.Hosteler) error
	CountByStudent(ctx context.Context, studentID string) (int, error)
}

type hostelerRepository struct {
	db *sqlx.DB
}

func NewHostelerRepository(db *sqlx.DB) HostelerRepository {
	return &hostelerRepository{db: db}
}

func (r *hostelerRepository) Create(ctx context.Context, hosteler *model.Hosteler) error {
	query := `
		INSERT INTO hostelers (hosteler_id, student_id, room_number, joining_date)
		VALUES (:hosteler_id, :student_id, :room_number, :joining_date)
	`
	_, err := r.db.NamedExecContext(ctx, query, hosteler)
	return err
}

func (r *hostelerRepository) CountByStudent(ctx context.Context, studentID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM hostelers WHERE student_id = ?", studentID).Scan(&count)
	return count, err
}
