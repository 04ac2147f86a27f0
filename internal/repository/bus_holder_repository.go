package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/ahmadqo/school-management-system/internal/model"
)

type BusHolderRepository interface {
	Create(ctx context.Context, holder *model.BusHolder) error
	CountByStudent(ctx context.Context, studentID string) (int, error)
}

type busHolderRepository struct {
	db *sqlx.DB
}

func NewBusHolderRepository(db *sqlx.DB) BusHolderRepository {
	return &busHolderRepository{db: db}
}

func (r *busHolderRepository) Create(ctx context.Context, holder *model.BusHolder) error {
	query := `
		INSERT INTO bus_holders (bus_holder_id, student_id, route_number, pickup_point)
		VALUES (:bus_holder_id, :student_id, :route_number, :pickup_point)
	`
	_, err := r.db.NamedExecContext(ctx, query, holder)
	return err
}

func (r *busHolderRepository) CountByStudent(ctx context.Context, studentID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM bus_holders WHERE student_id = ?", studentID).Scan(&count)
	return count, err
}
