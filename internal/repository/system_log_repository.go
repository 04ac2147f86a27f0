package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/ahmadqo/school-management-system/internal/model"
)

type SystemLogRepository interface {
	Create(ctx context.Context, entry *model.SystemLog) error
	FindAll(ctx context.Context) ([]*model.SystemLog, error)
}

type systemLogRepository struct {
	db *sqlx.DB
}

func NewSystemLogRepository(db *sqlx.DB) SystemLogRepository {
	return &systemLogRepository{db: db}
}

func (r *systemLogRepository) Create(ctx context.Context, entry *model.SystemLog) error {
	query := `
		INSERT INTO system_logs (log_id, action, username, timestamp)
		VALUES (:log_id, :action, :username, :timestamp)
	`
	_, err := r.db.NamedExecContext(ctx, query, entry)
	return err
}

func (r *systemLogRepository) FindAll(ctx context.Context) ([]*model.SystemLog, error) {
	var entries []*model.SystemLog
	query := `
		SELECT log_id, action, username, timestamp
		FROM system_logs
		ORDER BY timestamp DESC, rowid DESC
	`
	if err := r.db.SelectContext(ctx, &entries, query); err != nil {
		return nil, err
	}
	return entries, nil
}
