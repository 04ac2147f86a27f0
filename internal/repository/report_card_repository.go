package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/ahmadqo/school-management-system/internal/model"
)

type ReportCardRepository interface {
	Create(ctx context.Context, card *model.ReportCard) error
	FindByStudent(ctx context.Context, studentID string) ([]*model.ReportCard, error)
}

type reportCardRepository struct {
	db *sqlx.DB
}

func NewReportCardRepository(db *sqlx.DB) ReportCardRepository {
	return &reportCardRepository{db: db}
}

func (r *reportCardRepository) Create(ctx context.Context, card *model.ReportCard) error {
	query := `
		INSERT INTO report_cards (report_id, student_id, subject, marks, created_at)
		VALUES (:report_id, :student_id, :subject, :marks, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, card)
	return err
}

func (r *reportCardRepository) FindByStudent(ctx context.Context, studentID string) ([]*model.ReportCard, error) {
	var cards []*model.ReportCard
	query := `
		SELECT report_id, student_id, subject, marks, created_at
		FROM report_cards
		WHERE student_id = ?
		ORDER BY created_at ASC
	`
	if err := r.db.SelectContext(ctx, &cards, query, studentID); err != nil {
		return nil, err
	}
	return cards, nil
}
