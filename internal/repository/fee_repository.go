package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/ahmadqo/school-management-system/internal/model"
)

// FeeRepository covers both fee transactions and the per-class fee
// schedule lookup.
type FeeRepository interface {
	CreateTransaction(ctx context.Context, txn *model.FeeTransaction) error
	FindByStudent(ctx context.Context, studentID string) ([]*model.FeeTransaction, error)
	SumAmountByStudent(ctx context.Context, studentID string) (float64, error)
	FindScheduleByClass(ctx context.Context, class string) (*model.FeeSchedule, error)
}

type feeRepository struct {
	db *sqlx.DB
}

func NewFeeRepository(db *sqlx.DB) FeeRepository {
	return &feeRepository{db: db}
}

func (r *feeRepository) CreateTransaction(ctx context.Context, txn *model.FeeTransaction) error {
	query := `
		INSERT INTO fee_transactions (transaction_id, student_id, fee_type, amount, payment_date)
		VALUES (:transaction_id, :student_id, :fee_type, :amount, :payment_date)
	`
	_, err := r.db.NamedExecContext(ctx, query, txn)
	return err
}

func (r *feeRepository) FindByStudent(ctx context.Context, studentID string) ([]*model.FeeTransaction, error) {
	var txns []*model.FeeTransaction
	query := `
		SELECT transaction_id, student_id, fee_type, amount, payment_date
		FROM fee_transactions
		WHERE student_id = ?
		ORDER BY payment_date ASC
	`
	if err := r.db.SelectContext(ctx, &txns, query, studentID); err != nil {
		return nil, err
	}
	return txns, nil
}

// SumAmountByStudent totals every payment the student has made; zero
// when none exist.
func (r *feeRepository) SumAmountByStudent(ctx context.Context, studentID string) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(amount), 0) FROM fee_transactions WHERE student_id = ?",
		studentID).Scan(&total)
	return total, err
}

func (r *feeRepository) FindScheduleByClass(ctx context.Context, class string) (*model.FeeSchedule, error) {
	var schedule model.FeeSchedule
	err := r.db.GetContext(ctx, &schedule,
		"SELECT class, amount FROM fees WHERE class = ?", class)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}
