package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/ahmadqo/school-management-system/internal/model"
)

type SalarySlipRepository interface {
	Create(ctx context.Context, slip *model.SalarySlip) error
	FindByEmployee(ctx context.Context, employeeID string) ([]*model.SalarySlip, error)
}

type salarySlipRepository struct {
	db *sqlx.DB
}

func NewSalarySlipRepository(db *sqlx.DB) SalarySlipRepository {
	return &salarySlipRepository{db: db}
}

func (r *salarySlipRepository) Create(ctx context.Context, slip *model.SalarySlip) error {
	query := `
		INSERT INTO salary_slips (slip_id, employee_id, month, amount, issued_date)
		VALUES (:slip_id, :employee_id, :month, :amount, :issued_date)
	`
	_, err := r.db.NamedExecContext(ctx, query, slip)
	return err
}

func (r *salarySlipRepository) FindByEmployee(ctx context.Context, employeeID string) ([]*model.SalarySlip, error) {
	var slips []*model.SalarySlip
	query := `
		SELECT slip_id, employee_id, month, amount, issued_date
		FROM salary_slips
		WHERE employee_id = ?
		ORDER BY issued_date ASC
	`
	if err := r.db.SelectContext(ctx, &slips, query, employeeID); err != nil {
		return nil, err
	}
	return slips, nil
}
