package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/ahmadqo/school-management-system/internal/model"
)

type EmployeeRepository interface {
	FindAll(ctx context.Context) ([]*model.Employee, error)
	FindByID(ctx context.Context, id string) (*model.Employee, error)
	Create(ctx context.Context, employee *model.Employee) error
}

type employeeRepository struct {
	db *sqlx.DB
}

func NewEmployeeRepository(db *sqlx.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) FindAll(ctx context.Context) ([]*model.Employee, error) {
	var employees []*model.Employee
	query := `
		SELECT employee_id, name, designation, salary, created_at
		FROM employees
		ORDER BY created_at ASC
	`
	if err := r.db.SelectContext(ctx, &employees, query); err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *employeeRepository) FindByID(ctx context.Context, id string) (*model.Employee, error) {
	var employee model.Employee
	query := `
		SELECT employee_id, name, designation, salary, created_at
		FROM employees
		WHERE employee_id = ?
	`
	err := r.db.GetContext(ctx, &employee, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	query := `
		INSERT INTO employees (employee_id, name, designation, salary, created_at)
		VALUES (:employee_id, :name, :designation, :salary, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, employee)
	return err
}
