package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmadqo/school-management-system/internal/model"
)

func TestCreateEmployee(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	employee, err := env.employees.Create(ctx, "admin", model.CreateEmployeeRequest{
		Name:        "Ravi Menon",
		Designation: "Teacher",
		Salary:      "45000",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, employee.EmployeeID)
	assert.Equal(t, 45000.0, employee.Salary)

	assert.Equal(t, "Added employee: Ravi Menon", env.lastAuditAction(t))
}

func TestCreateEmployeeRejectsBadSalary(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.employees.Create(context.Background(), "admin", model.CreateEmployeeRequest{
		Name:        "Ravi Menon",
		Designation: "Teacher",
		Salary:      "a lot",
	})
	assert.ErrorIs(t, err, ErrInvalidSalary)
}

func TestGetEmployeeByID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.employees.Create(ctx, "admin", model.CreateEmployeeRequest{
		Name:        "Ravi Menon",
		Designation: "Teacher",
		Salary:      "45000",
	})
	require.NoError(t, err)

	employee, err := env.employees.GetByID(ctx, created.EmployeeID)
	require.NoError(t, err)
	assert.Equal(t, "Ravi Menon", employee.Name)
	assert.Equal(t, 45000.0, employee.Salary)

	_, err = env.employees.GetByID(ctx, "missing-id")
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestIssueSalarySlip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	employee, err := env.employees.Create(ctx, "admin", model.CreateEmployeeRequest{
		Name:        "Ravi Menon",
		Designation: "Teacher",
		Salary:      "45000",
	})
	require.NoError(t, err)

	slip, err := env.employees.IssueSalarySlip(ctx, "admin", model.CreateSalarySlipRequest{
		EmployeeID: employee.EmployeeID,
		Month:      "2026-08",
		Amount:     "45000",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, slip.SlipID)
	assert.NotEmpty(t, slip.IssuedDate)

	slips, err := env.employees.SalarySlips(ctx, employee.EmployeeID)
	require.NoError(t, err)
	require.Len(t, slips, 1)
	assert.Equal(t, "2026-08", slips[0].Month)
}

func TestIssueSalarySlipUnknownEmployee(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.employees.IssueSalarySlip(context.Background(), "admin", model.CreateSalarySlipRequest{
		EmployeeID: "missing-id",
		Month:      "2026-08",
		Amount:     "45000",
	})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}
