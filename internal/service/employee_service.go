package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ahmadqo/school-management-system/internal/model"
	"github.com/ahmadqo/school-management-system/internal/repository"
	"github.com/ahmadqo/school-management-system/internal/utils"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidSalary    = errors.New("invalid salary amount")
	ErrInvalidAmount    = errors.New("invalid amount")
)

type EmployeeService interface {
	Create(ctx context.Context, actor string, req model.CreateEmployeeRequest) (*model.Employee, error)
	GetAll(ctx context.Context) ([]*model.Employee, error)
	GetByID(ctx context.Context, id string) (*model.Employee, error)
	IssueSalarySlip(ctx context.Context, actor string, req model.CreateSalarySlipRequest) (*model.SalarySlip, error)
	SalarySlips(ctx context.Context, employeeID string) ([]*model.SalarySlip, error)
}

type employeeService struct {
	repo     repository.EmployeeRepository
	slipRepo repository.SalarySlipRepository
	audit    AuditService
}

func NewEmployeeService(
	repo repository.EmployeeRepository,
	slipRepo repository.SalarySlipRepository,
	audit AuditService,
) EmployeeService {
	return &employeeService{repo: repo, slipRepo: slipRepo, audit: audit}
}

func (s *employeeService) Create(ctx context.Context, actor string, req model.CreateEmployeeRequest) (*model.Employee, error) {
	salary, ok := utils.ParseAmount(req.Salary)
	if !ok {
		return nil, ErrInvalidSalary
	}

	employee := &model.Employee{
		EmployeeID:  uuid.New().String(),
		Name:        req.Name,
		Designation: req.Designation,
		Salary:      salary,
		CreatedAt:   utils.Timestamp(),
	}
	if err := s.repo.Create(ctx, employee); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, fmt.Sprintf("Added employee: %s", employee.Name), actor)
	return employee, nil
}

func (s *employeeService) GetAll(ctx context.Context) ([]*model.Employee, error) {
	return s.repo.FindAll(ctx)
}

func (s *employeeService) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}
	return employee, nil
}

func (s *employeeService) IssueSalarySlip(ctx context.Context, actor string, req model.CreateSalarySlipRequest) (*model.SalarySlip, error) {
	amount, ok := utils.ParseAmount(req.Amount)
	if !ok {
		return nil, ErrInvalidAmount
	}

	employee, err := s.repo.FindByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}

	slip := &model.SalarySlip{
		SlipID:     uuid.New().String(),
		EmployeeID: req.EmployeeID,
		Month:      req.Month,
		Amount:     amount,
		IssuedDate: utils.Timestamp(),
	}
	if err := s.slipRepo.Create(ctx, slip); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, fmt.Sprintf("Generated salary slip for employee: %s", req.EmployeeID), actor)
	return slip, nil
}

func (s *employeeService) SalarySlips(ctx context.Context, employeeID string) ([]*model.SalarySlip, error) {
	return s.slipRepo.FindByEmployee(ctx, employeeID)
}
