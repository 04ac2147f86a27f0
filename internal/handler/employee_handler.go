package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ahmadqo/school-management-system/internal/middleware"
	"github.com/ahmadqo/school-management-system/internal/model"
	"github.com/ahmadqo/school-management-system/internal/response"
	"github.com/ahmadqo/school-management-system/internal/service"
	"github.com/ahmadqo/school-management-system/internal/utils"
)

type EmployeeHandler struct {
	svc service.EmployeeService
}

func NewEmployeeHandler(svc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

// Create adds an employee
// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        request  body      model.CreateEmployeeRequest  true  "Employee creation request"
// @Security     BearerAuth
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /employees [post]
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.SessionFromContext(r.Context())

	var req model.CreateEmployeeRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", err.Error())
		return
	}

	errs := utils.ValidationErrors{}
	req.Name = utils.SanitizeString(req.Name)
	req.Designation = utils.SanitizeString(req.Designation)
	req.Salary = utils.SanitizeString(req.Salary)

	if req.Name == "" {
		errs["name"] = "Name is required"
	}
	if req.Designation == "" {
		errs["designation"] = "Designation is required"
	}
	if req.Salary == "" {
		errs["salary"] = "Salary is required"
	}
	if errs.HasErrors() {
		response.BadRequest(w, "Validation failed", errs)
		return
	}

	employee, err := h.svc.Create(r.Context(), session.Username, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSalary) {
			response.BadRequest(w, err.Error(), nil)
			return
		}
		response.InternalError(w, "Failed to create employee")
		return
	}

	response.Created(w, "Employee added successfully", employee)
}

// GetAll lists every employee
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /employees [get]
func (h *EmployeeHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	employees, err := h.svc.GetAll(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to fetch employees")
		return
	}

	response.Success(w, "Employees retrieved", employees)
}

// GetByID fetches one employee
// @Summary      Get employee by ID
// @Tags         employees
// @Produce      json
// @Param        id   path      string  true  "Employee ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employees/{id} [get]
func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	employee, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to fetch employee")
		return
	}

	response.Success(w, "Employee retrieved", employee)
}

// IssueSalarySlip records a salary slip for an employee
// @Summary      Generate salary slip
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        request  body      model.CreateSalarySlipRequest  true  "Salary slip request"
// @Security     BearerAuth
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /salary-slips [post]
func (h *EmployeeHandler) IssueSalarySlip(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.SessionFromContext(r.Context())

	var req model.CreateSalarySlipRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", err.Error())
		return
	}

	errs := utils.ValidationErrors{}
	req.EmployeeID = utils.SanitizeString(req.EmployeeID)
	req.Month = utils.SanitizeString(req.Month)
	req.Amount = utils.SanitizeString(req.Amount)

	if req.EmployeeID == "" {
		errs["employee_id"] = "Employee ID is required"
	}
	if req.Month == "" {
		errs["month"] = "Month is required"
	}
	if req.Amount == "" {
		errs["amount"] = "Amount is required"
	}
	if errs.HasErrors() {
		response.BadRequest(w, "Validation failed", errs)
		return
	}

	slip, err := h.svc.IssueSalarySlip(r.Context(), session.Username, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAmount):
			response.BadRequest(w, err.Error(), nil)
		case errors.Is(err, service.ErrEmployeeNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalError(w, "Failed to generate salary slip")
		}
		return
	}

	response.Created(w, "Salary slip generated", slip)
}

// SalarySlips lists an employee's slips
// @Summary      List salary slips
// @Tags         employees
// @Produce      json
// @Param        id   path      string  true  "Employee ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /employees/{id}/salary-slips [get]
func (h *EmployeeHandler) SalarySlips(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	slips, err := h.svc.SalarySlips(r.Context(), id)
	if err != nil {
		response.InternalError(w, "Failed to fetch salary slips")
		return
	}

	response.Success(w, "Salary slips retrieved", slips)
}
