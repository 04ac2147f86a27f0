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

type StudentHandler struct {
	svc service.StudentService
}

func NewStudentHandler(svc service.StudentService) *StudentHandler {
	return &StudentHandler{svc: svc}
}

// Create adds a student and its derived login credential
// @Summary      Create a student
// @Description  Create a student record; the response carries the generated one-time credentials
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        request  body      model.CreateStudentRequest  true  "Student creation request"
// @Security     BearerAuth
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /students [post]
func (h *StudentHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.SessionFromContext(r.Context())

	var req model.CreateStudentRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", err.Error())
		return
	}

	errs := utils.ValidationErrors{}
	req.Name = utils.SanitizeString(req.Name)
	req.Class = utils.SanitizeString(req.Class)
	req.HostelStatus = utils.SanitizeString(req.HostelStatus)
	req.BusStatus = utils.SanitizeString(req.BusStatus)

	if req.Name == "" {
		errs["name"] = "Name is required"
	}
	if req.Class == "" {
		errs["class"] = "Class is required"
	}
	if req.HostelStatus == "" {
		errs["hostel_status"] = "Hostel status is required"
	}
	if req.BusStatus == "" {
		errs["bus_status"] = "Bus status is required"
	}
	if errs.HasErrors() {
		response.BadRequest(w, "Validation failed", errs)
		return
	}

	created, err := h.svc.Create(r.Context(), session.Username, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			response.BadRequest(w, err.Error(), nil)
			return
		}
		response.InternalError(w, "Failed to create student")
		return
	}

	response.Created(w, "Student added successfully", created)
}

// GetAll lists every student
// @Summary      List students
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /students [get]
func (h *StudentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	students, err := h.svc.GetAll(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to fetch students")
		return
	}

	response.Success(w, "Students retrieved", students)
}

// GetByID fetches one student
// @Summary      Get student by ID
// @Tags         students
// @Produce      json
// @Param        id   path      string  true  "Student ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /students/{id} [get]
func (h *StudentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	student, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to fetch student")
		return
	}

	response.Success(w, "Student retrieved", student)
}

// Search matches students by name or class substring
// @Summary      Search students
// @Description  Substring match against name and class; the term is audit-logged
// @Tags         students
// @Produce      json
// @Param        q  query  string  false  "Search term"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /students/search [get]
func (h *StudentHandler) Search(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.SessionFromContext(r.Context())
	term := utils.SanitizeString(r.URL.Query().Get("q"))

	students, err := h.svc.Search(r.Context(), session.Username, term)
	if err != nil {
		response.InternalError(w, "Failed to search students")
		return
	}

	response.Success(w, "Search completed", students)
}

// Results returns the caller's report cards (student dashboard)
// @Summary      My results
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /me/results [get]
func (h *StudentHandler) MyResults(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.SessionFromContext(r.Context())

	cards, err := h.svc.Results(r.Context(), session.StudentID)
	if err != nil {
		response.InternalError(w, "Failed to fetch results")
		return
	}

	response.Success(w, "Results retrieved", cards)
}
