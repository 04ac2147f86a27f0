package handler

import (
	"errors"
	"net/http"

	"github.com/ahmadqo/school-management-system/internal/middleware"
	"github.com/ahmadqo/school-management-system/internal/model"
	"github.com/ahmadqo/school-management-system/internal/response"
	"github.com/ahmadqo/school-management-system/internal/service"
	"github.com/ahmadqo/school-management-system/internal/utils"
)

type TransportHandler struct {
	svc service.TransportService
}

func NewTransportHandler(svc service.TransportService) *TransportHandler {
	return &TransportHandler{svc: svc}
}

// AddHosteler registers a student in school housing
// @Summary      Add hosteler
// @Description  Requires the student's hostel status to be Yes; no row is written otherwise
// @Tags         transport
// @Accept       json
// @Produce      json
// @Param        request  body      model.CreateHostelerRequest  true  "Hosteler request"
// @Security     BearerAuth
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /hostelers [post]
func (h *TransportHandler) AddHosteler(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.SessionFromContext(r.Context())

	var req model.CreateHostelerRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", err.Error())
		return
	}

	errs := utils.ValidationErrors{}
	req.StudentID = utils.SanitizeString(req.StudentID)
	req.RoomNumber = utils.SanitizeString(req.RoomNumber)
	req.JoiningDate = utils.SanitizeString(req.JoiningDate)

	if req.StudentID == "" {
		errs["student_id"] = "Student ID is required"
	}
	if req.RoomNumber == "" {
		errs["room_number"] = "Room number is required"
	}
	if req.JoiningDate == "" {
		errs["joining_date"] = "Joining date is required"
	}
	if errs.HasErrors() {
		response.BadRequest(w, "Validation failed", errs)
		return
	}

	hosteler, err := h.svc.AddHosteler(r.Context(), session.Username, req)
	if err != nil {
		if errors.Is(err, service.ErrNotHosteler) {
			response.Conflict(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to add hosteler")
		return
	}

	response.Created(w, "Hosteler added successfully", hosteler)
}

// AddBusHolder registers a student on school transport
// @Summary      Add bus holder
// @Description  Requires the student's bus status to be Yes; no row is written otherwise
// @Tags         transport
// @Accept       json
// @Produce      json
// @Param        request  body      model.CreateBusHolderRequest  true  "Bus holder request"
// @Security     BearerAuth
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /bus-holders [post]
func (h *TransportHandler) AddBusHolder(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.SessionFromContext(r.Context())

	var req model.CreateBusHolderRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", err.Error())
		return
	}

	errs := utils.ValidationErrors{}
	req.StudentID = utils.SanitizeString(req.StudentID)
	req.RouteNumber = utils.SanitizeString(req.RouteNumber)
	req.PickupPoint = utils.SanitizeString(req.PickupPoint)

	if req.StudentID == "" {
		errs["student_id"] = "Student ID is required"
	}
	if req.RouteNumber == "" {
		errs["route_number"] = "Route number is required"
	}
	if req.PickupPoint == "" {
		errs["pickup_point"] = "Pickup point is required"
	}
	if errs.HasErrors() {
		response.BadRequest(w, "Validation failed", errs)
		return
	}

	holder, err := h.svc.AddBusHolder(r.Context(), session.Username, req)
	if err != nil {
		if errors.Is(err, service.ErrNotBusHolder) {
			response.Conflict(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to add bus holder")
		return
	}

	response.Created(w, "Bus holder added successfully", holder)
}
