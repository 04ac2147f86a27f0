package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ahmadqo/school-management-system/internal/middleware"
	"github.com/ahmadqo/school-management-system/internal/model"
	"github.com/ahmadqo/school-management-system/internal/response"
	"github.com/ahmadqo/school-management-system/internal/service"
	"github.com/ahmadqo/school-management-system/internal/utils"
)

type FeeHandler struct {
	svc       service.FeeService
	reportSvc service.ReportCardService
}

func NewFeeHandler(svc service.FeeService, reportSvc service.ReportCardService) *FeeHandler {
	return &FeeHandler{svc: svc, reportSvc: reportSvc}
}

// RecordPayment stores a fee transaction
// @Summary      Record fee payment
// @Tags         fees
// @Accept       json
// @Produce      json
// @Param        request  body      model.CreateFeeTransactionRequest  true  "Fee payment request"
// @Security     BearerAuth
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /fees/payments [post]
func (h *FeeHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.SessionFromContext(r.Context())

	var req model.CreateFeeTransactionRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", err.Error())
		return
	}

	errs := utils.ValidationErrors{}
	req.StudentID = utils.SanitizeString(req.StudentID)
	req.FeeType = utils.SanitizeString(req.FeeType)
	req.Amount = utils.SanitizeString(req.Amount)

	if req.StudentID == "" {
		errs["student_id"] = "Student ID is required"
	}
	if req.FeeType == "" {
		errs["fee_type"] = "Fee type is required"
	}
	if req.Amount == "" {
		errs["amount"] = "Amount is required"
	}
	if errs.HasErrors() {
		response.BadRequest(w, "Validation failed", errs)
		return
	}

	txn, err := h.svc.RecordPayment(r.Context(), session.Username, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAmount):
			response.BadRequest(w, err.Error(), nil)
		case errors.Is(err, service.ErrStudentNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalError(w, "Failed to record payment")
		}
		return
	}

	response.Created(w, fmt.Sprintf("Payment recorded. Transaction ID: %s", txn.TransactionID), txn)
}

// AddReportCard stores a report card entry
// @Summary      Add report card entry
// @Tags         report-cards
// @Accept       json
// @Produce      json
// @Param        request  body      model.CreateReportCardRequest  true  "Report card request"
// @Security     BearerAuth
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /report-cards [post]
func (h *FeeHandler) AddReportCard(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.SessionFromContext(r.Context())

	var req model.CreateReportCardRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", err.Error())
		return
	}

	errs := utils.ValidationErrors{}
	req.StudentID = utils.SanitizeString(req.StudentID)
	req.Subject = utils.SanitizeString(req.Subject)
	req.Marks = utils.SanitizeString(req.Marks)

	if req.StudentID == "" {
		errs["student_id"] = "Student ID is required"
	}
	if req.Subject == "" {
		errs["subject"] = "Subject is required"
	}
	if req.Marks == "" {
		errs["marks"] = "Marks are required"
	}
	if errs.HasErrors() {
		response.BadRequest(w, "Validation failed", errs)
		return
	}

	card, err := h.reportSvc.Add(r.Context(), session.Username, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidMarks):
			response.BadRequest(w, err.Error(), nil)
		case errors.Is(err, service.ErrStudentNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalError(w, "Failed to add report card")
		}
		return
	}

	response.Created(w, "Report card entry added", card)
}

// ReportCards lists a student's report card entries
// @Summary      List report cards
// @Tags         report-cards
// @Produce      json
// @Param        id   path      string  true  "Student ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /students/{id}/report-cards [get]
func (h *FeeHandler) ReportCards(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	cards, err := h.reportSvc.ListByStudent(r.Context(), id)
	if err != nil {
		response.InternalError(w, "Failed to fetch report cards")
		return
	}

	response.Success(w, "Report cards retrieved", cards)
}

// Payments lists a student's fee transactions
// @Summary      List fee payments
// @Tags         fees
// @Produce      json
// @Param        id   path      string  true  "Student ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /students/{id}/payments [get]
func (h *FeeHandler) Payments(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	txns, err := h.svc.Payments(r.Context(), id)
	if err != nil {
		response.InternalError(w, "Failed to fetch payments")
		return
	}

	response.Success(w, "Payments retrieved", txns)
}

// MyTuitionFee resolves the caller's class against the fee schedule
// @Summary      My tuition fee
// @Tags         fees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /me/tuition-fee [get]
func (h *FeeHandler) MyTuitionFee(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.SessionFromContext(r.Context())

	fee, err := h.svc.TuitionFee(r.Context(), session.StudentID)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.NotFound(w, "Student class not found")
			return
		}
		response.InternalError(w, "Failed to fetch tuition fee")
		return
	}

	if !fee.Found {
		response.Success(w, "Fee not set", fee)
		return
	}

	response.Success(w, "Tuition fee retrieved", fee)
}

// GenerateNoDues writes the plain-text certificate to a chosen path
// @Summary      Generate no-dues certificate
// @Description  Refused while the student's summed payments are below the threshold
// @Tags         fees
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Student ID"
// @Param        request  body      model.GenerateNoDuesRequest true  "Destination path"
// @Security     BearerAuth
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /students/{id}/no-dues [post]
func (h *FeeHandler) GenerateNoDues(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.SessionFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var req model.GenerateNoDuesRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", err.Error())
		return
	}

	req.DestinationPath = utils.SanitizeString(req.DestinationPath)
	if req.DestinationPath == "" {
		response.BadRequest(w, "Destination path is required", nil)
		return
	}

	cert, err := h.svc.GenerateNoDues(r.Context(), session.Username, id, req.DestinationPath)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, service.ErrPendingDues):
			response.BadRequest(w, err.Error(), nil)
		default:
			response.InternalError(w, "Failed to generate certificate")
		}
		return
	}

	response.Created(w, "No dues document generated", cert)
}

// DownloadNoDuesPDF streams the printable certificate
// @Summary      Download no-dues certificate PDF
// @Tags         fees
// @Produce      application/pdf
// @Param        id   path      string  true  "Student ID"
// @Security     BearerAuth
// @Success      200  {file}    binary
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /students/{id}/no-dues/pdf [get]
func (h *FeeHandler) DownloadNoDuesPDF(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.SessionFromContext(r.Context())
	id := chi.URLParam(r, "id")

	pdfBytes, fileName, err := h.svc.NoDuesPDF(r.Context(), session.Username, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, service.ErrPendingDues):
			response.BadRequest(w, err.Error(), nil)
		default:
			response.InternalError(w, "Failed to generate certificate")
		}
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
	w.Write(pdfBytes)
}
