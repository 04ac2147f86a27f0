package handler

import (
	"net/http"

	"github.com/ahmadqo/school-management-system/internal/middleware"
	"github.com/ahmadqo/school-management-system/internal/response"
	"github.com/ahmadqo/school-management-system/internal/service"
	"github.com/ahmadqo/school-management-system/internal/utils"
)

// AdminHandler covers backup/restore and the audit log listing.
type AdminHandler struct {
	backupSvc service.BackupService
	auditSvc  service.AuditService
}

func NewAdminHandler(backupSvc service.BackupService, auditSvc service.AuditService) *AdminHandler {
	return &AdminHandler{backupSvc: backupSvc, auditSvc: auditSvc}
}

type backupRequest struct {
	DestinationPath string `json:"destination_path"`
}

type restoreRequest struct {
	SourcePath string `json:"source_path"`
}

// Backup copies the database file to a chosen path
// @Summary      Backup database
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body      backupRequest  true  "Backup destination"
// @Security     BearerAuth
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /admin/backup [post]
func (h *AdminHandler) Backup(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.SessionFromContext(r.Context())

	var req backupRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", err.Error())
		return
	}

	req.DestinationPath = utils.SanitizeString(req.DestinationPath)
	if req.DestinationPath == "" {
		response.BadRequest(w, "Destination path is required", nil)
		return
	}

	result, err := h.backupSvc.Backup(r.Context(), session.Username, req.DestinationPath)
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}

	response.Success(w, "Database backed up successfully", result)
}

// Restore overwrites the live database from a backup file
// @Summary      Restore database
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body      restoreRequest  true  "Backup source"
// @Security     BearerAuth
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /admin/restore [post]
func (h *AdminHandler) Restore(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.SessionFromContext(r.Context())

	var req restoreRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", err.Error())
		return
	}

	req.SourcePath = utils.SanitizeString(req.SourcePath)
	if req.SourcePath == "" {
		response.BadRequest(w, "Source path is required", nil)
		return
	}

	if err := h.backupSvc.Restore(r.Context(), session.Username, req.SourcePath); err != nil {
		response.InternalError(w, err.Error())
		return
	}

	response.Success(w, "Database restored successfully", nil)
}

// Logs lists the audit trail, newest first
// @Summary      List system logs
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /admin/logs [get]
func (h *AdminHandler) Logs(w http.ResponseWriter, r *http.Request) {
	entries, err := h.auditSvc.List(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to fetch logs")
		return
	}

	response.Success(w, "Logs retrieved", entries)
}
