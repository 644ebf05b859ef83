package handler

import (
	"net/http"

	"diagnolab/internal/delivery/dto"
	"diagnolab/internal/usecase"
	"diagnolab/pkg/response"

	"github.com/google/uuid"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

func (h *AuditLogHandler) GetLogs(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := parsePagination(r)

	var userID *uuid.UUID
	if v := r.URL.Query().Get("user_id"); v != "" {
		parsed, err := uuid.Parse(v)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid user ID filter", nil)
			return
		}
		userID = &parsed
	}

	logs, total, err := h.auditLogUsecase.GetLogs(r.Context(), r.URL.Query().Get("action"), userID, limit, offset)
	if err != nil {
		response.InternalServerError(w, "Failed to load audit logs")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Audit logs loaded", dto.AuditLogListResponse{Logs: logs}, buildMeta(page, limit, total))
}
