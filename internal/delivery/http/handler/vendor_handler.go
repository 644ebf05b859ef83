package handler

import (
	"context"
	"errors"
	"net/http"

	"diagnolab/internal/delivery/dto"
	"diagnolab/internal/delivery/http/middleware"
	"diagnolab/internal/usecase"
	"diagnolab/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// VendorHandler serves the admin's vendor approval queue
type VendorHandler struct {
	vendorAdminUsecase usecase.VendorAdminUsecase
}

func NewVendorHandler(vendorAdminUsecase usecase.VendorAdminUsecase) *VendorHandler {
	return &VendorHandler{
		vendorAdminUsecase: vendorAdminUsecase,
	}
}

func (h *VendorHandler) GetVendors(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := parsePagination(r)

	vendors, total, err := h.vendorAdminUsecase.GetVendors(r.Context(), r.URL.Query().Get("status"), limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidApprovalStatus):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to load vendors")
		}
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Vendors loaded", dto.VendorListResponse{Vendors: vendors}, buildMeta(page, limit, total))
}

func (h *VendorHandler) GetVendor(w http.ResponseWriter, r *http.Request) {
	vendorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid vendor ID", nil)
		return
	}

	result, err := h.vendorAdminUsecase.GetVendor(r.Context(), vendorID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrVendorNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to load vendor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Vendor loaded", result)
}

func (h *VendorHandler) ApproveVendor(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.vendorAdminUsecase.ApproveVendor, "Vendor approved")
}

func (h *VendorHandler) RejectVendor(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.vendorAdminUsecase.RejectVendor, "Vendor rejected")
}

func (h *VendorHandler) decide(w http.ResponseWriter, r *http.Request, decision func(ctx context.Context, adminID, vendorID uuid.UUID) (*dto.VendorResponse, error), message string) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	vendorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid vendor ID", nil)
		return
	}

	result, err := decision(r.Context(), adminID, vendorID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrVendorNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, usecase.ErrVendorAlreadyProcessed):
			response.Error(w, http.StatusConflict, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to process vendor application")
		}
		return
	}

	response.Success(w, http.StatusOK, message, result)
}
