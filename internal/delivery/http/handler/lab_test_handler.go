package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"diagnolab/internal/delivery/dto"
	"diagnolab/internal/delivery/http/middleware"
	"diagnolab/internal/domain/entity"
	"diagnolab/internal/usecase"
	"diagnolab/pkg/response"
	"diagnolab/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type LabTestHandler struct {
	labTestUsecase usecase.LabTestUsecase
	validator      *validator.CustomValidator
}

func NewLabTestHandler(labTestUsecase usecase.LabTestUsecase, validator *validator.CustomValidator) *LabTestHandler {
	return &LabTestHandler{
		labTestUsecase: labTestUsecase,
		validator:      validator,
	}
}

func (h *LabTestHandler) CreateTest(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.labTestUsecase.CreateTest(r.Context(), actorFromContext(r), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrOrganNotFound),
			errors.Is(err, usecase.ErrLabNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, usecase.ErrInvalidPrice):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create test")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Test created", result)
}

func (h *LabTestHandler) GetTests(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := parsePagination(r)
	filter, err := listFilterFromQuery(r, limit, offset)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid filter parameters", nil)
		return
	}

	tests, total, err := h.labTestUsecase.GetTests(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to load tests")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Tests loaded", dto.TestListResponse{Tests: tests}, buildMeta(page, limit, total))
}

func (h *LabTestHandler) GetTestsGrouped(w http.ResponseWriter, r *http.Request) {
	_, limit, offset := parsePagination(r)
	filter, err := listFilterFromQuery(r, limit, offset)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid filter parameters", nil)
		return
	}

	result, err := h.labTestUsecase.GetTestsGrouped(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to load tests")
		return
	}

	response.Success(w, http.StatusOK, "Tests loaded", result)
}

// GetMyTests lists only the calling vendor's own tests
func (h *LabTestHandler) GetMyTests(w http.ResponseWriter, r *http.Request) {
	vendorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	page, limit, offset := parsePagination(r)
	filter, err := listFilterFromQuery(r, limit, offset)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid filter parameters", nil)
		return
	}
	filter.VendorID = &vendorID

	tests, total, err := h.labTestUsecase.GetTests(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to load tests")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Tests loaded", dto.TestListResponse{Tests: tests}, buildMeta(page, limit, total))
}

func (h *LabTestHandler) GetTest(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid test ID", nil)
		return
	}

	result, err := h.labTestUsecase.GetTest(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTestNotFoundOne):
			response.NotFound(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to load test")
		}
		return
	}

	response.Success(w, http.StatusOK, "Test loaded", result)
}

func (h *LabTestHandler) UpdateTest(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid test ID", nil)
		return
	}

	var req dto.UpdateTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.labTestUsecase.UpdateTest(r.Context(), actorFromContext(r), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTestNotFoundOne),
			errors.Is(err, usecase.ErrOrganNotFound),
			errors.Is(err, usecase.ErrLabNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, usecase.ErrNotTestOwner):
			response.Forbidden(w, err.Error())
		case errors.Is(err, usecase.ErrInvalidPrice):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update test")
		}
		return
	}

	response.Success(w, http.StatusOK, "Test updated", result)
}

func (h *LabTestHandler) DeleteTest(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid test ID", nil)
		return
	}

	if err := h.labTestUsecase.DeleteTest(r.Context(), actorFromContext(r), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrTestNotFoundOne):
			response.NotFound(w, err.Error())
		case errors.Is(err, usecase.ErrNotTestOwner):
			response.Forbidden(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to delete test")
		}
		return
	}

	response.Success(w, http.StatusOK, "Test deleted", nil)
}

// actorFromContext returns the caller's ID for ownership checks when
// the caller is a vendor, and nil for admins who may touch any test
func actorFromContext(r *http.Request) *uuid.UUID {
	roleID, ok := middleware.GetRoleIDFromContext(r.Context())
	if !ok || roleID != entity.RoleIDVendor {
		return nil
	}
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return nil
	}
	return &userID
}

func listFilterFromQuery(r *http.Request, limit, offset int) (usecase.TestListFilter, error) {
	filter := usecase.TestListFilter{
		Name:     r.URL.Query().Get("name"),
		Status:   r.URL.Query().Get("status"),
		Category: r.URL.Query().Get("category"),
		Limit:    limit,
		Offset:   offset,
	}

	if v := r.URL.Query().Get("organ_id"); v != "" {
		organID, err := uuid.Parse(v)
		if err != nil {
			return filter, err
		}
		filter.OrganID = &organID
	}
	if v := r.URL.Query().Get("vendor_id"); v != "" {
		vendorID, err := uuid.Parse(v)
		if err != nil {
			return filter, err
		}
		filter.VendorID = &vendorID
	}

	return filter, nil
}
