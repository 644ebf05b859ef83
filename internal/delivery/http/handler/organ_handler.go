package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"diagnolab/internal/delivery/dto"
	"diagnolab/internal/delivery/http/middleware"
	"diagnolab/internal/usecase"
	"diagnolab/pkg/response"
	"diagnolab/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type OrganHandler struct {
	organUsecase usecase.OrganUsecase
	validator    *validator.CustomValidator
}

func NewOrganHandler(organUsecase usecase.OrganUsecase, validator *validator.CustomValidator) *OrganHandler {
	return &OrganHandler{
		organUsecase: organUsecase,
		validator:    validator,
	}
}

func (h *OrganHandler) CreateOrgan(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.CreateOrganRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.organUsecase.CreateOrgan(r.Context(), adminID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrOrganAlreadyExists):
			response.Error(w, http.StatusConflict, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create organ")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Organ created", result)
}

func (h *OrganHandler) GetOrgans(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := parsePagination(r)

	organs, total, err := h.organUsecase.GetOrgans(r.Context(), limit, offset)
	if err != nil {
		response.InternalServerError(w, "Failed to load organs")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Organs loaded", dto.OrganListResponse{Organs: organs}, buildMeta(page, limit, total))
}

func (h *OrganHandler) GetOrgan(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid organ ID", nil)
		return
	}

	result, err := h.organUsecase.GetOrgan(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrOrganNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to load organ")
		}
		return
	}

	response.Success(w, http.StatusOK, "Organ loaded", result)
}

func (h *OrganHandler) UpdateOrgan(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid organ ID", nil)
		return
	}

	var req dto.UpdateOrganRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.organUsecase.UpdateOrgan(r.Context(), adminID, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrOrganNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, usecase.ErrOrganAlreadyExists):
			response.Error(w, http.StatusConflict, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update organ")
		}
		return
	}

	response.Success(w, http.StatusOK, "Organ updated", result)
}

func (h *OrganHandler) DeleteOrgan(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid organ ID", nil)
		return
	}

	if err := h.organUsecase.DeleteOrgan(r.Context(), adminID, id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrOrganNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, usecase.ErrOrganInUse):
			response.Error(w, http.StatusConflict, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to delete organ")
		}
		return
	}

	response.Success(w, http.StatusOK, "Organ deleted", nil)
}
