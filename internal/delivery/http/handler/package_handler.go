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

type PackageHandler struct {
	packageUsecase usecase.PackageUsecase
	validator      *validator.CustomValidator
}

func NewPackageHandler(packageUsecase usecase.PackageUsecase, validator *validator.CustomValidator) *PackageHandler {
	return &PackageHandler{
		packageUsecase: packageUsecase,
		validator:      validator,
	}
}

func (h *PackageHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.CreatePackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.packageUsecase.CreatePackage(r.Context(), adminID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTestNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create package")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Package created", result)
}

func (h *PackageHandler) GetPackages(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := parsePagination(r)

	packages, total, err := h.packageUsecase.GetPackages(r.Context(), limit, offset)
	if err != nil {
		response.InternalServerError(w, "Failed to load packages")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Packages loaded", dto.PackageListResponse{Packages: packages}, buildMeta(page, limit, total))
}

func (h *PackageHandler) GetPackage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid package ID", nil)
		return
	}

	result, err := h.packageUsecase.GetPackage(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPackageNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to load package")
		}
		return
	}

	response.Success(w, http.StatusOK, "Package loaded", result)
}

func (h *PackageHandler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid package ID", nil)
		return
	}

	var req dto.UpdatePackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.packageUsecase.UpdatePackage(r.Context(), adminID, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPackageNotFound),
			errors.Is(err, usecase.ErrTestNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update package")
		}
		return
	}

	response.Success(w, http.StatusOK, "Package updated", result)
}

func (h *PackageHandler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid package ID", nil)
		return
	}

	if err := h.packageUsecase.DeletePackage(r.Context(), adminID, id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrPackageNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to delete package")
		}
		return
	}

	response.Success(w, http.StatusOK, "Package deleted", nil)
}
