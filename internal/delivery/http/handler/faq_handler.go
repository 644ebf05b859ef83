package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"diagnolab/internal/delivery/dto"
	"diagnolab/internal/usecase"
	"diagnolab/pkg/response"
	"diagnolab/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type FaqHandler struct {
	faqUsecase usecase.FaqUsecase
	validator  *validator.CustomValidator
}

func NewFaqHandler(faqUsecase usecase.FaqUsecase, validator *validator.CustomValidator) *FaqHandler {
	return &FaqHandler{
		faqUsecase: faqUsecase,
		validator:  validator,
	}
}

func (h *FaqHandler) CreateFaq(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateFaqRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.faqUsecase.CreateFaq(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create faq")
		return
	}

	response.Success(w, http.StatusCreated, "Faq created", result)
}

func (h *FaqHandler) GetFaqs(w http.ResponseWriter, r *http.Request) {
	faqs, err := h.faqUsecase.GetFaqs(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to load faqs")
		return
	}

	response.Success(w, http.StatusOK, "Faqs loaded", dto.FaqListResponse{Faqs: faqs})
}

func (h *FaqHandler) UpdateFaq(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid faq ID", nil)
		return
	}

	var req dto.UpdateFaqRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.faqUsecase.UpdateFaq(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrFaqNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update faq")
		}
		return
	}

	response.Success(w, http.StatusOK, "Faq updated", result)
}

func (h *FaqHandler) DeleteFaq(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid faq ID", nil)
		return
	}

	if err := h.faqUsecase.DeleteFaq(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrFaqNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to delete faq")
		}
		return
	}

	response.Success(w, http.StatusOK, "Faq deleted", nil)
}
