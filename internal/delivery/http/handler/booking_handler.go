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

// BookingHandler serves the patient side of bookings
type BookingHandler struct {
	checkoutUsecase usecase.CheckoutUsecase
	validator       *validator.CustomValidator
}

func NewBookingHandler(checkoutUsecase usecase.CheckoutUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		checkoutUsecase: checkoutUsecase,
		validator:       validator,
	}
}

func (h *BookingHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.checkoutUsecase.Checkout(r.Context(), patientID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrVendorNotAvailable),
			errors.Is(err, usecase.ErrTestNotFound),
			errors.Is(err, usecase.ErrPatientProfileMissing):
			response.NotFound(w, err.Error())
		case errors.Is(err, usecase.ErrTestUnavailable),
			errors.Is(err, usecase.ErrInvalidAppointment),
			errors.Is(err, usecase.ErrAppointmentInPast),
			errors.Is(err, usecase.ErrCouponNotApplicable):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to place booking")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Booking placed", result)
}

func (h *BookingHandler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	result, err := h.checkoutUsecase.GetMyBookings(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to load bookings")
		return
	}

	response.Success(w, http.StatusOK, "Bookings loaded", result)
}

func (h *BookingHandler) GetMyBookingsGrouped(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	result, err := h.checkoutUsecase.GetMyBookingsGrouped(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to load bookings")
		return
	}

	response.Success(w, http.StatusOK, "Bookings loaded", result)
}

func (h *BookingHandler) GetMyBooking(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	bookingID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	result, err := h.checkoutUsecase.GetMyBooking(r.Context(), patientID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to load booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking loaded", result)
}
