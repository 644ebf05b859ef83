package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"diagnolab/internal/delivery/dto"
	"diagnolab/internal/delivery/http/middleware"
	"diagnolab/internal/domain/entity"
	"diagnolab/internal/service"
	"diagnolab/internal/usecase"
	"diagnolab/pkg/response"
	"diagnolab/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// VendorBookingHandler serves the lab dashboard side of bookings:
// listing, coupon verification, completion and cancellation
type VendorBookingHandler struct {
	vendorBookingUsecase usecase.VendorBookingUsecase
	validator            *validator.CustomValidator
}

func NewVendorBookingHandler(vendorBookingUsecase usecase.VendorBookingUsecase, validator *validator.CustomValidator) *VendorBookingHandler {
	return &VendorBookingHandler{
		vendorBookingUsecase: vendorBookingUsecase,
		validator:            validator,
	}
}

func (h *VendorBookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	vendorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	result, err := h.vendorBookingUsecase.GetBookings(r.Context(), vendorID, r.URL.Query().Get("status"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidBookingStatus):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to load bookings")
		}
		return
	}

	response.Success(w, http.StatusOK, "Bookings loaded", result)
}

func (h *VendorBookingHandler) GetBookingsGrouped(w http.ResponseWriter, r *http.Request) {
	vendorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	result, err := h.vendorBookingUsecase.GetBookingsGrouped(r.Context(), vendorID, r.URL.Query().Get("status"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidBookingStatus):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to load bookings")
		}
		return
	}

	response.Success(w, http.StatusOK, "Bookings loaded", result)
}

func (h *VendorBookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	vendorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	bookingID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	result, err := h.vendorBookingUsecase.GetBooking(r.Context(), vendorID, bookingID)
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

func (h *VendorBookingHandler) VerifyCoupon(w http.ResponseWriter, r *http.Request) {
	vendorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.VerifyCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.vendorBookingUsecase.VerifyCoupon(r.Context(), vendorID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, service.ErrCouponMismatch),
			errors.Is(err, service.ErrCouponInvalid),
			errors.Is(err, service.ErrCouponExpired):
			response.Error(w, http.StatusUnprocessableEntity, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to verify coupon")
		}
		return
	}

	response.Success(w, http.StatusOK, "Coupon verified", result)
}

func (h *VendorBookingHandler) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	vendorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	bookingID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	var req dto.CompleteBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.vendorBookingUsecase.CompleteBooking(r.Context(), vendorID, bookingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, entity.ErrInvalidTransition):
			response.Error(w, http.StatusConflict, err.Error(), nil)
		case errors.Is(err, entity.ErrInvalidPaymentMark),
			errors.Is(err, usecase.ErrInvalidReportData),
			errors.Is(err, service.ErrNegativeAmount),
			errors.Is(err, service.ErrPercentOutOfRange):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, service.ErrCouponMismatch),
			errors.Is(err, service.ErrCouponInvalid),
			errors.Is(err, service.ErrCouponExpired):
			response.Error(w, http.StatusUnprocessableEntity, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to complete booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking completed", result)
}

func (h *VendorBookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	vendorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	bookingID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	var req dto.CancelBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.vendorBookingUsecase.CancelBooking(r.Context(), vendorID, bookingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, entity.ErrInvalidTransition):
			response.Error(w, http.StatusConflict, err.Error(), nil)
		case errors.Is(err, entity.ErrEmptyCancelReason):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to cancel booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking cancelled", result)
}
