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

type CouponHandler struct {
	couponUsecase usecase.CouponUsecase
	validator     *validator.CustomValidator
}

func NewCouponHandler(couponUsecase usecase.CouponUsecase, validator *validator.CustomValidator) *CouponHandler {
	return &CouponHandler{
		couponUsecase: couponUsecase,
		validator:     validator,
	}
}

func (h *CouponHandler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.CreateCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	// Vendors may only issue coupons scoped to their own lab
	vendorScope := req.VendorID
	if roleID, ok := middleware.GetRoleIDFromContext(r.Context()); ok && roleID == entity.RoleIDVendor {
		vendorScope = &actorID
	}

	result, err := h.couponUsecase.CreateCoupon(r.Context(), actorID, vendorScope, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCouponAlreadyExists):
			response.Error(w, http.StatusConflict, err.Error(), nil)
		case errors.Is(err, usecase.ErrCouponWindow),
			errors.Is(err, usecase.ErrCouponValue):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create coupon")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Coupon created", result)
}

func (h *CouponHandler) GetCoupons(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	// Vendors see their own coupons; admins see all
	var vendorScope *uuid.UUID
	if roleID, ok := middleware.GetRoleIDFromContext(r.Context()); ok && roleID == entity.RoleIDVendor {
		vendorScope = &actorID
	}

	page, limit, offset := parsePagination(r)

	coupons, total, err := h.couponUsecase.GetCoupons(r.Context(), vendorScope, limit, offset)
	if err != nil {
		response.InternalServerError(w, "Failed to load coupons")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Coupons loaded", dto.CouponListResponse{Coupons: coupons}, buildMeta(page, limit, total))
}

func (h *CouponHandler) GetCoupon(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid coupon ID", nil)
		return
	}

	result, err := h.couponUsecase.GetCoupon(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCouponNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to load coupon")
		}
		return
	}

	response.Success(w, http.StatusOK, "Coupon loaded", result)
}

func (h *CouponHandler) ExpireCoupon(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	code := mux.Vars(r)["code"]
	if code == "" {
		response.Error(w, http.StatusBadRequest, "Coupon code is required", nil)
		return
	}

	if err := h.couponUsecase.ExpireCoupon(r.Context(), actorID, code); err != nil {
		switch {
		case errors.Is(err, usecase.ErrCouponNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to expire coupon")
		}
		return
	}

	response.Success(w, http.StatusOK, "Coupon expired", nil)
}
