package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreatePackageRequest struct {
	Name        string          `json:"name" validate:"required,min=2"`
	Description string          `json:"description" validate:"omitempty"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	TestIDs     []uuid.UUID     `json:"test_ids" validate:"required,min=1,dive,required"`
}

type UpdatePackageRequest struct {
	Name        string          `json:"name" validate:"required,min=2"`
	Description string          `json:"description" validate:"omitempty"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Status      string          `json:"status" validate:"required,oneof=active inactive"`
	TestIDs     []uuid.UUID     `json:"test_ids" validate:"required,min=1,dive,required"`
}

// Response DTOs

type PackageResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status"`
	Tests       []TestResponse  `json:"tests"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type PackageListResponse struct {
	Packages []PackageResponse `json:"packages"`
}
