package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateTestRequest struct {
	Name        string      `json:"name" validate:"required,min=2"`
	OrganID     uuid.UUID   `json:"organ_id" validate:"required"`
	Price       string      `json:"price" validate:"required,pricerange"`
	Status      string      `json:"status" validate:"omitempty,oneof=active inactive"`
	Overview    string      `json:"overview" validate:"omitempty"`
	Preparation string      `json:"preparation" validate:"omitempty"`
	Importance  string      `json:"importance" validate:"omitempty"`
	ImageURL    string      `json:"image_url" validate:"omitempty,url"`
	Category    string      `json:"category" validate:"omitempty"`
	LabIDs      []uuid.UUID `json:"lab_ids" validate:"omitempty,dive,required"`
}

type UpdateTestRequest struct {
	Name        string      `json:"name" validate:"required,min=2"`
	OrganID     uuid.UUID   `json:"organ_id" validate:"required"`
	Price       string      `json:"price" validate:"required,pricerange"`
	Status      string      `json:"status" validate:"required,oneof=active inactive"`
	Overview    string      `json:"overview" validate:"omitempty"`
	Preparation string      `json:"preparation" validate:"omitempty"`
	Importance  string      `json:"importance" validate:"omitempty"`
	ImageURL    string      `json:"image_url" validate:"omitempty,url"`
	Category    string      `json:"category" validate:"omitempty"`
	LabIDs      []uuid.UUID `json:"lab_ids" validate:"omitempty,dive,required"`
}

// Response DTOs

type LabSummaryResponse struct {
	VendorID uuid.UUID `json:"vendor_id"`
	LabName  string    `json:"lab_name"`
	City     string    `json:"city,omitempty"`
}

type TestResponse struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Organ       *OrganResponse       `json:"organ,omitempty"`
	VendorID    *uuid.UUID           `json:"vendor_id,omitempty"`
	Price       string               `json:"price"`
	Status      string               `json:"status"`
	Overview    string               `json:"overview,omitempty"`
	Preparation string               `json:"preparation,omitempty"`
	Importance  string               `json:"importance,omitempty"`
	ImageURL    string               `json:"image_url,omitempty"`
	Category    string               `json:"category,omitempty"`
	Labs        []LabSummaryResponse `json:"labs,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

type TestListResponse struct {
	Tests []TestResponse `json:"tests"`
}

// TestGroupResponse groups same-name tests across vendors for display
type TestGroupResponse struct {
	Name     string         `json:"name"`
	Variants []TestResponse `json:"variants"`
}

type TestGroupListResponse struct {
	Groups []TestGroupResponse `json:"groups"`
	Total  int                 `json:"total"`
}
