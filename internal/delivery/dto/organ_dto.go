package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateOrganRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type UpdateOrganRequest struct {
	Name   string `json:"name" validate:"required,min=2,max=100"`
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

// Response DTOs

type OrganResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OrganListResponse struct {
	Organs []OrganResponse `json:"organs"`
}
