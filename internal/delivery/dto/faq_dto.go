package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateFaqRequest struct {
	Question string `json:"question" validate:"required,min=5"`
	Answer   string `json:"answer" validate:"required,min=5"`
	Position int    `json:"position" validate:"gte=0"`
}

type UpdateFaqRequest struct {
	Question string `json:"question" validate:"required,min=5"`
	Answer   string `json:"answer" validate:"required,min=5"`
	Position int    `json:"position" validate:"gte=0"`
}

// Response DTOs

type FaqResponse struct {
	ID        uuid.UUID `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type FaqListResponse struct {
	Faqs []FaqResponse `json:"faqs"`
}
