package entity

import (
	"time"

	"github.com/google/uuid"
)

// Faq is a public question/answer entry managed by admins
type Faq struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Question  string    `gorm:"type:text;not null" json:"question"`
	Answer    string    `gorm:"type:text;not null" json:"answer"`
	Position  int       `gorm:"not null;default:0;index" json:"position"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Faq) TableName() string {
	return "faqs"
}
