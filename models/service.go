package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is an admin-managed catalog entry referenced by bookings for
// pricing.
type Service struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Category    string    `gorm:"type:varchar(10);not null" json:"category"` // CAR or BIKE

	BasePrice      float64 `gorm:"type:decimal(10,2);not null" json:"basePrice"`
	ConvenienceFee float64 `gorm:"type:decimal(10,2);default:0" json:"convenienceFee"`

	EstimatedDuration string `json:"estimatedDuration"`
	IsActive          bool   `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
