package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vehicle is owned exclusively by one customer and referenced by bookings.
type Vehicle struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customerId"`

	Category     string `gorm:"type:varchar(10);not null" json:"category"` // CAR or BIKE
	Make         string `gorm:"not null" json:"make"`
	Model        string `gorm:"not null" json:"model"`
	Year         int    `gorm:"not null" json:"year"`
	LicensePlate string `json:"licensePlate,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return
}
