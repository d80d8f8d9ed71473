package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is created once per completed booking by its customer. The unique
// index on BookingID enforces one review per booking.
type Review struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BookingID  uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"bookingId"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customerId"`

	Rating  int    `gorm:"not null" json:"rating"` // 1..5
	Comment string `gorm:"type:text" json:"comment,omitempty"`

	Customer *User    `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Booking  *Booking `gorm:"foreignKey:BookingID" json:"booking,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
