package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending    = "PENDING"
	StatusConfirmed  = "CONFIRMED"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
	StatusCancelled  = "CANCELLED"
)

// Booking is the central entity of the marketplace. It is created by a
// customer, claimed by exactly one mechanic and only ever state-transitioned,
// never deleted. TotalCost is a pricing snapshot taken at creation time and
// is not recomputed when the catalog changes.
type Booking struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BookingNumber string    `gorm:"uniqueIndex;not null" json:"bookingNumber"`

	CustomerID uuid.UUID  `gorm:"type:uuid;index;not null" json:"customerId"`
	VehicleID  uuid.UUID  `gorm:"type:uuid;index;not null" json:"vehicleId"`
	ServiceID  uuid.UUID  `gorm:"type:uuid;index;not null" json:"serviceId"`
	MechanicID *uuid.UUID `gorm:"type:uuid;index" json:"mechanicId"` // nil until claimed, immutable after

	Status string `gorm:"type:varchar(20);index;not null;default:'PENDING'" json:"status"`

	ScheduledDate time.Time `gorm:"not null" json:"scheduledDate"`
	ScheduledTime string    `gorm:"not null" json:"scheduledTime"`

	LocationAddress    string  `gorm:"not null" json:"locationAddress"`
	LocationLat        float64 `json:"locationLat"`
	LocationLng        float64 `json:"locationLng"`
	ProblemDescription string  `gorm:"type:text" json:"problemDescription"`

	TotalCost float64 `gorm:"type:decimal(10,2);not null" json:"totalCost"`

	Customer *User            `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Vehicle  *Vehicle         `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	Service  *Service         `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Mechanic *MechanicProfile `gorm:"foreignKey:MechanicID" json:"mechanic,omitempty"`

	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	AcceptedAt  *time.Time `json:"acceptedAt,omitempty"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}

// BookingTransitions is the explicit set of legal status transitions.
// COMPLETED and CANCELLED are terminal. Skipping IN_PROGRESS is not allowed.
var BookingTransitions = map[string][]string{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusInProgress},
	StatusInProgress: {StatusCompleted},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// CanTransition reports whether from -> to is a legal status transition.
func CanTransition(from, to string) bool {
	for _, s := range BookingTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ApplyTransition moves the booking to a new status and stamps the matching
// timestamp. It fails without mutating the booking when the transition is
// not legal.
func ApplyTransition(b *Booking, to string, now time.Time) error {
	if b == nil {
		return fmt.Errorf("booking is nil")
	}
	if !CanTransition(b.Status, to) {
		return fmt.Errorf("invalid booking status transition: %s -> %s", b.Status, to)
	}

	b.Status = to

	switch to {
	case StatusConfirmed:
		if b.AcceptedAt == nil {
			t := now
			b.AcceptedAt = &t
		}
	case StatusInProgress:
		if b.StartedAt == nil {
			t := now
			b.StartedAt = &t
		}
	case StatusCompleted:
		if b.CompletedAt == nil {
			t := now
			b.CompletedAt = &t
		}
	case StatusCancelled:
		if b.CancelledAt == nil {
			t := now
			b.CancelledAt = &t
		}
	}
	return nil
}

// BookingCounter is a single-row table backing sequential booking numbers.
// Incrementing it inside the booking-create transaction serializes number
// assignment; the unique index on booking_number is the backstop.
type BookingCounter struct {
	ID    int   `gorm:"primary_key"`
	Value int64 `gorm:"not null;default:0"`
}
