package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MechanicProfile is the 1:1 extension of a MECHANIC user. It is created at
// registration time and mutated by admin verification and by review
// aggregation.
type MechanicProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`

	CNIC            string `gorm:"not null" json:"cnic"`
	ExperienceYears int    `gorm:"default:0" json:"experienceYears"`

	IsVerified      bool    `gorm:"default:false" json:"isVerified"`
	IsOnline        bool    `gorm:"default:false" json:"isOnline"`
	ServiceRadiusKm float64 `gorm:"default:10" json:"serviceRadiusKm"`

	Categories CategoryList `gorm:"type:text;not null" json:"vehicleCategories"`

	Rating       float64 `gorm:"default:0" json:"rating"`
	TotalReviews int     `gorm:"default:0" json:"totalReviews"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Address   string   `json:"address"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *MechanicProfile) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}
