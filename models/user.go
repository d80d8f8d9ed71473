package models

import (
	"time"

	"github.com/MuhammadAsgharramzan/MechaniXpress/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleCustomer = "CUSTOMER"
	RoleMechanic = "MECHANIC"
	RoleAdmin    = "ADMIN"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone    string    `gorm:"uniqueIndex;not null" json:"phone"`
	Password string    `gorm:"not null" json:"-"`
	Name     string    `gorm:"not null" json:"name"`

	Role string `gorm:"type:varchar(20);not null" json:"role"` // CUSTOMER, MECHANIC or ADMIN

	ResetToken       *string    `json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`

	Vehicles        []Vehicle        `gorm:"foreignKey:CustomerID" json:"vehicles,omitempty"`
	MechanicProfile *MechanicProfile `gorm:"foreignKey:UserID" json:"mechanicProfile,omitempty"`
	Notifications   []Notification   `gorm:"foreignKey:UserID" json:"-"`

	LastLogin *time.Time `json:"lastLogin,omitempty"`
	IsActive  bool       `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Initialize UUID and hash the password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
