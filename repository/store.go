package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store bundles the per-entity repositories behind one injectable handle.
// There is no package-level database global; every consumer receives a Store.
type Store struct {
	db *gorm.DB

	Users         UserRepository
	Mechanics     MechanicRepository
	Vehicles      VehicleRepository
	Services      ServiceRepository
	Bookings      BookingRepository
	Reviews       ReviewRepository
	Notifications NotificationRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:            db,
		Users:         &GormUserRepository{db: db},
		Mechanics:     &GormMechanicRepository{db: db},
		Vehicles:      &GormVehicleRepository{db: db},
		Services:      &GormServiceRepository{db: db},
		Bookings:      &GormBookingRepository{db: db},
		Reviews:       &GormReviewRepository{db: db},
		Notifications: &GormNotificationRepository{db: db},
	}
}

// Transaction runs fn against a Store bound to a single database transaction.
// Any error rolls the whole transaction back.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
