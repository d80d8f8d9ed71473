package services

import (
	"context"
	"testing"
	"time"

	"github.com/MuhammadAsgharramzan/MechaniXpress/models"
	"github.com/MuhammadAsgharramzan/MechaniXpress/repository"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestStore opens a fresh in-memory database per test. A single connection
// keeps every query on the same sqlite instance.
func newTestStore(t *testing.T) *repository.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.MechanicProfile{},
		&models.Vehicle{},
		&models.Service{},
		&models.Booking{},
		&models.BookingCounter{},
		&models.Review{},
		&models.Notification{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return repository.NewStore(db)
}

func newTestServices(t *testing.T) (*repository.Store, *BookingService, *ReviewService) {
	t.Helper()
	store := newTestStore(t)
	notifier := NewNotificationService(store) // no Twilio env, so log-only
	bookings := NewBookingService(store, notifier, NewMapService())
	reviews := NewReviewService(store, notifier)
	return store, bookings, reviews
}

func createCustomer(t *testing.T, store *repository.Store, email, phone string) *models.User {
	t.Helper()
	u := &models.User{
		Email:    email,
		Phone:    phone,
		Password: "password123",
		Name:     "Test Customer",
		Role:     models.RoleCustomer,
	}
	if err := store.Users.Create(context.Background(), u); err != nil {
		t.Fatalf("create customer: %v", err)
	}
	return u
}

func createMechanic(t *testing.T, store *repository.Store, email, phone string, categories models.CategoryList) (*models.User, *models.MechanicProfile) {
	t.Helper()
	u := &models.User{
		Email:    email,
		Phone:    phone,
		Password: "password123",
		Name:     "Test Mechanic",
		Role:     models.RoleMechanic,
	}
	if err := store.Users.Create(context.Background(), u); err != nil {
		t.Fatalf("create mechanic user: %v", err)
	}
	p := &models.MechanicProfile{
		UserID:     u.ID,
		CNIC:       "35202-0000000-1",
		Categories: categories,
		Address:    "Mobile Mechanic",
	}
	if err := store.Mechanics.Create(context.Background(), p); err != nil {
		t.Fatalf("create mechanic profile: %v", err)
	}
	return u, p
}

func createVehicle(t *testing.T, store *repository.Store, customerID uuid.UUID, category string) *models.Vehicle {
	t.Helper()
	v := &models.Vehicle{
		CustomerID: customerID,
		Category:   category,
		Make:       "Honda",
		Model:      "Civic",
		Year:       2019,
	}
	if err := store.Vehicles.Create(context.Background(), v); err != nil {
		t.Fatalf("create vehicle: %v", err)
	}
	return v
}

func createCatalogService(t *testing.T, store *repository.Store, category string, basePrice, fee float64) *models.Service {
	t.Helper()
	s := &models.Service{
		Name:           "Oil Change Package",
		Category:       category,
		BasePrice:      basePrice,
		ConvenienceFee: fee,
		IsActive:       true,
	}
	if err := store.Services.Create(context.Background(), s); err != nil {
		t.Fatalf("create service: %v", err)
	}
	return s
}

func newBookingInput(vehicleID, serviceID uuid.UUID) CreateBookingInput {
	return CreateBookingInput{
		VehicleID:          vehicleID,
		ServiceID:          serviceID,
		ScheduledDate:      time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		ScheduledTime:      "10:00",
		LocationAddress:    "12 Workshop Road",
		LocationLat:        31.52,
		LocationLng:        74.35,
		ProblemDescription: "Engine makes a rattling noise",
	}
}

func kindOf(t *testing.T, err error) Kind {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	svcErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *services.Error, got %T: %v", err, err)
	}
	return svcErr.Kind
}
