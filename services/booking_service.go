package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MuhammadAsgharramzan/MechaniXpress/models"
	"github.com/MuhammadAsgharramzan/MechaniXpress/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// BookingService owns the booking state machine: creation, mechanic claims,
// status progression and the access-controlled read paths. All authorization
// decisions for bookings live here rather than in the handlers.
type BookingService struct {
	store    *repository.Store
	notifier *NotificationService
	maps     *MapService
}

func NewBookingService(store *repository.Store, notifier *NotificationService, maps *MapService) *BookingService {
	return &BookingService{store: store, notifier: notifier, maps: maps}
}

type CreateBookingInput struct {
	VehicleID          uuid.UUID
	ServiceID          uuid.UUID
	ScheduledDate      time.Time
	ScheduledTime      string
	LocationAddress    string
	LocationLat        float64
	LocationLng        float64
	ProblemDescription string
}

// CreateBooking creates a PENDING booking for one of the customer's own
// vehicles. The total cost is snapshotted from the service catalog at this
// moment and never recomputed.
func (s *BookingService) CreateBooking(ctx context.Context, customerID uuid.UUID, in CreateBookingInput) (*models.Booking, error) {
	if strings.TrimSpace(in.LocationAddress) == "" {
		return nil, Validationf("Location address is required")
	}
	if in.ScheduledDate.IsZero() {
		return nil, Validationf("Scheduled date is required")
	}

	vehicle, err := s.store.Vehicles.GetByID(ctx, in.VehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, Authorizationf("Invalid vehicle for this user")
		}
		return nil, err
	}
	if vehicle.CustomerID != customerID {
		return nil, Authorizationf("Invalid vehicle for this user")
	}

	service, err := s.store.Services.GetByID(ctx, in.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundf("Service not found")
		}
		return nil, err
	}

	booking := &models.Booking{
		CustomerID:         customerID,
		VehicleID:          vehicle.ID,
		ServiceID:          service.ID,
		Status:             models.StatusPending,
		ScheduledDate:      in.ScheduledDate,
		ScheduledTime:      in.ScheduledTime,
		LocationAddress:    in.LocationAddress,
		LocationLat:        in.LocationLat,
		LocationLng:        in.LocationLng,
		ProblemDescription: in.ProblemDescription,
		TotalCost:          service.BasePrice + service.ConvenienceFee,
	}

	if err := s.store.Bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"bookingNumber": booking.BookingNumber,
		"customerId":    customerID,
	}).Info("booking created")

	s.notifier.Notify(ctx, customerID,
		fmt.Sprintf("Booking %s created for %s. We are finding a mechanic for you.",
			booking.BookingNumber, service.Name))

	return booking, nil
}

// ListCustomerBookings returns all of the customer's bookings, newest first,
// with service, vehicle and mechanic display data attached.
func (s *BookingService) ListCustomerBookings(ctx context.Context, customerID uuid.UUID) ([]models.Booking, error) {
	return s.store.Bookings.ListByCustomer(ctx, customerID)
}

// GetBookingDetails is visible to the owning customer, the assigned mechanic
// and administrators.
func (s *BookingService) GetBookingDetails(ctx context.Context, requesterID uuid.UUID, role string, bookingID uuid.UUID) (*models.Booking, error) {
	booking, err := s.store.Bookings.GetDetailed(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundf("Booking not found")
		}
		return nil, err
	}

	if role == models.RoleAdmin {
		return booking, nil
	}
	isOwner := booking.CustomerID == requesterID
	isAssignedMechanic := booking.Mechanic != nil && booking.Mechanic.UserID == requesterID
	if !isOwner && !isAssignedMechanic {
		return nil, Authorizationf("Unauthorized access to this booking")
	}
	return booking, nil
}

// AvailableJob is a pending booking offered to a mechanic, with a distance
// estimate when the mechanic has registered coordinates. The estimate is
// display-only; it plays no part in the visibility filter.
type AvailableJob struct {
	models.Booking
	Distance *Estimate `json:"distanceEstimate,omitempty"`
}

// ListAvailableJobs returns the PENDING bookings visible to the mechanic:
// those whose vehicle category is in the mechanic's supported set, oldest
// first so waiting customers are served fairly.
func (s *BookingService) ListAvailableJobs(ctx context.Context, mechanicUserID uuid.UUID) ([]AvailableJob, error) {
	profile, err := s.mechanicProfile(ctx, mechanicUserID)
	if err != nil {
		return nil, err
	}
	if len(profile.Categories) == 0 {
		return []AvailableJob{}, nil
	}

	bookings, err := s.store.Bookings.ListPendingByCategories(ctx, profile.Categories)
	if err != nil {
		return nil, err
	}

	jobs := make([]AvailableJob, 0, len(bookings))
	for _, b := range bookings {
		job := AvailableJob{Booking: b}
		if profile.Latitude != nil && profile.Longitude != nil {
			est := s.maps.DistanceAndDuration(
				Coordinates{Lat: *profile.Latitude, Lng: *profile.Longitude},
				Coordinates{Lat: b.LocationLat, Lng: b.LocationLng})
			job.Distance = &est
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// ListMechanicActiveJobs returns the mechanic's CONFIRMED and IN_PROGRESS
// bookings, newest first.
func (s *BookingService) ListMechanicActiveJobs(ctx context.Context, mechanicUserID uuid.UUID) ([]models.Booking, error) {
	profile, err := s.mechanicProfile(ctx, mechanicUserID)
	if err != nil {
		return nil, err
	}
	return s.store.Bookings.ListActiveByMechanic(ctx, profile.ID)
}

// AcceptJob claims a PENDING booking for the mechanic. The PENDING
// precondition is enforced by the database at commit time, so of any number
// of racing mechanics exactly one wins; the rest get a conflict.
func (s *BookingService) AcceptJob(ctx context.Context, mechanicUserID, bookingID uuid.UUID) (*models.Booking, error) {
	profile, err := s.mechanicProfile(ctx, mechanicUserID)
	if err != nil {
		return nil, err
	}

	if _, err := s.store.Bookings.GetByID(ctx, bookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundf("Booking not found")
		}
		return nil, err
	}

	claimed, err := s.store.Bookings.Claim(ctx, bookingID, profile.ID, time.Now())
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, Conflictf("Booking is no longer available")
	}

	booking, err := s.store.Bookings.GetDetailed(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"bookingNumber": booking.BookingNumber,
		"mechanicId":    profile.ID,
	}).Info("job accepted")

	s.notifier.Notify(ctx, booking.CustomerID,
		fmt.Sprintf("Booking %s has been accepted by a mechanic.", booking.BookingNumber))

	return booking, nil
}

// UpdateJobStatus advances a booking along the legal path
// CONFIRMED -> IN_PROGRESS -> COMPLETED. Only the assigned mechanic may call
// it; out-of-order transitions are rejected.
func (s *BookingService) UpdateJobStatus(ctx context.Context, mechanicUserID, bookingID uuid.UUID, newStatus string) (*models.Booking, error) {
	if newStatus != models.StatusInProgress && newStatus != models.StatusCompleted {
		return nil, Validationf("Status must be IN_PROGRESS or COMPLETED")
	}

	profile, err := s.mechanicProfile(ctx, mechanicUserID)
	if err != nil {
		return nil, err
	}

	booking, err := s.store.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundf("Booking not found")
		}
		return nil, err
	}
	if booking.MechanicID == nil || *booking.MechanicID != profile.ID {
		return nil, Authorizationf("Not authorized for this job")
	}

	if err := models.ApplyTransition(booking, newStatus, time.Now()); err != nil {
		return nil, Conflictf("%s", err.Error())
	}
	if err := s.store.Bookings.SaveTransition(ctx, booking); err != nil {
		return nil, err
	}

	switch newStatus {
	case models.StatusInProgress:
		s.notifier.Notify(ctx, booking.CustomerID,
			fmt.Sprintf("Work on booking %s has started.", booking.BookingNumber))
	case models.StatusCompleted:
		s.notifier.Notify(ctx, booking.CustomerID,
			fmt.Sprintf("Booking %s is complete. You can now rate your mechanic.", booking.BookingNumber))
	}

	return booking, nil
}

// CancelBooking cancels the customer's own booking while it is still PENDING.
// The conditional update means a cancel racing an accept cannot both win.
func (s *BookingService) CancelBooking(ctx context.Context, customerID, bookingID uuid.UUID) (*models.Booking, error) {
	booking, err := s.store.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundf("Booking not found")
		}
		return nil, err
	}
	if booking.CustomerID != customerID {
		return nil, Authorizationf("Unauthorized access to this booking")
	}

	cancelled, err := s.store.Bookings.CancelPending(ctx, bookingID, time.Now())
	if err != nil {
		return nil, err
	}
	if !cancelled {
		return nil, Conflictf("Booking can no longer be cancelled")
	}

	return s.store.Bookings.GetByID(ctx, bookingID)
}

func (s *BookingService) mechanicProfile(ctx context.Context, mechanicUserID uuid.UUID) (*models.MechanicProfile, error) {
	profile, err := s.store.Mechanics.GetByUserID(ctx, mechanicUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, Validationf("Mechanic profile not found")
		}
		return nil, err
	}
	return profile, nil
}
