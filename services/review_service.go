package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/MuhammadAsgharramzan/MechaniXpress/models"
	"github.com/MuhammadAsgharramzan/MechaniXpress/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewService creates reviews for completed bookings and keeps the
// mechanic's rolling rating in sync. The rating is recomputed from the source
// rows on every write; review volume is low enough that correctness beats an
// incremental average.
type ReviewService struct {
	store    *repository.Store
	notifier *NotificationService
}

func NewReviewService(store *repository.Store, notifier *NotificationService) *ReviewService {
	return &ReviewService{store: store, notifier: notifier}
}

type CreateReviewInput struct {
	BookingID uuid.UUID
	Rating    int
	Comment   string
}

// CreateReview inserts the review and recomputes the mechanic's aggregate in
// a single transaction, so a review can never land without the rating update.
func (s *ReviewService) CreateReview(ctx context.Context, customerID uuid.UUID, in CreateReviewInput) (*models.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, Validationf("Rating must be between 1 and 5")
	}

	booking, err := s.store.Bookings.GetByID(ctx, in.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundf("Booking not found")
		}
		return nil, err
	}
	if booking.CustomerID != customerID {
		return nil, Authorizationf("Unauthorized")
	}
	if booking.Status != models.StatusCompleted {
		return nil, Validationf("Can only review completed bookings")
	}

	exists, err := s.store.Reviews.ExistsForBooking(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, Conflictf("Booking has already been reviewed")
	}

	review := &models.Review{
		BookingID:  in.BookingID,
		CustomerID: customerID,
		Rating:     in.Rating,
		Comment:    in.Comment,
	}

	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.Reviews.Create(ctx, review); err != nil {
			return err
		}
		if booking.MechanicID == nil {
			return nil
		}
		avg, count, err := tx.Reviews.AggregateByMechanic(ctx, *booking.MechanicID)
		if err != nil {
			return err
		}
		return tx.Mechanics.UpdateRating(ctx, *booking.MechanicID, avg, count)
	})
	if err != nil {
		return nil, err
	}

	if booking.MechanicID != nil {
		if profile, perr := s.store.Mechanics.GetByID(ctx, *booking.MechanicID); perr == nil {
			s.notifier.Notify(ctx, profile.UserID,
				fmt.Sprintf("You received a %d-star review for booking %s.", in.Rating, booking.BookingNumber))
		}
	}

	return review, nil
}

// ListMechanicReviews returns a mechanic's reviews, newest first.
func (s *ReviewService) ListMechanicReviews(ctx context.Context, mechanicID uuid.UUID) ([]models.Review, error) {
	return s.store.Reviews.ListByMechanic(ctx, mechanicID)
}
