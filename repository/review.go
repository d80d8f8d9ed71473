package repository

import (
	"context"

	"github.com/MuhammadAsgharramzan/MechaniXpress/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error)
	// ListByMechanic returns all reviews whose booking resolves to the given
	// mechanic profile, newest first.
	ListByMechanic(ctx context.Context, mechanicID uuid.UUID) ([]models.Review, error)
	// AggregateByMechanic recomputes the mean rating and review count from
	// the source rows.
	AggregateByMechanic(ctx context.Context, mechanicID uuid.UUID) (avg float64, count int64, err error)
}

type GormReviewRepository struct {
	db *gorm.DB
}

func (r *GormReviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *GormReviewRepository) ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Where("booking_id = ?", bookingID).
		Count(&count).Error
	return count > 0, err
}

func (r *GormReviewRepository) ListByMechanic(ctx context.Context, mechanicID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Joins("JOIN bookings ON bookings.id = reviews.booking_id").
		Where("bookings.mechanic_id = ?", mechanicID).
		Order("reviews.created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *GormReviewRepository) AggregateByMechanic(ctx context.Context, mechanicID uuid.UUID) (float64, int64, error) {
	var result struct {
		Avg   *float64
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Select("AVG(reviews.rating) as avg, COUNT(reviews.rating) as count").
		Joins("JOIN bookings ON bookings.id = reviews.booking_id").
		Where("bookings.mechanic_id = ?", mechanicID).
		Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}
	if result.Avg == nil {
		return 0, result.Count, nil
	}
	return *result.Avg, result.Count, nil
}
