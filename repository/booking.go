package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/MuhammadAsgharramzan/MechaniXpress/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	// Create assigns the next sequential booking number and inserts the row
	// in one transaction.
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	// GetDetailed loads the booking with its customer, vehicle, service and
	// mechanic (including the mechanic's user) for display.
	GetDetailed(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Booking, error)
	// ListPendingByCategories returns PENDING bookings whose vehicle category
	// is in the given set, oldest first.
	ListPendingByCategories(ctx context.Context, categories []string) ([]models.Booking, error)
	ListActiveByMechanic(ctx context.Context, mechanicID uuid.UUID) ([]models.Booking, error)
	// ListUpcoming returns still-open bookings scheduled inside [from, to),
	// with the customer loaded, for reminder fan-out.
	ListUpcoming(ctx context.Context, from, to time.Time) ([]models.Booking, error)
	// Claim is the atomic check-and-set for job acceptance: the status
	// precondition is re-checked by the database at commit time. It reports
	// whether this caller won the claim.
	Claim(ctx context.Context, bookingID, mechanicID uuid.UUID, at time.Time) (bool, error)
	// CancelPending cancels the booking only if it is still PENDING.
	CancelPending(ctx context.Context, bookingID uuid.UUID, at time.Time) (bool, error)
	// SaveTransition persists a status change applied by the state machine.
	SaveTransition(ctx context.Context, booking *models.Booking) error
	Count(ctx context.Context) (int64, error)
	SumCompletedCost(ctx context.Context) (float64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type GormBookingRepository struct {
	db *gorm.DB
}

func (r *GormBookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The counter UPDATE takes a row lock for the remainder of the
		// transaction, so concurrent creations serialize here instead of
		// racing on a row count.
		res := tx.Model(&models.BookingCounter{}).
			Where("id = ?", 1).
			Update("value", gorm.Expr("value + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			if err := tx.Create(&models.BookingCounter{ID: 1, Value: 1}).Error; err != nil {
				return err
			}
		}

		var counter models.BookingCounter
		if err := tx.First(&counter, "id = ?", 1).Error; err != nil {
			return err
		}

		booking.BookingNumber = fmt.Sprintf("MX-%d-%03d", time.Now().Year(), counter.Value)
		return tx.Create(booking).Error
	})
}

func (r *GormBookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *GormBookingRepository) GetDetailed(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Vehicle").
		Preload("Service").
		Preload("Mechanic").
		Preload("Mechanic.User").
		First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *GormBookingRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Vehicle").
		Preload("Mechanic").
		Preload("Mechanic.User").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *GormBookingRepository) ListPendingByCategories(ctx context.Context, categories []string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Vehicle").
		Preload("Customer").
		Joins("JOIN vehicles ON vehicles.id = bookings.vehicle_id").
		Where("bookings.status = ? AND vehicles.category IN ?", models.StatusPending, categories).
		Order("bookings.created_at ASC").
		Find(&bookings).Error
	return bookings, err
}

func (r *GormBookingRepository) ListActiveByMechanic(ctx context.Context, mechanicID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Vehicle").
		Preload("Customer").
		Where("mechanic_id = ? AND status IN ?", mechanicID,
			[]string{models.StatusConfirmed, models.StatusInProgress}).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *GormBookingRepository) ListUpcoming(ctx context.Context, from, to time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Where("scheduled_date >= ? AND scheduled_date < ? AND status IN ?", from, to,
			[]string{models.StatusPending, models.StatusConfirmed}).
		Order("scheduled_date ASC").
		Find(&bookings).Error
	return bookings, err
}

func (r *GormBookingRepository) Claim(ctx context.Context, bookingID, mechanicID uuid.UUID, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("id = ? AND status = ?", bookingID, models.StatusPending).
		Updates(map[string]interface{}{
			"status":      models.StatusConfirmed,
			"mechanic_id": mechanicID,
			"accepted_at": at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *GormBookingRepository) CancelPending(ctx context.Context, bookingID uuid.UUID, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("id = ? AND status = ?", bookingID, models.StatusPending).
		Updates(map[string]interface{}{
			"status":       models.StatusCancelled,
			"cancelled_at": at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *GormBookingRepository) SaveTransition(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Model(booking).
		Select("status", "accepted_at", "started_at", "completed_at", "cancelled_at").
		Updates(booking).Error
}

func (r *GormBookingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Booking{}).Count(&count).Error
	return count, err
}

func (r *GormBookingRepository) SumCompletedCost(ctx context.Context) (float64, error) {
	var sum *float64
	err := r.db.WithContext(ctx).Model(&models.Booking{}).
		Select("SUM(total_cost)").
		Where("status = ?", models.StatusCompleted).
		Scan(&sum).Error
	if err != nil || sum == nil {
		return 0, err
	}
	return *sum, nil
}

func (r *GormBookingRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&models.Booking{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Status] = r.Count
	}
	return out, nil
}
