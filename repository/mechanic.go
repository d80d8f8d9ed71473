package repository

import (
	"context"

	"github.com/MuhammadAsgharramzan/MechaniXpress/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MechanicRepository interface {
	Create(ctx context.Context, profile *models.MechanicProfile) error
	Save(ctx context.Context, profile *models.MechanicProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.MechanicProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.MechanicProfile, error)
	// List returns all profiles with their owning user loaded.
	List(ctx context.Context) ([]models.MechanicProfile, error)
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) (*models.MechanicProfile, error)
	// UpdateRating writes a recomputed rolling rating and review count.
	UpdateRating(ctx context.Context, id uuid.UUID, rating float64, totalReviews int64) error
	CountUnverified(ctx context.Context) (int64, error)
	AverageRating(ctx context.Context) (float64, error)
}

type GormMechanicRepository struct {
	db *gorm.DB
}

func (r *GormMechanicRepository) Create(ctx context.Context, profile *models.MechanicProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *GormMechanicRepository) Save(ctx context.Context, profile *models.MechanicProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *GormMechanicRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.MechanicProfile, error) {
	var p models.MechanicProfile
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormMechanicRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.MechanicProfile, error) {
	var p models.MechanicProfile
	if err := r.db.WithContext(ctx).First(&p, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormMechanicRepository) List(ctx context.Context) ([]models.MechanicProfile, error) {
	var profiles []models.MechanicProfile
	err := r.db.WithContext(ctx).Preload("User").Find(&profiles).Error
	return profiles, err
}

func (r *GormMechanicRepository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) (*models.MechanicProfile, error) {
	var p models.MechanicProfile
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	p.IsVerified = verified
	if err := r.db.WithContext(ctx).Model(&p).Update("is_verified", verified).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormMechanicRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating float64, totalReviews int64) error {
	return r.db.WithContext(ctx).Model(&models.MechanicProfile{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"rating":        rating,
			"total_reviews": totalReviews,
		}).Error
}

func (r *GormMechanicRepository) CountUnverified(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.MechanicProfile{}).
		Where("is_verified = ?", false).
		Count(&count).Error
	return count, err
}

func (r *GormMechanicRepository) AverageRating(ctx context.Context) (float64, error) {
	var avg *float64
	err := r.db.WithContext(ctx).Model(&models.MechanicProfile{}).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}
