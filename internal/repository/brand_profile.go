package repository

import (
	"context"
	"errors"

	"trendmatch/internal/cache"
	"trendmatch/internal/models"

	"gorm.io/gorm"
)

// BrandProfileRepository defines persistence operations for brand profiles.
type BrandProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.BrandProfile, error)
	GetByID(ctx context.Context, id uint) (*models.BrandProfile, error)
	Upsert(ctx context.Context, profile *models.BrandProfile) (*models.BrandProfile, error)
}

type brandProfileRepository struct {
	db *gorm.DB
}

// NewBrandProfileRepository returns a new BrandProfileRepository implementation.
func NewBrandProfileRepository(db *gorm.DB) BrandProfileRepository {
	return &brandProfileRepository{db: db}
}

func (r *brandProfileRepository) GetByUserID(ctx context.Context, userID uint) (*models.BrandProfile, error) {
	var profile models.BrandProfile
	key := cache.BrandProfileKey(userID)

	err := cache.Aside(ctx, key, &profile, cache.ProfileTTL, func() error {
		if err := r.db.WithContext(ctx).
			Preload("User").
			Where("user_id = ?", userID).
			First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Brand profile", userID)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *brandProfileRepository) GetByID(ctx context.Context, id uint) (*models.BrandProfile, error) {
	var profile models.BrandProfile
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&profile, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Brand profile", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

// Upsert creates the caller's profile or updates it in place, keyed by user id.
func (r *brandProfileRepository) Upsert(ctx context.Context, profile *models.BrandProfile) (*models.BrandProfile, error) {
	var existing models.BrandProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", profile.UserID).First(&existing).Error
	switch {
	case err == nil:
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
		if saveErr := r.db.WithContext(ctx).Save(profile).Error; saveErr != nil {
			return nil, models.NewInternalError(saveErr)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if createErr := r.db.WithContext(ctx).Create(profile).Error; createErr != nil {
			if isUniqueConstraintError(createErr) {
				return nil, models.NewValidationError("Profile already exists")
			}
			return nil, models.NewInternalError(createErr)
		}
	default:
		return nil, models.NewInternalError(err)
	}

	cache.InvalidateBrandProfile(ctx, profile.UserID)
	return r.GetByID(ctx, profile.ID)
}
