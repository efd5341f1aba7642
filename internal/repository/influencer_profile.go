package repository

import (
	"context"
	"errors"
	"fmt"

	"trendmatch/internal/cache"
	"trendmatch/internal/models"

	"gorm.io/gorm"
)

// InfluencerFilter holds the optional query filters for browsing influencer
// profiles. All set filters are combined with logical AND.
type InfluencerFilter struct {
	Niche        string
	MinFollowers *int
	MaxFollowers *int
	MinPrice     *int
	MaxPrice     *int
	Location     string
	Tier         models.Tier
}

// InfluencerProfileRepository defines persistence operations for influencer profiles.
type InfluencerProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.InfluencerProfile, error)
	GetByID(ctx context.Context, id uint) (*models.InfluencerProfile, error)
	Upsert(ctx context.Context, profile *models.InfluencerProfile) (*models.InfluencerProfile, error)
	List(ctx context.Context, filter InfluencerFilter) ([]models.InfluencerProfile, error)
	ListByUserIDs(ctx context.Context, userIDs []uint) ([]models.InfluencerProfile, error)
}

type influencerProfileRepository struct {
	db *gorm.DB
}

// NewInfluencerProfileRepository returns a new InfluencerProfileRepository implementation.
func NewInfluencerProfileRepository(db *gorm.DB) InfluencerProfileRepository {
	return &influencerProfileRepository{db: db}
}

func (r *influencerProfileRepository) GetByUserID(ctx context.Context, userID uint) (*models.InfluencerProfile, error) {
	var profile models.InfluencerProfile
	key := cache.InfluencerProfileKey(userID)

	err := cache.Aside(ctx, key, &profile, cache.ProfileTTL, func() error {
		if err := r.db.WithContext(ctx).
			Preload("User").
			Where("user_id = ?", userID).
			First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Influencer profile", userID)
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

func (r *influencerProfileRepository) GetByID(ctx context.Context, id uint) (*models.InfluencerProfile, error) {
	var profile models.InfluencerProfile
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&profile, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Influencer profile", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

// Upsert creates the caller's profile or updates it in place, keyed by user
// id. The read-then-write pair is not guarded by a lock; the unique index on
// user_id is the backstop for concurrent first-time saves.
func (r *influencerProfileRepository) Upsert(ctx context.Context, profile *models.InfluencerProfile) (*models.InfluencerProfile, error) {
	var existing models.InfluencerProfile
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

	cache.InvalidateInfluencerProfile(ctx, profile.UserID)
	return r.GetByID(ctx, profile.ID)
}

func (r *influencerProfileRepository) List(ctx context.Context, filter InfluencerFilter) ([]models.InfluencerProfile, error) {
	query := r.db.WithContext(ctx).Preload("User")

	if filter.Niche != "" {
		// Niches is a JSON-serialized string array; membership is a substring
		// match on the quoted element. Works on both Postgres and SQLite.
		query = query.Where("niches LIKE ?", fmt.Sprintf(`%%"%s"%%`, filter.Niche))
	}
	if filter.MinFollowers != nil {
		query = query.Where("followers >= ?", *filter.MinFollowers)
	}
	if filter.MaxFollowers != nil {
		query = query.Where("followers <= ?", *filter.MaxFollowers)
	}
	if filter.MinPrice != nil {
		query = query.Where("collab_cost_min >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("collab_cost_max <= ?", *filter.MaxPrice)
	}
	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE LOWER(?)", "%"+filter.Location+"%")
	}
	if filter.Tier != "" {
		query = query.Where("tier = ?", filter.Tier)
	}

	var profiles []models.InfluencerProfile
	if err := query.Order("followers DESC").Find(&profiles).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}

func (r *influencerProfileRepository) ListByUserIDs(ctx context.Context, userIDs []uint) ([]models.InfluencerProfile, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var profiles []models.InfluencerProfile
	if err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&profiles).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}
