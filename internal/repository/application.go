package repository

import (
	"context"
	"errors"
	"time"

	"trendmatch/internal/models"

	"gorm.io/gorm"
)

// ApplicationRepository defines persistence operations for campaign applications.
type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	GetByID(ctx context.Context, id uint) (*models.Application, error)
	GetByCampaignAndInfluencer(ctx context.Context, campaignID, influencerID uint) (*models.Application, error)
	ListByInfluencer(ctx context.Context, influencerID uint) ([]models.Application, error)
	ListByCampaign(ctx context.Context, campaignID uint) ([]models.Application, error)
	UpdateStatus(ctx context.Context, id uint, status models.ApplicationStatus) (*models.Application, error)
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository returns a new ApplicationRepository implementation.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, application *models.Application) error {
	if err := r.db.WithContext(ctx).Create(application).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("You have already applied to this campaign")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id uint) (*models.Application, error) {
	var application models.Application
	if err := r.db.WithContext(ctx).
		Preload("Campaign").
		First(&application, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Application", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &application, nil
}

func (r *applicationRepository) GetByCampaignAndInfluencer(ctx context.Context, campaignID, influencerID uint) (*models.Application, error) {
	var application models.Application
	err := r.db.WithContext(ctx).
		Where("campaign_id = ? AND influencer_id = ?", campaignID, influencerID).
		First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &application, nil
}

func (r *applicationRepository) ListByInfluencer(ctx context.Context, influencerID uint) ([]models.Application, error) {
	var applications []models.Application
	if err := r.db.WithContext(ctx).
		Preload("Campaign").
		Preload("Campaign.Brand").
		Where("influencer_id = ?", influencerID).
		Order("created_at DESC").
		Find(&applications).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return applications, nil
}

func (r *applicationRepository) ListByCampaign(ctx context.Context, campaignID uint) ([]models.Application, error) {
	var applications []models.Application
	if err := r.db.WithContext(ctx).
		Preload("Influencer").
		Where("campaign_id = ?", campaignID).
		Order("created_at DESC").
		Find(&applications).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return applications, nil
}

// UpdateStatus sets the review status and bumps UpdatedAt explicitly, so the
// modification time changes even when the status value is written twice.
func (r *applicationRepository) UpdateStatus(ctx context.Context, id uint, status models.ApplicationStatus) (*models.Application, error) {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return r.GetByID(ctx, id)
}
