package repository

import (
	"context"
	"errors"

	"trendmatch/internal/models"

	"gorm.io/gorm"
)

// CampaignRepository defines persistence operations for campaigns.
type CampaignRepository interface {
	Create(ctx context.Context, campaign *models.Campaign) error
	GetByID(ctx context.Context, id uint) (*models.Campaign, error)
	ListByBrand(ctx context.Context, brandID uint) ([]models.Campaign, error)
	ListActive(ctx context.Context) ([]models.Campaign, error)
	Update(ctx context.Context, campaign *models.Campaign) error
	Delete(ctx context.Context, id uint) error
}

type campaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository returns a new CampaignRepository implementation.
func NewCampaignRepository(db *gorm.DB) CampaignRepository {
	return &campaignRepository{db: db}
}

func (r *campaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	if err := r.db.WithContext(ctx).Create(campaign).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *campaignRepository) GetByID(ctx context.Context, id uint) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := r.db.WithContext(ctx).Preload("Brand").First(&campaign, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Campaign", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &campaign, nil
}

func (r *campaignRepository) ListByBrand(ctx context.Context, brandID uint) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	if err := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Order("created_at DESC").
		Find(&campaigns).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return campaigns, nil
}

func (r *campaignRepository) ListActive(ctx context.Context) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	if err := r.db.WithContext(ctx).
		Preload("Brand").
		Where("status = ?", models.CampaignActive).
		Order("created_at DESC").
		Find(&campaigns).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return campaigns, nil
}

func (r *campaignRepository) Update(ctx context.Context, campaign *models.Campaign) error {
	if err := r.db.WithContext(ctx).Save(campaign).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Delete removes the campaign row only. Applications referencing it are left
// in place, matching the documented no-cascade behavior.
func (r *campaignRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Campaign{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
