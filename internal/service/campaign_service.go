// Package service implements the marketplace business rules on top of the
// repository layer: ownership checks, status transitions and profile upserts.
package service

import (
	"context"
	"time"

	"trendmatch/internal/models"
	"trendmatch/internal/repository"
)

type CampaignService struct {
	campaignRepo repository.CampaignRepository
}

type CreateCampaignInput struct {
	BrandID      uint
	Title        string
	Description  string
	Budget       float64
	Requirements string
	Deadline     time.Time
}

type UpdateCampaignInput struct {
	BrandID      uint
	CampaignID   uint
	Title        string
	Description  string
	Budget       *float64
	Requirements string
	Deadline     *time.Time
	Status       models.CampaignStatus
}

func NewCampaignService(campaignRepo repository.CampaignRepository) *CampaignService {
	return &CampaignService{campaignRepo: campaignRepo}
}

func (s *CampaignService) Create(ctx context.Context, in CreateCampaignInput) (*models.Campaign, error) {
	if in.Title == "" || in.Description == "" || in.Requirements == "" {
		return nil, models.NewValidationError("Title, description and requirements are required")
	}
	if in.Budget <= 0 {
		return nil, models.NewValidationError("Budget must be greater than zero")
	}
	if in.Deadline.IsZero() {
		return nil, models.NewValidationError("Deadline is required")
	}

	campaign := &models.Campaign{
		BrandID:      in.BrandID,
		Title:        in.Title,
		Description:  in.Description,
		Budget:       in.Budget,
		Requirements: in.Requirements,
		Deadline:     in.Deadline,
		Status:       models.CampaignActive,
	}
	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// ListFor returns the role-dependent campaign view: brands see their own
// campaigns, influencers see every active campaign with the owning brand
// preloaded. Both newest-first.
func (s *CampaignService) ListFor(ctx context.Context, userID uint, role models.Role) ([]models.Campaign, error) {
	switch role {
	case models.RoleBrand:
		return s.campaignRepo.ListByBrand(ctx, userID)
	case models.RoleInfluencer:
		return s.campaignRepo.ListActive(ctx)
	default:
		return nil, models.NewForbiddenError("Unknown role")
	}
}

func (s *CampaignService) Get(ctx context.Context, id uint) (*models.Campaign, error) {
	return s.campaignRepo.GetByID(ctx, id)
}

func (s *CampaignService) Update(ctx context.Context, in UpdateCampaignInput) (*models.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, in.CampaignID)
	if err != nil {
		return nil, err
	}
	if campaign.BrandID != in.BrandID {
		return nil, models.NewUnauthorizedError("User not authorized")
	}

	if in.Title != "" {
		campaign.Title = in.Title
	}
	if in.Description != "" {
		campaign.Description = in.Description
	}
	if in.Budget != nil {
		if *in.Budget <= 0 {
			return nil, models.NewValidationError("Budget must be greater than zero")
		}
		campaign.Budget = *in.Budget
	}
	if in.Requirements != "" {
		campaign.Requirements = in.Requirements
	}
	if in.Deadline != nil {
		campaign.Deadline = *in.Deadline
	}
	if in.Status != "" {
		if !in.Status.Valid() {
			return nil, models.NewValidationError("Status must be active, completed or cancelled")
		}
		campaign.Status = in.Status
	}

	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// Delete removes the brand's own campaign. Applications pointing at the
// deleted campaign are intentionally left behind (no cascade).
func (s *CampaignService) Delete(ctx context.Context, brandID, campaignID uint) error {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return err
	}
	if campaign.BrandID != brandID {
		return models.NewUnauthorizedError("User not authorized")
	}
	return s.campaignRepo.Delete(ctx, campaignID)
}
