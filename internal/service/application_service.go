package service

import (
	"context"

	"trendmatch/internal/middleware"
	"trendmatch/internal/models"
	"trendmatch/internal/observability"
	"trendmatch/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

type ApplicationService struct {
	applicationRepo repository.ApplicationRepository
	campaignRepo    repository.CampaignRepository
	profileRepo     repository.InfluencerProfileRepository
}

type ApplyInput struct {
	InfluencerID uint
	CampaignID   uint
	Message      string
}

type UpdateStatusInput struct {
	BrandID       uint
	ApplicationID uint
	Status        models.ApplicationStatus
}

func NewApplicationService(
	applicationRepo repository.ApplicationRepository,
	campaignRepo repository.CampaignRepository,
	profileRepo repository.InfluencerProfileRepository,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		campaignRepo:    campaignRepo,
		profileRepo:     profileRepo,
	}
}

// Apply creates a pending application for the influencer. The duplicate check
// here is read-then-write; the unique index on (campaign_id, influencer_id)
// catches the race where two concurrent applies both pass it.
func (s *ApplicationService) Apply(ctx context.Context, in ApplyInput) (*models.Application, error) {
	span, ctx := observability.NewSpan(ctx, "application.apply")
	defer span.End()
	span.AddAttributes(
		attribute.Int("campaign.id", int(in.CampaignID)),
		attribute.Int("influencer.id", int(in.InfluencerID)),
	)

	if in.Message == "" {
		return nil, models.NewValidationError("Message is required")
	}

	if _, err := s.campaignRepo.GetByID(ctx, in.CampaignID); err != nil {
		return nil, err
	}

	existing, err := s.applicationRepo.GetByCampaignAndInfluencer(ctx, in.CampaignID, in.InfluencerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewValidationError("You have already applied to this campaign")
	}

	application := &models.Application{
		CampaignID:   in.CampaignID,
		InfluencerID: in.InfluencerID,
		Message:      in.Message,
		Status:       models.ApplicationPending,
	}
	if err := s.applicationRepo.Create(ctx, application); err != nil {
		span.SetError(err)
		return nil, err
	}

	middleware.ApplicationsSubmitted.Inc()
	return application, nil
}

// ListMine returns the influencer's own applications with campaign and brand
// data nested, newest-first.
func (s *ApplicationService) ListMine(ctx context.Context, influencerID uint) ([]models.Application, error) {
	return s.applicationRepo.ListByInfluencer(ctx, influencerID)
}

// ListForCampaign returns the applications for a campaign the brand owns,
// with each influencer's profile attached when one exists.
func (s *ApplicationService) ListForCampaign(ctx context.Context, brandID, campaignID uint) ([]models.Application, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign.BrandID != brandID {
		return nil, models.NewForbiddenError("You can only view applications for your own campaigns")
	}

	applications, err := s.applicationRepo.ListByCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	influencerIDs := make([]uint, 0, len(applications))
	for _, a := range applications {
		influencerIDs = append(influencerIDs, a.InfluencerID)
	}
	profiles, err := s.profileRepo.ListByUserIDs(ctx, influencerIDs)
	if err != nil {
		return nil, err
	}
	byUser := make(map[uint]*models.InfluencerProfile, len(profiles))
	for i := range profiles {
		byUser[profiles[i].UserID] = &profiles[i]
	}
	for i := range applications {
		applications[i].InfluencerProfile = byUser[applications[i].InfluencerID]
	}

	return applications, nil
}

// UpdateStatus applies the brand's accept/reject decision. Only the brand
// owning the referenced campaign may decide, and the only accepted target
// statuses are accepted and rejected.
func (s *ApplicationService) UpdateStatus(ctx context.Context, in UpdateStatusInput) (*models.Application, error) {
	span, ctx := observability.NewSpan(ctx, "application.update_status")
	defer span.End()
	span.AddAttributes(
		attribute.Int("application.id", int(in.ApplicationID)),
		attribute.String("application.status", string(in.Status)),
	)

	if !in.Status.ValidTransition() {
		return nil, models.NewValidationError("Status must be accepted or rejected")
	}

	application, err := s.applicationRepo.GetByID(ctx, in.ApplicationID)
	if err != nil {
		return nil, err
	}
	if application.Campaign.BrandID != in.BrandID {
		return nil, models.NewUnauthorizedError("User not authorized")
	}

	updated, err := s.applicationRepo.UpdateStatus(ctx, in.ApplicationID, in.Status)
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	middleware.ApplicationStatusChanges.WithLabelValues(string(in.Status)).Inc()
	return updated, nil
}
