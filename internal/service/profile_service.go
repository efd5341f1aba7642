package service

import (
	"context"
	"slices"

	"trendmatch/internal/models"
	"trendmatch/internal/repository"
)

type ProfileService struct {
	influencerRepo repository.InfluencerProfileRepository
	brandRepo      repository.BrandProfileRepository
}

type UpsertInfluencerProfileInput struct {
	UserID        uint
	Bio           string
	Location      string
	Followers     int
	Engagement    float64
	AvgLikes      int
	CollabCostMin int
	CollabCostMax int
	Niches        []string
	AgeRange      string
	TopCountries  string
	GenderFemale  *int
	GenderMale    *int
}

type UpsertBrandProfileInput struct {
	UserID      uint
	CompanyName string
	Industry    string
	Description string
	Website     string
	LogoURL     string
	Location    string
	CompanySize string
	FoundedYear *int
	SocialMedia models.SocialMedia
}

func NewProfileService(
	influencerRepo repository.InfluencerProfileRepository,
	brandRepo repository.BrandProfileRepository,
) *ProfileService {
	return &ProfileService{influencerRepo: influencerRepo, brandRepo: brandRepo}
}

// UpsertInfluencer saves the caller's profile, deriving the tier from the
// submitted follower count. This is the only path that writes Followers, so
// the persisted tier always matches TierFor(Followers).
func (s *ProfileService) UpsertInfluencer(ctx context.Context, in UpsertInfluencerProfileInput) (*models.InfluencerProfile, error) {
	if in.Followers < 0 {
		return nil, models.NewValidationError("Followers must not be negative")
	}
	if in.CollabCostMin < 0 || in.CollabCostMax < 0 {
		return nil, models.NewValidationError("Collaboration cost must not be negative")
	}

	genderFemale, genderMale := 50, 50
	if in.GenderFemale != nil {
		genderFemale = *in.GenderFemale
	}
	if in.GenderMale != nil {
		genderMale = *in.GenderMale
	}

	niches := in.Niches
	if niches == nil {
		niches = []string{}
	}

	profile := &models.InfluencerProfile{
		UserID:        in.UserID,
		Bio:           in.Bio,
		Location:      in.Location,
		Followers:     in.Followers,
		Engagement:    in.Engagement,
		AvgLikes:      in.AvgLikes,
		CollabCostMin: in.CollabCostMin,
		CollabCostMax: in.CollabCostMax,
		Niches:        niches,
		AgeRange:      in.AgeRange,
		TopCountries:  in.TopCountries,
		GenderFemale:  genderFemale,
		GenderMale:    genderMale,
		Tier:          models.TierFor(in.Followers),
	}
	return s.influencerRepo.Upsert(ctx, profile)
}

func (s *ProfileService) GetInfluencerByUserID(ctx context.Context, userID uint) (*models.InfluencerProfile, error) {
	return s.influencerRepo.GetByUserID(ctx, userID)
}

func (s *ProfileService) GetInfluencerByID(ctx context.Context, id uint) (*models.InfluencerProfile, error) {
	return s.influencerRepo.GetByID(ctx, id)
}

// BrowseInfluencers returns profiles matching every set filter, sorted by
// follower count descending.
func (s *ProfileService) BrowseInfluencers(ctx context.Context, filter repository.InfluencerFilter) ([]models.InfluencerProfile, error) {
	return s.influencerRepo.List(ctx, filter)
}

// UpsertBrand saves the caller's brand profile.
func (s *ProfileService) UpsertBrand(ctx context.Context, in UpsertBrandProfileInput) (*models.BrandProfile, error) {
	if in.CompanyName == "" || in.Industry == "" || in.Description == "" {
		return nil, models.NewValidationError("Company name, industry and description are required")
	}

	companySize := in.CompanySize
	if companySize == "" {
		companySize = "1-10"
	}
	if !slices.Contains(models.CompanySizes, companySize) {
		return nil, models.NewValidationError("Company size must be one of 1-10, 11-50, 51-200, 201-500, 500+")
	}

	profile := &models.BrandProfile{
		UserID:      in.UserID,
		CompanyName: in.CompanyName,
		Industry:    in.Industry,
		Description: in.Description,
		Website:     in.Website,
		LogoURL:     in.LogoURL,
		Location:    in.Location,
		CompanySize: companySize,
		FoundedYear: in.FoundedYear,
		SocialMedia: in.SocialMedia,
	}
	return s.brandRepo.Upsert(ctx, profile)
}

func (s *ProfileService) GetBrandByUserID(ctx context.Context, userID uint) (*models.BrandProfile, error) {
	return s.brandRepo.GetByUserID(ctx, userID)
}

func (s *ProfileService) GetBrandByID(ctx context.Context, id uint) (*models.BrandProfile, error) {
	return s.brandRepo.GetByID(ctx, id)
}
