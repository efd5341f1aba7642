package service

import (
	"context"
	"testing"

	"trendmatch/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockBrandRepo struct{ mock.Mock }

func (m *mockBrandRepo) GetByUserID(ctx context.Context, userID uint) (*models.BrandProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BrandProfile), args.Error(1)
}

func (m *mockBrandRepo) GetByID(ctx context.Context, id uint) (*models.BrandProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BrandProfile), args.Error(1)
}

func (m *mockBrandRepo) Upsert(ctx context.Context, profile *models.BrandProfile) (*models.BrandProfile, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BrandProfile), args.Error(1)
}

func TestUpsertInfluencerDerivesTier(t *testing.T) {
	profiles := &mockInfluencerRepo{}
	svc := NewProfileService(profiles, &mockBrandRepo{})

	profiles.On("Upsert", mock.Anything, mock.MatchedBy(func(p *models.InfluencerProfile) bool {
		return p.Tier == models.TierMid && p.GenderFemale == 50 && p.GenderMale == 50 &&
			p.Niches != nil && len(p.Niches) == 0
	})).Return(&models.InfluencerProfile{ID: 1, Tier: models.TierMid}, nil)

	got, err := svc.UpsertInfluencer(context.Background(), UpsertInfluencerProfileInput{
		UserID:    2,
		Followers: 75_000,
	})
	require.NoError(t, err)
	assert.Equal(t, models.TierMid, got.Tier)
	profiles.AssertExpectations(t)
}

func TestUpsertInfluencerRejectsNegatives(t *testing.T) {
	svc := NewProfileService(&mockInfluencerRepo{}, &mockBrandRepo{})

	_, err := svc.UpsertInfluencer(context.Background(), UpsertInfluencerProfileInput{
		UserID: 2, Followers: -10,
	})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	_, err = svc.UpsertInfluencer(context.Background(), UpsertInfluencerProfileInput{
		UserID: 2, CollabCostMin: -1,
	})
	require.ErrorAs(t, err, &appErr)
}

func TestUpsertBrandValidation(t *testing.T) {
	brands := &mockBrandRepo{}
	svc := NewProfileService(&mockInfluencerRepo{}, brands)

	_, err := svc.UpsertBrand(context.Background(), UpsertBrandProfileInput{
		UserID: 5, CompanyName: "Acme",
	})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	_, err = svc.UpsertBrand(context.Background(), UpsertBrandProfileInput{
		UserID: 5, CompanyName: "Acme", Industry: "Cosmetics",
		Description: "Clean beauty", CompanySize: "huge",
	})
	require.ErrorAs(t, err, &appErr)

	// Company size defaults when omitted.
	brands.On("Upsert", mock.Anything, mock.MatchedBy(func(p *models.BrandProfile) bool {
		return p.CompanySize == "1-10"
	})).Return(&models.BrandProfile{ID: 1, CompanySize: "1-10"}, nil)

	got, err := svc.UpsertBrand(context.Background(), UpsertBrandProfileInput{
		UserID: 5, CompanyName: "Acme", Industry: "Cosmetics", Description: "Clean beauty",
	})
	require.NoError(t, err)
	assert.Equal(t, "1-10", got.CompanySize)
}
