package service

import (
	"context"
	"testing"

	"trendmatch/internal/models"
	"trendmatch/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockApplicationRepo struct{ mock.Mock }

func (m *mockApplicationRepo) Create(ctx context.Context, application *models.Application) error {
	return m.Called(ctx, application).Error(0)
}

func (m *mockApplicationRepo) GetByID(ctx context.Context, id uint) (*models.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *mockApplicationRepo) GetByCampaignAndInfluencer(ctx context.Context, campaignID, influencerID uint) (*models.Application, error) {
	args := m.Called(ctx, campaignID, influencerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *mockApplicationRepo) ListByInfluencer(ctx context.Context, influencerID uint) ([]models.Application, error) {
	args := m.Called(ctx, influencerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Application), args.Error(1)
}

func (m *mockApplicationRepo) ListByCampaign(ctx context.Context, campaignID uint) ([]models.Application, error) {
	args := m.Called(ctx, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Application), args.Error(1)
}

func (m *mockApplicationRepo) UpdateStatus(ctx context.Context, id uint, status models.ApplicationStatus) (*models.Application, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

type mockCampaignRepo struct{ mock.Mock }

func (m *mockCampaignRepo) Create(ctx context.Context, campaign *models.Campaign) error {
	return m.Called(ctx, campaign).Error(0)
}

func (m *mockCampaignRepo) GetByID(ctx context.Context, id uint) (*models.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Campaign), args.Error(1)
}

func (m *mockCampaignRepo) ListByBrand(ctx context.Context, brandID uint) ([]models.Campaign, error) {
	args := m.Called(ctx, brandID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Campaign), args.Error(1)
}

func (m *mockCampaignRepo) ListActive(ctx context.Context) ([]models.Campaign, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Campaign), args.Error(1)
}

func (m *mockCampaignRepo) Update(ctx context.Context, campaign *models.Campaign) error {
	return m.Called(ctx, campaign).Error(0)
}

func (m *mockCampaignRepo) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockInfluencerRepo struct{ mock.Mock }

func (m *mockInfluencerRepo) GetByUserID(ctx context.Context, userID uint) (*models.InfluencerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InfluencerProfile), args.Error(1)
}

func (m *mockInfluencerRepo) GetByID(ctx context.Context, id uint) (*models.InfluencerProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InfluencerProfile), args.Error(1)
}

func (m *mockInfluencerRepo) Upsert(ctx context.Context, profile *models.InfluencerProfile) (*models.InfluencerProfile, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InfluencerProfile), args.Error(1)
}

func (m *mockInfluencerRepo) List(ctx context.Context, filter repository.InfluencerFilter) ([]models.InfluencerProfile, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.InfluencerProfile), args.Error(1)
}

func (m *mockInfluencerRepo) ListByUserIDs(ctx context.Context, userIDs []uint) ([]models.InfluencerProfile, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.InfluencerProfile), args.Error(1)
}

func newApplicationService() (*ApplicationService, *mockApplicationRepo, *mockCampaignRepo, *mockInfluencerRepo) {
	applications := &mockApplicationRepo{}
	campaigns := &mockCampaignRepo{}
	profiles := &mockInfluencerRepo{}
	return NewApplicationService(applications, campaigns, profiles), applications, campaigns, profiles
}

func TestApplyRequiresMessage(t *testing.T) {
	svc, _, _, _ := newApplicationService()

	_, err := svc.Apply(context.Background(), ApplyInput{InfluencerID: 2, CampaignID: 1})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestApplyMissingCampaign(t *testing.T) {
	svc, _, campaigns, _ := newApplicationService()
	campaigns.On("GetByID", mock.Anything, uint(9)).
		Return(nil, models.NewNotFoundError("Campaign", 9))

	_, err := svc.Apply(context.Background(), ApplyInput{InfluencerID: 2, CampaignID: 9, Message: "pick me"})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestApplyDuplicate(t *testing.T) {
	svc, applications, campaigns, _ := newApplicationService()
	campaigns.On("GetByID", mock.Anything, uint(1)).
		Return(&models.Campaign{ID: 1, BrandID: 5}, nil)
	applications.On("GetByCampaignAndInfluencer", mock.Anything, uint(1), uint(2)).
		Return(&models.Application{ID: 11}, nil)

	_, err := svc.Apply(context.Background(), ApplyInput{InfluencerID: 2, CampaignID: 1, Message: "again"})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	applications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApplyCreatesPending(t *testing.T) {
	svc, applications, campaigns, _ := newApplicationService()
	campaigns.On("GetByID", mock.Anything, uint(1)).
		Return(&models.Campaign{ID: 1, BrandID: 5}, nil)
	applications.On("GetByCampaignAndInfluencer", mock.Anything, uint(1), uint(2)).
		Return(nil, nil)
	applications.On("Create", mock.Anything, mock.MatchedBy(func(a *models.Application) bool {
		return a.Status == models.ApplicationPending && a.InfluencerID == 2 && a.CampaignID == 1
	})).Return(nil)

	application, err := svc.Apply(context.Background(), ApplyInput{InfluencerID: 2, CampaignID: 1, Message: "pick me"})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationPending, application.Status)
	applications.AssertExpectations(t)
}

func TestUpdateStatusRejectsInvalidTarget(t *testing.T) {
	svc, _, _, _ := newApplicationService()

	for _, status := range []models.ApplicationStatus{"pending", "maybe", ""} {
		_, err := svc.UpdateStatus(context.Background(), UpdateStatusInput{
			BrandID: 5, ApplicationID: 11, Status: status,
		})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	}
}

func TestUpdateStatusOwnerOnly(t *testing.T) {
	svc, applications, _, _ := newApplicationService()
	applications.On("GetByID", mock.Anything, uint(11)).
		Return(&models.Application{
			ID: 11, CampaignID: 1,
			Campaign: models.Campaign{ID: 1, BrandID: 5},
		}, nil)

	_, err := svc.UpdateStatus(context.Background(), UpdateStatusInput{
		BrandID: 99, ApplicationID: 11, Status: models.ApplicationAccepted,
	})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
	applications.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatusAccept(t *testing.T) {
	svc, applications, _, _ := newApplicationService()
	applications.On("GetByID", mock.Anything, uint(11)).
		Return(&models.Application{
			ID: 11, CampaignID: 1,
			Campaign: models.Campaign{ID: 1, BrandID: 5},
		}, nil)
	applications.On("UpdateStatus", mock.Anything, uint(11), models.ApplicationAccepted).
		Return(&models.Application{ID: 11, Status: models.ApplicationAccepted}, nil)

	application, err := svc.UpdateStatus(context.Background(), UpdateStatusInput{
		BrandID: 5, ApplicationID: 11, Status: models.ApplicationAccepted,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationAccepted, application.Status)
}

func TestListForCampaignOwnerOnly(t *testing.T) {
	svc, _, campaigns, _ := newApplicationService()
	campaigns.On("GetByID", mock.Anything, uint(1)).
		Return(&models.Campaign{ID: 1, BrandID: 5}, nil)

	_, err := svc.ListForCampaign(context.Background(), 99, 1)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.Code)
}

func TestListForCampaignAttachesProfiles(t *testing.T) {
	svc, applications, campaigns, profiles := newApplicationService()
	campaigns.On("GetByID", mock.Anything, uint(1)).
		Return(&models.Campaign{ID: 1, BrandID: 5}, nil)
	applications.On("ListByCampaign", mock.Anything, uint(1)).
		Return([]models.Application{
			{ID: 11, InfluencerID: 2},
			{ID: 12, InfluencerID: 3},
		}, nil)
	// Only influencer 2 has a profile.
	profiles.On("ListByUserIDs", mock.Anything, []uint{2, 3}).
		Return([]models.InfluencerProfile{{ID: 7, UserID: 2, Followers: 75_000}}, nil)

	got, err := svc.ListForCampaign(context.Background(), 5, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.NotNil(t, got[0].InfluencerProfile)
	assert.Equal(t, uint(7), got[0].InfluencerProfile.ID)
	assert.Nil(t, got[1].InfluencerProfile)
}

func TestCampaignListForDispatch(t *testing.T) {
	campaigns := &mockCampaignRepo{}
	svc := NewCampaignService(campaigns)

	campaigns.On("ListByBrand", mock.Anything, uint(5)).
		Return([]models.Campaign{{ID: 1, BrandID: 5}}, nil)
	campaigns.On("ListActive", mock.Anything).
		Return([]models.Campaign{{ID: 1}, {ID: 2}}, nil)

	own, err := svc.ListFor(context.Background(), 5, models.RoleBrand)
	require.NoError(t, err)
	assert.Len(t, own, 1)

	active, err := svc.ListFor(context.Background(), 2, models.RoleInfluencer)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	_, err = svc.ListFor(context.Background(), 2, models.Role("Admin"))
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.Code)
}
