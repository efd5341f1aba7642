package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		name      string
		followers int
		expected  Tier
	}{
		{"Zero", 0, TierNano},
		{"Just below Micro", 9_999, TierNano},
		{"Micro boundary", 10_000, TierMicro},
		{"Just below Mid-tier", 49_999, TierMicro},
		{"Mid-tier boundary", 50_000, TierMid},
		{"Mid-tier example", 75_000, TierMid},
		{"Just below Macro", 499_999, TierMid},
		{"Macro boundary", 500_000, TierMacro},
		{"Just below Mega", 999_999, TierMacro},
		{"Mega boundary", 1_000_000, TierMega},
		{"Well above Mega", 12_000_000, TierMega},
		{"Negative follower count", -1, TierNano},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TierFor(tt.followers))
		})
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleBrand.Valid())
	assert.True(t, RoleInfluencer.Valid())
	assert.False(t, Role("Admin").Valid())
	assert.False(t, Role("").Valid())
}

func TestApplicationStatusValidTransition(t *testing.T) {
	assert.True(t, ApplicationAccepted.ValidTransition())
	assert.True(t, ApplicationRejected.ValidTransition())
	assert.False(t, ApplicationPending.ValidTransition())
	assert.False(t, ApplicationStatus("approved").ValidTransition())
}

func TestCampaignStatusValid(t *testing.T) {
	assert.True(t, CampaignActive.Valid())
	assert.True(t, CampaignCompleted.Valid())
	assert.True(t, CampaignCancelled.Valid())
	assert.False(t, CampaignStatus("paused").Valid())
}
