package server

import (
	"fmt"
	"testing"

	"trendmatch/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upsertInfluencerProfile(t *testing.T, app *fiber.App, token string, body fiber.Map) models.InfluencerProfile {
	t.Helper()

	resp := doRequest(t, app, fiber.MethodPost, "/api/influencer-profile", token, body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var profile models.InfluencerProfile
	decodeBody(t, resp, &profile)
	return profile
}

func TestInfluencerProfileUpsert(t *testing.T) {
	_, app := newTestServer(t)

	brandToken, _ := registerUser(t, app, "Acme Cosmetics", "acme@example.com", models.RoleBrand)
	influencerToken, jane := registerUser(t, app, "Jane Doe", "jane@example.com", models.RoleInfluencer)

	// Wrong role.
	resp := doRequest(t, app, fiber.MethodPost, "/api/influencer-profile", brandToken, fiber.Map{
		"bio": "nope",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// Create. 75k followers lands in Mid-tier.
	profile := upsertInfluencerProfile(t, app, influencerToken, fiber.Map{
		"bio":       "Fashion content from Berlin",
		"location":  "Berlin, Germany",
		"followers": 75_000,
		"niches":    []string{"fashion", "beauty"},
	})
	assert.Equal(t, jane.ID, profile.UserID)
	assert.Equal(t, models.TierMid, profile.Tier)
	// Unspecified gender split defaults to 50/50.
	assert.Equal(t, 50, profile.GenderFemale)
	assert.Equal(t, 50, profile.GenderMale)

	// Update in place: same row, recomputed tier.
	updated := upsertInfluencerProfile(t, app, influencerToken, fiber.Map{
		"bio":       "Fashion content from Berlin",
		"location":  "Berlin, Germany",
		"followers": 1_200_000,
		"niches":    []string{"fashion"},
	})
	assert.Equal(t, profile.ID, updated.ID)
	assert.Equal(t, models.TierMega, updated.Tier)

	// Negative followers rejected.
	resp = doRequest(t, app, fiber.MethodPost, "/api/influencer-profile", influencerToken, fiber.Map{
		"followers": -1,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Read own profile back, including through the cache.
	for i := 0; i < 2; i++ {
		resp = doRequest(t, app, fiber.MethodGet, "/api/influencer-profile/me", influencerToken, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var got models.InfluencerProfile
		decodeBody(t, resp, &got)
		assert.Equal(t, updated.ID, got.ID)
		assert.Equal(t, 1_200_000, got.Followers)
	}

	// Get by profile id, any authenticated role.
	resp = doRequest(t, app, fiber.MethodGet, fmt.Sprintf("/api/influencer-profile/%d", profile.ID), brandToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodGet, "/api/influencer-profile/99999", brandToken, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestBrowseInfluencers(t *testing.T) {
	_, app := newTestServer(t)

	brandToken, _ := registerUser(t, app, "Acme Cosmetics", "acme@example.com", models.RoleBrand)

	seedProfiles := []struct {
		name      string
		email     string
		followers int
		costMin   int
		costMax   int
		location  string
		niches    []string
	}{
		{"Jane Doe", "jane@example.com", 75_000, 500, 2_000, "Berlin, Germany", []string{"fashion", "beauty"}},
		{"Maya Chen", "maya@example.com", 600_000, 3_000, 9_000, "Los Angeles, USA", []string{"fitness"}},
		{"Alex Kim", "alex@example.com", 8_000, 100, 400, "Seoul, South Korea", []string{"fashion"}},
	}
	for _, p := range seedProfiles {
		token, _ := registerUser(t, app, p.name, p.email, models.RoleInfluencer)
		upsertInfluencerProfile(t, app, token, fiber.Map{
			"bio":           "bio",
			"location":      p.location,
			"followers":     p.followers,
			"collabCostMin": p.costMin,
			"collabCostMax": p.costMax,
			"niches":        p.niches,
		})
	}

	// Browsing requires authentication.
	resp := doRequest(t, app, fiber.MethodGet, "/api/influencer-profile/all", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Unfiltered browse: everyone, followers descending.
	resp = doRequest(t, app, fiber.MethodGet, "/api/influencer-profile/all", brandToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var all []models.InfluencerProfile
	decodeBody(t, resp, &all)
	require.Len(t, all, 3)
	assert.Equal(t, 600_000, all[0].Followers)
	assert.Equal(t, 8_000, all[2].Followers)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"Niche membership", "?niche=fashion", 2},
		{"Follower floor", "?minFollowers=50000", 2},
		{"Filters are ANDed", "?minFollowers=50000&tier=Macro", 1},
		{"Location substring, case-insensitive", "?location=berlin", 1},
		{"Cost range", "?minPrice=200&maxPrice=3000", 1},
		{"No match", "?niche=gaming", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, app, fiber.MethodGet, "/api/influencer-profile/all"+tt.query, brandToken, nil)
			require.Equal(t, fiber.StatusOK, resp.StatusCode)
			var got []models.InfluencerProfile
			decodeBody(t, resp, &got)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestBrandProfileUpsert(t *testing.T) {
	_, app := newTestServer(t)

	brandToken, acme := registerUser(t, app, "Acme Cosmetics", "acme@example.com", models.RoleBrand)
	influencerToken, _ := registerUser(t, app, "Jane Doe", "jane@example.com", models.RoleInfluencer)

	// Wrong role.
	resp := doRequest(t, app, fiber.MethodPost, "/api/brand-profile", influencerToken, fiber.Map{
		"companyName": "Nope",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// Required fields.
	resp = doRequest(t, app, fiber.MethodPost, "/api/brand-profile", brandToken, fiber.Map{
		"companyName": "Acme Cosmetics",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Unknown company size.
	resp = doRequest(t, app, fiber.MethodPost, "/api/brand-profile", brandToken, fiber.Map{
		"companyName": "Acme Cosmetics", "industry": "Cosmetics",
		"description": "Clean beauty", "companySize": "huge",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodPost, "/api/brand-profile", brandToken, fiber.Map{
		"companyName": "Acme Cosmetics",
		"industry":    "Cosmetics",
		"description": "Clean beauty for everyone",
		"socialMedia": fiber.Map{"instagram": "acmecosmetics"},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var profile models.BrandProfile
	decodeBody(t, resp, &profile)
	assert.Equal(t, acme.ID, profile.UserID)
	assert.Equal(t, "1-10", profile.CompanySize)
	assert.Equal(t, "acmecosmetics", profile.SocialMedia.Instagram)

	// Update in place keeps the row.
	resp = doRequest(t, app, fiber.MethodPost, "/api/brand-profile", brandToken, fiber.Map{
		"companyName": "Acme Cosmetics",
		"industry":    "Cosmetics",
		"description": "Clean beauty for everyone",
		"companySize": "51-200",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var updated models.BrandProfile
	decodeBody(t, resp, &updated)
	assert.Equal(t, profile.ID, updated.ID)
	assert.Equal(t, "51-200", updated.CompanySize)

	// Own profile, and lookup by user id from the other side.
	resp = doRequest(t, app, fiber.MethodGet, "/api/brand-profile/me", brandToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodGet, fmt.Sprintf("/api/brand-profile/user/%d", acme.ID), influencerToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got models.BrandProfile
	decodeBody(t, resp, &got)
	assert.Equal(t, profile.ID, got.ID)
}

func TestInstagramStats(t *testing.T) {
	_, app := newTestServer(t)

	token, _ := registerUser(t, app, "Acme Cosmetics", "acme@example.com", models.RoleBrand)

	resp := doRequest(t, app, fiber.MethodGet, "/api/instagram/janedoe", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var first map[string]any
	decodeBody(t, resp, &first)
	assert.Equal(t, "janedoe", first["username"])

	// Second read is served from cache and identical.
	resp = doRequest(t, app, fiber.MethodGet, "/api/instagram/janedoe", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var second map[string]any
	decodeBody(t, resp, &second)
	assert.Equal(t, first, second)
}
