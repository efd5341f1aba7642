package server

import (
	"strconv"

	"trendmatch/internal/models"
	"trendmatch/internal/repository"
	"trendmatch/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UpsertInfluencerProfileRequest is the body for POST /api/influencer-profile.
type UpsertInfluencerProfileRequest struct {
	Bio           string   `json:"bio"`
	Location      string   `json:"location"`
	Followers     int      `json:"followers"`
	Engagement    float64  `json:"engagement"`
	AvgLikes      int      `json:"avgLikes"`
	CollabCostMin int      `json:"collabCostMin"`
	CollabCostMax int      `json:"collabCostMax"`
	Niches        []string `json:"niches"`
	AgeRange      string   `json:"ageRange"`
	TopCountries  string   `json:"topCountries"`
	GenderFemale  *int     `json:"genderFemale"`
	GenderMale    *int     `json:"genderMale"`
}

// UpsertInfluencerProfile handles POST /api/influencer-profile. Creates the
// caller's profile or updates it in place. The tier is always recomputed from
// the submitted follower count.
func (s *Server) UpsertInfluencerProfile(c *fiber.Ctx) error {
	userID, role := currentUser(c)
	if role != models.RoleInfluencer {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Only influencers can edit an influencer profile"))
	}

	var req UpsertInfluencerProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.UpsertInfluencer(c.UserContext(), service.UpsertInfluencerProfileInput{
		UserID:        userID,
		Bio:           req.Bio,
		Location:      req.Location,
		Followers:     req.Followers,
		Engagement:    req.Engagement,
		AvgLikes:      req.AvgLikes,
		CollabCostMin: req.CollabCostMin,
		CollabCostMax: req.CollabCostMax,
		Niches:        req.Niches,
		AgeRange:      req.AgeRange,
		TopCountries:  req.TopCountries,
		GenderFemale:  req.GenderFemale,
		GenderMale:    req.GenderMale,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(profile)
}

// GetMyInfluencerProfile handles GET /api/influencer-profile/me
func (s *Server) GetMyInfluencerProfile(c *fiber.Ctx) error {
	userID, role := currentUser(c)
	if role != models.RoleInfluencer {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Only influencers have an influencer profile"))
	}

	profile, err := s.profileService.GetInfluencerByUserID(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// BrowseInfluencerProfiles handles GET /api/influencer-profile/all. Query
// filters are ANDed; results come back sorted by followers descending.
func (s *Server) BrowseInfluencerProfiles(c *fiber.Ctx) error {
	_, role := currentUser(c)
	if role != models.RoleBrand {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Only brands can browse influencers"))
	}

	filter := repository.InfluencerFilter{
		Niche:    c.Query("niche"),
		Location: c.Query("location"),
		Tier:     models.Tier(c.Query("tier")),
	}
	filter.MinFollowers = queryIntPtr(c, "minFollowers")
	filter.MaxFollowers = queryIntPtr(c, "maxFollowers")
	filter.MinPrice = queryIntPtr(c, "minPrice")
	filter.MaxPrice = queryIntPtr(c, "maxPrice")

	profiles, err := s.profileService.BrowseInfluencers(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profiles)
}

// GetInfluencerProfile handles GET /api/influencer-profile/:id
func (s *Server) GetInfluencerProfile(c *fiber.Ctx) error {
	id, ok := parseID(c, "id", "Influencer profile")
	if !ok {
		return nil
	}

	profile, err := s.profileService.GetInfluencerByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// queryIntPtr parses an optional integer query parameter. Unparseable values
// are treated as absent rather than rejected.
func queryIntPtr(c *fiber.Ctx, key string) *int {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}
