package server

import (
	"trendmatch/internal/models"
	"trendmatch/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UpsertBrandProfileRequest is the body for POST /api/brand-profile.
type UpsertBrandProfileRequest struct {
	CompanyName string             `json:"companyName"`
	Industry    string             `json:"industry"`
	Description string             `json:"description"`
	Website     string             `json:"website"`
	LogoURL     string             `json:"logoUrl"`
	Location    string             `json:"location"`
	CompanySize string             `json:"companySize"`
	FoundedYear *int               `json:"foundedYear"`
	SocialMedia models.SocialMedia `json:"socialMedia"`
}

// UpsertBrandProfile handles POST /api/brand-profile. Creates the caller's
// profile or updates it in place.
func (s *Server) UpsertBrandProfile(c *fiber.Ctx) error {
	userID, role := currentUser(c)
	if role != models.RoleBrand {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Only brands can edit a brand profile"))
	}

	var req UpsertBrandProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.UpsertBrand(c.UserContext(), service.UpsertBrandProfileInput{
		UserID:      userID,
		CompanyName: req.CompanyName,
		Industry:    req.Industry,
		Description: req.Description,
		Website:     req.Website,
		LogoURL:     req.LogoURL,
		Location:    req.Location,
		CompanySize: req.CompanySize,
		FoundedYear: req.FoundedYear,
		SocialMedia: req.SocialMedia,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(profile)
}

// GetMyBrandProfile handles GET /api/brand-profile/me
func (s *Server) GetMyBrandProfile(c *fiber.Ctx) error {
	userID, role := currentUser(c)
	if role != models.RoleBrand {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Only brands have a brand profile"))
	}

	profile, err := s.profileService.GetBrandByUserID(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// GetBrandProfileByUser handles GET /api/brand-profile/user/:userId. Any
// authenticated caller may look up a brand's public profile by user id.
func (s *Server) GetBrandProfileByUser(c *fiber.Ctx) error {
	userID, ok := parseID(c, "userId", "Brand profile")
	if !ok {
		return nil
	}

	profile, err := s.profileService.GetBrandByUserID(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// GetBrandProfile handles GET /api/brand-profile/:id
func (s *Server) GetBrandProfile(c *fiber.Ctx) error {
	id, ok := parseID(c, "id", "Brand profile")
	if !ok {
		return nil
	}

	profile, err := s.profileService.GetBrandByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}
