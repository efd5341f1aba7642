package server

import (
	"time"

	"trendmatch/internal/models"
	"trendmatch/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateCampaignRequest is the body for POST /api/campaigns.
type CreateCampaignRequest struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Budget       float64   `json:"budget"`
	Requirements string    `json:"requirements"`
	Deadline     time.Time `json:"deadline"`
}

// UpdateCampaignRequest is the body for PUT /api/campaigns/:id. Zero-valued
// fields are left unchanged.
type UpdateCampaignRequest struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Budget       *float64   `json:"budget"`
	Requirements string     `json:"requirements"`
	Deadline     *time.Time `json:"deadline"`
	Status       string     `json:"status"`
}

// CreateCampaign handles POST /api/campaigns. Brand role only.
func (s *Server) CreateCampaign(c *fiber.Ctx) error {
	userID, role := currentUser(c)
	if role != models.RoleBrand {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Only brands can create campaigns"))
	}

	var req CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	campaign, err := s.campaignService.Create(c.UserContext(), service.CreateCampaignInput{
		BrandID:      userID,
		Title:        req.Title,
		Description:  req.Description,
		Budget:       req.Budget,
		Requirements: req.Requirements,
		Deadline:     req.Deadline,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(campaign)
}

// GetCampaigns handles GET /api/campaigns. Brands get their own campaigns,
// influencers get every active campaign with the owning brand nested.
func (s *Server) GetCampaigns(c *fiber.Ctx) error {
	userID, role := currentUser(c)
	campaigns, err := s.campaignService.ListFor(c.UserContext(), userID, role)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(campaigns)
}

// GetCampaign handles GET /api/campaigns/:id
func (s *Server) GetCampaign(c *fiber.Ctx) error {
	id, ok := parseID(c, "id", "Campaign")
	if !ok {
		return nil
	}
	campaign, err := s.campaignService.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(campaign)
}

// UpdateCampaign handles PUT /api/campaigns/:id. Owner only.
func (s *Server) UpdateCampaign(c *fiber.Ctx) error {
	userID, _ := currentUser(c)
	id, ok := parseID(c, "id", "Campaign")
	if !ok {
		return nil
	}

	var req UpdateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	campaign, err := s.campaignService.Update(c.UserContext(), service.UpdateCampaignInput{
		BrandID:      userID,
		CampaignID:   id,
		Title:        req.Title,
		Description:  req.Description,
		Budget:       req.Budget,
		Requirements: req.Requirements,
		Deadline:     req.Deadline,
		Status:       models.CampaignStatus(req.Status),
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(campaign)
}

// DeleteCampaign handles DELETE /api/campaigns/:id. Owner only. Applications
// referencing the campaign are not removed.
func (s *Server) DeleteCampaign(c *fiber.Ctx) error {
	userID, _ := currentUser(c)
	id, ok := parseID(c, "id", "Campaign")
	if !ok {
		return nil
	}

	if err := s.campaignService.Delete(c.UserContext(), userID, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Campaign deleted successfully"})
}
