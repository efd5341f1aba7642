package server

import (
	"trendmatch/internal/models"
	"trendmatch/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateApplicationRequest is the body for POST /api/applications.
type CreateApplicationRequest struct {
	CampaignID uint   `json:"campaignId"`
	Message    string `json:"message"`
}

// UpdateApplicationStatusRequest is the body for PUT /api/applications/:id/status.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status"`
}

// CreateApplication handles POST /api/applications. Influencer role only.
// Applying twice to the same campaign is rejected.
func (s *Server) CreateApplication(c *fiber.Ctx) error {
	userID, role := currentUser(c)
	if role != models.RoleInfluencer {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Only influencers can apply to campaigns"))
	}

	var req CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.CampaignID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Campaign ID is required"))
	}

	application, err := s.applicationService.Apply(c.UserContext(), service.ApplyInput{
		InfluencerID: userID,
		CampaignID:   req.CampaignID,
		Message:      req.Message,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(application)
}

// GetMyApplications handles GET /api/applications/my-applications. Influencer
// role only; returns the caller's applications with campaign and brand nested.
func (s *Server) GetMyApplications(c *fiber.Ctx) error {
	userID, role := currentUser(c)
	if role != models.RoleInfluencer {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Only influencers can view their applications"))
	}

	applications, err := s.applicationService.ListMine(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(applications)
}

// GetCampaignApplications handles GET /api/applications/campaign/:campaignId.
// Restricted to the brand owning the campaign; each application carries the
// applicant's influencer profile when one exists.
func (s *Server) GetCampaignApplications(c *fiber.Ctx) error {
	userID, role := currentUser(c)
	if role != models.RoleBrand {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Only brands can view campaign applications"))
	}

	campaignID, ok := parseID(c, "campaignId", "Campaign")
	if !ok {
		return nil
	}

	applications, err := s.applicationService.ListForCampaign(c.UserContext(), userID, campaignID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(applications)
}

// UpdateApplicationStatus handles PUT /api/applications/:id/status. Only the
// brand owning the campaign may accept or reject.
func (s *Server) UpdateApplicationStatus(c *fiber.Ctx) error {
	userID, role := currentUser(c)
	if role != models.RoleBrand {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Only brands can update application status"))
	}

	id, ok := parseID(c, "id", "Application")
	if !ok {
		return nil
	}

	var req UpdateApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	application, err := s.applicationService.UpdateStatus(c.UserContext(), service.UpdateStatusInput{
		BrandID:       userID,
		ApplicationID: id,
		Status:        models.ApplicationStatus(req.Status),
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(application)
}
