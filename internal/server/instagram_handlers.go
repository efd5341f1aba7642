package server

import (
	"strings"

	"trendmatch/internal/cache"
	"trendmatch/internal/instagram"
	"trendmatch/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetInstagramStats handles GET /api/instagram/:username. Responses are
// cached per username; the provider is deterministic so a cold cache returns
// the same payload.
func (s *Server) GetInstagramStats(c *fiber.Ctx) error {
	username := strings.ToLower(strings.TrimSpace(c.Params("username")))
	if username == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username is required"))
	}

	var stats instagram.Stats
	err := cache.Aside(c.UserContext(), cache.InstagramKey(username), &stats, cache.InstagramTTL, func() error {
		stats = *s.instagramProvider.Fetch(username)
		return nil
	})
	if err != nil {
		return respondError(c, models.NewInternalError(err))
	}

	return c.JSON(stats)
}
