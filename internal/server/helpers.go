package server

import (
	"errors"

	"trendmatch/internal/models"

	"github.com/gofiber/fiber/v2"
)

// currentUser reads the authenticated caller's identity set by AuthRequired.
func currentUser(c *fiber.Ctx) (uint, models.Role) {
	userID, _ := c.Locals("userID").(uint)
	role, _ := c.Locals("userRole").(models.Role)
	return userID, role
}

// statusForError maps application error codes to HTTP status codes.
func statusForError(err error) int {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "NOT_FOUND":
			return fiber.StatusNotFound
		case "VALIDATION_ERROR":
			return fiber.StatusBadRequest
		case "UNAUTHORIZED":
			return fiber.StatusUnauthorized
		case "FORBIDDEN":
			return fiber.StatusForbidden
		}
	}
	return fiber.StatusInternalServerError
}

// respondError writes the standard error envelope with the status implied by
// the error's code.
func respondError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, statusForError(err), err)
}

// parseID reads a positive integer route parameter. A malformed or missing id
// can never match a row, so it is reported the same way: resource not found.
func parseID(c *fiber.Ctx, param, resource string) (uint, bool) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError(resource, c.Params(param)))
		return 0, false
	}
	return uint(id), true
}
