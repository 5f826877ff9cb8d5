package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/yannix2/medmind/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func parseUserID(c *fiber.Ctx) (uint, bool) {
	value, err := strconv.ParseUint(strings.TrimSpace(c.Params("userID")), 10, 64)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}

func (handler *Handler) serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrHistoryRangeInvalid):
		return apiError(c, fiber.StatusBadRequest, "invalid range")
	case errors.Is(err, services.ErrHealthProfileLoadFailed):
		handler.logger.WithError(err).Error("profile lookup failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	case errors.Is(err, services.ErrHealthRecordsLoadFailed):
		handler.logger.WithError(err).Error("records lookup failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to load records")
	default:
		handler.logger.WithError(err).Error("request failed")
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}
