package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/yannix2/medmind/internal/services"
)

type overviewResponse struct {
	services.DailyOverview
	Language      string                     `json:"language"`
	StatusLabel   string                     `json:"status_label"`
	ActivityLabel string                     `json:"activity_label,omitempty"`
	Message       services.LocalizedFeedback `json:"message"`
}

func (handler *Handler) Overview(c *fiber.Ctx) error {
	userID, ok := parseUserID(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	var day time.Time
	if raw := strings.TrimSpace(c.Query("date")); raw != "" {
		parsed, err := services.ParseDay(raw, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		}
		day = parsed
	}

	overview, err := handler.health.BuildDailyOverview(userID, day, handler.currentTime(), handler.location)
	if err != nil {
		return handler.serviceError(c, err)
	}

	translate := handler.translator(c)
	response := overviewResponse{
		DailyOverview: overview,
		Language:      currentLanguage(c),
		StatusLabel:   translate(overview.Summary.Status.MessageKey()),
		Message:       overview.Feedback.Localize(translate),
	}
	if overview.Activity != nil {
		response.ActivityLabel = translate(overview.Activity.Status.MessageKey())
	}
	return c.JSON(response)
}
