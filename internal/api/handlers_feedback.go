package api

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/yannix2/medmind/internal/services"
)

func (handler *Handler) Feedback(c *fiber.Ctx) error {
	score, err := strconv.ParseFloat(strings.TrimSpace(c.Query("score")), 64)
	if err != nil || math.IsNaN(score) || math.IsInf(score, 0) {
		return apiError(c, fiber.StatusBadRequest, "invalid score")
	}

	feedback := services.SelectFeedback(score, c.QueryBool("nutrition", false), c.QueryBool("activity", false))
	return c.JSON(feedback.Localize(handler.translator(c)))
}
