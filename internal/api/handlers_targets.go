package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yannix2/medmind/internal/models"
	"github.com/yannix2/medmind/internal/services"
)

type targetsResponse struct {
	Daily services.NutritionTargets                     `json:"daily"`
	Meals map[models.MealType]services.NutritionTargets `json:"meals"`
}

func (handler *Handler) Targets(c *fiber.Ctx) error {
	userID, ok := parseUserID(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	targets, err := handler.health.Targets(userID)
	if err != nil {
		return handler.serviceError(c, err)
	}

	response := targetsResponse{
		Daily: targets,
		Meals: make(map[models.MealType]services.NutritionTargets, len(models.AllMealTypes())),
	}
	for _, mealType := range models.AllMealTypes() {
		response.Meals[mealType] = services.MealTargets(targets, mealType)
	}
	return c.JSON(response)
}
