package api

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/yannix2/medmind/internal/services"
)

func (handler *Handler) parseHistoryRange(c *fiber.Ctx) (*time.Time, *time.Time, string) {
	from, to, err := services.ParseHistoryRange(c.Query("from"), c.Query("to"), handler.location)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrHistoryFromDateInvalid):
			return nil, nil, "invalid from date"
		case errors.Is(err, services.ErrHistoryToDateInvalid):
			return nil, nil, "invalid to date"
		default:
			return nil, nil, "invalid range"
		}
	}
	return from, to, ""
}

func (handler *Handler) History(c *fiber.Ctx) error {
	userID, ok := parseUserID(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	from, to, rangeError := handler.parseHistoryRange(c)
	if rangeError != "" {
		return apiError(c, fiber.StatusBadRequest, rangeError)
	}

	report, err := handler.health.BuildHistory(userID, from, to, handler.currentTime(), handler.location)
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(report)
}

func (handler *Handler) HistoryCSV(c *fiber.Ctx) error {
	userID, ok := parseUserID(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	from, to, rangeError := handler.parseHistoryRange(c)
	if rangeError != "" {
		return apiError(c, fiber.StatusBadRequest, rangeError)
	}

	report, err := handler.health.BuildHistory(userID, from, to, handler.currentTime(), handler.location)
	if err != nil {
		return handler.serviceError(c, err)
	}

	var output bytes.Buffer
	if err := services.WriteHistoryCSV(&output, report); err != nil {
		handler.logger.WithError(err).Error("history export failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=medmind-history-%d-%s-%s.csv", userID, report.From, report.To))
	return c.Send(output.Bytes())
}
