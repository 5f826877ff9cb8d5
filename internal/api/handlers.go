package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/yannix2/medmind/internal/i18n"
	"github.com/yannix2/medmind/internal/services"
)

const contextLanguageKey = "language"

type Handler struct {
	health   *services.HealthService
	i18n     *i18n.Manager
	location *time.Location
	logger   logrus.FieldLogger
	now      func() time.Time
}

func NewHandler(health *services.HealthService, i18nManager *i18n.Manager, location *time.Location, logger logrus.FieldLogger) *Handler {
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Handler{
		health:   health,
		i18n:     i18nManager,
		location: location,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock replaces the handler's source of the current time.
func (handler *Handler) WithClock(now func() time.Time) *Handler {
	handler.now = now
	return handler
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) currentTime() time.Time {
	return handler.now().In(handler.location)
}

func (handler *Handler) translator(c *fiber.Ctx) func(key string) string {
	return handler.i18n.Translator(currentLanguage(c))
}
