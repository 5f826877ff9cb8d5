package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// LanguageMiddleware resolves the response language from the lang query
// parameter, falling back to Accept-Language.
func (handler *Handler) LanguageMiddleware(c *fiber.Ctx) error {
	language := handler.i18n.DetectFromAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage))
	if requested := strings.TrimSpace(c.Query("lang")); requested != "" {
		language = handler.i18n.NormalizeLanguage(requested)
	}
	c.Locals(contextLanguageKey, language)
	c.Set(fiber.HeaderContentLanguage, language)
	return c.Next()
}

func (handler *Handler) RequestLogger(c *fiber.Ctx) error {
	started := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	if err != nil {
		if fiberErr, ok := err.(*fiber.Error); ok {
			status = fiberErr.Code
		} else {
			status = fiber.StatusInternalServerError
		}
	}

	entry := handler.logger.WithFields(logrus.Fields{
		"method":     c.Method(),
		"path":       c.Path(),
		"status":     status,
		"latency_ms": time.Since(started).Milliseconds(),
	})
	switch {
	case status >= fiber.StatusInternalServerError:
		entry.Error("request completed")
	case status >= fiber.StatusBadRequest:
		entry.Warn("request completed")
	default:
		entry.Info("request completed")
	}
	return err
}

func currentLanguage(c *fiber.Ctx) string {
	language, _ := c.Locals(contextLanguageKey).(string)
	return language
}
