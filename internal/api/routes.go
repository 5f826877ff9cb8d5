package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")
	api.Get("/feedback", handler.Feedback)

	users := api.Group("/users/:userID")
	users.Get("/overview", handler.Overview)
	users.Get("/history", handler.History)
	users.Get("/history.csv", handler.HistoryCSV)
	users.Get("/targets", handler.Targets)
}
