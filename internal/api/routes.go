package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	registerAPIRoutes(app, handler)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api", handler.LanguageMiddleware)

	api.Get("/phase/:day", handler.GetPhase)
	api.Get("/prediction", handler.GetPrediction)

	calendar := api.Group("/calendar")
	calendar.Get("", handler.GetCalendar)
	calendar.Get("/navigate", handler.NavigateCalendar)

	days := api.Group("/days")
	days.Get("", handler.GetDays)
	days.Get("/:key", handler.GetDay)
	days.Patch("/:key", handler.PatchDay)
	days.Delete("/:key", handler.DeleteDay)
	api.Post("/period", handler.LogPeriod)

	settings := api.Group("/settings")
	settings.Get("/cycle", handler.GetCycleSettings)
	settings.Post("/cycle", handler.UpdateCycleSettings)

	api.Get("/stats", handler.GetStats)
	api.Get("/symptoms", handler.GetSymptoms)

	chat := api.Group("/chat")
	chat.Post("", handler.Chat)
	chat.Get("/history", handler.GetChatHistory)
	chat.Delete("/history", handler.ClearChatHistory)

	export := api.Group("/export")
	export.Get("/summary", handler.ExportSummary)
	export.Get("/csv", handler.ExportCSV)
	export.Get("/json", handler.ExportJSON)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
