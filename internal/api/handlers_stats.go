package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetStats(c *fiber.Ctx) error {
	view, err := handler.statsService.BuildStats(handler.today())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load stats")
	}
	return c.JSON(view)
}

func (handler *Handler) GetSymptoms(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"symptoms": handler.symptomService.Catalog()})
}
