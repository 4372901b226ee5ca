package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/blushy/internal/services"
)

func (handler *Handler) GetPhase(c *fiber.Ctx) error {
	day, err := strconv.Atoi(strings.TrimSpace(c.Params("day")))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid cycle day")
	}

	set := services.Classify(day)
	primary := set.Primary()
	return c.JSON(phaseResponse{
		Day:          day,
		Tags:         set.Tags(),
		Primary:      primary,
		Label:        handler.i18n.PhaseLabel(currentLanguage(c), string(primary)),
		InsightPhase: services.InsightPhase(day),
	})
}
