package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/blushy/internal/models"
	"github.com/terraincognita07/blushy/internal/services"
)

func (handler *Handler) GetDays(c *fiber.Ctx) error {
	overrides, err := handler.dayService.Overrides()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load days")
	}
	return c.JSON(overrides)
}

func (handler *Handler) GetDay(c *fiber.Ctx) error {
	key, date, err := models.ParseDayKey(c.Params("key"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid day key")
	}

	override, err := handler.dayService.FetchOverride(key)
	if err != nil {
		return handler.respondDayError(c, err)
	}
	return c.JSON(dayResponse{DayKey: key, Date: date.Format("2006-01-02"), Override: override})
}

func (handler *Handler) PatchDay(c *fiber.Ctx) error {
	key, date, err := models.ParseDayKey(c.Params("key"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid day key")
	}

	var patch models.DayPatch
	if err := c.BodyParser(&patch); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	override, err := handler.dayService.ApplyDayPatch(key, patch)
	if err != nil {
		return handler.respondDayError(c, err)
	}
	return c.JSON(dayResponse{DayKey: key, Date: date.Format("2006-01-02"), Override: override})
}

func (handler *Handler) DeleteDay(c *fiber.Ctx) error {
	key, _, err := models.ParseDayKey(c.Params("key"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid day key")
	}
	if err := handler.dayService.DeleteDay(key); err != nil {
		return handler.respondDayError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) LogPeriod(c *fiber.Ctx) error {
	today := handler.today()
	override, err := handler.dayService.LogPeriod(today)
	if err != nil {
		return handler.respondDayError(c, err)
	}
	return c.JSON(dayResponse{
		DayKey:   models.DayKeyFor(today),
		Date:     today.Format("2006-01-02"),
		Override: override,
	})
}

func (handler *Handler) respondDayError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidDayKey):
		return apiError(c, fiber.StatusBadRequest, "invalid day key")
	case errors.Is(err, services.ErrInvalidDayFlow):
		return apiError(c, fiber.StatusBadRequest, "invalid flow")
	case errors.Is(err, services.ErrTooManySymptoms):
		return apiError(c, fiber.StatusBadRequest, "too many symptoms")
	case errors.Is(err, services.ErrDeleteDayFailed):
		return apiError(c, fiber.StatusInternalServerError, "failed to delete day")
	case errors.Is(err, services.ErrSyncCycleStartFailed):
		return apiError(c, fiber.StatusInternalServerError, "failed to update cycle start")
	case errors.Is(err, services.ErrDayEntrySaveFailed):
		return apiError(c, fiber.StatusInternalServerError, "failed to save day")
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to load day")
	}
}
