package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/blushy/internal/models"
	"github.com/terraincognita07/blushy/internal/services"
)

func (handler *Handler) GetCycleSettings(c *fiber.Ctx) error {
	profile, err := handler.settingsService.LoadCycleSettings()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load settings")
	}
	return c.JSON(newCycleSettingsResponse(profile))
}

func (handler *Handler) UpdateCycleSettings(c *fiber.Ctx) error {
	var request cycleSettingsRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	input := services.CycleSettingsInput{
		AverageCycleLength: request.AverageCycleLength,
		PeriodLength:       request.PeriodLength,
		CycleStartDateSet:  request.CycleStartDate != nil,
	}
	if request.CycleStartDate != nil {
		input.CycleStartDateRaw = *request.CycleStartDate
	}

	update, err := handler.settingsService.ValidateCycleSettings(input, handler.now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, settingsErrorMessage(err))
	}
	profile, err := handler.settingsService.SaveCycleSettings(update)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update cycle settings")
	}
	return c.JSON(newCycleSettingsResponse(profile))
}

func settingsErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrSettingsCycleLengthOutOfRange):
		return "cycle length out of range"
	case errors.Is(err, services.ErrSettingsPeriodLengthOutOfRange):
		return "period length out of range"
	case errors.Is(err, services.ErrSettingsCycleStartDateInvalid):
		return "invalid cycle start date"
	default:
		return "invalid settings"
	}
}

func newCycleSettingsResponse(profile models.CycleProfile) cycleSettingsResponse {
	response := cycleSettingsResponse{
		AverageCycleLength: profile.AverageCycleLength,
		PeriodLength:       profile.PeriodLength,
	}
	if profile.CycleStartDate != nil && !profile.CycleStartDate.IsZero() {
		response.CycleStartDate = profile.CycleStartDate.Format("2006-01-02")
	}
	return response
}
