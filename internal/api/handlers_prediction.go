package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetPrediction(c *fiber.Ctx) error {
	view, err := handler.calendarService.PredictionView(handler.today())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load prediction")
	}

	language := currentLanguage(c)
	prediction := view.Prediction
	phaseLabel := handler.i18n.PhaseLabel(language, string(prediction.CurrentPhaseName))
	summary := handler.i18n.Translatef(language, "prediction.summary",
		prediction.CycleDayNumber,
		prediction.AverageCycleLength,
		phaseLabel,
		prediction.DaysUntilNextPeriod,
	)
	if !view.HasCycleStart {
		summary = handler.i18n.Translate(language, "prediction.no_start")
	}

	return c.JSON(predictionResponse{
		PredictionView: view,
		PhaseLabel:     phaseLabel,
		InsightLabel:   handler.i18n.Translate(language, "insight."+view.Insights.Phase),
		Summary:        summary,
	})
}
