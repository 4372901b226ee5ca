package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/blushy/internal/services"
)

func (handler *Handler) GetCalendar(c *fiber.Ctx) error {
	today := handler.today()
	month, ok := parseMonthQuery(c.Query("month"), services.YearMonthOf(today))
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid month")
	}
	selectedDay, ok := parseSelectedDay(c.Query("selected"), month)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid selected day")
	}

	view, err := handler.calendarService.MonthView(month, today, selectedDay)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load calendar")
	}
	prediction, err := handler.calendarService.PredictionView(today)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load prediction")
	}

	return c.JSON(calendarResponse{
		MonthLabel: handler.monthLabel(currentLanguage(c), month),
		Month:      view,
		Prediction: prediction,
	})
}

func (handler *Handler) NavigateCalendar(c *fiber.Ctx) error {
	month, ok := parseMonthQuery(c.Query("month"), services.YearMonthOf(handler.today()))
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid month")
	}
	direction, err := services.ParseDirection(c.Query("direction"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid direction")
	}

	next := services.Navigate(month, direction)
	return c.JSON(navigateResponse{
		Month:      next.String(),
		Year:       next.Year,
		MonthIndex: next.MonthIndex(),
		MonthLabel: handler.monthLabel(currentLanguage(c), next),
	})
}

func (handler *Handler) monthLabel(language string, month services.YearMonth) string {
	return handler.i18n.MonthName(language, month.Month) + " " + strconv.Itoa(month.Year)
}

func parseMonthQuery(raw string, fallback services.YearMonth) (services.YearMonth, bool) {
	if strings.TrimSpace(raw) == "" {
		return fallback, true
	}
	month, err := services.ParseYearMonth(raw)
	if err != nil {
		return services.YearMonth{}, false
	}
	return month, true
}

// parseSelectedDay accepts an empty value (nothing selected) or a day that
// exists in month.
func parseSelectedDay(raw string, month services.YearMonth) (int, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, true
	}
	day, err := strconv.Atoi(trimmed)
	if err != nil || day < 1 || day > month.DaysInMonth() {
		return 0, false
	}
	return day, true
}
