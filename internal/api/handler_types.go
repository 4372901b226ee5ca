package api

import (
	"time"

	"github.com/terraincognita07/blushy/internal/db"
	"github.com/terraincognita07/blushy/internal/i18n"
	"github.com/terraincognita07/blushy/internal/models"
	"github.com/terraincognita07/blushy/internal/services"
	"go.uber.org/zap"
)

const contextLanguageKey = "language"

type Handler struct {
	location *time.Location
	i18n     *i18n.Manager
	logger   *zap.Logger
	now      func() time.Time

	repositories    *db.Repositories
	dayService      *services.DayService
	calendarService *services.CalendarService
	settingsService *services.SettingsService
	symptomService  *services.SymptomService
	statsService    *services.StatsService
	exportService   *services.ExportService
	companion       *services.CompanionService
}

// HandlerOptions carries the optional collaborators. A nil Completer makes
// every chat reply fall back to the localized canned answer.
type HandlerOptions struct {
	Location         *time.Location
	I18n             *i18n.Manager
	Logger           *zap.Logger
	Completer        services.Completer
	CompanionTimeout time.Duration
}

type phaseResponse struct {
	Day          int              `json:"day"`
	Tags         []services.Phase `json:"tags"`
	Primary      services.Phase   `json:"primary"`
	Label        string           `json:"label"`
	InsightPhase string           `json:"insightPhase"`
}

type calendarResponse struct {
	MonthLabel string                  `json:"monthLabel"`
	Month      services.MonthView      `json:"month"`
	Prediction services.PredictionView `json:"prediction"`
}

type navigateResponse struct {
	Month      string `json:"month"`
	Year       int    `json:"year"`
	MonthIndex int    `json:"monthIndex"`
	MonthLabel string `json:"monthLabel"`
}

type predictionResponse struct {
	services.PredictionView
	PhaseLabel   string `json:"phaseLabel"`
	InsightLabel string `json:"insightLabel"`
	Summary      string `json:"summary"`
}

type dayResponse struct {
	DayKey   models.DayKey      `json:"dayKey"`
	Date     string             `json:"date"`
	Override models.DayOverride `json:"override"`
}

type cycleSettingsRequest struct {
	AverageCycleLength int     `json:"averageCycleLength"`
	PeriodLength       int     `json:"periodLength"`
	CycleStartDate     *string `json:"cycleStartDate"`
}

type cycleSettingsResponse struct {
	AverageCycleLength int    `json:"averageCycleLength"`
	PeriodLength       int    `json:"periodLength"`
	CycleStartDate     string `json:"cycleStartDate,omitempty"`
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatHistoryResponse struct {
	Greeting string               `json:"greeting"`
	Messages []models.ChatMessage `json:"messages"`
}
