package api

import (
	"errors"
	"time"

	"github.com/terraincognita07/blushy/internal/db"
	"github.com/terraincognita07/blushy/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, options HandlerOptions) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if options.I18n == nil {
		return nil, errors.New("i18n manager is required")
	}

	handler := &Handler{
		location: options.Location,
		i18n:     options.I18n,
		logger:   options.Logger,
		now:      time.Now,
	}
	if handler.location == nil {
		handler.location = time.UTC
	}
	if handler.logger == nil {
		handler.logger = zap.NewNop()
	}
	return handler.withDependencies(database, options), nil
}

func (handler *Handler) withDependencies(database *gorm.DB, options HandlerOptions) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.dayService = services.NewDayService(handler.repositories.Days, handler.repositories.Profiles)
	handler.calendarService = services.NewCalendarService(handler.dayService, handler.repositories.Profiles)
	handler.settingsService = services.NewSettingsService(handler.repositories.Profiles)
	handler.symptomService = services.NewSymptomService(nil)
	handler.statsService = services.NewStatsService(handler.dayService, handler.repositories.Profiles, handler.symptomService)
	handler.exportService = services.NewExportService(handler.repositories.Days)
	handler.companion = services.NewCompanionService(
		options.Completer,
		handler.repositories.ChatMessages,
		handler.i18n,
		options.CompanionTimeout,
		handler.logger.Named("companion"),
	)
	return handler
}

// Predictions exposes the prediction source backed by the same override
// snapshot the HTTP handlers write to.
func (handler *Handler) Predictions() services.PredictionSource {
	return handler.calendarService
}

func (handler *Handler) today() time.Time {
	return services.DateAtLocation(handler.now(), handler.location)
}
