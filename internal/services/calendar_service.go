package services

import (
	"time"

	"github.com/terraincognita07/blushy/internal/models"
)

type OverrideReader interface {
	Overrides() (models.Overrides, error)
}

type CycleProfileReader interface {
	Load() (models.CycleProfile, error)
}

type MonthView struct {
	Month      string         `json:"month"`
	Year       int            `json:"year"`
	MonthIndex int            `json:"monthIndex"`
	PrevMonth  string         `json:"prevMonth"`
	NextMonth  string         `json:"nextMonth"`
	Cells      []CalendarCell `json:"cells"`
}

type PredictionView struct {
	Prediction     CyclePrediction `json:"prediction"`
	Insights       CycleInsights   `json:"insights"`
	History        CycleStats      `json:"history"`
	CycleStartDate time.Time       `json:"cycleStartDate"`
	HasCycleStart  bool            `json:"hasCycleStart"`
}

type CalendarService struct {
	overrides OverrideReader
	profiles  CycleProfileReader
}

func NewCalendarService(overrides OverrideReader, profiles CycleProfileReader) *CalendarService {
	return &CalendarService{
		overrides: overrides,
		profiles:  profiles,
	}
}

func (service *CalendarService) MonthView(month YearMonth, today time.Time, selectedDay int) (MonthView, error) {
	overrides, err := service.overrides.Overrides()
	if err != nil {
		return MonthView{}, err
	}

	month = month.Normalize()
	return MonthView{
		Month:      month.String(),
		Year:       month.Year,
		MonthIndex: month.MonthIndex(),
		PrevMonth:  Navigate(month, DirectionPrev).String(),
		NextMonth:  Navigate(month, DirectionNext).String(),
		Cells:      BuildMonthGrid(month, today, overrides, selectedDay),
	}, nil
}

// PredictionView resolves the cycle start from the profile, falling back to the
// latest cycle start detected in logged period days. Without either, today is
// treated as day one and HasCycleStart is false.
func (service *CalendarService) PredictionView(today time.Time) (PredictionView, error) {
	overrides, err := service.overrides.Overrides()
	if err != nil {
		return PredictionView{}, err
	}
	profile, err := service.profiles.Load()
	if err != nil {
		return PredictionView{}, ErrSettingsLoadFailed
	}

	history := BuildCycleStats(overrides)
	cycleStart, hasStart := ResolveCycleStart(profile, history, today)
	prediction := Predict(today, cycleStart, profile.AverageCycleLength)

	return PredictionView{
		Prediction:     prediction,
		Insights:       BuildCycleInsights(today, prediction),
		History:        history,
		CycleStartDate: cycleStart,
		HasCycleStart:  hasStart,
	}, nil
}

func ResolveCycleStart(profile models.CycleProfile, history CycleStats, today time.Time) (time.Time, bool) {
	if profile.CycleStartDate != nil && !profile.CycleStartDate.IsZero() {
		return CalendarDate(*profile.CycleStartDate), true
	}
	if !history.LastPeriodStart.IsZero() {
		return history.LastPeriodStart, true
	}
	return CalendarDate(today), false
}
