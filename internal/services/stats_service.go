package services

import (
	"time"

	"github.com/terraincognita07/blushy/internal/models"
)

const defaultTrendPoints = 12

type StatsFlags struct {
	HasObservedCycleData bool `json:"hasObservedCycleData"`
	HasTrendData         bool `json:"hasTrendData"`
	HasReliableTrend     bool `json:"hasReliableTrend"`
	CycleDataStale       bool `json:"cycleDataStale"`
	CycleDayLooksLong    bool `json:"cycleDayLooksLong"`
}

type StatsView struct {
	History          CycleStats         `json:"history"`
	Trend            []int              `json:"trend"`
	BaselineLength   int                `json:"baselineLength"`
	Flags            StatsFlags         `json:"flags"`
	SymptomFrequency []SymptomFrequency `json:"symptomFrequency"`
}

type StatsService struct {
	overrides OverrideReader
	profiles  CycleProfileReader
	symptoms  *SymptomService
}

func NewStatsService(overrides OverrideReader, profiles CycleProfileReader, symptoms *SymptomService) *StatsService {
	return &StatsService{
		overrides: overrides,
		profiles:  profiles,
		symptoms:  symptoms,
	}
}

func (service *StatsService) BuildStats(today time.Time) (StatsView, error) {
	overrides, err := service.overrides.Overrides()
	if err != nil {
		return StatsView{}, err
	}
	profile, err := service.profiles.Load()
	if err != nil {
		return StatsView{}, ErrSettingsLoadFailed
	}

	day := CalendarDate(today)
	history := BuildCycleStats(overrides)
	trend := TrimTrailingCycleTrendLengths(CompletedCycleTrendLengths(history.CycleStarts, day), defaultTrendPoints)
	reference := CycleReferenceLength(profile, history)

	anchor := history.LastPeriodStart
	if profile.CycleStartDate != nil && !profile.CycleStartDate.IsZero() {
		anchor = CalendarDate(*profile.CycleStartDate)
	}
	rawCycleDay := 0
	if !anchor.IsZero() && !day.Before(anchor) {
		rawCycleDay = DaysBetween(anchor, day) + 1
	}

	view := StatsView{
		History:        history,
		Trend:          trend,
		BaselineLength: NormalizeCycleLength(profile.AverageCycleLength),
		Flags: StatsFlags{
			HasObservedCycleData: history.CyclesAnalyzed > 0,
			HasTrendData:         len(trend) > 0,
			HasReliableTrend:     len(trend) >= 3,
			CycleDataStale:       rawCycleDay > reference,
			CycleDayLooksLong:    CycleDayLooksLong(rawCycleDay, reference),
		},
		SymptomFrequency: []SymptomFrequency{},
	}
	if service.symptoms != nil {
		view.SymptomFrequency = service.symptoms.CalculateFrequencies(overrides)
	}
	return view, nil
}

// CycleReferenceLength prefers the configured length, then observed history.
func CycleReferenceLength(profile models.CycleProfile, stats CycleStats) int {
	if IsValidCycleLength(profile.AverageCycleLength) {
		return profile.AverageCycleLength
	}
	if stats.MedianCycleLength > 0 {
		return stats.MedianCycleLength
	}
	if stats.AverageCycleLength > 0 {
		return int(stats.AverageCycleLength + 0.5)
	}
	return models.DefaultCycleLength
}

func CycleDayLooksLong(currentDay int, referenceLength int) bool {
	if currentDay <= 0 || referenceLength <= 0 {
		return false
	}
	return currentDay > referenceLength+7
}

// CompletedCycleTrendLengths returns lengths of cycles whose successor started
// before today.
func CompletedCycleTrendLengths(starts []time.Time, today time.Time) []int {
	if len(starts) < 2 {
		return nil
	}

	lengths := make([]int, 0, len(starts)-1)
	for index := 1; index < len(starts); index++ {
		if !starts[index].Before(today) {
			break
		}
		lengths = append(lengths, DaysBetween(starts[index-1], starts[index]))
	}
	return lengths
}

func TrimTrailingCycleTrendLengths(lengths []int, maxPoints int) []int {
	if maxPoints <= 0 || len(lengths) <= maxPoints {
		return lengths
	}
	return lengths[len(lengths)-maxPoints:]
}
