package services

import "time"

const (
	InsightPhaseMenstrual  = "menstrual"
	InsightPhaseFollicular = "follicular"
	InsightPhaseOvulatory  = "ovulatory"
	InsightPhaseLuteal     = "luteal"

	lutealPhaseDays = 14
)

type CycleInsights struct {
	Phase                string    `json:"phase"`
	CurrentCycleStart    time.Time `json:"currentCycleStart"`
	NextPeriodStart      time.Time `json:"nextPeriodStart"`
	OvulationDate        time.Time `json:"ovulationDate"`
	FertilityWindowStart time.Time `json:"fertilityWindowStart"`
	FertilityWindowEnd   time.Time `json:"fertilityWindowEnd"`
	DaysUntilOvulation   int       `json:"daysUntilOvulation"`
}

func InsightPhase(cycleDay int) string {
	switch {
	case cycleDay <= 5:
		return InsightPhaseMenstrual
	case cycleDay <= 13:
		return InsightPhaseFollicular
	case cycleDay <= 16:
		return InsightPhaseOvulatory
	default:
		return InsightPhaseLuteal
	}
}

// BuildCycleInsights projects dates from a prediction. The next period date is
// today plus DaysUntilNextPeriod so it agrees with the displayed countdown;
// ovulation sits a fixed luteal phase before it.
func BuildCycleInsights(today time.Time, prediction CyclePrediction) CycleInsights {
	day := CalendarDate(today)
	nextPeriod := day.AddDate(0, 0, prediction.DaysUntilNextPeriod)
	ovulation := nextPeriod.AddDate(0, 0, -lutealPhaseDays)

	return CycleInsights{
		Phase:                InsightPhase(prediction.CycleDayNumber),
		CurrentCycleStart:    day.AddDate(0, 0, -(prediction.CycleDayNumber - 1)),
		NextPeriodStart:      nextPeriod,
		OvulationDate:        ovulation,
		FertilityWindowStart: ovulation.AddDate(0, 0, -5),
		FertilityWindowEnd:   ovulation.AddDate(0, 0, 1),
		DaysUntilOvulation:   DaysBetween(day, ovulation),
	}
}
