package services

import (
	"time"

	"github.com/terraincognita07/blushy/internal/models"
)

type CyclePrediction struct {
	CurrentPhaseName     Phase   `json:"currentPhaseName"`
	CycleDayNumber       int     `json:"cycleDayNumber"`
	DaysUntilNextPeriod  int     `json:"daysUntilNextPeriod"`
	CycleProgressPercent float64 `json:"cycleProgressPercent"`
	AverageCycleLength   int     `json:"averageCycleLength"`
}

// NormalizeCycleLength clamps a non-positive length to MinCycleLength. Other
// positive values pass through untouched.
func NormalizeCycleLength(length int) int {
	if length <= 0 {
		return models.MinCycleLength
	}
	return length
}

// Predict recomputes the cycle position for today. Elapsed days are reduced
// with a floored modulo so a start date after today still lands in
// [1, averageCycleLength].
func Predict(today time.Time, cycleStart time.Time, averageCycleLength int) CyclePrediction {
	length := NormalizeCycleLength(averageCycleLength)
	elapsed := DaysBetween(cycleStart, today)
	cycleDay := floorMod(elapsed, length) + 1

	return CyclePrediction{
		CurrentPhaseName:     Classify(cycleDay).Primary(),
		CycleDayNumber:       cycleDay,
		DaysUntilNextPeriod:  length - cycleDay,
		CycleProgressPercent: float64(cycleDay) / float64(length) * 100,
		AverageCycleLength:   length,
	}
}
