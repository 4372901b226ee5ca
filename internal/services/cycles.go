package services

import (
	"math"
	"sort"
	"time"

	"github.com/terraincognita07/blushy/internal/models"
)

const (
	RegularityRegular   = "regular"
	RegularityIrregular = "irregular"
	RegularityUnknown   = "unknown"

	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// CycleStats summarizes the period days logged through overrides.
type CycleStats struct {
	CycleStarts          []time.Time    `json:"cycleStarts"`
	CyclesAnalyzed       int            `json:"cyclesAnalyzed"`
	AverageCycleLength   float64        `json:"averageCycleLength"`
	MedianCycleLength    int            `json:"medianCycleLength"`
	ShortestCycle        int            `json:"shortestCycle"`
	LongestCycle         int            `json:"longestCycle"`
	StdDeviation         float64        `json:"stdDeviation"`
	Regularity           string         `json:"regularity"`
	Confidence           string         `json:"confidence,omitempty"`
	LastPeriodStart      time.Time      `json:"lastPeriodStart"`
	PredictedPeriodStart time.Time      `json:"predictedPeriodStart"`
	PredictionEarliest   time.Time      `json:"predictionEarliest"`
	PredictionLatest     time.Time      `json:"predictionLatest"`
	FlowDistribution     map[string]int `json:"flowDistribution"`
}

func (stats CycleStats) HasPrediction() bool {
	return !stats.PredictedPeriodStart.IsZero()
}

func BuildCycleStats(overrides models.Overrides) CycleStats {
	stats := CycleStats{
		Regularity:       RegularityUnknown,
		FlowDistribution: map[string]int{},
	}

	periodDays := loggedPeriodDays(overrides)
	for _, day := range periodDays {
		if flow := overrides[models.DayKeyFor(day)].Flow; models.IsValidFlow(flow) {
			stats.FlowDistribution[flow]++
		}
	}

	starts := detectCycleStarts(periodDays)
	stats.CycleStarts = starts
	if len(starts) == 0 {
		return stats
	}
	stats.LastPeriodStart = starts[len(starts)-1]

	lengths := tailInts(cycleLengths(starts), 6)
	if len(lengths) == 0 {
		return stats
	}

	stats.CyclesAnalyzed = len(lengths)
	stats.AverageCycleLength = averageInts(lengths)
	stats.MedianCycleLength = medianInt(lengths)
	stats.ShortestCycle, stats.LongestCycle = minMaxInts(lengths)
	stats.StdDeviation = sampleStdDev(lengths)

	if len(lengths) > 1 {
		if stats.StdDeviation < 3 {
			stats.Regularity = RegularityRegular
		} else {
			stats.Regularity = RegularityIrregular
		}
	}

	switch {
	case stats.StdDeviation < 3:
		stats.Confidence = ConfidenceHigh
	case stats.StdDeviation < 7:
		stats.Confidence = ConfidenceMedium
	default:
		stats.Confidence = ConfidenceLow
	}

	margin := int(stats.StdDeviation) + 1
	stats.PredictedPeriodStart = stats.LastPeriodStart.AddDate(0, 0, int(stats.AverageCycleLength))
	stats.PredictionEarliest = stats.PredictedPeriodStart.AddDate(0, 0, -margin)
	stats.PredictionLatest = stats.PredictedPeriodStart.AddDate(0, 0, margin)
	return stats
}

// DetectCycleStarts returns the first day of every run of logged period days.
// A gap of five or more days without a period entry opens a new cycle.
func DetectCycleStarts(overrides models.Overrides) []time.Time {
	return detectCycleStarts(loggedPeriodDays(overrides))
}

func loggedPeriodDays(overrides models.Overrides) []time.Time {
	days := make([]time.Time, 0)
	for key, override := range overrides {
		if !override.PeriodLogged() {
			continue
		}
		day, ok := key.Date()
		if !ok {
			continue
		}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})
	return days
}

func detectCycleStarts(sortedPeriodDays []time.Time) []time.Time {
	starts := make([]time.Time, 0)
	var previousPeriodDay time.Time

	for _, day := range sortedPeriodDays {
		if previousPeriodDay.IsZero() {
			starts = append(starts, day)
			previousPeriodDay = day
			continue
		}

		gapDays := DaysBetween(previousPeriodDay, day) - 1
		if gapDays >= 5 {
			starts = append(starts, day)
		}
		previousPeriodDay = day
	}

	return starts
}

func cycleLengths(starts []time.Time) []int {
	if len(starts) < 2 {
		return nil
	}

	lengths := make([]int, 0, len(starts)-1)
	for i := 1; i < len(starts); i++ {
		lengths = append(lengths, DaysBetween(starts[i-1], starts[i]))
	}
	return lengths
}

func tailInts(values []int, n int) []int {
	if len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}

func averageInts(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	var total int
	for _, value := range values {
		total += value
	}
	return float64(total) / float64(len(values))
}

func medianInt(values []int) int {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]int, 0, len(values))
	sorted = append(sorted, values...)
	sort.Ints(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}

	left := sorted[mid-1]
	right := sorted[mid]
	return int(float64(left+right)/2 + 0.5)
}

func minMaxInts(values []int) (int, int) {
	if len(values) == 0 {
		return 0, 0
	}
	low, high := values[0], values[0]
	for _, value := range values[1:] {
		low = min(low, value)
		high = max(high, value)
	}
	return low, high
}

func sampleStdDev(values []int) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := averageInts(values)
	var sum float64
	for _, value := range values {
		delta := float64(value) - mean
		sum += delta * delta
	}
	return math.Sqrt(sum / float64(len(values)-1))
}
