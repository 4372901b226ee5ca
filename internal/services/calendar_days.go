package services

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/terraincognita07/blushy/internal/models"
)

const CalendarGridSize = 42

const yearMonthLayout = "2006-01"

type YearMonth struct {
	Year  int
	Month time.Month
}

// NewYearMonth takes a zero-based month index and rolls it over like calendar
// arithmetic does, so index 12 is January of the next year.
func NewYearMonth(year int, monthIndex int) YearMonth {
	first := time.Date(year, time.Month(monthIndex+1), 1, 0, 0, 0, 0, time.UTC)
	return YearMonth{Year: first.Year(), Month: first.Month()}
}

func YearMonthOf(day time.Time) YearMonth {
	return YearMonth{Year: day.Year(), Month: day.Month()}
}

func ParseYearMonth(raw string) (YearMonth, error) {
	parsed, err := time.Parse(yearMonthLayout, strings.TrimSpace(raw))
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid month %q: %w", raw, err)
	}
	return YearMonthOf(parsed), nil
}

func (month YearMonth) MonthIndex() int {
	return int(month.Month) - 1
}

func (month YearMonth) Normalize() YearMonth {
	return NewYearMonth(month.Year, month.MonthIndex())
}

func (month YearMonth) FirstDay() time.Time {
	return time.Date(month.Year, month.Month, 1, 0, 0, 0, 0, time.UTC)
}

func (month YearMonth) DaysInMonth() int {
	return month.FirstDay().AddDate(0, 1, -1).Day()
}

func (month YearMonth) AddMonths(delta int) YearMonth {
	return NewYearMonth(month.Year, month.MonthIndex()+delta)
}

func (month YearMonth) String() string {
	return month.FirstDay().Format(yearMonthLayout)
}

type CalendarCell struct {
	Date                  string        `json:"date"`
	DayKey                models.DayKey `json:"dayKey"`
	DayOfMonth            int           `json:"dayOfMonth"`
	IsCurrentMonth        bool          `json:"isCurrentMonth"`
	IsToday               bool          `json:"isToday"`
	IsSelected            bool          `json:"isSelected"`
	Phase                 Phase         `json:"phase"`
	IsPeriod              bool          `json:"isPeriod"`
	IsFertile             bool          `json:"isFertile"`
	IsOvulation           bool          `json:"isOvulation"`
	IsHighPregnancyChance bool          `json:"isHighPregnancyChance"`
	IsPMS                 bool          `json:"isPMS"`
	HasSex                bool          `json:"hasSex"`
	Flow                  string        `json:"flow,omitempty"`
	Symptoms              []string      `json:"symptoms,omitempty"`
	Notes                 string        `json:"notes,omitempty"`
}

// BuildMonthGrid returns the 6x7 Sunday-first grid for month, padded with the
// tail of the previous month and the head of the next one. Phase flags come
// from classifying each cell's day-of-month and are then merged with the
// override stored under the cell's DayKey. selectedDay is a day-of-month in the
// displayed month; zero selects nothing.
func BuildMonthGrid(month YearMonth, today time.Time, overrides models.Overrides, selectedDay int) []CalendarCell {
	month = month.Normalize()
	first := month.FirstDay()
	gridStart := first.AddDate(0, 0, -int(first.Weekday()))
	todayKey := models.DayKeyFor(today)

	cells := make([]CalendarCell, 0, CalendarGridSize)
	for offset := 0; offset < CalendarGridSize; offset++ {
		day := gridStart.AddDate(0, 0, offset)
		inMonth := YearMonthOf(day) == month
		key := models.DayKeyFor(day)

		cell := buildCalendarCell(day, key, overrides[key])
		cell.IsCurrentMonth = inMonth
		cell.IsToday = key == todayKey
		cell.IsSelected = inMonth && selectedDay > 0 && day.Day() == selectedDay
		cells = append(cells, cell)
	}
	return cells
}

func buildCalendarCell(day time.Time, key models.DayKey, override models.DayOverride) CalendarCell {
	flags := Classify(day.Day())
	if override.IsPeriod != nil {
		flags.Period = *override.IsPeriod
	}

	cell := CalendarCell{
		Date:                  day.Format("2006-01-02"),
		DayKey:                key,
		DayOfMonth:            day.Day(),
		Phase:                 flags.Primary(),
		IsPeriod:              flags.Period,
		IsFertile:             flags.Fertile,
		IsOvulation:           flags.Ovulation,
		IsHighPregnancyChance: flags.HighPregnancyChance,
		IsPMS:                 flags.PMS,
		HasSex:                override.SexLogged(),
		Notes:                 override.NotesText(),
	}
	if cell.IsPeriod {
		cell.Flow = override.Flow
	}
	if override.Symptoms != nil {
		cell.Symptoms = slices.Clone(override.Symptoms)
	}
	return cell
}
