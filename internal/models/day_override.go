package models

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

const (
	FlowLight  = "light"
	FlowMedium = "medium"
	FlowHeavy  = "heavy"
)

// DayKey identifies a local calendar date as "{year}-{monthIndex}-{day}" with a
// zero-based month index, e.g. "2025-2-14" is 14 March 2025.
type DayKey string

func NewDayKey(year int, monthIndex int, day int) DayKey {
	normalized := time.Date(year, time.Month(monthIndex+1), day, 0, 0, 0, 0, time.UTC)
	return DayKeyFor(normalized)
}

func DayKeyFor(day time.Time) DayKey {
	year, month, dayOfMonth := day.Date()
	return DayKey(fmt.Sprintf("%d-%d-%d", year, int(month)-1, dayOfMonth))
}

// ParseDayKey accepts only canonical keys: the parsed date must format back to
// the same string.
func ParseDayKey(raw string) (DayKey, time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	parts := strings.Split(trimmed, "-")
	if len(parts) != 3 {
		return "", time.Time{}, fmt.Errorf("invalid day key %q", raw)
	}

	values := make([]int, 0, 3)
	for _, part := range parts {
		value, err := strconv.Atoi(part)
		if err != nil {
			return "", time.Time{}, fmt.Errorf("invalid day key %q: %w", raw, err)
		}
		values = append(values, value)
	}

	date := time.Date(values[0], time.Month(values[1]+1), values[2], 0, 0, 0, 0, time.UTC)
	key := DayKeyFor(date)
	if string(key) != trimmed {
		return "", time.Time{}, fmt.Errorf("non-canonical day key %q", raw)
	}
	return key, date, nil
}

func (key DayKey) String() string {
	return string(key)
}

func (key DayKey) Date() (time.Time, bool) {
	_, date, err := ParseDayKey(string(key))
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

// DayOverride is a user-entered fact about one date. Nil fields are unset.
type DayOverride struct {
	IsPeriod *bool    `json:"isPeriod,omitempty"`
	Flow     string   `json:"flow,omitempty"`
	Symptoms []string `json:"symptoms,omitempty"`
	HasSex   *bool    `json:"hasSex,omitempty"`
	Notes    *string  `json:"notes,omitempty"`
}

// DayPatch carries a partial DayOverride. Set fields replace the stored value.
type DayPatch struct {
	IsPeriod *bool    `json:"isPeriod,omitempty"`
	Flow     *string  `json:"flow,omitempty"`
	Symptoms []string `json:"symptoms,omitempty"`
	HasSex   *bool    `json:"hasSex,omitempty"`
	Notes    *string  `json:"notes,omitempty"`
}

type Overrides map[DayKey]DayOverride

func (override DayOverride) Clone() DayOverride {
	cloned := override
	if override.IsPeriod != nil {
		value := *override.IsPeriod
		cloned.IsPeriod = &value
	}
	if override.HasSex != nil {
		value := *override.HasSex
		cloned.HasSex = &value
	}
	if override.Notes != nil {
		value := *override.Notes
		cloned.Notes = &value
	}
	if override.Symptoms != nil {
		cloned.Symptoms = slices.Clone(override.Symptoms)
	}
	return cloned
}

func (override DayOverride) PeriodLogged() bool {
	return override.IsPeriod != nil && *override.IsPeriod
}

func (override DayOverride) SexLogged() bool {
	return override.HasSex != nil && *override.HasSex
}

func (override DayOverride) NotesText() string {
	if override.Notes == nil {
		return ""
	}
	return *override.Notes
}

func (override DayOverride) IsEmpty() bool {
	return override.IsPeriod == nil &&
		override.Flow == "" &&
		override.Symptoms == nil &&
		override.HasSex == nil &&
		override.Notes == nil
}

func IsValidFlow(flow string) bool {
	switch flow {
	case FlowLight, FlowMedium, FlowHeavy:
		return true
	default:
		return false
	}
}

func Bool(value bool) *bool {
	return &value
}

func String(value string) *string {
	return &value
}
