package models

import "time"

// DayEntry is the stored form of one DayOverride.
type DayEntry struct {
	ID        uint      `gorm:"primaryKey"`
	DayKey    string    `gorm:"not null;uniqueIndex"`
	Date      time.Time `gorm:"type:date;not null;index"`
	IsPeriod  *bool
	Flow      string   `gorm:"not null;default:''"`
	Symptoms  []string `gorm:"serializer:json"`
	HasSex    *bool
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (entry DayEntry) Override() DayOverride {
	return DayOverride{
		IsPeriod: entry.IsPeriod,
		Flow:     entry.Flow,
		Symptoms: entry.Symptoms,
		HasSex:   entry.HasSex,
		Notes:    entry.Notes,
	}.Clone()
}

func (entry *DayEntry) SetOverride(override DayOverride) {
	cloned := override.Clone()
	entry.IsPeriod = cloned.IsPeriod
	entry.Flow = cloned.Flow
	entry.Symptoms = cloned.Symptoms
	entry.HasSex = cloned.HasSex
	entry.Notes = cloned.Notes
}
