package models

import "time"

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5
	MinCycleLength      = 21
	MaxCycleLength      = 40
	MinPeriodLength     = 1
	MaxPeriodLength     = 10

	CycleProfileID = 1
)

// CycleProfile holds the single tracked person's cycle settings.
type CycleProfile struct {
	ID                 uint       `gorm:"primaryKey"`
	CycleStartDate     *time.Time `gorm:"type:date"`
	AverageCycleLength int        `gorm:"not null;default:28"`
	PeriodLength       int        `gorm:"not null;default:5"`
	UpdatedAt          time.Time
}

func DefaultCycleProfile() CycleProfile {
	return CycleProfile{
		ID:                 CycleProfileID,
		AverageCycleLength: DefaultCycleLength,
		PeriodLength:       DefaultPeriodLength,
	}
}
