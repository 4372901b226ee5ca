package services

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/blushy/internal/models"
)

var (
	ErrSettingsCycleLengthOutOfRange  = errors.New("settings cycle length out of range")
	ErrSettingsPeriodLengthOutOfRange = errors.New("settings period length out of range")
	ErrSettingsCycleStartDateInvalid  = errors.New("settings cycle start date invalid")
	ErrSettingsLoadFailed             = errors.New("load cycle settings failed")
	ErrSettingsSaveFailed             = errors.New("save cycle settings failed")
)

type CycleSettingsInput struct {
	AverageCycleLength int
	PeriodLength       int
	CycleStartDateRaw  string
	CycleStartDateSet  bool
}

type CycleSettingsUpdate struct {
	AverageCycleLength int
	PeriodLength       int
	CycleStartDateSet  bool
	CycleStartDate     *time.Time
}

type SettingsService struct {
	profiles CycleProfileRepository
}

func NewSettingsService(profiles CycleProfileRepository) *SettingsService {
	return &SettingsService{profiles: profiles}
}

func IsValidCycleLength(value int) bool {
	return value >= models.MinCycleLength && value <= models.MaxCycleLength
}

func IsValidPeriodLength(value int) bool {
	return value >= models.MinPeriodLength && value <= models.MaxPeriodLength
}

func (service *SettingsService) LoadCycleSettings() (models.CycleProfile, error) {
	profile, err := service.profiles.Load()
	if err != nil {
		return models.CycleProfile{}, ErrSettingsLoadFailed
	}
	profile.AverageCycleLength = NormalizeCycleLength(profile.AverageCycleLength)
	return profile, nil
}

// ValidateCycleSettings applies the profile-setup ranges. The start date may not
// lie in the future or more than a year back.
func (service *SettingsService) ValidateCycleSettings(input CycleSettingsInput, now time.Time, location *time.Location) (CycleSettingsUpdate, error) {
	if !IsValidCycleLength(input.AverageCycleLength) {
		return CycleSettingsUpdate{}, ErrSettingsCycleLengthOutOfRange
	}
	if !IsValidPeriodLength(input.PeriodLength) {
		return CycleSettingsUpdate{}, ErrSettingsPeriodLengthOutOfRange
	}

	update := CycleSettingsUpdate{
		AverageCycleLength: input.AverageCycleLength,
		PeriodLength:       input.PeriodLength,
		CycleStartDateSet:  input.CycleStartDateSet,
	}
	if !input.CycleStartDateSet {
		return update, nil
	}

	rawDate := strings.TrimSpace(input.CycleStartDateRaw)
	if rawDate == "" {
		return update, nil
	}

	if location == nil {
		location = time.UTC
	}
	parsedDay, err := time.ParseInLocation("2006-01-02", rawDate, location)
	if err != nil {
		return CycleSettingsUpdate{}, ErrSettingsCycleStartDateInvalid
	}

	minStart, today := SettingsCycleStartDateBounds(now, location)
	if parsedDay.Before(minStart) || parsedDay.After(today) {
		return CycleSettingsUpdate{}, ErrSettingsCycleStartDateInvalid
	}

	day := CalendarDate(parsedDay)
	update.CycleStartDate = &day
	return update, nil
}

func (service *SettingsService) SaveCycleSettings(update CycleSettingsUpdate) (models.CycleProfile, error) {
	profile, err := service.profiles.Load()
	if err != nil {
		return models.CycleProfile{}, ErrSettingsLoadFailed
	}

	profile.AverageCycleLength = update.AverageCycleLength
	profile.PeriodLength = update.PeriodLength
	if update.CycleStartDateSet {
		profile.CycleStartDate = update.CycleStartDate
	}

	if err := service.profiles.Save(&profile); err != nil {
		return models.CycleProfile{}, ErrSettingsSaveFailed
	}
	return profile, nil
}

func SettingsCycleStartDateBounds(now time.Time, location *time.Location) (time.Time, time.Time) {
	today := DateAtLocation(now, location)
	return today.AddDate(-1, 0, 0), today
}
