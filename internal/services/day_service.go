package services

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/terraincognita07/blushy/internal/models"
)

var (
	ErrInvalidDayKey        = errors.New("invalid day key")
	ErrDayEntryLoadFailed   = errors.New("load day entry failed")
	ErrDayEntrySaveFailed   = errors.New("save day entry failed")
	ErrDeleteDayFailed      = errors.New("delete day failed")
	ErrSyncCycleStartFailed = errors.New("sync cycle start failed")
)

type DayEntryRepository interface {
	ListAll() ([]models.DayEntry, error)
	FindByKey(key string) (models.DayEntry, bool, error)
	Save(entry *models.DayEntry) error
	DeleteByKey(key string) error
}

type CycleProfileRepository interface {
	Load() (models.CycleProfile, error)
	Save(profile *models.CycleProfile) error
}

// DayService owns the override map. Writers are serialized and publish a fresh
// map on every change, so a map handed out by Overrides is never modified
// afterwards and callers must not modify it either.
type DayService struct {
	entries  DayEntryRepository
	profiles CycleProfileRepository

	mu       sync.Mutex
	snapshot atomic.Pointer[models.Overrides]
}

func NewDayService(entries DayEntryRepository, profiles CycleProfileRepository) *DayService {
	return &DayService{
		entries:  entries,
		profiles: profiles,
	}
}

func (service *DayService) Overrides() (models.Overrides, error) {
	if current := service.snapshot.Load(); current != nil {
		return *current, nil
	}

	service.mu.Lock()
	defer service.mu.Unlock()
	return service.loadLocked()
}

func (service *DayService) FetchOverride(key models.DayKey) (models.DayOverride, error) {
	if _, ok := key.Date(); !ok {
		return models.DayOverride{}, ErrInvalidDayKey
	}
	overrides, err := service.Overrides()
	if err != nil {
		return models.DayOverride{}, err
	}
	return overrides[key].Clone(), nil
}

// ApplyDayPatch is the single write path for day data: logging a period,
// toggling symptoms, recording sex and writing notes all end up here.
func (service *DayService) ApplyDayPatch(key models.DayKey, patch models.DayPatch) (models.DayOverride, error) {
	date, ok := key.Date()
	if !ok {
		return models.DayOverride{}, ErrInvalidDayKey
	}
	patch, err := NormalizeDayPatch(patch)
	if err != nil {
		return models.DayOverride{}, err
	}

	service.mu.Lock()
	defer service.mu.Unlock()

	current, err := service.loadLocked()
	if err != nil {
		return models.DayOverride{}, err
	}
	next := ApplyOverride(current, key, patch)

	entry, found, err := service.entries.FindByKey(key.String())
	if err != nil {
		return models.DayOverride{}, ErrDayEntryLoadFailed
	}
	if !found {
		entry = models.DayEntry{DayKey: key.String(), Date: date}
	}
	entry.SetOverride(next[key])
	if err := service.entries.Save(&entry); err != nil {
		return models.DayOverride{}, ErrDayEntrySaveFailed
	}

	service.snapshot.Store(&next)
	return next[key].Clone(), nil
}

// LogPeriod marks today as a medium-flow period day and restarts the cycle
// from today.
func (service *DayService) LogPeriod(today time.Time) (models.DayOverride, error) {
	override, err := service.ApplyDayPatch(models.DayKeyFor(today), models.DayPatch{
		IsPeriod: models.Bool(true),
		Flow:     models.String(models.FlowMedium),
	})
	if err != nil {
		return models.DayOverride{}, err
	}

	profile, err := service.profiles.Load()
	if err != nil {
		return models.DayOverride{}, ErrSyncCycleStartFailed
	}
	start := CalendarDate(today)
	profile.CycleStartDate = &start
	if err := service.profiles.Save(&profile); err != nil {
		return models.DayOverride{}, ErrSyncCycleStartFailed
	}
	return override, nil
}

func (service *DayService) DeleteDay(key models.DayKey) error {
	if _, ok := key.Date(); !ok {
		return ErrInvalidDayKey
	}

	service.mu.Lock()
	defer service.mu.Unlock()

	current, err := service.loadLocked()
	if err != nil {
		return err
	}
	if err := service.entries.DeleteByKey(key.String()); err != nil {
		return ErrDeleteDayFailed
	}

	next := make(models.Overrides, len(current))
	for existingKey, existing := range current {
		if existingKey != key {
			next[existingKey] = existing
		}
	}
	service.snapshot.Store(&next)
	return nil
}

func (service *DayService) loadLocked() (models.Overrides, error) {
	if current := service.snapshot.Load(); current != nil {
		return *current, nil
	}

	entries, err := service.entries.ListAll()
	if err != nil {
		return nil, ErrDayEntryLoadFailed
	}
	overrides := make(models.Overrides, len(entries))
	for _, entry := range entries {
		overrides[models.DayKey(entry.DayKey)] = entry.Override()
	}
	service.snapshot.Store(&overrides)
	return overrides, nil
}
