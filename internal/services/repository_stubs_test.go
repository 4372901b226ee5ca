package services

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/terraincognita07/blushy/internal/models"
)

var errStubFailure = errors.New("stub failure")

type dayEntryRepositoryStub struct {
	mu        sync.Mutex
	entries   map[string]models.DayEntry
	nextID    uint
	listCalls int
	listErr   error
	findErr   error
	saveErr   error
	deleteErr error
}

func newDayEntryRepositoryStub(entries ...models.DayEntry) *dayEntryRepositoryStub {
	stub := &dayEntryRepositoryStub{
		entries: make(map[string]models.DayEntry),
		nextID:  1,
	}
	for _, entry := range entries {
		stub.Save(&entry)
	}
	return stub
}

func (stub *dayEntryRepositoryStub) ListAll() ([]models.DayEntry, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()

	stub.listCalls++
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	result := make([]models.DayEntry, 0, len(stub.entries))
	for _, entry := range stub.entries {
		result = append(result, entry)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result, nil
}

func (stub *dayEntryRepositoryStub) ListRange(from *time.Time, to *time.Time) ([]models.DayEntry, error) {
	all, err := stub.ListAll()
	if err != nil {
		return nil, err
	}
	result := make([]models.DayEntry, 0, len(all))
	for _, entry := range all {
		if from != nil && entry.Date.Before(*from) {
			continue
		}
		if to != nil && entry.Date.After(*to) {
			continue
		}
		result = append(result, entry)
	}
	return result, nil
}

func (stub *dayEntryRepositoryStub) FindByKey(key string) (models.DayEntry, bool, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()

	if stub.findErr != nil {
		return models.DayEntry{}, false, stub.findErr
	}
	entry, ok := stub.entries[key]
	return entry, ok, nil
}

func (stub *dayEntryRepositoryStub) Save(entry *models.DayEntry) error {
	stub.mu.Lock()
	defer stub.mu.Unlock()

	if stub.saveErr != nil {
		return stub.saveErr
	}
	if entry.DayKey == "" {
		return fmt.Errorf("empty day key")
	}
	if entry.ID == 0 {
		entry.ID = stub.nextID
		stub.nextID++
	}
	stub.entries[entry.DayKey] = *entry
	return nil
}

func (stub *dayEntryRepositoryStub) DeleteByKey(key string) error {
	stub.mu.Lock()
	defer stub.mu.Unlock()

	if stub.deleteErr != nil {
		return stub.deleteErr
	}
	delete(stub.entries, key)
	return nil
}

func (stub *dayEntryRepositoryStub) stored(key string) (models.DayEntry, bool) {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	entry, ok := stub.entries[key]
	return entry, ok
}

type cycleProfileRepositoryStub struct {
	profile models.CycleProfile
	loadErr error
	saveErr error
	saves   int
}

func newCycleProfileRepositoryStub() *cycleProfileRepositoryStub {
	return &cycleProfileRepositoryStub{profile: models.DefaultCycleProfile()}
}

func (stub *cycleProfileRepositoryStub) Load() (models.CycleProfile, error) {
	if stub.loadErr != nil {
		return models.CycleProfile{}, stub.loadErr
	}
	return stub.profile, nil
}

func (stub *cycleProfileRepositoryStub) Save(profile *models.CycleProfile) error {
	if stub.saveErr != nil {
		return stub.saveErr
	}
	stub.saves++
	stub.profile = *profile
	return nil
}

type overrideReaderStub struct {
	overrides models.Overrides
	err       error
}

func (stub overrideReaderStub) Overrides() (models.Overrides, error) {
	return stub.overrides, stub.err
}

type chatMessageRepositoryStub struct {
	mu        sync.Mutex
	messages  []models.ChatMessage
	appendErr error
	listErr   error
}

func (stub *chatMessageRepositoryStub) Append(message *models.ChatMessage) error {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	if stub.appendErr != nil {
		return stub.appendErr
	}
	stub.messages = append(stub.messages, *message)
	return nil
}

func (stub *chatMessageRepositoryStub) ListRecent(limit int) ([]models.ChatMessage, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	start := 0
	if len(stub.messages) > limit {
		start = len(stub.messages) - limit
	}
	result := make([]models.ChatMessage, len(stub.messages)-start)
	copy(result, stub.messages[start:])
	return result, nil
}

type translatorStub struct{}

func (translatorStub) Translate(language string, key string) string {
	return language + ":" + key
}

func (translatorStub) Translatef(language string, key string, args ...any) string {
	return fmt.Sprintf("%s:%s:%v", language, key, args)
}

func (translatorStub) DayMonth(language string, day time.Time) string {
	return fmt.Sprintf("%s:%s", language, day.Format("2006-01-02"))
}

func mustDay(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
