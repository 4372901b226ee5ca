package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/terraincognita07/blushy/internal/models"
)

const (
	MaxDayNotesLength = 2000
	MaxSymptomTags    = 32
)

var (
	ErrInvalidDayFlow  = errors.New("invalid day flow")
	ErrTooManySymptoms = errors.New("too many symptoms")
)

// NormalizeDayPatch validates a patch at the service boundary. An empty flow
// clears the stored flow.
func NormalizeDayPatch(patch models.DayPatch) (models.DayPatch, error) {
	if patch.Flow != nil {
		flow := strings.ToLower(strings.TrimSpace(*patch.Flow))
		if flow != "" && !models.IsValidFlow(flow) {
			return patch, ErrInvalidDayFlow
		}
		patch.Flow = &flow
	}
	if patch.Symptoms != nil {
		symptoms := normalizeSymptomTags(patch.Symptoms)
		if len(symptoms) > MaxSymptomTags {
			return patch, ErrTooManySymptoms
		}
		patch.Symptoms = symptoms
	}
	if patch.Notes != nil {
		notes := TrimDayNotes(strings.TrimSpace(*patch.Notes))
		patch.Notes = &notes
	}
	return patch, nil
}

func TrimDayNotes(value string) string {
	return truncateUTF8(value, MaxDayNotesLength)
}

// truncateUTF8 cuts value to at most maxBytes without splitting a rune.
func truncateUTF8(value string, maxBytes int) string {
	if len(value) <= maxBytes {
		return value
	}
	cut := maxBytes
	for cut > 0 && !utf8.RuneStart(value[cut]) {
		cut--
	}
	return value[:cut]
}

func normalizeSymptomTags(values []string) []string {
	seen := make(map[string]bool, len(values))
	tags := make([]string, 0, len(values))
	for _, value := range values {
		tag := strings.TrimSpace(value)
		key := strings.ToLower(tag)
		if tag == "" || seen[key] {
			continue
		}
		seen[key] = true
		tags = append(tags, tag)
	}
	return tags
}
