package services

import (
	"slices"

	"github.com/terraincognita07/blushy/internal/models"
)

// ApplyOverride returns a new map with patch shallow-merged into the entry at
// key. The input map and its other entries are never modified.
func ApplyOverride(overrides models.Overrides, key models.DayKey, patch models.DayPatch) models.Overrides {
	next := make(models.Overrides, len(overrides)+1)
	for existingKey, existing := range overrides {
		next[existingKey] = existing
	}
	next[key] = MergeDayPatch(overrides[key], patch)
	return next
}

func MergeDayPatch(current models.DayOverride, patch models.DayPatch) models.DayOverride {
	merged := current.Clone()
	if patch.IsPeriod != nil {
		merged.IsPeriod = models.Bool(*patch.IsPeriod)
	}
	if patch.Flow != nil {
		merged.Flow = *patch.Flow
	}
	if patch.Symptoms != nil {
		merged.Symptoms = slices.Clone(patch.Symptoms)
	}
	if patch.HasSex != nil {
		merged.HasSex = models.Bool(*patch.HasSex)
	}
	if patch.Notes != nil {
		merged.Notes = models.String(*patch.Notes)
	}
	return merged
}
