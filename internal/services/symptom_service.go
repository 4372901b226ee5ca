package services

import (
	"sort"
	"strings"

	"github.com/terraincognita07/blushy/internal/models"
)

const defaultSymptomIcon = "✨"

type SymptomFrequency struct {
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Count     int    `json:"count"`
	TotalDays int    `json:"totalDays"`
}

type SymptomService struct {
	tags []models.SymptomTag
}

func NewSymptomService(tags []models.SymptomTag) *SymptomService {
	if len(tags) == 0 {
		tags = models.DefaultSymptomTags()
	}
	return &SymptomService{tags: tags}
}

func (service *SymptomService) Catalog() []models.SymptomTag {
	result := make([]models.SymptomTag, len(service.tags))
	copy(result, service.tags)
	return result
}

// CalculateFrequencies counts symptom tags across logged days. Tags are matched
// case-insensitively against the catalog; unknown tags keep their own spelling.
func (service *SymptomService) CalculateFrequencies(overrides models.Overrides) []SymptomFrequency {
	catalog := make(map[string]models.SymptomTag, len(service.tags))
	for _, tag := range service.tags {
		catalog[strings.ToLower(tag.Name)] = tag
	}

	totalDays := 0
	counts := make(map[string]*SymptomFrequency)
	for _, override := range overrides {
		if len(override.Symptoms) == 0 {
			continue
		}
		totalDays++

		seen := make(map[string]struct{}, len(override.Symptoms))
		for _, raw := range override.Symptoms {
			name := strings.TrimSpace(raw)
			key := strings.ToLower(name)
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			frequency, ok := counts[key]
			if !ok {
				frequency = &SymptomFrequency{Name: name, Icon: defaultSymptomIcon}
				if tag, known := catalog[key]; known {
					frequency.Name = tag.Name
					frequency.Icon = tag.Icon
				}
				counts[key] = frequency
			}
			frequency.Count++
		}
	}

	result := make([]SymptomFrequency, 0, len(counts))
	for _, frequency := range counts {
		frequency.TotalDays = totalDays
		result = append(result, *frequency)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count == result[j].Count {
			return result[i].Name < result[j].Name
		}
		return result[i].Count > result[j].Count
	})
	return result
}
