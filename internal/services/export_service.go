package services

import (
	"slices"
	"strings"
	"time"

	"github.com/terraincognita07/blushy/internal/models"
)

const exportDateLayout = "2006-01-02"

var ExportCSVHeaders = []string{
	"Date",
	"Day key",
	"Period",
	"Flow",
	"Sex",
	"Symptoms",
	"Notes",
}

type ExportDayReader interface {
	ListRange(from *time.Time, to *time.Time) ([]models.DayEntry, error)
}

type ExportService struct {
	days ExportDayReader
}

type ExportSummary struct {
	TotalEntries int    `json:"totalEntries"`
	HasData      bool   `json:"hasData"`
	DateFrom     string `json:"dateFrom"`
	DateTo       string `json:"dateTo"`
}

type ExportJSONEntry struct {
	Date     string   `json:"date"`
	DayKey   string   `json:"dayKey"`
	Period   *bool    `json:"period"`
	Flow     string   `json:"flow"`
	HasSex   *bool    `json:"hasSex"`
	Symptoms []string `json:"symptoms"`
	Notes    string   `json:"notes"`
}

type ExportCSVRow struct {
	Date     string
	DayKey   string
	Period   *bool
	Flow     string
	HasSex   *bool
	Symptoms []string
	Notes    string
}

func NewExportService(days ExportDayReader) *ExportService {
	return &ExportService{days: days}
}

// loadEntries returns stored entries inside the optional range, oldest first.
func (service *ExportService) loadEntries(from *time.Time, to *time.Time) ([]models.DayEntry, error) {
	entries, err := service.days.ListRange(from, to)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(entries, func(a, b models.DayEntry) int {
		return a.Date.Compare(b.Date)
	})
	return entries, nil
}

func (service *ExportService) BuildSummary(from *time.Time, to *time.Time) (ExportSummary, error) {
	entries, err := service.loadEntries(from, to)
	if err != nil {
		return ExportSummary{}, err
	}
	if len(entries) == 0 {
		return ExportSummary{}, nil
	}

	return ExportSummary{
		TotalEntries: len(entries),
		HasData:      true,
		DateFrom:     entries[0].Date.Format(exportDateLayout),
		DateTo:       entries[len(entries)-1].Date.Format(exportDateLayout),
	}, nil
}

func (service *ExportService) BuildJSONEntries(from *time.Time, to *time.Time) ([]ExportJSONEntry, error) {
	entries, err := service.loadEntries(from, to)
	if err != nil {
		return nil, err
	}

	result := make([]ExportJSONEntry, 0, len(entries))
	for _, entry := range entries {
		override := entry.Override()
		result = append(result, ExportJSONEntry{
			Date:     entry.Date.Format(exportDateLayout),
			DayKey:   entry.DayKey,
			Period:   override.IsPeriod,
			Flow:     normalizeExportFlow(override.Flow),
			HasSex:   override.HasSex,
			Symptoms: exportSymptoms(override.Symptoms),
			Notes:    override.NotesText(),
		})
	}
	return result, nil
}

func (service *ExportService) BuildCSVRows(from *time.Time, to *time.Time) ([]ExportCSVRow, error) {
	entries, err := service.loadEntries(from, to)
	if err != nil {
		return nil, err
	}

	rows := make([]ExportCSVRow, 0, len(entries))
	for _, entry := range entries {
		override := entry.Override()
		rows = append(rows, ExportCSVRow{
			Date:     entry.Date.Format(exportDateLayout),
			DayKey:   entry.DayKey,
			Period:   override.IsPeriod,
			Flow:     csvFlowLabel(override.Flow),
			HasSex:   override.HasSex,
			Symptoms: exportSymptoms(override.Symptoms),
			Notes:    override.NotesText(),
		})
	}
	return rows, nil
}

func (row ExportCSVRow) Columns() []string {
	return []string{
		row.Date,
		row.DayKey,
		csvYesNo(row.Period),
		row.Flow,
		csvYesNo(row.HasSex),
		strings.Join(row.Symptoms, "; "),
		row.Notes,
	}
}

func exportSymptoms(symptoms []string) []string {
	result := make([]string, 0, len(symptoms))
	for _, symptom := range symptoms {
		trimmed := strings.TrimSpace(symptom)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	slices.Sort(result)
	return slices.Compact(result)
}

// csvYesNo leaves unset values blank so they stay distinct from an explicit no.
func csvYesNo(value *bool) string {
	switch {
	case value == nil:
		return ""
	case *value:
		return "Yes"
	default:
		return "No"
	}
}

func csvFlowLabel(flow string) string {
	switch normalizeExportFlow(flow) {
	case models.FlowLight:
		return "Light"
	case models.FlowMedium:
		return "Medium"
	case models.FlowHeavy:
		return "Heavy"
	default:
		return ""
	}
}

func normalizeExportFlow(flow string) string {
	normalized := strings.ToLower(strings.TrimSpace(flow))
	if models.IsValidFlow(normalized) {
		return normalized
	}
	return ""
}
