package services

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrExportFromDateInvalid = errors.New("export invalid from date")
	ErrExportToDateInvalid   = errors.New("export invalid to date")
	ErrExportRangeInvalid    = errors.New("export invalid range")
)

// ParseExportRange reads optional YYYY-MM-DD bounds as calendar dates.
func ParseExportRange(rawFrom string, rawTo string) (*time.Time, *time.Time, error) {
	from, err := parseExportBound(rawFrom)
	if err != nil {
		return nil, nil, ErrExportFromDateInvalid
	}
	to, err := parseExportBound(rawTo)
	if err != nil {
		return nil, nil, ErrExportToDateInvalid
	}

	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, ErrExportRangeInvalid
	}
	return from, to, nil
}

func parseExportBound(raw string) (*time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := time.Parse(exportDateLayout, trimmed)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
