package services

import (
	"errors"
	"strings"
)

type Direction string

const (
	DirectionPrev Direction = "prev"
	DirectionNext Direction = "next"
)

var ErrInvalidDirection = errors.New("invalid navigation direction")

func ParseDirection(raw string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(raw))) {
	case DirectionPrev:
		return DirectionPrev, nil
	case DirectionNext:
		return DirectionNext, nil
	default:
		return "", ErrInvalidDirection
	}
}

// Navigate moves one calendar month in direction with year rollover. There is
// no lower or upper bound. An unknown direction leaves the month unchanged.
func Navigate(month YearMonth, direction Direction) YearMonth {
	switch direction {
	case DirectionPrev:
		return month.AddMonths(-1)
	case DirectionNext:
		return month.AddMonths(1)
	default:
		return month.Normalize()
	}
}
