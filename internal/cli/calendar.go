package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/terraincognita07/blushy/internal/i18n"
	"github.com/terraincognita07/blushy/internal/models"
	"github.com/terraincognita07/blushy/internal/services"
)

const calendarLegend = "* period  o ovulation  + fertile  ~ pms"

type CalendarOptions struct {
	Month    string
	DBPath   string
	Language string
	Now      time.Time
}

// RunCalendarCommand prints the 6x7 month grid. Days outside the month are
// left blank. With --db the stored overrides are merged in.
func RunCalendarCommand(out io.Writer, messages *i18n.Manager, options CalendarOptions) error {
	today := services.CalendarDate(options.Now)
	month := services.YearMonthOf(today)
	if strings.TrimSpace(options.Month) != "" {
		parsed, err := services.ParseYearMonth(options.Month)
		if err != nil {
			return fmt.Errorf("invalid --month %q: expected YYYY-MM", options.Month)
		}
		month = parsed
	}

	overrides := models.Overrides{}
	if strings.TrimSpace(options.DBPath) != "" {
		store, err := openStoredCycle(options.DBPath)
		if err != nil {
			return err
		}
		defer store.close()

		overrides, err = store.days.Overrides()
		if err != nil {
			return fmt.Errorf("load days: %w", err)
		}
	}

	language := messages.NormalizeLanguage(options.Language)
	cells := services.BuildMonthGrid(month, today, overrides, 0)

	fmt.Fprintf(out, "%s %d\n", messages.MonthName(language, month.Month), month.Year)
	fmt.Fprintln(out, weekdayHeader(messages.Translate(language, "weekday.short")))
	for row := 0; row < services.CalendarGridSize/7; row++ {
		line := make([]string, 0, 7)
		for _, cell := range cells[row*7 : row*7+7] {
			line = append(line, formatCalendarCell(cell))
		}
		fmt.Fprintln(out, strings.TrimRight(strings.Join(line, " "), " "))
	}
	fmt.Fprintln(out, calendarLegend)
	return nil
}

func weekdayHeader(raw string) string {
	names := strings.Fields(raw)
	padded := make([]string, 0, len(names))
	for _, name := range names {
		padded = append(padded, fmt.Sprintf("%-3s", name))
	}
	return strings.TrimRight(strings.Join(padded, " "), " ")
}

func formatCalendarCell(cell services.CalendarCell) string {
	if !cell.IsCurrentMonth {
		return "   "
	}
	return fmt.Sprintf("%2d%s", cell.DayOfMonth, phaseMarker(cell))
}

func phaseMarker(cell services.CalendarCell) string {
	switch cell.Phase {
	case services.PhasePeriod:
		return "*"
	case services.PhaseOvulation:
		return "o"
	case services.PhaseFertile:
		return "+"
	case services.PhasePMS:
		return "~"
	default:
		return " "
	}
}
