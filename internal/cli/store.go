package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/blushy/internal/db"
	"github.com/terraincognita07/blushy/internal/services"
)

const dateLayout = "2006-01-02"

type storedCycle struct {
	days     *services.DayService
	calendar *services.CalendarService
	close    func() error
}

// openStoredCycle opens the database read path used by the commands that fall
// back to recorded data.
func openStoredCycle(dbPath string) (*storedCycle, error) {
	database, err := db.OpenSQLite(dbPath, nil)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	repositories := db.NewRepositories(database)
	days := services.NewDayService(repositories.Days, repositories.Profiles)
	return &storedCycle{
		days:     days,
		calendar: services.NewCalendarService(days, repositories.Profiles),
		close: func() error {
			return db.Close(database)
		},
	}, nil
}

func parseDateFlag(name string, raw string, fallback time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return services.CalendarDate(fallback), nil
	}
	parsed, err := time.Parse(dateLayout, trimmed)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q: expected YYYY-MM-DD", name, raw)
	}
	return parsed, nil
}
