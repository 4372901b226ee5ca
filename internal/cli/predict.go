package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/terraincognita07/blushy/internal/i18n"
	"github.com/terraincognita07/blushy/internal/services"
)

type PredictOptions struct {
	Today       string
	CycleStart  string
	CycleLength int
	DBPath      string
	Language    string
	Now         time.Time
}

// RunPredictCommand prints the cycle position for a day. Without --start the
// stored profile and logged periods decide the cycle start.
func RunPredictCommand(out io.Writer, messages *i18n.Manager, options PredictOptions) error {
	today, err := parseDateFlag("today", options.Today, options.Now)
	if err != nil {
		return err
	}

	view, err := resolvePrediction(today, options)
	if err != nil {
		return err
	}

	language := messages.NormalizeLanguage(options.Language)
	prediction := view.Prediction
	insights := view.Insights
	phaseLabel := messages.PhaseLabel(language, string(prediction.CurrentPhaseName))

	if !view.HasCycleStart {
		fmt.Fprintln(out, messages.Translate(language, "prediction.no_start"))
	}
	fmt.Fprintln(out, messages.Translatef(language, "prediction.summary",
		prediction.CycleDayNumber,
		prediction.AverageCycleLength,
		phaseLabel,
		prediction.DaysUntilNextPeriod,
	))
	printField := func(key string, value string) {
		fmt.Fprintf(out, "%-15s %s\n", messages.Translate(language, key)+":", value)
	}
	printField("predict.phase", messages.Translate(language, "insight."+insights.Phase))
	printField("predict.tags", joinPhases(messages, language, services.Classify(prediction.CycleDayNumber).Tags()))
	printField("predict.cycle_start", insights.CurrentCycleStart.Format(dateLayout))
	printField("predict.next_period", insights.NextPeriodStart.Format(dateLayout))
	printField("predict.ovulation", insights.OvulationDate.Format(dateLayout))
	printField("predict.fertile_window", insights.FertilityWindowStart.Format(dateLayout)+" .. "+insights.FertilityWindowEnd.Format(dateLayout))
	printField("predict.progress", fmt.Sprintf("%d%%", int(math.Round(prediction.CycleProgressPercent))))
	return nil
}

func resolvePrediction(today time.Time, options PredictOptions) (services.PredictionView, error) {
	if strings.TrimSpace(options.CycleStart) != "" {
		start, err := parseDateFlag("start", options.CycleStart, today)
		if err != nil {
			return services.PredictionView{}, err
		}
		prediction := services.Predict(today, start, options.CycleLength)
		return services.PredictionView{
			Prediction:     prediction,
			Insights:       services.BuildCycleInsights(today, prediction),
			CycleStartDate: start,
			HasCycleStart:  true,
		}, nil
	}

	if strings.TrimSpace(options.DBPath) == "" {
		return services.PredictionView{}, errors.New("either --start or --db is required")
	}
	store, err := openStoredCycle(options.DBPath)
	if err != nil {
		return services.PredictionView{}, err
	}
	defer store.close()

	view, err := store.calendar.PredictionView(today)
	if err != nil {
		return services.PredictionView{}, fmt.Errorf("load prediction: %w", err)
	}
	return view, nil
}

func joinPhases(messages *i18n.Manager, language string, phases []services.Phase) string {
	names := make([]string, 0, len(phases))
	for _, phase := range phases {
		names = append(names, messages.PhaseLabel(language, string(phase)))
	}
	return strings.Join(names, ", ")
}
