package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/terraincognita07/blushy/internal/i18n"
	"github.com/terraincognita07/blushy/internal/services"
)

func RunPhaseCommand(out io.Writer, messages *i18n.Manager, language string, rawDay string) error {
	day, err := strconv.Atoi(strings.TrimSpace(rawDay))
	if err != nil {
		return fmt.Errorf("invalid cycle day %q", rawDay)
	}

	language = messages.NormalizeLanguage(language)
	set := services.Classify(day)
	tags := make([]string, 0, 5)
	for _, phase := range set.Tags() {
		tags = append(tags, string(phase))
	}
	fmt.Fprintln(out, messages.Translatef(language, "phase.day_line",
		day,
		messages.PhaseLabel(language, string(set.Primary())),
		strings.Join(tags, ", "),
	))
	return nil
}
