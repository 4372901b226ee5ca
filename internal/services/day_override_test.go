package services

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/terraincognita07/blushy/internal/models"
)

func TestApplyOverrideDoesNotTouchOtherKeys(t *testing.T) {
	t.Parallel()

	original := models.Overrides{
		"2025-2-1": {IsPeriod: models.Bool(true), Flow: models.FlowLight},
		"2025-2-2": {Symptoms: []string{"Cramps"}, Notes: models.String("ouch")},
	}
	before := cloneOverrides(original)

	next := ApplyOverride(original, "2025-2-2", models.DayPatch{HasSex: models.Bool(true)})

	if diff := cmp.Diff(before, original); diff != "" {
		t.Fatalf("input map changed (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(original["2025-2-1"], next["2025-2-1"]); diff != "" {
		t.Fatalf("unrelated key changed (-want +got):\n%s", diff)
	}

	want := models.DayOverride{
		Symptoms: []string{"Cramps"},
		HasSex:   models.Bool(true),
		Notes:    models.String("ouch"),
	}
	if diff := cmp.Diff(want, next["2025-2-2"]); diff != "" {
		t.Fatalf("merged override mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyOverrideIsIdempotent(t *testing.T) {
	t.Parallel()

	base := models.Overrides{"2025-2-10": {Flow: models.FlowHeavy}}
	patch := models.DayPatch{
		IsPeriod: models.Bool(true),
		Flow:     models.String(models.FlowMedium),
		Symptoms: []string{"Bloating"},
	}

	once := ApplyOverride(base, "2025-2-14", patch)
	twice := ApplyOverride(once, "2025-2-14", patch)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("second application changed the map (-once +twice):\n%s", diff)
	}
}

func TestApplyOverrideOnEmptyMap(t *testing.T) {
	t.Parallel()

	next := ApplyOverride(nil, "2025-2-14", models.DayPatch{IsPeriod: models.Bool(true)})
	if len(next) != 1 || !next["2025-2-14"].PeriodLogged() {
		t.Fatalf("expected single period override, got %#v", next)
	}
}

func TestMergeDayPatchDoesNotAliasPatchSlices(t *testing.T) {
	t.Parallel()

	symptoms := []string{"Headache"}
	merged := MergeDayPatch(models.DayOverride{}, models.DayPatch{Symptoms: symptoms})
	symptoms[0] = "changed"
	if merged.Symptoms[0] != "Headache" {
		t.Fatalf("merged override aliases patch symptoms")
	}
}

func TestEndToEndOverrideVisibleInGrid(t *testing.T) {
	t.Parallel()

	overrides := ApplyOverride(models.Overrides{}, "2025-2-14", models.DayPatch{
		IsPeriod: models.Bool(true),
		Flow:     models.String("medium"),
	})

	rule := Classify(14)
	if rule.Period {
		t.Fatalf("rule table alone should not mark day 14 as period")
	}

	cells := BuildMonthGrid(NewYearMonth(2025, 2), mustDay(2025, 3, 14), overrides, 0)
	cell := findCellByDate(t, cells, "2025-03-14")
	if !cell.IsPeriod || cell.Flow != "medium" {
		t.Fatalf("expected override period visible, got %#v", cell)
	}
	if cell.IsFertile != rule.Fertile || cell.IsOvulation != rule.Ovulation {
		t.Fatalf("expected rule-derived tags alongside override, got %#v", cell)
	}
}

func cloneOverrides(overrides models.Overrides) models.Overrides {
	result := make(models.Overrides, len(overrides))
	for key, override := range overrides {
		result[key] = override.Clone()
	}
	return result
}
