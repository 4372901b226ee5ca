package services

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassifyIsTotal(t *testing.T) {
	t.Parallel()

	for day := -3; day <= 366; day++ {
		tags := Classify(day).Tags()
		if len(tags) == 0 {
			t.Fatalf("Classify(%d).Tags() returned an empty set", day)
		}
	}
}

func TestClassifyFixedPoints(t *testing.T) {
	t.Parallel()

	cases := []struct {
		day  int
		want []Phase
	}{
		{day: 3, want: []Phase{PhasePeriod}},
		{day: 14, want: []Phase{PhaseFertile, PhaseOvulation, PhaseHighPregnancyChance}},
		{day: 25, want: []Phase{PhasePMS}},
		{day: 18, want: []Phase{PhaseNormal}},
		{day: 10, want: []Phase{PhaseFertile}},
		{day: 12, want: []Phase{PhaseFertile, PhaseHighPregnancyChance}},
		{day: 29, want: []Phase{PhaseNormal}},
		{day: 0, want: []Phase{PhaseNormal}},
		{day: -4, want: []Phase{PhaseNormal}},
	}

	for _, testCase := range cases {
		got := Classify(testCase.day).Tags()
		if diff := cmp.Diff(testCase.want, got); diff != "" {
			t.Fatalf("Classify(%d) mismatch (-want +got):\n%s", testCase.day, diff)
		}
	}
}

func TestPhaseSetPrimaryPriority(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		set  PhaseSet
		want Phase
	}{
		{name: "period beats everything", set: PhaseSet{Period: true, Ovulation: true, Fertile: true, PMS: true}, want: PhasePeriod},
		{name: "ovulation beats fertile", set: Classify(14), want: PhaseOvulation},
		{name: "fertile", set: Classify(11), want: PhaseFertile},
		{name: "pms", set: Classify(23), want: PhasePMS},
		{name: "high chance alone stays normal", set: PhaseSet{HighPregnancyChance: true}, want: PhaseNormal},
		{name: "empty", set: PhaseSet{}, want: PhaseNormal},
	}

	for _, testCase := range cases {
		if got := testCase.set.Primary(); got != testCase.want {
			t.Fatalf("%s: expected %q, got %q", testCase.name, testCase.want, got)
		}
	}
}

func TestPhaseSetUnionAndHas(t *testing.T) {
	t.Parallel()

	merged := Classify(14).Union(PhaseSet{Period: true})
	for _, phase := range []Phase{PhasePeriod, PhaseFertile, PhaseOvulation, PhaseHighPregnancyChance} {
		if !merged.Has(phase) {
			t.Fatalf("expected merged set to contain %q", phase)
		}
	}
	if merged.Has(PhasePMS) || merged.Has(PhaseNormal) {
		t.Fatalf("unexpected tags in merged set: %#v", merged.Tags())
	}
	if !Classify(20).Has(PhaseNormal) {
		t.Fatalf("expected day 20 to be normal")
	}
}
