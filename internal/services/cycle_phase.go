package services

type Phase string

const (
	PhasePeriod              Phase = "period"
	PhaseFertile             Phase = "fertile"
	PhaseOvulation           Phase = "ovulation"
	PhaseHighPregnancyChance Phase = "high-pregnancy-chance"
	PhasePMS                 Phase = "pms"
	PhaseNormal              Phase = "normal"
)

// PhaseSet is the set of phase tags that hold for one day. Several tags can be
// true at once; an empty set means normal.
type PhaseSet struct {
	Period              bool
	Fertile             bool
	Ovulation           bool
	HighPregnancyChance bool
	PMS                 bool
}

// Classify applies the fixed day-of-cycle table. Every range is checked on its
// own, so day 14 is fertile, ovulation and high-pregnancy-chance together.
func Classify(dayOfCycle int) PhaseSet {
	if dayOfCycle <= 0 {
		return PhaseSet{}
	}
	return PhaseSet{
		Period:              dayOfCycle >= 1 && dayOfCycle <= 5,
		Fertile:             dayOfCycle >= 10 && dayOfCycle <= 16,
		Ovulation:           dayOfCycle == 14,
		HighPregnancyChance: dayOfCycle >= 12 && dayOfCycle <= 16,
		PMS:                 dayOfCycle >= 22 && dayOfCycle <= 28,
	}
}

func (set PhaseSet) IsNormal() bool {
	return !set.Period && !set.Fertile && !set.Ovulation && !set.HighPregnancyChance && !set.PMS
}

func (set PhaseSet) Has(phase Phase) bool {
	switch phase {
	case PhasePeriod:
		return set.Period
	case PhaseFertile:
		return set.Fertile
	case PhaseOvulation:
		return set.Ovulation
	case PhaseHighPregnancyChance:
		return set.HighPregnancyChance
	case PhasePMS:
		return set.PMS
	case PhaseNormal:
		return set.IsNormal()
	default:
		return false
	}
}

// Tags lists the set members in table order; a normal day yields [normal].
func (set PhaseSet) Tags() []Phase {
	if set.IsNormal() {
		return []Phase{PhaseNormal}
	}

	tags := make([]Phase, 0, 4)
	for _, phase := range []Phase{PhasePeriod, PhaseFertile, PhaseOvulation, PhaseHighPregnancyChance, PhasePMS} {
		if set.Has(phase) {
			tags = append(tags, phase)
		}
	}
	return tags
}

// Primary picks the display label: period > ovulation > fertile > pms > normal.
// High-pregnancy-chance never becomes the label on its own.
func (set PhaseSet) Primary() Phase {
	switch {
	case set.Period:
		return PhasePeriod
	case set.Ovulation:
		return PhaseOvulation
	case set.Fertile:
		return PhaseFertile
	case set.PMS:
		return PhasePMS
	default:
		return PhaseNormal
	}
}

func (set PhaseSet) Union(other PhaseSet) PhaseSet {
	return PhaseSet{
		Period:              set.Period || other.Period,
		Fertile:             set.Fertile || other.Fertile,
		Ovulation:           set.Ovulation || other.Ovulation,
		HighPregnancyChance: set.HighPregnancyChance || other.HighPregnancyChance,
		PMS:                 set.PMS || other.PMS,
	}
}
