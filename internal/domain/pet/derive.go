package pet

// deriveDanger classifies post-decay hunger/health, highest severity wins.
func deriveDanger(v Vitals) DangerLevel {
	switch {
	case v.Hunger == 0 || v.Health == 0:
		return DangerDying
	case v.Hunger < CriticalThreshold || v.Health < CriticalThreshold:
		return DangerCritical
	case v.Hunger < AlertThreshold || v.Health < AlertThreshold:
		return DangerAlert
	default:
		return DangerNormal
	}
}

// deriveMood resolves the mood priority chain. Danger states dominate,
// then the sick conditions, then playful, then whichever low stat is
// lowest in absolute value (hunger before energy before happiness on
// ties), else content. The second return value is the sick flag.
func deriveMood(v Vitals, danger DangerLevel) (Mood, bool) {
	switch {
	case danger == DangerDying:
		return MoodAgonizing, true
	case danger == DangerCritical:
		return MoodSick, true
	case v.Health < SickHealthThreshold || v.Cleanliness < DirtyThreshold:
		return MoodSick, true
	case v.Happiness > PlayfulHappiness && v.Energy > PlayfulEnergy && v.Hunger > PlayfulHunger:
		return MoodPlayful, false
	}

	needs := []struct {
		value     float64
		threshold float64
		mood      Mood
	}{
		{v.Hunger, LowEnergyMoodThreshold, MoodHungry},
		{v.Energy, LowEnergyMoodThreshold, MoodTired},
		{v.Happiness, SadMoodThreshold, MoodSad},
	}

	mood := MoodContent
	lowest := -1.0
	for _, n := range needs {
		if n.value >= n.threshold {
			continue
		}
		if lowest < 0 || n.value < lowest {
			lowest = n.value
			mood = n.mood
		}
	}
	return mood, false
}

func dangerSeverity(d DangerLevel) int {
	switch d {
	case DangerAlert:
		return 1
	case DangerCritical:
		return 2
	case DangerDying:
		return 3
	default:
		return 0
	}
}
