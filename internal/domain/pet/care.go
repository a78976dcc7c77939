package pet

import "time"

// ApplyCare validates, wakes, mutates and grants experience for a single
// care action, atomically: a failed precondition leaves both the pet and
// the inventory untouched. roll is a uniform [0,1) sample used by the feed
// mess chance; callers inject it so settlements stay replayable.
func (s LifecycleService) ApplyCare(state PetStateAggregate, inv Inventory, action CareAction, now time.Time, roll float64) (CareOutcome, error) {
	if !state.Alive {
		return CareOutcome{}, ErrPetDeceased
	}
	if state.Stage == StageEgg {
		return CareOutcome{}, ErrNotHatched
	}

	if err := checkCarePrecondition(state, inv, action); err != nil {
		return CareOutcome{}, err
	}

	next := s.Wake(state)
	exp := 0

	switch action {
	case CareFeed:
		inv.Consume(ItemFood, 1)
		next.Vitals.Hunger = clampStat(next.Vitals.Hunger + FeedHungerGain)
		next.Vitals.Happiness = clampStat(next.Vitals.Happiness + FeedHappinessGain)
		if roll < FeedMessChance {
			next.Vitals.Cleanliness = clampStat(next.Vitals.Cleanliness - FeedMessPenalty)
		}
		exp = FeedExp
	case CareClean:
		inv.Consume(ItemSoap, 1)
		next.Vitals.Cleanliness = 100
		next.Vitals.Happiness = clampStat(next.Vitals.Happiness + CleanHappinessGain)
		exp = CleanExp
	case CareMedicine:
		inv.Consume(ItemMedicine, 1)
		next.Vitals.Health = clampStat(next.Vitals.Health + MedicineHealthGain)
		next.Vitals.Cleanliness = clampStat(next.Vitals.Cleanliness + MedicineCleanGain)
		next.Sick = next.Vitals.Health < SickAfterCureHealth || next.Vitals.Cleanliness < SickAfterCureClean
		if next.Sick {
			next.Mood = MoodSick
		} else {
			next.Mood = MoodContent
		}
		exp = MedicineExp
	case CareTreat:
		inv.Consume(ItemTreats, 1)
		next.Vitals.Happiness = clampStat(next.Vitals.Happiness + TreatHappinessGain)
		next.Vitals.Hunger = clampStat(next.Vitals.Hunger + TreatHungerGain)
		exp = TreatExp
	case CarePlay:
		next.Vitals.Energy = clampStat(next.Vitals.Energy - PlayEnergyCost)
		next.Vitals.Happiness = clampStat(next.Vitals.Happiness + PlayHappinessGain)
		exp = PlayExp
	}

	next.Experience += exp
	next.LastUpdateAt = now
	next.Version++

	events := []DomainEvent{{
		Type:       "care_applied",
		OccurredAt: now,
		Payload: map[string]any{
			"action": string(action),
			"exp":    exp,
			"vitals": vitalsPayload(next.Vitals),
		},
	}}

	next, progressEvents := s.ApplyProgression(next, now)
	events = append(events, progressEvents...)

	return CareOutcome{UpdatedState: next, Inventory: inv, Events: events}, nil
}

func checkCarePrecondition(state PetStateAggregate, inv Inventory, action CareAction) error {
	switch action {
	case CareFeed:
		if inv.Food <= 0 {
			return ErrNoFood
		}
	case CareClean:
		if inv.Soap <= 0 {
			return ErrNoSoap
		}
	case CareMedicine:
		if inv.Medicine <= 0 {
			return ErrNoMedicine
		}
	case CareTreat:
		if inv.Treats <= 0 {
			return ErrNoTreats
		}
	case CarePlay:
		if state.Vitals.Energy < PlayEnergyGate {
			return ErrLowEnergy
		}
	default:
		return ErrUnknownCareAction
	}
	return nil
}
