package pet

import "time"

// ApplyProgression drains banked experience into levels (a loop, so one
// large grant can cross several thresholds) and then evolves the stage.
// Stage moves forward only, and never while the pet is still an egg.
func (s LifecycleService) ApplyProgression(state PetStateAggregate, now time.Time) (PetStateAggregate, []DomainEvent) {
	next := state
	var events []DomainEvent

	for next.Experience >= next.Level*LevelExpStep {
		next.Experience -= next.Level * LevelExpStep
		next.Level++
		next.Coins += LevelUpCoins
		events = append(events, DomainEvent{
			Type:       "level_up",
			OccurredAt: now,
			Payload:    map[string]any{"level": next.Level, "coins": next.Coins},
		})
	}

	if next.Stage == StageBaby && next.Level >= TeenLevel {
		next.Stage = StageTeen
		events = append(events, stageEvent(StageTeen, now))
	}
	if next.Stage == StageTeen && next.Level >= AdultLevel {
		next.Stage = StageAdult
		events = append(events, stageEvent(StageAdult, now))
	}

	return next, events
}

func stageEvent(stage Stage, now time.Time) DomainEvent {
	return DomainEvent{
		Type:       "stage_evolved",
		OccurredAt: now,
		Payload:    map[string]any{"stage": string(stage)},
	}
}

// Hatch is the manual egg→baby transition; it restarts the birth clock.
func (s LifecycleService) Hatch(state PetStateAggregate, now time.Time) (PetStateAggregate, error) {
	if !state.Alive {
		return PetStateAggregate{}, ErrPetDeceased
	}
	if state.Stage != StageEgg {
		return PetStateAggregate{}, ErrAlreadyHatched
	}
	next := state
	next.Stage = StageBaby
	next.BirthAt = now
	next.AgeDays = 0
	next.LastUpdateAt = now
	next.Version++
	return next, nil
}

// ApplyReward folds a minigame outcome into the snapshot. Coins and
// experience floor at zero, happiness stays clamped; progression runs
// afterwards so big wins can level the pet.
func (s LifecycleService) ApplyReward(state PetStateAggregate, reward Reward, now time.Time) (PetStateAggregate, []DomainEvent, error) {
	if !state.Alive {
		return PetStateAggregate{}, nil, ErrPetDeceased
	}

	next := state
	next.Coins += reward.Coins
	if next.Coins < 0 {
		next.Coins = 0
	}
	next.Experience += reward.Exp
	if next.Experience < 0 {
		next.Experience = 0
	}
	next.Vitals.Happiness = clampStat(next.Vitals.Happiness + reward.Happiness)
	next.LastUpdateAt = now
	next.Version++

	events := []DomainEvent{{
		Type:       "reward_applied",
		OccurredAt: now,
		Payload: map[string]any{
			"coins":     reward.Coins,
			"exp":       reward.Exp,
			"happiness": reward.Happiness,
		},
	}}
	next, progressEvents := s.ApplyProgression(next, now)
	events = append(events, progressEvents...)
	return next, events, nil
}

// Buy spends coins on one consumable and restocks the inventory.
func (s LifecycleService) Buy(state PetStateAggregate, inv Inventory, item ItemID) (PetStateAggregate, Inventory, error) {
	price, ok := ItemPrices[item]
	if !ok {
		return PetStateAggregate{}, Inventory{}, ErrUnknownItem
	}
	if state.Coins < price {
		return PetStateAggregate{}, Inventory{}, ErrInsufficientCoins
	}
	next := state
	next.Coins -= price
	next.Version++
	inv.Add(item, 1)
	return next, inv, nil
}
