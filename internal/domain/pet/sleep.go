package pet

import "time"

// SleepEnergyAt is the pure recovery curve: linear interpolation from the
// energy recorded at sleep start up to 100 over the configured duration.
// It depends only on its inputs so a reloaded process reproduces the exact
// same value.
func SleepEnergyAt(startEnergy float64, startedAt, now time.Time, duration time.Duration) float64 {
	if duration <= 0 {
		return 100
	}
	elapsed := now.Sub(startedAt)
	if elapsed <= 0 {
		return clampStat(startEnergy)
	}
	progress := float64(elapsed) / float64(duration)
	if progress >= 1 {
		return 100
	}
	return clampStat(startEnergy + (100-startEnergy)*progress)
}

// StartSleep begins the timed energy-recovery process. Restarting an
// ongoing sleep is rejected: it would silently discard recovery progress.
func (s LifecycleService) StartSleep(state PetStateAggregate, now time.Time) (PetStateAggregate, error) {
	if !state.Alive {
		return PetStateAggregate{}, ErrPetDeceased
	}
	if state.Stage == StageEgg {
		return PetStateAggregate{}, ErrNotHatched
	}
	if state.Sleeping {
		return PetStateAggregate{}, ErrAlreadySleeping
	}

	next := state
	startedAt := now
	startEnergy := next.Vitals.Energy
	next.Sleeping = true
	next.SleepStartedAt = &startedAt
	next.SleepStartEnergy = &startEnergy
	next.SleepBonusGranted = false
	next.LastUpdateAt = now
	next.Version++
	return next, nil
}

// ApplySleepProgress re-evaluates the recovery curve at now and, on
// reaching full duration, snaps energy to 100 and grants the one-time
// happiness bonus. The pet stays asleep until an explicit wake.
func (s LifecycleService) ApplySleepProgress(state PetStateAggregate, now time.Time) TickResult {
	if !state.Sleeping || state.SleepStartedAt == nil || state.SleepStartEnergy == nil {
		return TickResult{UpdatedState: state, ResultCode: ResultOK}
	}

	next := state
	next.Vitals.Energy = SleepEnergyAt(*state.SleepStartEnergy, *state.SleepStartedAt, now, s.Tuning.SleepDuration)
	next.LastUpdateAt = now

	var events []DomainEvent
	if now.Sub(*state.SleepStartedAt) >= s.Tuning.SleepDuration {
		next.Vitals.Energy = 100
		if !next.SleepBonusGranted {
			next.Vitals.Happiness = clampStat(next.Vitals.Happiness + SleepHappinessBonus)
			next.SleepBonusGranted = true
			events = append(events, DomainEvent{
				Type:       "sleep_completed",
				OccurredAt: now,
				Payload:    map[string]any{"energy": next.Vitals.Energy},
			})
		}
	}
	next.Version++
	return TickResult{UpdatedState: next, Events: events, ResultCode: ResultOK}
}

// Wake ends sleep and clears the sub-state. Waking a pet that is not
// sleeping is a no-op.
func (s LifecycleService) Wake(state PetStateAggregate) PetStateAggregate {
	if !state.Sleeping {
		return state
	}
	next := state
	next.Sleeping = false
	next.SleepStartedAt = nil
	next.SleepStartEnergy = nil
	next.SleepBonusGranted = false
	next.Version++
	return next
}
