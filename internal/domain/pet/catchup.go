package pet

import "time"

// CatchUp reconciles a persisted snapshot with the wall-clock gap since it
// was last settled, in one shot: the whole gap is converted to decay units
// and settled through a single Advance instead of replaying every missed
// tick. A pet that was asleep at save time has its recovery curve
// reconstructed from the sleep sub-state instead.
func (s LifecycleService) CatchUp(state PetStateAggregate, now time.Time) (TickResult, error) {
	next := state.Normalized(now)
	next.AgeDays = AgeDays(next.BirthAt, now)

	if next.Sleeping {
		result := s.ApplySleepProgress(next, now)
		result.UpdatedState.LastUpdateAt = now
		return result, nil
	}

	elapsed := now.Sub(state.LastUpdateAt)
	if state.LastUpdateAt.IsZero() || elapsed <= 0 {
		next.LastUpdateAt = now
		return TickResult{UpdatedState: next, ResultCode: ResultOK}, nil
	}

	units := elapsed.Minutes() / s.Tuning.TickPeriod.Minutes()
	return s.Advance(next, units, now)
}
