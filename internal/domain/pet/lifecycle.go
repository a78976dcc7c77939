package pet

import "time"

// LifecycleService is the pure decay engine. Advance settles an elapsed
// span expressed in decay units (1.0 = one nominal tick); the offline
// catch-up passes a larger fractional value and gets numerically identical
// stat arithmetic, with critical-timer and death bookkeeping evaluated
// once at the final state.
type LifecycleService struct {
	Tuning Tuning
}

func NewLifecycleService(t Tuning) LifecycleService {
	if t.TickPeriod <= 0 {
		t = DefaultTuning()
	}
	return LifecycleService{Tuning: t}
}

func (s LifecycleService) Advance(state PetStateAggregate, units float64, now time.Time) (TickResult, error) {
	if units < 0 {
		return TickResult{}, ErrInvalidUnits
	}

	next := state
	next.LastUpdateAt = now

	if !next.Alive {
		return TickResult{UpdatedState: next, ResultCode: ResultDeceased}, nil
	}
	if next.Stage == StageEgg || next.Sleeping {
		return TickResult{UpdatedState: next, ResultCode: ResultOK}, nil
	}

	v := next.Vitals
	v.Hunger = clampStat(v.Hunger - HungerDrainPerTick*units)
	v.Happiness = clampStat(v.Happiness - HappinessDrainPerTick*units)
	v.Energy = clampStat(v.Energy - EnergyDrainPerTick*units)
	v.Cleanliness = clampStat(v.Cleanliness - CleanlinessDrainPerTick*units)

	// Health feedback reads the freshly decayed cleanliness and hunger.
	if v.Cleanliness < DirtyThreshold {
		drain := DirtyHealthDrain
		if v.Hunger < StarvingThreshold {
			drain = DirtyStarvingHealthDrain
		}
		v.Health = clampStat(v.Health - drain*units)
	} else if v.Cleanliness > CleanRecoveryThreshold && v.Health < 100 {
		v.Health = clampStat(v.Health + CleanHealthRecovery*units)
	}
	if v.Hunger == 0 {
		v.Health = clampStat(v.Health - StarvationHealthDrain*units)
	}
	next.Vitals = v

	next.CriticalHungerSince = trackCritical(next.CriticalHungerSince, v.Hunger == 0, now)
	next.CriticalHealthSince = trackCritical(next.CriticalHealthSince, v.Health == 0, now)
	next.CriticalComboSince = trackCritical(next.CriticalComboSince,
		v.Hunger < ComboThreshold && v.Health < ComboThreshold, now)

	events := make([]DomainEvent, 0, 2)
	events = append(events, DomainEvent{
		Type:       "tick_settled",
		OccurredAt: now,
		Payload: map[string]any{
			"decay_units":  units,
			"state_before": vitalsPayload(state.Vitals),
			"state_after":  vitalsPayload(next.Vitals),
		},
	})

	switch {
	case expired(next.CriticalHungerSince, s.Tuning.HungerDeathGrace, now):
		next.MarkDead(DeathCauseStarvation)
	case expired(next.CriticalHealthSince, s.Tuning.HealthDeathGrace, now):
		next.MarkDead(DeathCauseCollapse)
	case expired(next.CriticalComboSince, s.Tuning.ComboDeathGrace, now):
		next.MarkDead(DeathCauseNeglect)
	}

	next.Danger = deriveDanger(next.Vitals)
	next.Mood, next.Sick = deriveMood(next.Vitals, next.Danger)
	next.Version++

	resultCode := ResultOK
	if !next.Alive {
		resultCode = ResultDeceased
		events = append(events, DomainEvent{
			Type:       "pet_died",
			OccurredAt: now,
			Payload:    map[string]any{"cause": string(next.DeathCause)},
		})
	} else if dangerSeverity(next.Danger) > dangerSeverity(state.Danger) {
		events = append(events, DomainEvent{
			Type:       "danger_escalated",
			OccurredAt: now,
			Payload: map[string]any{
				"from": string(state.Danger),
				"to":   string(next.Danger),
			},
		})
	}

	return TickResult{UpdatedState: next, Events: events, ResultCode: resultCode}, nil
}

// trackCritical sets the timer the instant the condition becomes true and
// clears it the instant it becomes false.
func trackCritical(since *time.Time, active bool, now time.Time) *time.Time {
	if !active {
		return nil
	}
	if since == nil {
		t := now
		return &t
	}
	return since
}

func expired(since *time.Time, grace time.Duration, now time.Time) bool {
	return since != nil && now.Sub(*since) >= grace
}

func vitalsPayload(v Vitals) map[string]any {
	return map[string]any{
		"hunger":      v.Hunger,
		"happiness":   v.Happiness,
		"energy":      v.Energy,
		"cleanliness": v.Cleanliness,
		"health":      v.Health,
	}
}
