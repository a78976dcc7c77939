package pet

import (
	"testing"
	"time"
)

func TestStartSleep_RecordsSubState(t *testing.T) {
	svc := NewLifecycleService(DefaultTuning())
	state := healthyPet()
	state.Vitals.Energy = 20
	now := time.Unix(1_700_000_000, 0)

	next, err := svc.StartSleep(state, now)
	if err != nil {
		t.Fatalf("start sleep error: %v", err)
	}
	if !next.Sleeping {
		t.Fatalf("expected sleeping state")
	}
	if next.SleepStartedAt == nil || !next.SleepStartedAt.Equal(now) {
		t.Fatalf("sleep start time not recorded")
	}
	if next.SleepStartEnergy == nil || *next.SleepStartEnergy != 20 {
		t.Fatalf("sleep start energy not recorded")
	}
}

func TestStartSleep_Rejections(t *testing.T) {
	svc := NewLifecycleService(DefaultTuning())
	now := time.Unix(1_700_000_000, 0)

	dead := healthyPet()
	dead.MarkDead(DeathCauseStarvation)
	if _, err := svc.StartSleep(dead, now); err != ErrPetDeceased {
		t.Fatalf("expected ErrPetDeceased, got %v", err)
	}

	egg := NewPetState("pet-1", "Mochi", SpeciesCat, ColorWhite, now)
	if _, err := svc.StartSleep(egg, now); err != ErrNotHatched {
		t.Fatalf("expected ErrNotHatched, got %v", err)
	}

	state := healthyPet()
	asleep, err := svc.StartSleep(state, now)
	if err != nil {
		t.Fatalf("start sleep error: %v", err)
	}
	if _, err := svc.StartSleep(asleep, now.Add(time.Minute)); err != ErrAlreadySleeping {
		t.Fatalf("double sleep must be rejected, got %v", err)
	}
}

func TestSleepEnergyAt_PureAndReplayable(t *testing.T) {
	start := time.Unix(1_700_000_000, 0)
	at := start.Add(150 * time.Second)

	first := SleepEnergyAt(20, start, at, DefaultSleepDuration)
	second := SleepEnergyAt(20, start, at, DefaultSleepDuration)
	if first != second {
		t.Fatalf("sleep curve must be replayable: %v != %v", first, second)
	}
	if first != 60 { // 20 + 80 * 0.5
		t.Fatalf("halfway energy: got %v want 60", first)
	}
	if got := SleepEnergyAt(20, start, start, DefaultSleepDuration); got != 20 {
		t.Fatalf("energy at start: got %v want 20", got)
	}
	if got := SleepEnergyAt(20, start, start.Add(time.Hour), DefaultSleepDuration); got != 100 {
		t.Fatalf("energy past duration: got %v want 100", got)
	}
}

func TestApplySleepProgress_FullRecoveryBonusOnce(t *testing.T) {
	svc := NewLifecycleService(DefaultTuning())
	state := healthyPet()
	state.Vitals.Energy = 20
	state.Vitals.Happiness = 50
	t0 := time.Unix(1_700_000_000, 0)

	asleep, err := svc.StartSleep(state, t0)
	if err != nil {
		t.Fatalf("start sleep error: %v", err)
	}

	done := svc.ApplySleepProgress(asleep, t0.Add(5*time.Minute))
	if got := done.UpdatedState.Vitals.Energy; got != 100 {
		t.Fatalf("energy after full duration: got %v want exactly 100", got)
	}
	if got := done.UpdatedState.Vitals.Happiness; got != 60 {
		t.Fatalf("happiness bonus: got %v want 60", got)
	}
	if !done.UpdatedState.Sleeping {
		t.Fatalf("sleep must not auto-end on full recovery")
	}
	var completed int
	for _, e := range done.Events {
		if e.Type == "sleep_completed" {
			completed++
		}
	}
	if completed != 1 {
		t.Fatalf("expected one sleep_completed event, got %d", completed)
	}

	// Re-evaluating past completion must not grant the bonus again.
	again := svc.ApplySleepProgress(done.UpdatedState, t0.Add(6*time.Minute))
	if got := again.UpdatedState.Vitals.Happiness; got != 60 {
		t.Fatalf("bonus applied twice: happiness %v", got)
	}
	if len(again.Events) != 0 {
		t.Fatalf("expected no further sleep events, got %v", again.Events)
	}
}

func TestApplySleepProgress_NoOpWhenAwake(t *testing.T) {
	svc := NewLifecycleService(DefaultTuning())
	state := healthyPet()
	out := svc.ApplySleepProgress(state, time.Unix(1_700_000_000, 0))
	if out.UpdatedState.Vitals != state.Vitals {
		t.Fatalf("awake pet must be untouched")
	}
}

func TestWake_ClearsSubState(t *testing.T) {
	svc := NewLifecycleService(DefaultTuning())
	t0 := time.Unix(1_700_000_000, 0)
	asleep, err := svc.StartSleep(healthyPet(), t0)
	if err != nil {
		t.Fatalf("start sleep error: %v", err)
	}

	awake := svc.Wake(asleep)
	if awake.Sleeping || awake.SleepStartedAt != nil || awake.SleepStartEnergy != nil {
		t.Fatalf("wake must clear sleep sub-state")
	}

	// Waking an awake pet is a no-op.
	same := svc.Wake(awake)
	if same.Version != awake.Version {
		t.Fatalf("wake of awake pet must not mutate")
	}
}
