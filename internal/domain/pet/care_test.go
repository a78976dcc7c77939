package pet

import (
	"testing"
	"time"
)

func careNow() time.Time { return time.Unix(1_700_000_000, 0) }

func TestApplyCare_FeedDeltas(t *testing.T) {
	svc := NewLifecycleService(DefaultTuning())
	state := healthyPet()
	state.Vitals.Hunger = 40
	state.Vitals.Happiness = 50
	inv := NewInventory("pet-1")

	out, err := svc.ApplyCare(state, inv, CareFeed, careNow(), 0.9)
	if err != nil {
		t.Fatalf("feed error: %v", err)
	}
	if got := out.UpdatedState.Vitals.Hunger; got != 75 {
		t.Fatalf("hunger: got %v want 75", got)
	}
	if got := out.UpdatedState.Vitals.Happiness; got != 60 {
		t.Fatalf("happiness: got %v want 60", got)
	}
	if got := out.UpdatedState.Vitals.Cleanliness; got != 100 {
		t.Fatalf("cleanliness must be untouched on a high roll, got %v", got)
	}
	if got := out.Inventory.Food; got != StartingFood-1 {
		t.Fatalf("food count: got %d want %d", got, StartingFood-1)
	}
	if got := out.UpdatedState.Experience; got != FeedExp {
		t.Fatalf("experience: got %d want %d", got, FeedExp)
	}
}

func TestApplyCare_FeedMessRoll(t *testing.T) {
	svc := NewLifecycleService(DefaultTuning())
	state := healthyPet()
	inv := NewInventory("pet-1")

	out, err := svc.ApplyCare(state, inv, CareFeed, careNow(), 0.1)
	if err != nil {
		t.Fatalf("feed error: %v", err)
	}
	if got := out.UpdatedState.Vitals.Cleanliness; got != 90 {
		t.Fatalf("cleanliness after mess: got %v want 90", got)
	}
}

func TestApplyCare_FeedFromEmptyInventory(t *testing.T) {
	svc := NewLifecycleService(DefaultTuning())
	state := healthyPet()
	inv := NewInventory("pet-1")
	inv.Food = 0

	if _, err := svc.ApplyCare(state, inv, CareFeed, careNow(), 0.9); err != ErrNoFood {
		t.Fatalf("expected ErrNoFood, got %v", err)
	}
}

func TestApplyCare_CleanResetsCleanliness(t *testing.T) {
	svc := NewLifecycleService(DefaultTuning())
	state := healthyPet()
	state.Vitals.Cleanliness = 10
	state.Vitals.Happiness = 50
	inv := NewInventory("pet-1")

	out, err := svc.ApplyCare(state, inv, CareClean, careNow(), 0)
	if err != nil {
		t.Fatalf("clean error: %v", err)
	}
	if out.UpdatedState.Vitals.Cleanliness != 100 {
		t.Fatalf("cleanliness: got %v want 100", out.UpdatedState.Vitals.Cleanliness)
	}
	if out.UpdatedState.Vitals.Happiness != 65 {
		t.Fatalf("happiness: got %v want 65", out.UpdatedState.Vitals.Happiness)
	}
	if out.Inventory.Soap != StartingSoap-1 {
		t.Fatalf("soap count: got %d", out.Inventory.Soap)
	}
}

func TestApplyCare_MedicinePartialCure(t *testing.T) {
	svc := NewLifecycleService(DefaultTuning())
	state := healthyPet()
	state.Vitals.Health = 10
	state.Vitals.Cleanliness = 10
	state.Sick = true
	state.Mood = MoodSick
	inv := NewInventory("pet-1")

	out, err := svc.ApplyCare(state, inv, CareMedicine, careNow(), 0)
	if err != nil {
		t.Fatalf("medicine error: %v", err)
	}
	if got := out.UpdatedState.Vitals.Health; got != 50 {
		t.Fatalf("health: got %v want 50", got)
	}
	if got := out.UpdatedState.Vitals.Cleanliness; got != 40 {
		t.Fatalf("cleanliness: got %v want 40", got)
	}
	// 50 < 50 is false and 40 < 30 is false, so the cure took.
	if out.UpdatedState.Sick {
		t.Fatalf("expected cure: health 50 and cleanliness 40 clear the sick flag")
	}
	if out.UpdatedState.Mood != MoodContent {
		t.Fatalf("mood: got %s want content", out.UpdatedState.Mood)
	}
}

func TestApplyCare_MedicineLeavesSickWhenTooWeak(t *testing.T) {
	svc := NewLifecycleService(DefaultTuning())
	state := healthyPet()
	state.Vitals.Health = 5
	state.Vitals.Cleanliness = 50
	inv := NewInventory("pet-1")

	out, err := svc.ApplyCare(state, inv, CareMedicine, careNow(), 0)
	if err != nil {
		t.Fatalf("medicine error: %v", err)
	}
	if !out.UpdatedState.Sick || out.UpdatedState.Mood != MoodSick {
		t.Fatalf("health 45 must leave the pet sick, got sick=%v mood=%s",
			out.UpdatedState.Sick, out.UpdatedState.Mood)
	}
}

func TestApplyCare_TreatDeltas(t *testing.T) {
	svc := NewLifecycleService(DefaultTuning())
	state := healthyPet()
	state.Vitals.Happiness = 50
	state.Vitals.Hunger = 50
	inv := NewInventory("pet-1")

	out, err := svc.ApplyCare(state, inv, CareTreat, careNow(), 0)
	if err != nil {
		t.Fatalf("treat error: %v", err)
	}
	if out.UpdatedState.Vitals.Happiness != 80 || out.UpdatedState.Vitals.Hunger != 60 {
		t.Fatalf("treat deltas wrong: happiness=%v hunger=%v",
			out.UpdatedState.Vitals.Happiness, out.UpdatedState.Vitals.Hunger)
	}
	if out.Inventory.Treats != StartingTreats-1 {
		t.Fatalf("treats count: got %d", out.Inventory.Treats)
	}
}

func TestApplyCare_PlayEnergyGate(t *testing.T) {
	svc := NewLifecycleService(DefaultTuning())
	inv := NewInventory("pet-1")

	tired := healthyPet()
	tired.Vitals.Energy = 29
	if _, err := svc.ApplyCare(tired, inv, CarePlay, careNow(), 0); err != ErrLowEnergy {
		t.Fatalf("expected ErrLowEnergy, got %v", err)
	}

	state := healthyPet()
	state.Vitals.Energy = 30
	state.Vitals.Happiness = 50
	out, err := svc.ApplyCare(state, inv, CarePlay, careNow(), 0)
	if err != nil {
		t.Fatalf("play error: %v", err)
	}
	if out.UpdatedState.Vitals.Energy != 10 || out.UpdatedState.Vitals.Happiness != 65 {
		t.Fatalf("play deltas wrong: energy=%v happiness=%v",
			out.UpdatedState.Vitals.Energy, out.UpdatedState.Vitals.Happiness)
	}
	if out.Inventory != inv {
		t.Fatalf("play must not consume inventory")
	}
}

func TestApplyCare_ImplicitlyWakes(t *testing.T) {
	svc := NewLifecycleService(DefaultTuning())
	t0 := careNow()
	asleep, err := svc.StartSleep(healthyPet(), t0)
	if err != nil {
		t.Fatalf("start sleep error: %v", err)
	}

	out, err := svc.ApplyCare(asleep, NewInventory("pet-1"), CareFeed, t0.Add(time.Minute), 0.9)
	if err != nil {
		t.Fatalf("feed error: %v", err)
	}
	if out.UpdatedState.Sleeping || out.UpdatedState.SleepStartedAt != nil {
		t.Fatalf("care action must wake the pet first")
	}
}

func TestApplyCare_GuardsDeadAndEgg(t *testing.T) {
	svc := NewLifecycleService(DefaultTuning())
	inv := NewInventory("pet-1")

	dead := healthyPet()
	dead.MarkDead(DeathCauseStarvation)
	if _, err := svc.ApplyCare(dead, inv, CareFeed, careNow(), 0); err != ErrPetDeceased {
		t.Fatalf("expected ErrPetDeceased, got %v", err)
	}

	egg := NewPetState("pet-1", "Mochi", SpeciesCat, ColorWhite, careNow())
	if _, err := svc.ApplyCare(egg, inv, CareFeed, careNow(), 0); err != ErrNotHatched {
		t.Fatalf("expected ErrNotHatched, got %v", err)
	}
}

func TestApplyCare_ExperienceTriggersLevelUp(t *testing.T) {
	svc := NewLifecycleService(DefaultTuning())
	state := healthyPet()
	state.Experience = 95
	coins := state.Coins
	inv := NewInventory("pet-1")

	out, err := svc.ApplyCare(state, inv, CareFeed, careNow(), 0.9)
	if err != nil {
		t.Fatalf("feed error: %v", err)
	}
	if out.UpdatedState.Level != 2 || out.UpdatedState.Experience != 5 {
		t.Fatalf("level up wrong: level=%d exp=%d", out.UpdatedState.Level, out.UpdatedState.Experience)
	}
	if out.UpdatedState.Coins != coins+LevelUpCoins {
		t.Fatalf("level up coins: got %d", out.UpdatedState.Coins)
	}
}
