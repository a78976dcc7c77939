package pet

import "time"

// NewPetState builds a freshly adopted pet: an unhatched egg with full
// stats and the starting coin purse.
func NewPetState(petID, name string, species Species, color ColorVariant, now time.Time) PetStateAggregate {
	return PetStateAggregate{
		PetID:   petID,
		Name:    name,
		Species: species,
		Color:   color,
		Vitals: Vitals{
			Hunger:      100,
			Happiness:   100,
			Energy:      100,
			Cleanliness: 100,
			Health:      100,
		},
		Stage:        StageEgg,
		Level:        1,
		Experience:   0,
		Coins:        StartingCoins,
		Alive:        true,
		Mood:         MoodContent,
		Danger:       DangerNormal,
		BirthAt:      now,
		LastUpdateAt: now,
		Version:      1,
	}
}

func NewInventory(petID string) Inventory {
	return Inventory{
		PetID:    petID,
		Food:     StartingFood,
		Medicine: StartingMedicine,
		Treats:   StartingTreats,
		Soap:     StartingSoap,
	}
}

func (inv Inventory) Count(item ItemID) int {
	switch item {
	case ItemFood:
		return inv.Food
	case ItemMedicine:
		return inv.Medicine
	case ItemTreats:
		return inv.Treats
	case ItemSoap:
		return inv.Soap
	default:
		return 0
	}
}

func (inv *Inventory) Add(item ItemID, amount int) {
	if amount <= 0 {
		return
	}
	switch item {
	case ItemFood:
		inv.Food += amount
	case ItemMedicine:
		inv.Medicine += amount
	case ItemTreats:
		inv.Treats += amount
	case ItemSoap:
		inv.Soap += amount
	}
}

func (inv *Inventory) Consume(item ItemID, amount int) bool {
	if amount <= 0 || inv.Count(item) < amount {
		return false
	}
	switch item {
	case ItemFood:
		inv.Food -= amount
	case ItemMedicine:
		inv.Medicine -= amount
	case ItemTreats:
		inv.Treats -= amount
	case ItemSoap:
		inv.Soap -= amount
	}
	return true
}

// MarkDead flips the one-way vitality bit. Never reversed.
func (s *PetStateAggregate) MarkDead(cause DeathCause) {
	if cause == "" {
		cause = DeathCauseUnknown
	}
	s.Alive = false
	s.DeathCause = cause
}

// Normalized back-fills fields a stale or partially written persisted
// record may be missing. Malformed state is repaired, never rejected.
func (s PetStateAggregate) Normalized(now time.Time) PetStateAggregate {
	next := s
	if next.Stage == "" {
		next.Stage = StageEgg
	}
	if next.Mood == "" {
		next.Mood = MoodContent
	}
	if next.Danger == "" {
		next.Danger = DangerNormal
	}
	if next.Level < 1 {
		next.Level = 1
	}
	if next.Experience < 0 {
		next.Experience = 0
	}
	if next.Coins < 0 {
		next.Coins = 0
	}
	if next.BirthAt.IsZero() {
		next.BirthAt = now
	}
	if next.LastUpdateAt.IsZero() {
		next.LastUpdateAt = now
	}
	if !next.Sleeping {
		next.SleepStartedAt = nil
		next.SleepStartEnergy = nil
		next.SleepBonusGranted = false
	}
	next.Vitals = clampVitals(next.Vitals)
	return next
}

// AgeDays derives whole days lived from the birth timestamp.
func AgeDays(birthAt, now time.Time) int {
	if birthAt.IsZero() || now.Before(birthAt) {
		return 0
	}
	return int(now.Sub(birthAt).Hours() / 24)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampStat(v float64) float64 {
	return clamp(v, 0, 100)
}

func clampVitals(v Vitals) Vitals {
	return Vitals{
		Hunger:      clampStat(v.Hunger),
		Happiness:   clampStat(v.Happiness),
		Energy:      clampStat(v.Energy),
		Cleanliness: clampStat(v.Cleanliness),
		Health:      clampStat(v.Health),
	}
}
