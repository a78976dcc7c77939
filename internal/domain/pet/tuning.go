package pet

import "time"

// Default product constants. The durations and the tick period are
// deployment-configurable (see internal/config); the rest are compile-time
// balance values.
const (
	DefaultTickPeriod = 30 * time.Second

	HungerDrainPerTick      = 2.0
	HappinessDrainPerTick   = 1.5
	EnergyDrainPerTick      = 1.0
	CleanlinessDrainPerTick = 0.8

	DirtyThreshold         = 20.0
	CleanRecoveryThreshold = 50.0
	StarvingThreshold      = 30.0

	DirtyHealthDrain         = 1.5
	DirtyStarvingHealthDrain = 3.0
	CleanHealthRecovery      = 0.5
	StarvationHealthDrain    = 2.0

	DefaultHungerDeathGrace = 2 * time.Hour
	DefaultHealthDeathGrace = 30 * time.Minute
	DefaultComboDeathGrace  = 30 * time.Minute

	ComboThreshold    = 10.0
	CriticalThreshold = 10.0
	AlertThreshold    = 30.0

	LowEnergyMoodThreshold = 30.0
	SadMoodThreshold       = 40.0
	SickHealthThreshold    = 30.0
	PlayfulHappiness       = 80.0
	PlayfulEnergy          = 70.0
	PlayfulHunger          = 70.0

	DefaultSleepDuration = 5 * time.Minute
	SleepHappinessBonus  = 10.0

	FeedHungerGain     = 35.0
	FeedHappinessGain  = 10.0
	FeedMessChance     = 0.5
	FeedMessPenalty    = 10.0
	FeedExp            = 10
	CleanHappinessGain = 15.0
	CleanExp           = 8
	MedicineHealthGain = 40.0
	MedicineCleanGain  = 30.0
	MedicineExp        = 20
	TreatHappinessGain = 30.0
	TreatHungerGain    = 10.0
	TreatExp           = 15
	PlayEnergyGate     = 30.0
	PlayEnergyCost     = 20.0
	PlayHappinessGain  = 15.0
	PlayExp            = 5

	// Medicine leaves the pet sick when it could not lift health or
	// cleanliness past these floors.
	SickAfterCureHealth = 50.0
	SickAfterCureClean  = 30.0

	LevelExpStep = 100
	LevelUpCoins = 10
	TeenLevel    = 5
	AdultLevel   = 10

	StartingCoins = 50

	StartingFood     = 5
	StartingMedicine = 2
	StartingTreats   = 1
	StartingSoap     = 3
)

// Tuning carries the configurable product constants for one deployment.
type Tuning struct {
	TickPeriod       time.Duration
	HungerDeathGrace time.Duration
	HealthDeathGrace time.Duration
	ComboDeathGrace  time.Duration
	SleepDuration    time.Duration
}

func DefaultTuning() Tuning {
	return Tuning{
		TickPeriod:       DefaultTickPeriod,
		HungerDeathGrace: DefaultHungerDeathGrace,
		HealthDeathGrace: DefaultHealthDeathGrace,
		ComboDeathGrace:  DefaultComboDeathGrace,
		SleepDuration:    DefaultSleepDuration,
	}
}

var ItemPrices = map[ItemID]int{
	ItemFood:     5,
	ItemMedicine: 10,
	ItemTreats:   8,
	ItemSoap:     3,
}
