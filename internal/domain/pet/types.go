package pet

import "time"

type Species string

const (
	SpeciesCat Species = "cat"
	SpeciesDog Species = "dog"
)

type ColorVariant string

const (
	ColorWhite ColorVariant = "white"
	ColorBlack ColorVariant = "black"
	ColorBrown ColorVariant = "brown"
)

type Stage string

const (
	StageEgg   Stage = "egg"
	StageBaby  Stage = "baby"
	StageTeen  Stage = "teen"
	StageAdult Stage = "adult"
)

type Mood string

const (
	MoodContent   Mood = "content"
	MoodPlayful   Mood = "playful"
	MoodHungry    Mood = "hungry"
	MoodTired     Mood = "tired"
	MoodSad       Mood = "sad"
	MoodSick      Mood = "sick"
	MoodAgonizing Mood = "agonizing"
)

type DangerLevel string

const (
	DangerNormal   DangerLevel = "normal"
	DangerAlert    DangerLevel = "alert"
	DangerCritical DangerLevel = "critical"
	DangerDying    DangerLevel = "dying"
)

type DeathCause string

const (
	DeathCauseUnknown    DeathCause = "unknown"
	DeathCauseStarvation DeathCause = "starvation"
	DeathCauseCollapse   DeathCause = "collapse"
	DeathCauseNeglect    DeathCause = "neglect"
)

// Vitals are the five bounded core stats, each kept in [0,100].
type Vitals struct {
	Hunger      float64 `json:"hunger"`
	Happiness   float64 `json:"happiness"`
	Energy      float64 `json:"energy"`
	Cleanliness float64 `json:"cleanliness"`
	Health      float64 `json:"health"`
}

// PetStateAggregate is the sole mutable entity of the simulation. It is
// replaced wholesale on every settlement; partial field writes are never
// persisted.
type PetStateAggregate struct {
	PetID   string       `json:"pet_id"`
	Name    string       `json:"name"`
	Species Species      `json:"species"`
	Color   ColorVariant `json:"color"`

	Vitals Vitals `json:"vitals"`

	Stage      Stage `json:"stage"`
	Level      int   `json:"level"`
	Experience int   `json:"experience"`
	Coins      int   `json:"coins"`

	Alive      bool        `json:"alive"`
	Sick       bool        `json:"sick"`
	Mood       Mood        `json:"mood"`
	Danger     DangerLevel `json:"danger_level"`
	DeathCause DeathCause  `json:"death_cause,omitempty"`

	AgeDays      int       `json:"age_days"`
	BirthAt      time.Time `json:"birth_at"`
	LastUpdateAt time.Time `json:"last_update_at"`

	// Critical timers: non-nil while the matching adverse condition holds.
	CriticalHungerSince *time.Time `json:"critical_hunger_since,omitempty"`
	CriticalHealthSince *time.Time `json:"critical_health_since,omitempty"`
	CriticalComboSince  *time.Time `json:"critical_combo_since,omitempty"`

	Sleeping          bool       `json:"sleeping"`
	SleepStartedAt    *time.Time `json:"sleep_started_at,omitempty"`
	SleepStartEnergy  *float64   `json:"sleep_start_energy,omitempty"`
	SleepBonusGranted bool       `json:"sleep_bonus_granted,omitempty"`

	Version int64 `json:"version"`
}

type ItemID string

const (
	ItemFood     ItemID = "food"
	ItemMedicine ItemID = "medicine"
	ItemTreats   ItemID = "treats"
	ItemSoap     ItemID = "soap"
)

// Inventory holds the consumable item counts for one pet.
type Inventory struct {
	PetID    string `json:"pet_id"`
	Food     int    `json:"food"`
	Medicine int    `json:"medicine"`
	Treats   int    `json:"treats"`
	Soap     int    `json:"soap"`
}

type CareAction string

const (
	CareFeed     CareAction = "feed"
	CareClean    CareAction = "clean"
	CareMedicine CareAction = "medicine"
	CareTreat    CareAction = "treat"
	CarePlay     CareAction = "play"
)

// Reward is the validated shape minigames hand back; any field may be
// negative for losses.
type Reward struct {
	Coins     int     `json:"coins"`
	Exp       int     `json:"exp"`
	Happiness float64 `json:"happiness"`
}

type ResultCode string

const (
	ResultOK       ResultCode = "OK"
	ResultDeceased ResultCode = "DECEASED"
)

type DomainEvent struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

// TickResult is the output of one settlement of the lifecycle service.
type TickResult struct {
	UpdatedState PetStateAggregate `json:"updated_state"`
	Events       []DomainEvent     `json:"events"`
	ResultCode   ResultCode        `json:"result_code"`
}

// CareOutcome is the output of one atomically applied care action.
type CareOutcome struct {
	UpdatedState PetStateAggregate `json:"updated_state"`
	Inventory    Inventory         `json:"inventory"`
	Events       []DomainEvent     `json:"events"`
}
