package gormrepo

import "time"

type petStateRow struct {
	PetID   string `gorm:"primaryKey;column:pet_id"`
	Name    string `gorm:"column:name"`
	Species string `gorm:"column:species"`
	Color   string `gorm:"column:color"`

	Hunger      float64 `gorm:"column:hunger"`
	Happiness   float64 `gorm:"column:happiness"`
	Energy      float64 `gorm:"column:energy"`
	Cleanliness float64 `gorm:"column:cleanliness"`
	Health      float64 `gorm:"column:health"`

	Stage      string `gorm:"column:stage"`
	Level      int    `gorm:"column:level"`
	Experience int    `gorm:"column:experience"`
	Coins      int    `gorm:"column:coins"`

	Alive      bool   `gorm:"column:alive"`
	Sick       bool   `gorm:"column:sick"`
	Mood       string `gorm:"column:mood"`
	Danger     string `gorm:"column:danger"`
	DeathCause string `gorm:"column:death_cause"`

	BirthAt      time.Time `gorm:"column:birth_at"`
	LastUpdateAt time.Time `gorm:"column:last_update_at"`

	CriticalHungerSince *time.Time `gorm:"column:critical_hunger_since"`
	CriticalHealthSince *time.Time `gorm:"column:critical_health_since"`
	CriticalComboSince  *time.Time `gorm:"column:critical_combo_since"`

	Sleeping          bool       `gorm:"column:sleeping"`
	SleepStartedAt    *time.Time `gorm:"column:sleep_started_at"`
	SleepStartEnergy  *float64   `gorm:"column:sleep_start_energy"`
	SleepBonusGranted bool       `gorm:"column:sleep_bonus_granted"`

	Version int64 `gorm:"column:version"`
}

func (petStateRow) TableName() string { return "pet_states" }

type inventoryRow struct {
	PetID    string `gorm:"primaryKey;column:pet_id"`
	Food     int    `gorm:"column:food"`
	Medicine int    `gorm:"column:medicine"`
	Treats   int    `gorm:"column:treats"`
	Soap     int    `gorm:"column:soap"`
}

func (inventoryRow) TableName() string { return "inventories" }

type domainEventRow struct {
	ID         uint      `gorm:"primaryKey;autoIncrement;column:id"`
	PetID      string    `gorm:"index;column:pet_id"`
	Type       string    `gorm:"column:type"`
	OccurredAt time.Time `gorm:"column:occurred_at"`
	Payload    []byte    `gorm:"column:payload"`
}

func (domainEventRow) TableName() string { return "domain_events" }
