package gormrepo

import (
	"context"
	"errors"

	"petverse/internal/app/ports"
	"petverse/internal/domain/pet"

	"gorm.io/gorm"
)

type PetStateRepo struct {
	db *gorm.DB
}

func NewPetStateRepo(db *gorm.DB) PetStateRepo {
	return PetStateRepo{db: db}
}

func (r PetStateRepo) GetByPetID(ctx context.Context, petID string) (pet.PetStateAggregate, error) {
	var row petStateRow
	if err := getDBFromCtx(ctx, r.db).Where("pet_id = ?", petID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pet.PetStateAggregate{}, ports.ErrNotFound
		}
		return pet.PetStateAggregate{}, err
	}
	return toAggregate(row), nil
}

func (r PetStateRepo) SaveWithVersion(ctx context.Context, state pet.PetStateAggregate, expectedVersion int64) error {
	db := getDBFromCtx(ctx, r.db)
	row := toRow(state)
	if expectedVersion == 0 {
		return db.Create(&row).Error
	}

	res := db.Model(&petStateRow{}).
		Where("pet_id = ? AND version = ?", state.PetID, expectedVersion).
		Updates(rowUpdates(row))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func (r PetStateRepo) ListPetIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := getDBFromCtx(ctx, r.db).Model(&petStateRow{}).Pluck("pet_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func toRow(s pet.PetStateAggregate) petStateRow {
	return petStateRow{
		PetID:   s.PetID,
		Name:    s.Name,
		Species: string(s.Species),
		Color:   string(s.Color),

		Hunger:      s.Vitals.Hunger,
		Happiness:   s.Vitals.Happiness,
		Energy:      s.Vitals.Energy,
		Cleanliness: s.Vitals.Cleanliness,
		Health:      s.Vitals.Health,

		Stage:      string(s.Stage),
		Level:      s.Level,
		Experience: s.Experience,
		Coins:      s.Coins,

		Alive:      s.Alive,
		Sick:       s.Sick,
		Mood:       string(s.Mood),
		Danger:     string(s.Danger),
		DeathCause: string(s.DeathCause),

		BirthAt:      s.BirthAt,
		LastUpdateAt: s.LastUpdateAt,

		CriticalHungerSince: s.CriticalHungerSince,
		CriticalHealthSince: s.CriticalHealthSince,
		CriticalComboSince:  s.CriticalComboSince,

		Sleeping:          s.Sleeping,
		SleepStartedAt:    s.SleepStartedAt,
		SleepStartEnergy:  s.SleepStartEnergy,
		SleepBonusGranted: s.SleepBonusGranted,

		Version: s.Version,
	}
}

func toAggregate(row petStateRow) pet.PetStateAggregate {
	return pet.PetStateAggregate{
		PetID:   row.PetID,
		Name:    row.Name,
		Species: pet.Species(row.Species),
		Color:   pet.ColorVariant(row.Color),

		Vitals: pet.Vitals{
			Hunger:      row.Hunger,
			Happiness:   row.Happiness,
			Energy:      row.Energy,
			Cleanliness: row.Cleanliness,
			Health:      row.Health,
		},

		Stage:      pet.Stage(row.Stage),
		Level:      row.Level,
		Experience: row.Experience,
		Coins:      row.Coins,

		Alive:      row.Alive,
		Sick:       row.Sick,
		Mood:       pet.Mood(row.Mood),
		Danger:     pet.DangerLevel(row.Danger),
		DeathCause: pet.DeathCause(row.DeathCause),

		BirthAt:      row.BirthAt,
		LastUpdateAt: row.LastUpdateAt,

		CriticalHungerSince: row.CriticalHungerSince,
		CriticalHealthSince: row.CriticalHealthSince,
		CriticalComboSince:  row.CriticalComboSince,

		Sleeping:          row.Sleeping,
		SleepStartedAt:    row.SleepStartedAt,
		SleepStartEnergy:  row.SleepStartEnergy,
		SleepBonusGranted: row.SleepBonusGranted,

		Version: row.Version,
	}
}

// rowUpdates spells the update map out explicitly: gorm's struct updates
// skip zero values, which would silently drop a stat that decayed to 0.
func rowUpdates(row petStateRow) map[string]any {
	return map[string]any{
		"name":    row.Name,
		"species": row.Species,
		"color":   row.Color,

		"hunger":      row.Hunger,
		"happiness":   row.Happiness,
		"energy":      row.Energy,
		"cleanliness": row.Cleanliness,
		"health":      row.Health,

		"stage":       row.Stage,
		"level":       row.Level,
		"experience":  row.Experience,
		"coins":       row.Coins,
		"alive":       row.Alive,
		"sick":        row.Sick,
		"mood":        row.Mood,
		"danger":      row.Danger,
		"death_cause": row.DeathCause,

		"birth_at":       row.BirthAt,
		"last_update_at": row.LastUpdateAt,

		"critical_hunger_since": row.CriticalHungerSince,
		"critical_health_since": row.CriticalHealthSince,
		"critical_combo_since":  row.CriticalComboSince,

		"sleeping":            row.Sleeping,
		"sleep_started_at":    row.SleepStartedAt,
		"sleep_start_energy":  row.SleepStartEnergy,
		"sleep_bonus_granted": row.SleepBonusGranted,

		"version": row.Version,
	}
}
