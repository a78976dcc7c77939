package gormrepo

import (
	"context"
	"encoding/json"

	"petverse/internal/domain/pet"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, petID string, events []pet.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]domainEventRow, 0, len(events))
	for _, e := range events {
		b, _ := json.Marshal(e.Payload)
		rows = append(rows, domainEventRow{
			PetID:      petID,
			Type:       e.Type,
			OccurredAt: e.OccurredAt,
			Payload:    b,
		})
	}
	return getDBFromCtx(ctx, r.db).Create(&rows).Error
}

func (r EventRepo) ListByPetID(ctx context.Context, petID string, limit int) ([]pet.DomainEvent, error) {
	rows := []domainEventRow{}
	query := getDBFromCtx(ctx, r.db).
		Where("pet_id = ?", petID).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "id"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]pet.DomainEvent, 0, len(rows))
	for _, row := range rows {
		var payload map[string]any
		if len(row.Payload) > 0 {
			_ = json.Unmarshal(row.Payload, &payload)
		}
		out = append(out, pet.DomainEvent{
			Type:       row.Type,
			OccurredAt: row.OccurredAt,
			Payload:    payload,
		})
	}
	return out, nil
}
