package ports

import (
	"context"

	"petverse/internal/domain/pet"
)

type PetStateRepository interface {
	GetByPetID(ctx context.Context, petID string) (pet.PetStateAggregate, error)
	// SaveWithVersion persists the whole snapshot if the stored version
	// still matches expectedVersion; expectedVersion 0 means create.
	SaveWithVersion(ctx context.Context, state pet.PetStateAggregate, expectedVersion int64) error
	ListPetIDs(ctx context.Context) ([]string, error)
}

type InventoryRepository interface {
	GetByPetID(ctx context.Context, petID string) (pet.Inventory, error)
	Save(ctx context.Context, inv pet.Inventory) error
}

type EventRepository interface {
	Append(ctx context.Context, petID string, events []pet.DomainEvent) error
	ListByPetID(ctx context.Context, petID string, limit int) ([]pet.DomainEvent, error)
}
