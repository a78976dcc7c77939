package memory

import (
	"context"

	"petverse/internal/app/ports"
	"petverse/internal/domain/pet"
)

type InventoryRepo struct {
	store *Store
}

func NewInventoryRepo(store *Store) InventoryRepo {
	return InventoryRepo{store: store}
}

func (r InventoryRepo) GetByPetID(ctx context.Context, petID string) (pet.Inventory, error) {
	if !inTx(ctx) {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	inv, ok := r.store.inventories[petID]
	if !ok {
		return pet.Inventory{}, ports.ErrNotFound
	}
	return inv, nil
}

func (r InventoryRepo) Save(ctx context.Context, inv pet.Inventory) error {
	if !inTx(ctx) {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	r.store.inventories[inv.PetID] = inv
	return nil
}
