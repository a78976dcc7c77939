package memory

import (
	"context"
	"sort"

	"petverse/internal/app/ports"
	"petverse/internal/domain/pet"
)

type PetStateRepo struct {
	store *Store
}

func NewPetStateRepo(store *Store) PetStateRepo {
	return PetStateRepo{store: store}
}

func (r PetStateRepo) GetByPetID(ctx context.Context, petID string) (pet.PetStateAggregate, error) {
	if !inTx(ctx) {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	state, ok := r.store.states[petID]
	if !ok {
		return pet.PetStateAggregate{}, ports.ErrNotFound
	}
	return state, nil
}

func (r PetStateRepo) SaveWithVersion(ctx context.Context, state pet.PetStateAggregate, expectedVersion int64) error {
	if !inTx(ctx) {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	current, exists := r.store.states[state.PetID]
	if expectedVersion == 0 {
		if exists {
			return ports.ErrConflict
		}
		r.store.states[state.PetID] = state
		return nil
	}
	if !exists || current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.states[state.PetID] = state
	return nil
}

func (r PetStateRepo) ListPetIDs(ctx context.Context) ([]string, error) {
	if !inTx(ctx) {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	ids := make([]string, 0, len(r.store.states))
	for id := range r.store.states {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
