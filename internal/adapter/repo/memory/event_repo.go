package memory

import (
	"context"

	"petverse/internal/domain/pet"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(ctx context.Context, petID string, events []pet.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	if !inTx(ctx) {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	r.store.events[petID] = append(r.store.events[petID], events...)
	return nil
}

// ListByPetID returns events newest first, matching the gorm adapter.
func (r EventRepo) ListByPetID(ctx context.Context, petID string, limit int) ([]pet.DomainEvent, error) {
	if !inTx(ctx) {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	stored := r.store.events[petID]
	out := make([]pet.DomainEvent, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		out = append(out, stored[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
