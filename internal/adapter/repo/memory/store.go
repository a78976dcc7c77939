package memory

import (
	"sync"

	"petverse/internal/domain/pet"
)

// Store is the shared in-memory backing for the dev/test repositories.
// The TxManager takes the write lock for the whole transaction, so the
// repositories themselves stay lock-free inside one.
type Store struct {
	mu sync.RWMutex

	states      map[string]pet.PetStateAggregate
	inventories map[string]pet.Inventory
	events      map[string][]pet.DomainEvent
}

func NewStore() *Store {
	return &Store{
		states:      make(map[string]pet.PetStateAggregate),
		inventories: make(map[string]pet.Inventory),
		events:      make(map[string][]pet.DomainEvent),
	}
}
