package care

import "petverse/internal/domain/pet"

type Request struct {
	PetID  string
	Action pet.CareAction
}

type Response struct {
	UpdatedState pet.PetStateAggregate `json:"updated_state"`
	Inventory    pet.Inventory         `json:"inventory"`
	Events       []pet.DomainEvent     `json:"events"`
}
